// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codectest

import (
	"math/rand"

	"github.com/daring5920/eosabi/codec"
)

const nameAlphabet = "12345abcdefghijklmnopqrstuvwxyz"

// RandomName returns a random valid name of 1 to 12 characters. Dots are
// only placed between other characters.
func RandomName(r *rand.Rand) codec.Name {
	n := 1 + r.Intn(12)
	b := make([]byte, n)
	for i := range b {
		if i > 0 && i < n-1 && b[i-1] != '.' && r.Intn(8) == 0 {
			b[i] = '.'
			continue
		}
		b[i] = nameAlphabet[r.Intn(len(nameAlphabet))]
	}
	return codec.MustParseName(string(b))
}

// RandomAsset returns a random asset with a valid symbol.
func RandomAsset(r *rand.Rand) codec.Asset {
	code := make([]byte, 1+r.Intn(7))
	for i := range code {
		code[i] = byte('A' + r.Intn(26))
	}
	return codec.Asset{
		Amount: r.Int63() - r.Int63(),
		Symbol: codec.Symbol{
			Precision: uint8(r.Intn(19)),
			Code:      string(code),
		},
	}
}
