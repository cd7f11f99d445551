// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1

import (
	"fmt"

	dsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PublicKeyLen is the size of a compressed point.
const PublicKeyLen = 33

type PublicKey [PublicKeyLen]byte

var EmptyPublicKey = PublicKey{}

// ParsePublicKey checks that [b] is a compressed secp256k1 point that lies
// on the curve.
func ParsePublicKey(b []byte) (PublicKey, error) {
	if len(b) != PublicKeyLen {
		return EmptyPublicKey, fmt.Errorf("secp256k1: expected %d bytes, got %d", PublicKeyLen, len(b))
	}
	if b[0] != 0x02 && b[0] != 0x03 {
		return EmptyPublicKey, fmt.Errorf("secp256k1: point is not compressed (prefix 0x%02x)", b[0])
	}
	if _, err := dsecp.ParsePubKey(b); err != nil {
		return EmptyPublicKey, fmt.Errorf("secp256k1: %w", err)
	}
	return PublicKey(b), nil
}
