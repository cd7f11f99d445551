// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"
	"strings"

	"github.com/daring5920/eosabi/consts"
)

const nameAlphabet = ".12345abcdefghijklmnopqrstuvwxyz"

// Name is an account, permission, or action identifier of at most 12
// characters packed 5 bits per character into a uint64.
type Name uint64

var _ Marshaler = Name(0)

// ParseName packs [s] into a Name. The empty string is the zero Name.
func ParseName(s string) (Name, error) {
	if len(s) > consts.MaxNameChars {
		return 0, fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidName, s, consts.MaxNameChars)
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		c := charToSymbol(s[i])
		if c < 0 {
			return 0, fmt.Errorf("%w: %q has invalid character %q", ErrInvalidName, s, s[i])
		}
		v |= uint64(c) << (64 - 5*(i+1))
	}
	return Name(v), nil
}

// MustParseName is [ParseName] for compile-time constants.
func MustParseName(s string) Name {
	n, err := ParseName(s)
	if err != nil {
		panic(err)
	}
	return n
}

func charToSymbol(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 6
	case c >= '1' && c <= '5':
		return int(c-'1') + 1
	case c == '.':
		return 0
	default:
		return -1
	}
}

// String unpacks the name, dropping trailing '.' padding. A value with any
// of its low 4 bits set decodes to 13 characters, which [ParseName] rejects.
func (n Name) String() string {
	var out [consts.MaxNameChars + 1]byte
	v := uint64(n)
	// The lowest slot only has 4 bits.
	out[consts.MaxNameChars] = nameAlphabet[v&0x0F]
	v >>= 4
	for i := consts.MaxNameChars - 1; i >= 0; i-- {
		out[i] = nameAlphabet[v&0x1F]
		v >>= 5
	}
	return strings.TrimRight(string(out[:]), ".")
}

func (n Name) Marshal(p *Packer) {
	p.PackUint64(uint64(n))
}

// MarshalText implements encoding.TextMarshaler. Values that have no
// 12-character form are rejected so the text always parses back.
func (n Name) MarshalText() ([]byte, error) {
	if n&0x0F != 0 {
		return nil, fmt.Errorf("%w: %#x has no 12-character form", ErrInvalidName, uint64(n))
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := ParseName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// PackName validates [s] and writes it as an 8-byte name.
func (p *Packer) PackName(s string) {
	if p.Errored() {
		return
	}
	n, err := ParseName(s)
	if err != nil {
		p.addErr(err)
		return
	}
	n.Marshal(p)
}

// PackAccountName writes a contract or account name. The encoding is
// identical to [PackName]; the separate entry point keeps call sites that
// pack accounts distinguishable from those that pack action names.
func (p *Packer) PackAccountName(s string) {
	p.PackName(s)
}

func (p *Packer) UnpackName() Name {
	return Name(p.UnpackUint64())
}
