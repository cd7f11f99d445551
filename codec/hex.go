// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"
	"fmt"
)

// ToHex converts [b] to a lowercase hex string.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// LoadHex converts a hex encoded string into bytes. If [expectedSize] is not
// -1 the decoded length must match it.
func LoadHex(s string, expectedSize int) ([]byte, error) {
	bytes, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	if expectedSize != -1 && len(bytes) != expectedSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidHashLength, expectedSize, len(bytes))
	}
	return bytes, nil
}

// Bytes is a variable-length blob whose text form is hex and whose binary
// form is VarUint(length) followed by the raw bytes.
type Bytes []byte

var _ Marshaler = Bytes(nil)

func (b Bytes) String() string {
	return ToHex(b)
}

func (b Bytes) Marshal(p *Packer) {
	p.PackBytes(b)
}

// MarshalText returns the hex representation of b.
func (b Bytes) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText sets b to the bytes represented by text.
func (b *Bytes) UnmarshalText(text []byte) error {
	bytes, err := LoadHex(string(text), -1)
	if err != nil {
		return err
	}
	*b = bytes
	return nil
}

// PackData decodes the hex string [s] and writes it length-prefixed.
func (p *Packer) PackData(s string) {
	if p.Errored() {
		return
	}
	b, err := LoadHex(s, -1)
	if err != nil {
		p.addErr(err)
		return
	}
	p.PackBytes(b)
}

// UnpackData reads a length-prefixed blob.
func (p *Packer) UnpackData() Bytes {
	return p.UnpackBytes()
}
