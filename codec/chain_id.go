// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/daring5920/eosabi/consts"
)

// ChainID identifies a network. The same 32-byte shape is used for every
// checksum256 value (transaction ids, block ids, digests).
type ChainID ids.ID

var (
	EmptyChainID = ChainID(ids.Empty)

	_ Marshaler = ChainID{}
)

// ParseChainID decodes a 64 character hex string.
func ParseChainID(s string) (ChainID, error) {
	if len(s) != 2*consts.ChecksumLen {
		return EmptyChainID, fmt.Errorf("%w: expected %d hex characters, got %d", ErrInvalidHashLength, 2*consts.ChecksumLen, len(s))
	}
	b, err := LoadHex(s, consts.ChecksumLen)
	if err != nil {
		return EmptyChainID, err
	}
	id, err := ids.ToID(b)
	if err != nil {
		return EmptyChainID, err
	}
	return ChainID(id), nil
}

// String returns the lowercase hex form.
func (c ChainID) String() string {
	return ToHex(c[:])
}

func (c ChainID) Marshal(p *Packer) {
	p.PackFixedBytes(c[:])
}

// MarshalText implements encoding.TextMarshaler.
func (c ChainID) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ChainID) UnmarshalText(text []byte) error {
	parsed, err := ParseChainID(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// PackChainID validates [s] and writes the 32 raw bytes with no length
// prefix.
func (p *Packer) PackChainID(s string) {
	if p.Errored() {
		return
	}
	c, err := ParseChainID(s)
	if err != nil {
		p.addErr(err)
		return
	}
	c.Marshal(p)
}

func (p *Packer) UnpackChainID() ChainID {
	var c ChainID
	copy(c[:], p.read(consts.ChecksumLen))
	return c
}
