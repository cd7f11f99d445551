// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/daring5920/eosabi/consts"
)

// PackVarUint writes [v] as an unsigned LEB128 integer: 7 payload bits per
// byte, low bits first, with the high bit set on every byte but the last.
// Zero is written as a single 0x00 byte.
func (p *Packer) PackVarUint(v uint64) {
	if !p.writable() {
		return
	}
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		p.buf.writeByte(b)
		if v == 0 {
			return
		}
	}
}

// UnpackVarUint64 reads an unsigned LEB128 integer that must fit in 64 bits.
func (p *Packer) UnpackVarUint64() uint64 {
	return p.unpackVarUint(64)
}

// UnpackVarUint32 reads an unsigned LEB128 integer that must fit in 32 bits.
func (p *Packer) UnpackVarUint32() uint32 {
	return uint32(p.unpackVarUint(32))
}

func (p *Packer) unpackVarUint(width uint) uint64 {
	var (
		v     uint64
		shift uint
	)
	for {
		b := p.read(consts.ByteLen)
		if b == nil {
			return 0
		}
		payload := uint64(b[0] & 0x7F)
		// Reject any payload bits that would land at or above [width].
		if shift >= width || payload>>(width-shift) != 0 {
			p.addErr(fmt.Errorf("%w: varuint exceeds %d bits", ErrIntegerOverflow, width))
			return 0
		}
		v |= payload << shift
		if b[0]&0x80 == 0 {
			return v
		}
		shift += 7
	}
}
