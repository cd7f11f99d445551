// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/daring5920/eosabi/consts"
)

// Curve is the cryptographic curve a key belongs to.
type Curve uint8

const (
	CurveK1 Curve = iota // secp256k1, also used by legacy "EOS" keys
	CurveR1              // secp256r1
	CurveWA              // webauthn; variable-length, no fixed wire layout
)

func (c Curve) String() string {
	switch c {
	case CurveK1:
		return "K1"
	case CurveR1:
		return "R1"
	case CurveWA:
		return "WA"
	default:
		return fmt.Sprintf("Curve(%d)", uint8(c))
	}
}

// curveTags holds the wire tag of every curve with a fixed 33-byte layout.
var curveTags = map[Curve]byte{
	CurveK1: 0,
	CurveR1: 1,
}

// WireTag returns the type tag written before the key material.
func (c Curve) WireTag() (byte, error) {
	tag, ok := curveTags[c]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedKeyType, c)
	}
	return tag, nil
}

// CurveFromTag is the inverse of [Curve.WireTag].
func CurveFromTag(tag byte) (Curve, error) {
	for c, t := range curveTags {
		if t == tag {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: tag %d", ErrUnsupportedKeyType, tag)
}

// PublicKey is already-decoded key material. Parsing and checksum
// validation of the text form live in package crypto.
type PublicKey struct {
	Curve Curve
	Data  [consts.KeyMaterialLen]byte
}

var _ Marshaler = PublicKey{}

func (k PublicKey) Marshal(p *Packer) {
	if p.Errored() {
		return
	}
	tag, err := k.Curve.WireTag()
	if err != nil {
		p.addErr(err)
		return
	}
	p.PackByte(tag)
	p.PackFixedBytes(k.Data[:])
}

// PackPublicKey writes the type tag followed by the 33 bytes of key
// material.
func (p *Packer) PackPublicKey(k PublicKey) {
	k.Marshal(p)
}

func (p *Packer) UnpackPublicKey() PublicKey {
	tag := p.UnpackByte()
	if p.Errored() {
		return PublicKey{}
	}
	curve, err := CurveFromTag(tag)
	if err != nil {
		p.addErr(err)
		return PublicKey{}
	}
	k := PublicKey{Curve: curve}
	copy(k.Data[:], p.read(consts.KeyMaterialLen))
	return k
}
