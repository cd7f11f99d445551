// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"fmt"
	"strings"

	"github.com/daring5920/eosabi/codec"
)

const (
	SignatureLen    = 65 // recovery id || r || s
	signaturePrefix = "SIG_"
)

// Signature is a recoverable signature in the form a node accepts.
type Signature struct {
	Curve codec.Curve
	Data  [SignatureLen]byte
}

var _ codec.Marshaler = Signature{}

// ParseSignature decodes "SIG_<curve>_<base58>" and verifies its checksum.
func ParseSignature(s string) (Signature, error) {
	rest, ok := strings.CutPrefix(s, signaturePrefix)
	if !ok {
		return Signature{}, fmt.Errorf("%w: %q has unknown prefix", ErrInvalidSignature, s)
	}
	name, body, ok := strings.Cut(rest, "_")
	if !ok {
		return Signature{}, fmt.Errorf("%w: %q has no curve", ErrInvalidSignature, s)
	}
	curve, err := parseCurve(name)
	if err != nil {
		return Signature{}, err
	}
	data, err := decodeChecked(body, SignatureLen, []byte(name))
	if err != nil {
		return Signature{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	sig := Signature{Curve: curve}
	copy(sig.Data[:], data)
	return sig, nil
}

func (s Signature) String() string {
	name := s.Curve.String()
	return signaturePrefix + name + "_" + encodeChecked(s.Data[:], []byte(name))
}

// Marshal writes the curve tag followed by the 65 signature bytes.
func (s Signature) Marshal(p *codec.Packer) {
	if p.Errored() {
		return
	}
	tag, err := s.Curve.WireTag()
	if err != nil {
		p.AddErr(err)
		return
	}
	p.PackByte(tag)
	p.PackFixedBytes(s.Data[:])
}

func UnmarshalSignature(p *codec.Packer) Signature {
	tag := p.UnpackByte()
	if p.Errored() {
		return Signature{}
	}
	curve, err := codec.CurveFromTag(tag)
	if err != nil {
		p.AddErr(err)
		return Signature{}
	}
	sig := Signature{Curve: curve}
	copy(sig.Data[:], p.UnpackFixedBytes(SignatureLen))
	return sig
}

// MarshalText implements encoding.TextMarshaler.
func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Signature) UnmarshalText(text []byte) error {
	parsed, err := ParseSignature(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
