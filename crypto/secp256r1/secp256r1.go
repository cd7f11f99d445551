// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256r1

import (
	"crypto/elliptic"
	"errors"
	"fmt"
)

// PublicKeyLen is the size of a compressed point.
const PublicKeyLen = 33

type PublicKey [PublicKeyLen]byte

var (
	EmptyPublicKey = PublicKey{}

	errNotOnCurve = errors.New("secp256r1: invalid compressed point")
)

// ParsePublicKey checks that [b] is a compressed P-256 point that lies on
// the curve.
func ParsePublicKey(b []byte) (PublicKey, error) {
	if len(b) != PublicKeyLen {
		return EmptyPublicKey, fmt.Errorf("secp256r1: expected %d bytes, got %d", PublicKeyLen, len(b))
	}
	if x, _ := elliptic.UnmarshalCompressed(elliptic.P256(), b); x == nil {
		return EmptyPublicKey, errNotOnCurve
	}
	return PublicKey(b), nil
}
