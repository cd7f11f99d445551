// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

const testKeyHex = "02c0ded2bc1f1305fb0faac5e6c03ee3a1924234985427b6167ca569d13df435cf"

func testKey(t *testing.T, curve Curve) PublicKey {
	b, err := hex.DecodeString(testKeyHex)
	require.NoError(t, err)
	k := PublicKey{Curve: curve}
	copy(k.Data[:], b)
	return k
}

func TestPackPublicKey(t *testing.T) {
	require := require.New(t)

	p := NewWriter(0)
	p.PackPublicKey(testKey(t, CurveK1))
	require.NoError(p.Err())
	require.Equal(34, p.Len())
	require.Equal("00"+testKeyHex, p.Hex())

	p = NewWriter(0)
	p.PackPublicKey(testKey(t, CurveR1))
	require.Equal("01"+testKeyHex, p.Hex())

	r := NewReader(p.Bytes())
	require.Equal(testKey(t, CurveR1), r.UnpackPublicKey())
	require.NoError(r.Err())
}

func TestPackPublicKeyUnsupported(t *testing.T) {
	require := require.New(t)

	for _, c := range []Curve{CurveWA, Curve(9)} {
		p := NewWriter(0)
		p.PackPublicKey(testKey(t, c))
		require.ErrorIs(p.Err(), ErrUnsupportedKeyType)
		require.Zero(p.Len())
	}

	r := NewReader(append([]byte{0x07}, make([]byte, 33)...))
	r.UnpackPublicKey()
	require.ErrorIs(r.Err(), ErrUnsupportedKeyType)
}

func TestCurveString(t *testing.T) {
	require := require.New(t)

	require.Equal("K1", CurveK1.String())
	require.Equal("R1", CurveR1.String())
	require.Equal("WA", CurveWA.String())
	require.Equal("Curve(9)", Curve(9).String())
}
