// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackVarUint(t *testing.T) {
	tests := []struct {
		value    uint64
		expected []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{16384, []byte{0x80, 0x80, 0x01}},
		{math.MaxUint32, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
		{math.MaxUint64, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
	}
	for _, tt := range tests {
		require := require.New(t)

		p := NewWriter(0)
		p.PackVarUint(tt.value)
		require.Equal(tt.expected, p.Bytes(), "value %d", tt.value)
		require.Len(p.Bytes(), VarUintLen(tt.value))

		r := NewReader(p.Bytes())
		require.Equal(tt.value, r.UnpackVarUint64())
		require.NoError(r.Err())
		require.True(r.Empty())
	}
}

func TestVarUintRoundTripRange(t *testing.T) {
	require := require.New(t)

	for shift := 0; shift < 64; shift++ {
		for _, delta := range []uint64{0, 1} {
			v := uint64(1)<<shift - delta
			p := NewWriter(0)
			p.PackVarUint(v)
			r := NewReader(p.Bytes())
			require.Equal(v, r.UnpackVarUint64())
			require.NoError(r.Err())
		}
	}
}

func TestUnpackVarUint32Overflow(t *testing.T) {
	require := require.New(t)

	p := NewWriter(0)
	p.PackVarUint(math.MaxUint32 + 1)

	r := NewReader(p.Bytes())
	require.Zero(r.UnpackVarUint32())
	require.ErrorIs(r.Err(), ErrIntegerOverflow)

	r = NewReader([]byte{0xff, 0xff, 0xff, 0xff, 0x0f})
	require.Equal(uint32(math.MaxUint32), r.UnpackVarUint32())
	require.NoError(r.Err())
}

func TestUnpackVarUint64Overflow(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02})
	r.UnpackVarUint64()
	require.ErrorIs(r.Err(), ErrIntegerOverflow)

	r = NewReader([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00})
	r.UnpackVarUint64()
	require.ErrorIs(r.Err(), ErrIntegerOverflow)
}

func TestUnpackVarUintTruncated(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte{0x80, 0x80})
	r.UnpackVarUint64()
	require.ErrorIs(r.Err(), ErrInsufficientLength)
}

func TestUnpackVarUintNonMinimal(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte{0x81, 0x00})
	require.Equal(uint64(1), r.UnpackVarUint64())
	require.NoError(r.Err())
}
