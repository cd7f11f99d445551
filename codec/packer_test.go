// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"math"
	"testing"

	"github.com/near/borsh-go"
	"github.com/stretchr/testify/require"
)

func TestPackerFixedWidth(t *testing.T) {
	require := require.New(t)

	p := NewWriter(0)
	p.PackUint32(1)
	require.Equal([]byte{0x01, 0x00, 0x00, 0x00}, p.Bytes())

	p = NewWriter(0)
	p.PackInt64(-1)
	require.Equal([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, p.Bytes())

	p = NewWriter(0)
	p.PackUint16(0x0102)
	require.Equal([]byte{0x02, 0x01}, p.Bytes())
	require.NoError(p.Err())
}

// borsh is little-endian for fixed-width integers, so it serves as an
// independent reference for the packer's byte order.
func TestPackerMatchesBorsh(t *testing.T) {
	tests := []struct {
		name  string
		value any
		pack  func(*Packer)
	}{
		{"uint16", uint16(0xBEEF), func(p *Packer) { p.PackUint16(0xBEEF) }},
		{"uint32", uint32(0xDEADBEEF), func(p *Packer) { p.PackUint32(0xDEADBEEF) }},
		{"uint64", uint64(math.MaxUint64 - 7), func(p *Packer) { p.PackUint64(math.MaxUint64 - 7) }},
		{"int64 min", int64(math.MinInt64), func(p *Packer) { p.PackInt64(math.MinInt64) }},
		{"int64 negative", int64(-123456789), func(p *Packer) { p.PackInt64(-123456789) }},
		{"uint8", uint8(0x7F), func(p *Packer) { p.PackByte(0x7F) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			expected, err := borsh.Serialize(tt.value)
			require.NoError(err)

			p := NewWriter(0)
			tt.pack(p)
			require.NoError(p.Err())
			require.Equal(expected, p.Bytes())
		})
	}
}

func TestPackerRoundTrip(t *testing.T) {
	require := require.New(t)

	w := NewWriter(4)
	w.PackByte(0xAB)
	w.PackBool(true)
	w.PackUint16(65535)
	w.PackUint32(4_000_000_000)
	w.PackUint64(1 << 60)
	w.PackInt64(-42)
	w.PackString("héllo")
	w.PackBytes([]byte{1, 2, 3})
	w.PackFixedBytes([]byte{9, 9})
	require.NoError(w.Err())

	r := NewReader(w.Bytes())
	require.Equal(byte(0xAB), r.UnpackByte())
	require.True(r.UnpackBool())
	require.Equal(uint16(65535), r.UnpackUint16())
	require.Equal(uint32(4_000_000_000), r.UnpackUint32())
	require.Equal(uint64(1<<60), r.UnpackUint64())
	require.Equal(int64(-42), r.UnpackInt64())
	require.Equal("héllo", r.UnpackString())
	require.Equal([]byte{1, 2, 3}, r.UnpackBytes())
	require.Equal([]byte{9, 9}, r.UnpackFixedBytes(2))
	require.NoError(r.Err())
	require.True(r.Empty())
}

func TestPackerStringUsesByteLength(t *testing.T) {
	require := require.New(t)

	p := NewWriter(0)
	p.PackString("é")
	require.Equal([]byte{0x02, 0xc3, 0xa9}, p.Bytes())
}

func TestPackerBytesIsSnapshot(t *testing.T) {
	require := require.New(t)

	p := NewWriter(8)
	p.PackUint32(7)
	first := p.Bytes()
	first[0] = 0xFF

	require.Equal([]byte{7, 0, 0, 0}, p.Bytes())
	require.Equal(4, p.Len())
	require.Equal("07000000", p.Hex())

	p.PackByte(1)
	require.Equal([]byte{7, 0, 0, 0, 1}, p.Bytes())
}

func TestPackerStickyError(t *testing.T) {
	require := require.New(t)

	p := NewWriter(0)
	p.PackByte(1)
	p.PackName("this.name.is.too.long")
	require.ErrorIs(p.Err(), ErrInvalidName)
	require.True(p.Errored())

	// Later writes are ignored and the first error is kept.
	p.PackByte(2)
	p.PackData("zz")
	require.ErrorIs(p.Err(), ErrInvalidName)
	require.Equal([]byte{1}, p.Bytes())
}

func TestPackerWriteOnReader(t *testing.T) {
	require := require.New(t)

	p := NewReader([]byte{1, 2})
	require.NotPanics(func() {
		p.PackByte(1)
		p.PackUint32(7)
		p.PackVarUint(300)
		p.PackFixedBytes([]byte{3})
		p.PackString("eosio")
	})
	require.ErrorIs(p.Err(), ErrNotWriter)
	require.Zero(p.UnpackByte())
	require.Equal([]byte{1, 2}, p.Bytes())
}

func TestPackerUnpackInsufficientLength(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte{1, 2, 3})
	require.Zero(r.UnpackUint32())
	require.ErrorIs(r.Err(), ErrInsufficientLength)
	require.Equal(0, r.Offset())
}

func TestPackerUnpackBytesLengthTooLarge(t *testing.T) {
	require := require.New(t)

	// Claims 300 bytes follow but only one does.
	r := NewReader([]byte{0xAC, 0x02, 0x00})
	require.Nil(r.UnpackBytes())
	require.ErrorIs(r.Err(), ErrInsufficientLength)
}

func TestPackerBlockFields(t *testing.T) {
	require := require.New(t)

	p := NewWriter(0)
	p.PackBlockNum(0x00012345)
	p.PackBlockPrefix(0xFFFFFFFF)
	p.PackTimestampMs(1_700_000_000_999)
	require.NoError(p.Err())
	require.Equal([]byte{
		0x45, 0x23,
		0xff, 0xff, 0xff, 0xff,
		0x00, 0xf1, 0x53, 0x65,
	}, p.Bytes())
}

func TestPackerBlockPrefixOverflow(t *testing.T) {
	require := require.New(t)

	p := NewWriter(0)
	p.PackBlockPrefix(1 << 32)
	require.ErrorIs(p.Err(), ErrIntegerOverflow)
	require.Zero(p.Len())
}

func TestPackerTimestampOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
	}{
		{"negative", -1000},
		{"past uint32 seconds", (int64(math.MaxUint32) + 1) * 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			p := NewWriter(0)
			p.PackTimestampMs(tt.ms)
			require.ErrorIs(p.Err(), ErrIntegerOverflow)
		})
	}
}
