// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAsset(t *testing.T) {
	tests := []struct {
		input     string
		amount    int64
		precision uint8
		code      string
	}{
		{"1.0000 EOS", 10000, 4, "EOS"},
		{"0.1 SYM", 1, 1, "SYM"},
		{"10 EOS", 10, 0, "EOS"},
		{"-1.5 EOS", -15, 1, "EOS"},
		{"0.0001 SYS", 1, 4, "SYS"},
		{"  42.00 ABCDEFG ", 4200, 2, "ABCDEFG"},
		{"9223372036854775807 MAX", 9223372036854775807, 0, "MAX"},
		{"-9223372036854775808 MIN", -9223372036854775808, 0, "MIN"},
		{"1.000000000000000000 PREC", 1000000000000000000, 18, "PREC"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require := require.New(t)

			a, err := ParseAsset(tt.input)
			require.NoError(err)
			require.Equal(tt.amount, a.Amount)
			require.Equal(tt.precision, a.Symbol.Precision)
			require.Equal(tt.code, a.Symbol.Code)
		})
	}
}

func TestPackAsset(t *testing.T) {
	require := require.New(t)

	p := NewWriter(0)
	p.PackAsset("1.0000 EOS")
	require.NoError(p.Err())
	require.Equal([]byte{
		0x10, 0x27, 0, 0, 0, 0, 0, 0, // 10000
		0x04,                    // precision
		'E', 'O', 'S', 0, 0, 0, 0, // symbol
	}, p.Bytes())

	p = NewWriter(0)
	p.PackAsset("-1.5 EOS")
	require.Equal("f1ffffffffffffff01454f5300000000", p.Hex())
}

func TestAssetRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, s := range []string{
		"1.0000 EOS", "0.1 SYM", "10 EOS", "-1.5 EOS", "0.0001 SYS",
		"-0.0042 ABC", "123456.789 XYZ",
	} {
		p := NewWriter(0)
		p.PackAsset(s)
		require.NoError(p.Err())

		r := NewReader(p.Bytes())
		a := r.UnpackAsset()
		require.NoError(r.Err())
		require.Equal(s, a.String())
	}
}

func TestParseAssetMalformed(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"1.0000EOS", ErrMalformedAsset},
		{"1.0000", ErrMalformedAsset},
		{"abc EOS", ErrMalformedAsset},
		{"1. EOS", ErrMalformedAsset},
		{".5 EOS", ErrMalformedAsset},
		{"1.2.3 EOS", ErrMalformedAsset},
		{"--1 EOS", ErrMalformedAsset},
		{"1.0 eos", ErrMalformedAsset},
		{"1.0 TOOLONGX", ErrMalformedAsset},
		{"1.0000000000000000000 EOS", ErrMalformedAsset},
		{"1.0 E1S", ErrMalformedAsset},
		{"9223372036854775808 EOS", ErrIntegerOverflow},
		{"-9223372036854775809 EOS", ErrIntegerOverflow},
		{"99999999999999999999 EOS", ErrIntegerOverflow},
		{"100.000000000000000000 EOS", ErrIntegerOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require := require.New(t)

			_, err := ParseAsset(tt.input)
			require.ErrorIs(err, tt.err)

			p := NewWriter(0)
			p.PackAsset(tt.input)
			require.ErrorIs(p.Err(), tt.err)
			require.Zero(p.Len())
		})
	}
}

func TestSymbol(t *testing.T) {
	require := require.New(t)

	s, err := ParseSymbol("4,EOS")
	require.NoError(err)
	require.Equal(Symbol{Precision: 4, Code: "EOS"}, s)
	require.Equal("4,EOS", s.String())

	p := NewWriter(0)
	s.Marshal(p)
	require.Equal("04454f5300000000", p.Hex())

	_, err = ParseSymbol("EOS")
	require.ErrorIs(err, ErrMalformedAsset)
	_, err = ParseSymbol("19,EOS")
	require.ErrorIs(err, ErrMalformedAsset)

	p = NewWriter(0)
	Asset{Amount: 1, Symbol: Symbol{Precision: 1, Code: "bad"}}.Marshal(p)
	require.ErrorIs(p.Err(), ErrMalformedAsset)
	require.Zero(p.Len())
}

func TestAssetText(t *testing.T) {
	require := require.New(t)

	var a Asset
	require.NoError(a.UnmarshalText([]byte("2.50 USD")))
	require.Equal(int64(250), a.Amount)

	text, err := a.MarshalText()
	require.NoError(err)
	require.Equal("2.50 USD", string(text))
}
