// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daring5920/eosabi/codec"
)

func testSignature() Signature {
	sig := Signature{Curve: codec.CurveK1}
	for i := range sig.Data {
		sig.Data[i] = byte(i + 1)
	}
	return sig
}

func TestSignatureStringRoundTrip(t *testing.T) {
	require := require.New(t)

	sig := testSignature()
	s := sig.String()
	require.Contains(s, "SIG_K1_")

	parsed, err := ParseSignature(s)
	require.NoError(err)
	require.Equal(sig, parsed)

	b, err := json.Marshal(sig)
	require.NoError(err)
	var decoded Signature
	require.NoError(json.Unmarshal(b, &decoded))
	require.Equal(sig, decoded)
}

func TestParseSignatureInvalid(t *testing.T) {
	good := testSignature().String()
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"no prefix", good[len("SIG_"):], ErrInvalidSignature},
		{"no curve", "SIG_" + good[len("SIG_K1_"):], ErrInvalidSignature},
		{"wrong curve", "SIG_R1_" + good[len("SIG_K1_"):], ErrBadChecksum},
		{"truncated", good[:len(good)-3], ErrInvalidSignature},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			_, err := ParseSignature(tt.input)
			require.ErrorIs(err, tt.err)
		})
	}
}

func TestSignatureMarshal(t *testing.T) {
	require := require.New(t)

	sig := testSignature()
	p := codec.NewWriter(0)
	sig.Marshal(p)
	require.NoError(p.Err())
	require.Equal(1+SignatureLen, p.Len())
	require.Equal(byte(0), p.Bytes()[0])

	p = codec.NewWriter(0)
	Signature{Curve: codec.CurveWA}.Marshal(p)
	require.ErrorIs(p.Err(), codec.ErrUnsupportedKeyType)
}

func TestUnmarshalSignature(t *testing.T) {
	require := require.New(t)

	sig := testSignature()
	p := codec.NewWriter(0)
	sig.Marshal(p)
	require.NoError(p.Err())

	r := codec.NewReader(p.Bytes())
	require.Equal(sig, UnmarshalSignature(r))
	require.NoError(r.Err())
	require.True(r.Empty())

	r = codec.NewReader([]byte{0x02})
	UnmarshalSignature(r)
	require.ErrorIs(r.Err(), codec.ErrUnsupportedKeyType)

	r = codec.NewReader([]byte{0x00, 0x01})
	UnmarshalSignature(r)
	require.ErrorIs(r.Err(), codec.ErrInsufficientLength)
}
