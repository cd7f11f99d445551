// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackData(t *testing.T) {
	require := require.New(t)

	p := NewWriter(0)
	p.PackData("deadbeef")
	p.PackData("")
	require.NoError(p.Err())
	require.Equal([]byte{0x04, 0xde, 0xad, 0xbe, 0xef, 0x00}, p.Bytes())

	r := NewReader(p.Bytes())
	require.Equal(Bytes{0xde, 0xad, 0xbe, 0xef}, r.UnpackData())
	require.Equal(Bytes{}, r.UnpackData())
	require.True(r.Empty())
}

func TestPackDataInvalid(t *testing.T) {
	for _, s := range []string{"abc", "zz", "0xab", "12 3"} {
		t.Run(s, func(t *testing.T) {
			require := require.New(t)

			p := NewWriter(0)
			p.PackData(s)
			require.ErrorIs(p.Err(), ErrInvalidHex)
			require.Zero(p.Len())
		})
	}
}

func TestLoadHexExpectedSize(t *testing.T) {
	require := require.New(t)

	b, err := LoadHex("0102", 2)
	require.NoError(err)
	require.Equal([]byte{1, 2}, b)

	_, err = LoadHex("0102", 3)
	require.ErrorIs(err, ErrInvalidHashLength)
}

func TestBytesJSON(t *testing.T) {
	require := require.New(t)

	b, err := json.Marshal(Bytes{0xAB, 0xCD})
	require.NoError(err)
	require.Equal(`"abcd"`, string(b))

	var out Bytes
	require.NoError(json.Unmarshal(b, &out))
	require.Equal(Bytes{0xAB, 0xCD}, out)

	require.ErrorIs(json.Unmarshal([]byte(`"abc"`), &out), ErrInvalidHex)
}
