// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daring5920/eosabi/codec"
	"github.com/daring5920/eosabi/crypto"
)

func testSignature(fill byte) crypto.Signature {
	sig := crypto.Signature{Curve: codec.CurveK1}
	for i := range sig.Data {
		sig.Data[i] = fill
	}
	return sig
}

func TestParseCompression(t *testing.T) {
	require := require.New(t)

	c, err := ParseCompression("zlib")
	require.NoError(err)
	require.Equal(CompressionZlib, c)
	require.Equal("zlib", c.String())
	require.Equal("none", CompressionNone.String())

	_, err = ParseCompression("gzip")
	require.ErrorIs(err, ErrUnknownCompression)
}

func TestPackedTransactionNone(t *testing.T) {
	require := require.New(t)

	tx := testTransaction(t)
	pt, err := NewPackedTransaction(tx, nil, nil, CompressionNone)
	require.NoError(err)
	require.Equal(transferTxHex, pt.PackedTrx.String())
	require.Empty(pt.PackedContextFreeData)
	require.NotNil(pt.Signatures)

	id, err := pt.ID()
	require.NoError(err)
	require.Equal(transferTxID, id.String())
}

func TestPackedTransactionZlib(t *testing.T) {
	require := require.New(t)

	tx := testTransaction(t)
	cfd := [][]byte{[]byte("abc"), {0x00, 0x01}}
	pt, err := NewPackedTransaction(tx, []crypto.Signature{testSignature(1)}, cfd, CompressionZlib)
	require.NoError(err)
	require.NotEqual(transferTxHex, pt.PackedTrx.String())

	unpacked, err := pt.Transaction()
	require.NoError(err)
	require.Equal(tx, unpacked)

	data, err := pt.ContextFreeData()
	require.NoError(err)
	require.Equal(cfd, data)
}

func TestPackedTransactionJSON(t *testing.T) {
	require := require.New(t)

	sig := testSignature(7)
	pt, err := NewPackedTransaction(testTransaction(t), []crypto.Signature{sig}, nil, CompressionNone)
	require.NoError(err)

	b, err := json.Marshal(pt)
	require.NoError(err)
	require.JSONEq(`{
		"signatures": ["`+sig.String()+`"],
		"compression": "none",
		"packed_context_free_data": "",
		"packed_trx": "`+transferTxHex+`"
	}`, string(b))

	var decoded PackedTransaction
	require.NoError(json.Unmarshal(b, &decoded))
	require.Equal(pt.Signatures, decoded.Signatures)
	require.Equal(pt.PackedTrx, decoded.PackedTrx)
	require.Equal(CompressionNone, decoded.Compression)
}

func TestPackedTransactionBinaryRoundTrip(t *testing.T) {
	require := require.New(t)

	pt, err := NewPackedTransaction(
		testTransaction(t),
		[]crypto.Signature{testSignature(1), testSignature(2)},
		[][]byte{[]byte("abc")},
		CompressionZlib,
	)
	require.NoError(err)

	w := codec.NewWriter(0)
	pt.Marshal(w)
	require.NoError(w.Err())

	r := codec.NewReader(w.Bytes())
	decoded := UnmarshalPackedTransaction(r)
	require.NoError(r.Err())
	require.True(r.Empty())
	require.Equal(pt, decoded)
}

func TestUnmarshalPackedTransactionUnknownCompression(t *testing.T) {
	require := require.New(t)

	r := codec.NewReader([]byte{0x00, 0x05, 0x00, 0x00})
	require.Nil(UnmarshalPackedTransaction(r))
	require.ErrorIs(r.Err(), ErrUnknownCompression)
}
