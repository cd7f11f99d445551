// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/klauspost/compress/zlib"
	"golang.org/x/exp/maps"

	"github.com/daring5920/eosabi/codec"
	"github.com/daring5920/eosabi/crypto"
)

// Compression selects how the packed transaction and context-free data are
// encoded inside a [PackedTransaction].
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZlib
)

var compressionNames = map[string]Compression{
	"none": CompressionNone,
	"zlib": CompressionZlib,
}

func ParseCompression(s string) (Compression, error) {
	c, ok := compressionNames[s]
	if !ok {
		names := maps.Keys(compressionNames)
		sort.Strings(names)
		return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownCompression, s, strings.Join(names, ", "))
	}
	return c, nil
}

func (c Compression) String() string {
	for name, v := range compressionNames {
		if v == c {
			return name
		}
	}
	return fmt.Sprintf("Compression(%d)", uint8(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Compression) MarshalText() ([]byte, error) {
	if _, ok := compressionNames[c.String()]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Compression) UnmarshalText(text []byte) error {
	parsed, err := ParseCompression(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Compression) compress(b []byte) ([]byte, error) {
	switch c {
	case CompressionNone:
		return b, nil
	case CompressionZlib:
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		if _, err := w.Write(b); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}
}

func (c Compression) decompress(b []byte) ([]byte, error) {
	switch c {
	case CompressionNone:
		return b, nil
	case CompressionZlib:
		r, err := zlib.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}
}

// PackedTransaction is the body of a push_transaction request.
type PackedTransaction struct {
	Signatures            []crypto.Signature `json:"signatures"`
	Compression           Compression        `json:"compression"`
	PackedContextFreeData codec.Bytes        `json:"packed_context_free_data"`
	PackedTrx             codec.Bytes        `json:"packed_trx"`
}

var _ codec.Marshaler = (*PackedTransaction)(nil)

// NewPackedTransaction packs and optionally compresses [tx] and
// [contextFreeData].
func NewPackedTransaction(
	tx *Transaction,
	signatures []crypto.Signature,
	contextFreeData [][]byte,
	compression Compression,
) (*PackedTransaction, error) {
	trx, err := tx.Bytes()
	if err != nil {
		return nil, err
	}
	return newPackedTransaction(trx, signatures, contextFreeData, compression)
}

func newPackedTransaction(
	trx []byte,
	signatures []crypto.Signature,
	contextFreeData [][]byte,
	compression Compression,
) (*PackedTransaction, error) {
	trx, err := compression.compress(trx)
	if err != nil {
		return nil, err
	}
	var cfd []byte
	if len(contextFreeData) > 0 {
		packed, err := PackContextFreeData(contextFreeData)
		if err != nil {
			return nil, err
		}
		cfd, err = compression.compress(packed)
		if err != nil {
			return nil, err
		}
	}
	if signatures == nil {
		signatures = []crypto.Signature{}
	}
	return &PackedTransaction{
		Signatures:            signatures,
		Compression:           compression,
		PackedContextFreeData: cfd,
		PackedTrx:             trx,
	}, nil
}

// Transaction decompresses and decodes the packed transaction.
func (pt *PackedTransaction) Transaction() (*Transaction, error) {
	b, err := pt.Compression.decompress(pt.PackedTrx)
	if err != nil {
		return nil, err
	}
	return ParseTransaction(b)
}

// ContextFreeData decompresses and decodes the packed context-free data.
func (pt *PackedTransaction) ContextFreeData() ([][]byte, error) {
	if len(pt.PackedContextFreeData) == 0 {
		return nil, nil
	}
	b, err := pt.Compression.decompress(pt.PackedContextFreeData)
	if err != nil {
		return nil, err
	}
	return ParseContextFreeData(b)
}

// ID is the id of the contained transaction.
func (pt *PackedTransaction) ID() (codec.ChainID, error) {
	tx, err := pt.Transaction()
	if err != nil {
		return codec.EmptyChainID, err
	}
	return tx.ID()
}

func (pt *PackedTransaction) Marshal(p *codec.Packer) {
	codec.PackMarshalers(p, pt.Signatures)
	p.PackByte(byte(pt.Compression))
	pt.PackedContextFreeData.Marshal(p)
	pt.PackedTrx.Marshal(p)
}

func UnmarshalPackedTransaction(p *codec.Packer) *PackedTransaction {
	pt := &PackedTransaction{
		Signatures:  codec.UnpackCollection(p, crypto.UnmarshalSignature),
		Compression: Compression(p.UnpackByte()),
	}
	if _, ok := compressionNames[pt.Compression.String()]; !ok {
		p.AddErr(fmt.Errorf("%w: %d", ErrUnknownCompression, pt.Compression))
		return nil
	}
	pt.PackedContextFreeData = p.UnpackData()
	pt.PackedTrx = p.UnpackData()
	return pt
}
