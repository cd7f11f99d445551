// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/utils/hashing"

	"github.com/daring5920/eosabi/codec"
	"github.com/daring5920/eosabi/consts"
)

// Header carries the TAPOS reference and resource limits of a transaction.
type Header struct {
	Expiration time.Time `json:"expiration"`

	// RefBlockNum is a full block number. Only its low 16 bits are
	// serialized.
	RefBlockNum      uint32 `json:"ref_block_num"`
	RefBlockPrefix   uint32 `json:"ref_block_prefix"`
	MaxNetUsageWords uint32 `json:"max_net_usage_words"`
	MaxCPUUsageMs    uint8  `json:"max_cpu_usage_ms"`
	DelaySec         uint32 `json:"delay_sec"`
}

var (
	_ codec.Marshaler = (*Header)(nil)
	_ codec.Marshaler = Extension{}
	_ codec.Marshaler = (*Transaction)(nil)
)

// SetReference points the header at the block identified by [blockID].
func (h *Header) SetReference(blockID codec.ChainID) {
	h.RefBlockNum, h.RefBlockPrefix = RefBlockFromID(blockID)
}

// RefBlockFromID extracts the reference block number and prefix from a
// block id. The first four bytes of an id hold the block number
// big-endian; the prefix is the little-endian uint32 at bytes 8..12.
func RefBlockFromID(blockID codec.ChainID) (uint32, uint32) {
	num := binary.BigEndian.Uint32(blockID[:consts.Uint32Len]) & 0xFFFF
	prefix := binary.LittleEndian.Uint32(blockID[8 : 8+consts.Uint32Len])
	return num, prefix
}

func (h *Header) Marshal(p *codec.Packer) {
	p.PackTimestampMs(h.Expiration.UnixMilli())
	p.PackBlockNum(h.RefBlockNum)
	p.PackBlockPrefix(uint64(h.RefBlockPrefix))
	p.PackVarUint(uint64(h.MaxNetUsageWords))
	p.PackByte(h.MaxCPUUsageMs)
	p.PackVarUint(uint64(h.DelaySec))
}

func UnmarshalHeader(p *codec.Packer) Header {
	return Header{
		Expiration:       time.Unix(int64(p.UnpackUint32()), 0).UTC(),
		RefBlockNum:      uint32(p.UnpackUint16()),
		RefBlockPrefix:   p.UnpackUint32(),
		MaxNetUsageWords: p.UnpackVarUint32(),
		MaxCPUUsageMs:    p.UnpackByte(),
		DelaySec:         p.UnpackVarUint32(),
	}
}

// Extension is an opaque typed payload appended to a transaction.
type Extension struct {
	Type uint16      `json:"type"`
	Data codec.Bytes `json:"data"`
}

func (e Extension) Marshal(p *codec.Packer) {
	p.PackUint16(e.Type)
	e.Data.Marshal(p)
}

func UnmarshalExtension(p *codec.Packer) Extension {
	return Extension{
		Type: p.UnpackUint16(),
		Data: p.UnpackData(),
	}
}

type Transaction struct {
	Header

	ContextFreeActions []*Action   `json:"context_free_actions"`
	Actions            []*Action   `json:"actions"`
	Extensions         []Extension `json:"transaction_extensions"`
}

// NewTransaction returns a transaction with [actions] and an empty
// context-free section.
func NewTransaction(header Header, actions ...*Action) *Transaction {
	return &Transaction{
		Header:             header,
		ContextFreeActions: []*Action{},
		Actions:            actions,
		Extensions:         []Extension{},
	}
}

func (t *Transaction) Marshal(p *codec.Packer) {
	t.Header.Marshal(p)
	codec.PackMarshalers(p, t.ContextFreeActions)
	codec.PackMarshalers(p, t.Actions)
	codec.PackMarshalers(p, t.Extensions)
}

// Size returns an upper bound on the packed length, used to size the write
// buffer.
func (t *Transaction) Size() int {
	size := consts.Uint32Len + consts.Uint16Len + consts.Uint32Len +
		consts.MaxVarUint32Len + consts.ByteLen + consts.MaxVarUint32Len +
		3*consts.MaxVarUint32Len
	for _, action := range t.ContextFreeActions {
		size += action.Size()
	}
	for _, action := range t.Actions {
		size += action.Size()
	}
	for _, ext := range t.Extensions {
		size += consts.Uint16Len + codec.BytesLen(ext.Data)
	}
	return size
}

// Bytes returns the packed transaction.
func (t *Transaction) Bytes() ([]byte, error) {
	return t.BytesWithCapacity(0)
}

// BytesWithCapacity packs the transaction into a buffer that starts with at
// least [initial] bytes of capacity.
func (t *Transaction) BytesWithCapacity(initial int) ([]byte, error) {
	p := codec.NewWriter(max(initial, t.Size()))
	t.Marshal(p)
	if err := p.Err(); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

// ID is the sha256 of the packed transaction.
func (t *Transaction) ID() (codec.ChainID, error) {
	b, err := t.Bytes()
	if err != nil {
		return codec.EmptyChainID, err
	}
	return codec.ChainID(hashing.ComputeHash256Array(b)), nil
}

// SigningDigest returns the 32-byte digest a signer signs:
// sha256(chainID || packed transaction || sha256(packed context-free data)).
// An absent context-free section contributes 32 zero bytes.
func (t *Transaction) SigningDigest(chainID codec.ChainID, contextFreeData [][]byte) ([]byte, error) {
	b, err := t.Bytes()
	if err != nil {
		return nil, err
	}
	return signingDigest(chainID, b, contextFreeData)
}

func signingDigest(chainID codec.ChainID, b []byte, contextFreeData [][]byte) ([]byte, error) {
	cfdHash := make([]byte, consts.ChecksumLen)
	if len(contextFreeData) > 0 {
		packed, err := PackContextFreeData(contextFreeData)
		if err != nil {
			return nil, err
		}
		cfdHash = hashing.ComputeHash256(packed)
	}
	p := codec.NewWriter(2*consts.ChecksumLen + len(b))
	chainID.Marshal(p)
	p.PackFixedBytes(b)
	p.PackFixedBytes(cfdHash)
	return hashing.ComputeHash256(p.Bytes()), nil
}

func UnmarshalTransaction(p *codec.Packer) *Transaction {
	return &Transaction{
		Header:             UnmarshalHeader(p),
		ContextFreeActions: codec.UnpackCollection(p, UnmarshalAction),
		Actions:            codec.UnpackCollection(p, UnmarshalAction),
		Extensions:         codec.UnpackCollection(p, UnmarshalExtension),
	}
}

// ParseTransaction decodes a packed transaction and rejects trailing bytes.
func ParseTransaction(b []byte) (*Transaction, error) {
	p := codec.NewReader(b)
	tx := UnmarshalTransaction(p)
	if err := p.Err(); err != nil {
		return nil, err
	}
	if !p.Empty() {
		return nil, fmt.Errorf("%w: %d", ErrTrailingBytes, len(b)-p.Offset())
	}
	return tx, nil
}

// PackContextFreeData packs each entry as length-prefixed bytes behind a
// VarUint count.
func PackContextFreeData(data [][]byte) ([]byte, error) {
	p := codec.NewWriter(0)
	codec.PackCollection(p, data, (*codec.Packer).PackBytes)
	if err := p.Err(); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

func ParseContextFreeData(b []byte) ([][]byte, error) {
	if len(b) == 0 {
		return nil, nil
	}
	p := codec.NewReader(b)
	data := codec.UnpackCollection(p, (*codec.Packer).UnpackBytes)
	if err := p.Err(); err != nil {
		return nil, err
	}
	if !p.Empty() {
		return nil, fmt.Errorf("%w: %d", ErrTrailingBytes, len(b)-p.Offset())
	}
	return data, nil
}
