// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/daring5920/eosabi/consts"
)

// Packer serializes values into, or deserializes values out of, the ABI
// binary format. All fixed-width integers are little-endian.
//
// A Packer is either a writer ([NewWriter]) or a reader ([NewReader]). The
// first failing call records an error that is returned by [Err]; every
// subsequent call on the same Packer is a no-op. Callers must discard a
// writer that has errored rather than submit its bytes.
//
// Values must be packed in the exact field order of the schema being
// produced. A Packer is not safe for concurrent use.
type Packer struct {
	buf *buffer

	data   []byte
	offset int

	err error
}

// Marshaler is implemented by every value that knows its own ABI binary
// form.
type Marshaler interface {
	Marshal(p *Packer)
}

// NewWriter returns a Packer that appends to a buffer with [initial] bytes
// of capacity. The buffer grows on demand.
func NewWriter(initial int) *Packer {
	return &Packer{buf: newBuffer(initial)}
}

// NewReader returns a Packer that consumes [src]. [src] is never modified.
func NewReader(src []byte) *Packer {
	return &Packer{data: src}
}

// Err returns the first error encountered by the Packer.
func (p *Packer) Err() error {
	return p.err
}

// Errored returns true if the Packer has encountered an error.
func (p *Packer) Errored() bool {
	return p.err != nil
}

// AddErr records [err] unless an earlier error is already held. Types
// outside this package use it to fail validation inside Marshal.
func (p *Packer) AddErr(err error) {
	p.addErr(err)
}

func (p *Packer) addErr(err error) {
	if p.err == nil && err != nil {
		p.err = err
	}
}

// writable reports whether a write may proceed. Writing through a reader
// records [ErrNotWriter].
func (p *Packer) writable() bool {
	if p.Errored() {
		return false
	}
	if p.buf == nil {
		p.addErr(ErrNotWriter)
		return false
	}
	return true
}

// Bytes returns a copy of everything written so far. For a reader it
// returns a copy of the unread remainder.
func (p *Packer) Bytes() []byte {
	if p.buf != nil {
		return p.buf.toBytes()
	}
	out := make([]byte, len(p.data)-p.offset)
	copy(out, p.data[p.offset:])
	return out
}

// Hex returns [Bytes] as a lowercase hex string.
func (p *Packer) Hex() string {
	return hex.EncodeToString(p.Bytes())
}

// Len returns the number of bytes written (writer) or the total input
// length (reader).
func (p *Packer) Len() int {
	if p.buf != nil {
		return p.buf.length()
	}
	return len(p.data)
}

// Offset returns the number of bytes consumed by a reader.
func (p *Packer) Offset() int {
	return p.offset
}

// Empty returns true if a reader has consumed all of its input.
func (p *Packer) Empty() bool {
	return p.offset == len(p.data)
}

// Pack writes [m] using its own encoding.
func (p *Packer) Pack(m Marshaler) {
	if p.Errored() {
		return
	}
	m.Marshal(p)
}

func (p *Packer) PackByte(b byte) {
	if !p.writable() {
		return
	}
	p.buf.writeByte(b)
}

func (p *Packer) PackBool(v bool) {
	if v {
		p.PackByte(1)
		return
	}
	p.PackByte(0)
}

func (p *Packer) PackUint16(v uint16) {
	if !p.writable() {
		return
	}
	binary.LittleEndian.PutUint16(p.buf.next(consts.Uint16Len), v)
}

func (p *Packer) PackUint32(v uint32) {
	if !p.writable() {
		return
	}
	binary.LittleEndian.PutUint32(p.buf.next(consts.Uint32Len), v)
}

func (p *Packer) PackUint64(v uint64) {
	if !p.writable() {
		return
	}
	binary.LittleEndian.PutUint64(p.buf.next(consts.Uint64Len), v)
}

// PackInt64 writes the two's-complement byte pattern of [v].
func (p *Packer) PackInt64(v int64) {
	p.PackUint64(uint64(v))
}

// PackFixedBytes writes [b] verbatim with no length prefix.
func (p *Packer) PackFixedBytes(b []byte) {
	if !p.writable() {
		return
	}
	p.buf.writeBytes(b)
}

// PackBytes writes a VarUint length prefix followed by [b].
func (p *Packer) PackBytes(b []byte) {
	p.PackVarUint(uint64(len(b)))
	p.PackFixedBytes(b)
}

// PackString writes the UTF-8 byte length of [s] as a VarUint followed by
// the bytes themselves.
func (p *Packer) PackString(s string) {
	p.PackBytes([]byte(s))
}

// PackBlockNum writes the low 16 bits of a block number. Reference block
// numbers are defined modulo 2^16, so the truncation is part of the format.
func (p *Packer) PackBlockNum(n uint32) {
	p.PackUint16(uint16(n & 0xFFFF))
}

// PackBlockPrefix writes a reference block prefix as a uint32. Prefixes are
// often carried around as wider integers; anything that does not fit is
// rejected instead of being silently masked.
func (p *Packer) PackBlockPrefix(v uint64) {
	if p.Errored() {
		return
	}
	if v > uint64(consts.MaxUint32) {
		p.addErr(fmt.Errorf("%w: block prefix %d exceeds 32 bits", ErrIntegerOverflow, v))
		return
	}
	p.PackUint32(uint32(v))
}

// PackTimestampMs writes a millisecond unix timestamp as uint32 seconds.
func (p *Packer) PackTimestampMs(ms int64) {
	if p.Errored() {
		return
	}
	secs := ms / consts.MillisecondsPerSecond
	if ms < 0 || secs > int64(consts.MaxUint32) {
		p.addErr(fmt.Errorf("%w: timestamp %dms out of range", ErrIntegerOverflow, ms))
		return
	}
	p.PackUint32(uint32(secs))
}

// read consumes [n] bytes. The returned slice aliases the input.
func (p *Packer) read(n int) []byte {
	if p.Errored() {
		return nil
	}
	if n < 0 || len(p.data)-p.offset < n {
		p.addErr(fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrInsufficientLength, n, p.offset, len(p.data)-p.offset))
		return nil
	}
	s := p.data[p.offset : p.offset+n]
	p.offset += n
	return s
}

func (p *Packer) UnpackByte() byte {
	b := p.read(consts.ByteLen)
	if b == nil {
		return 0
	}
	return b[0]
}

func (p *Packer) UnpackBool() bool {
	return p.UnpackByte() != 0
}

func (p *Packer) UnpackUint16() uint16 {
	b := p.read(consts.Uint16Len)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (p *Packer) UnpackUint32() uint32 {
	b := p.read(consts.Uint32Len)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (p *Packer) UnpackUint64() uint64 {
	b := p.read(consts.Uint64Len)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (p *Packer) UnpackInt64() int64 {
	return int64(p.UnpackUint64())
}

// UnpackFixedBytes returns a copy of the next [n] bytes.
func (p *Packer) UnpackFixedBytes(n int) []byte {
	b := p.read(n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// UnpackBytes reads a VarUint length prefix and that many bytes.
func (p *Packer) UnpackBytes() []byte {
	n := p.unpackLength()
	if p.Errored() {
		return nil
	}
	return p.UnpackFixedBytes(n)
}

func (p *Packer) UnpackString() string {
	return string(p.UnpackBytes())
}

// unpackLength reads a VarUint32 length and checks it against the bytes
// still available, so a corrupt prefix cannot trigger a huge allocation.
func (p *Packer) unpackLength() int {
	n := p.UnpackVarUint32()
	if p.Errored() {
		return 0
	}
	if uint64(n) > uint64(len(p.data)-p.offset) {
		p.addErr(fmt.Errorf("%w: length %d exceeds remaining %d bytes", ErrInsufficientLength, n, len(p.data)-p.offset))
		return 0
	}
	return int(n)
}
