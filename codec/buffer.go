// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// buffer is an append-only byte region. [storage] may be larger than what
// has been written; only the first [index] bytes are ever handed out.
type buffer struct {
	storage []byte
	index   int
}

func newBuffer(capacity int) *buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &buffer{storage: make([]byte, capacity)}
}

// ensureCapacity guarantees that [n] more bytes fit without reallocating.
// When they do not, storage grows to twice its size plus [n].
func (b *buffer) ensureCapacity(n int) {
	if n <= 0 || len(b.storage)-b.index >= n {
		return
	}
	grown := make([]byte, len(b.storage)*2+n)
	copy(grown, b.storage[:b.index])
	b.storage = grown
}

func (b *buffer) writeByte(v byte) {
	b.ensureCapacity(1)
	b.storage[b.index] = v
	b.index++
}

func (b *buffer) writeBytes(v []byte) {
	b.ensureCapacity(len(v))
	b.index += copy(b.storage[b.index:], v)
}

// next reserves [n] bytes and returns them for the caller to fill in.
func (b *buffer) next(n int) []byte {
	b.ensureCapacity(n)
	s := b.storage[b.index : b.index+n]
	b.index += n
	return s
}

func (b *buffer) toBytes() []byte {
	out := make([]byte, b.index)
	copy(out, b.storage[:b.index])
	return out
}

func (b *buffer) length() int {
	return b.index
}

func (b *buffer) capacity() int {
	return len(b.storage)
}
