// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "fmt"

// PackCollection writes VarUint(len(items)) and then each item, in order,
// with [pack]. Items are never reordered or deduplicated.
func PackCollection[T any](p *Packer, items []T, pack func(*Packer, T)) {
	p.PackVarUint(uint64(len(items)))
	for _, item := range items {
		if p.Errored() {
			return
		}
		pack(p, item)
	}
}

// PackMarshalers writes a collection of values that encode themselves.
func PackMarshalers[T Marshaler](p *Packer, items []T) {
	PackCollection(p, items, func(p *Packer, m T) { m.Marshal(p) })
}

func (p *Packer) PackStringCollection(items []string) {
	PackCollection(p, items, (*Packer).PackString)
}

func (p *Packer) PackHexCollection(items []string) {
	PackCollection(p, items, (*Packer).PackData)
}

func (p *Packer) PackNameCollection(items []string) {
	PackCollection(p, items, (*Packer).PackName)
}

func (p *Packer) PackAccountNameCollection(items []string) {
	PackCollection(p, items, (*Packer).PackAccountName)
}

// UnpackCollection reads a VarUint count followed by that many items.
// Every element occupies at least one byte, so a count larger than the
// unread input is rejected before anything is allocated.
func UnpackCollection[T any](p *Packer, unpack func(*Packer) T) []T {
	n := p.UnpackVarUint32()
	if p.Errored() {
		return nil
	}
	if uint64(n) > uint64(len(p.data)-p.offset) {
		p.addErr(fmt.Errorf("%w: %d items with %d bytes left", ErrTooManyItems, n, len(p.data)-p.offset))
		return nil
	}
	items := make([]T, 0, n)
	for i := uint32(0); i < n; i++ {
		item := unpack(p)
		if p.Errored() {
			return nil
		}
		items = append(items, item)
	}
	return items
}

func (p *Packer) UnpackStringCollection() []string {
	return UnpackCollection(p, (*Packer).UnpackString)
}

func (p *Packer) UnpackNameCollection() []Name {
	return UnpackCollection(p, (*Packer).UnpackName)
}

func (p *Packer) UnpackHexCollection() []Bytes {
	return UnpackCollection(p, (*Packer).UnpackData)
}
