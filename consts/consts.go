// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	ByteLen   = 1
	Uint16Len = 2
	Uint32Len = 4
	Uint64Len = 8

	MaxUint32 = ^uint32(0)
	MaxUint64 = ^uint64(0)
	MaxInt64  = int64(MaxUint64 >> 1)

	// MaxVarUint32Len is the longest LEB128 sequence that can still fit in
	// 32 bits.
	MaxVarUint32Len = 5

	NameLen        = Uint64Len
	MaxNameChars   = 12
	SymbolCodeLen  = 7
	MaxPrecision   = 18
	AssetLen       = Uint64Len + ByteLen + SymbolCodeLen
	ChecksumLen    = 32
	KeyMaterialLen = 33

	MillisecondsPerSecond = 1000
)
