// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// VarUintLen returns the number of bytes [PackVarUint] writes for [v].
func VarUintLen(v uint64) int {
	n := 1
	for v >>= 7; v != 0; v >>= 7 {
		n++
	}
	return n
}

// BytesLen returns the encoded size of a length-prefixed blob.
func BytesLen(msg []byte) int {
	return VarUintLen(uint64(len(msg))) + len(msg)
}

