// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	ErrInvalidName        = errors.New("invalid name")
	ErrMalformedAsset     = errors.New("malformed asset")
	ErrUnsupportedKeyType = errors.New("unsupported key type")
	ErrInvalidHashLength  = errors.New("invalid hash length")
	ErrInvalidHex         = errors.New("invalid hex")
	ErrIntegerOverflow    = errors.New("integer overflow")
	ErrInsufficientLength = errors.New("insufficient length")
	ErrTooManyItems       = errors.New("too many items")
	ErrNotWriter          = errors.New("packer is not a writer")
)
