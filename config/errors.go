// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import "errors"

var (
	ErrZeroExpiration     = errors.New("expiration must be positive")
	ErrUnknownCompression = errors.New("unknown compression")
	ErrNegativeCapacity   = errors.New("negative initial capacity")
)
