// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrNoActions          = errors.New("transaction has no actions")
	ErrNoSigner           = errors.New("no signer configured")
	ErrNoKeys             = errors.New("no signing keys")
	ErrUnknownCompression = errors.New("unknown compression")
	ErrExpired            = errors.New("transaction already expired")
	ErrTrailingBytes      = errors.New("trailing bytes after transaction")
)
