// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import "errors"

var (
	ErrInvalidPublicKey = errors.New("invalid public key")
	ErrBadChecksum      = errors.New("bad checksum")
	ErrInvalidSignature = errors.New("invalid signature")
)
