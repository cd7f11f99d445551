// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	ErrTooManyProducers  = errors.New("too many producers")
	ErrProxyAndProducers = errors.New("cannot vote for producers and a proxy at once")
	ErrNegativeQuantity  = errors.New("quantity must not be negative")
	ErrZeroThreshold     = errors.New("authority threshold must be positive")
	ErrUnreachableWeight = errors.New("authority weights cannot reach threshold")
)
