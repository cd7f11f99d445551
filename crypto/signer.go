// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import "context"

//go:generate go run go.uber.org/mock/mockgen -package=${GOPACKAGE} -destination=mock_signer.go . Signer

// PrivateKey is an opaque reference to signing material. Its contents are
// only ever interpreted by a [Signer].
type PrivateKey string

// Signer produces a signature over a 32-byte transaction digest.
type Signer interface {
	Sign(ctx context.Context, digest []byte, key PrivateKey) (Signature, error)
}
