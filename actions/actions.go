// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package actions holds the action bodies of the system and token
// contracts.
package actions

import (
	"github.com/daring5920/eosabi/chain"
	"github.com/daring5920/eosabi/codec"
)

// Body is the data of a single contract action.
type Body interface {
	codec.Marshaler

	// Contract is the account the action is sent to.
	Contract() codec.Name
	// Name is the action name on [Contract].
	Name() codec.Name
}

// New wraps [body] in an action authorized by [authorization].
func New(body Body, authorization ...chain.PermissionLevel) (*chain.Action, error) {
	if v, ok := body.(interface{ Verify() error }); ok {
		if err := v.Verify(); err != nil {
			return nil, err
		}
	}
	return chain.NewAction(body.Contract(), body.Name(), authorization, body)
}

// Unmarshal decodes a body from [data] with [unmarshal], rejecting
// trailing bytes.
func Unmarshal[T any](data []byte, unmarshal func(*codec.Packer) T) (T, error) {
	p := codec.NewReader(data)
	body := unmarshal(p)
	if err := p.Err(); err != nil {
		var zero T
		return zero, err
	}
	if !p.Empty() {
		var zero T
		return zero, chain.ErrTrailingBytes
	}
	return body, nil
}
