// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/daring5920/eosabi/codec"
	"github.com/daring5920/eosabi/consts"
)

// PermissionLevel names the account and permission authorizing an action.
type PermissionLevel struct {
	Actor      codec.Name `json:"actor"`
	Permission codec.Name `json:"permission"`
}

var (
	_ codec.Marshaler = PermissionLevel{}
	_ codec.Marshaler = (*Action)(nil)

	ActivePermission = codec.MustParseName("active")
	OwnerPermission  = codec.MustParseName("owner")
)

// Active returns [actor]@active.
func Active(actor codec.Name) PermissionLevel {
	return PermissionLevel{Actor: actor, Permission: ActivePermission}
}

func (l PermissionLevel) Marshal(p *codec.Packer) {
	l.Actor.Marshal(p)
	l.Permission.Marshal(p)
}

func UnmarshalPermissionLevel(p *codec.Packer) PermissionLevel {
	return PermissionLevel{
		Actor:      p.UnpackName(),
		Permission: p.UnpackName(),
	}
}

// Action is a call of [Name] on the contract deployed at [Account]. [Data]
// holds the already-packed action body.
type Action struct {
	Account       codec.Name        `json:"account"`
	Name          codec.Name        `json:"name"`
	Authorization []PermissionLevel `json:"authorization"`
	Data          codec.Bytes       `json:"data"`
}

// NewAction packs [body] into the data of a new action.
func NewAction(
	account codec.Name,
	name codec.Name,
	authorization []PermissionLevel,
	body codec.Marshaler,
) (*Action, error) {
	p := codec.NewWriter(consts.AssetLen * 4)
	body.Marshal(p)
	if err := p.Err(); err != nil {
		return nil, err
	}
	return &Action{
		Account:       account,
		Name:          name,
		Authorization: authorization,
		Data:          p.Bytes(),
	}, nil
}

func (a *Action) Size() int {
	return 2*consts.NameLen +
		codec.VarUintLen(uint64(len(a.Authorization))) + len(a.Authorization)*2*consts.NameLen +
		codec.BytesLen(a.Data)
}

func (a *Action) Marshal(p *codec.Packer) {
	a.Account.Marshal(p)
	a.Name.Marshal(p)
	codec.PackMarshalers(p, a.Authorization)
	a.Data.Marshal(p)
}

func UnmarshalAction(p *codec.Packer) *Action {
	return &Action{
		Account:       p.UnpackName(),
		Name:          p.UnpackName(),
		Authorization: codec.UnpackCollection(p, UnmarshalPermissionLevel),
		Data:          p.UnpackData(),
	}
}
