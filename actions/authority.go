// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"fmt"

	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/daring5920/eosabi/chain"
	"github.com/daring5920/eosabi/codec"
)

var (
	_ codec.Marshaler = KeyWeight{}
	_ codec.Marshaler = PermissionLevelWeight{}
	_ codec.Marshaler = WaitWeight{}
	_ codec.Marshaler = (*Authority)(nil)
)

type KeyWeight struct {
	Key    codec.PublicKey `json:"key"`
	Weight uint16          `json:"weight"`
}

func (k KeyWeight) Marshal(p *codec.Packer) {
	p.PackPublicKey(k.Key)
	p.PackUint16(k.Weight)
}

func UnmarshalKeyWeight(p *codec.Packer) KeyWeight {
	return KeyWeight{
		Key:    p.UnpackPublicKey(),
		Weight: p.UnpackUint16(),
	}
}

type PermissionLevelWeight struct {
	Permission chain.PermissionLevel `json:"permission"`
	Weight     uint16                `json:"weight"`
}

func (w PermissionLevelWeight) Marshal(p *codec.Packer) {
	w.Permission.Marshal(p)
	p.PackUint16(w.Weight)
}

func UnmarshalPermissionLevelWeight(p *codec.Packer) PermissionLevelWeight {
	return PermissionLevelWeight{
		Permission: chain.UnmarshalPermissionLevel(p),
		Weight:     p.UnpackUint16(),
	}
}

type WaitWeight struct {
	WaitSec uint32 `json:"wait_sec"`
	Weight  uint16 `json:"weight"`
}

func (w WaitWeight) Marshal(p *codec.Packer) {
	p.PackUint32(w.WaitSec)
	p.PackUint16(w.Weight)
}

func UnmarshalWaitWeight(p *codec.Packer) WaitWeight {
	return WaitWeight{
		WaitSec: p.UnpackUint32(),
		Weight:  p.UnpackUint16(),
	}
}

// Authority is satisfied once the weights of the provided keys, accounts
// and waits sum to [Threshold].
type Authority struct {
	Threshold uint32                  `json:"threshold"`
	Keys      []KeyWeight             `json:"keys"`
	Accounts  []PermissionLevelWeight `json:"accounts"`
	Waits     []WaitWeight            `json:"waits"`
}

// SingleKeyAuthority is satisfied by [key] alone.
func SingleKeyAuthority(key codec.PublicKey) Authority {
	return Authority{
		Threshold: 1,
		Keys:      []KeyWeight{{Key: key, Weight: 1}},
		Accounts:  []PermissionLevelWeight{},
		Waits:     []WaitWeight{},
	}
}

func (a *Authority) Verify() error {
	if a.Threshold == 0 {
		return ErrZeroThreshold
	}
	var (
		total uint64
		err   error
	)
	add := func(w uint16) {
		if err == nil {
			total, err = smath.Add64(total, uint64(w))
		}
	}
	for _, k := range a.Keys {
		add(k.Weight)
	}
	for _, acct := range a.Accounts {
		add(acct.Weight)
	}
	for _, w := range a.Waits {
		add(w.Weight)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", codec.ErrIntegerOverflow, err)
	}
	if total < uint64(a.Threshold) {
		return fmt.Errorf("%w: total %d < threshold %d", ErrUnreachableWeight, total, a.Threshold)
	}
	return nil
}

func (a *Authority) Marshal(p *codec.Packer) {
	p.PackUint32(a.Threshold)
	codec.PackMarshalers(p, a.Keys)
	codec.PackMarshalers(p, a.Accounts)
	codec.PackMarshalers(p, a.Waits)
}

func UnmarshalAuthority(p *codec.Packer) Authority {
	return Authority{
		Threshold: p.UnpackUint32(),
		Keys:      codec.UnpackCollection(p, UnmarshalKeyWeight),
		Accounts:  codec.UnpackCollection(p, UnmarshalPermissionLevelWeight),
		Waits:     codec.UnpackCollection(p, UnmarshalWaitWeight),
	}
}
