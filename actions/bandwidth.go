// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"fmt"

	"github.com/daring5920/eosabi/codec"
)

var (
	_ Body = (*DelegateBW)(nil)
	_ Body = (*UndelegateBW)(nil)
)

// DelegateBW stakes tokens for network and CPU bandwidth. When [Transfer]
// is set the stake is given to [Receiver] outright.
type DelegateBW struct {
	From     codec.Name  `json:"from"`
	Receiver codec.Name  `json:"receiver"`
	StakeNet codec.Asset `json:"stake_net_quantity"`
	StakeCPU codec.Asset `json:"stake_cpu_quantity"`
	Transfer bool        `json:"transfer"`
}

func (*DelegateBW) Contract() codec.Name {
	return SystemContract
}

func (*DelegateBW) Name() codec.Name {
	return DelegateBWName
}

func (d *DelegateBW) Verify() error {
	return verifyStake(d.StakeNet, d.StakeCPU)
}

func (d *DelegateBW) Marshal(p *codec.Packer) {
	d.From.Marshal(p)
	d.Receiver.Marshal(p)
	d.StakeNet.Marshal(p)
	d.StakeCPU.Marshal(p)
	p.PackBool(d.Transfer)
}

func UnmarshalDelegateBW(p *codec.Packer) *DelegateBW {
	return &DelegateBW{
		From:     p.UnpackName(),
		Receiver: p.UnpackName(),
		StakeNet: p.UnpackAsset(),
		StakeCPU: p.UnpackAsset(),
		Transfer: p.UnpackBool(),
	}
}

type UndelegateBW struct {
	From       codec.Name  `json:"from"`
	Receiver   codec.Name  `json:"receiver"`
	UnstakeNet codec.Asset `json:"unstake_net_quantity"`
	UnstakeCPU codec.Asset `json:"unstake_cpu_quantity"`
}

func (*UndelegateBW) Contract() codec.Name {
	return SystemContract
}

func (*UndelegateBW) Name() codec.Name {
	return UndelegateBWName
}

func (u *UndelegateBW) Verify() error {
	return verifyStake(u.UnstakeNet, u.UnstakeCPU)
}

func (u *UndelegateBW) Marshal(p *codec.Packer) {
	u.From.Marshal(p)
	u.Receiver.Marshal(p)
	u.UnstakeNet.Marshal(p)
	u.UnstakeCPU.Marshal(p)
}

func UnmarshalUndelegateBW(p *codec.Packer) *UndelegateBW {
	return &UndelegateBW{
		From:       p.UnpackName(),
		Receiver:   p.UnpackName(),
		UnstakeNet: p.UnpackAsset(),
		UnstakeCPU: p.UnpackAsset(),
	}
}

func verifyStake(net, cpu codec.Asset) error {
	for _, a := range []codec.Asset{net, cpu} {
		if a.Amount < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeQuantity, a)
		}
	}
	return nil
}
