// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "github.com/daring5920/eosabi/codec"

var _ Body = (*NewAccount)(nil)

// NewAccount creates account [Account] with the given owner and active
// authorities, paid for by [Creator].
type NewAccount struct {
	Creator codec.Name `json:"creator"`
	Account codec.Name `json:"name"`
	Owner   Authority  `json:"owner"`
	Active  Authority  `json:"active"`
}

func (*NewAccount) Contract() codec.Name {
	return SystemContract
}

func (*NewAccount) Name() codec.Name {
	return NewAccountName
}

func (n *NewAccount) Verify() error {
	if err := n.Owner.Verify(); err != nil {
		return err
	}
	return n.Active.Verify()
}

func (n *NewAccount) Marshal(p *codec.Packer) {
	n.Creator.Marshal(p)
	n.Account.Marshal(p)
	n.Owner.Marshal(p)
	n.Active.Marshal(p)
}

func UnmarshalNewAccount(p *codec.Packer) *NewAccount {
	return &NewAccount{
		Creator: p.UnpackName(),
		Account: p.UnpackName(),
		Owner:   UnmarshalAuthority(p),
		Active:  UnmarshalAuthority(p),
	}
}
