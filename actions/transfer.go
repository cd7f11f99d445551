// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"fmt"

	"github.com/daring5920/eosabi/codec"
)

var _ Body = (*Transfer)(nil)

// Transfer moves tokens between accounts on the token contract.
type Transfer struct {
	From     codec.Name  `json:"from"`
	To       codec.Name  `json:"to"`
	Quantity codec.Asset `json:"quantity"`
	Memo     string      `json:"memo"`
}

func (*Transfer) Contract() codec.Name {
	return TokenContract
}

func (*Transfer) Name() codec.Name {
	return TransferName
}

func (t *Transfer) Verify() error {
	if t.Quantity.Amount < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeQuantity, t.Quantity)
	}
	return nil
}

func (t *Transfer) Marshal(p *codec.Packer) {
	t.From.Marshal(p)
	t.To.Marshal(p)
	t.Quantity.Marshal(p)
	p.PackString(t.Memo)
}

func UnmarshalTransfer(p *codec.Packer) *Transfer {
	return &Transfer{
		From:     p.UnpackName(),
		To:       p.UnpackName(),
		Quantity: p.UnpackAsset(),
		Memo:     p.UnpackString(),
	}
}
