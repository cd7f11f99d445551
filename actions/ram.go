// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"fmt"

	"github.com/daring5920/eosabi/codec"
)

var (
	_ Body = (*BuyRam)(nil)
	_ Body = (*BuyRamBytes)(nil)
	_ Body = (*SellRam)(nil)
)

// BuyRam buys RAM for [Receiver] worth [Quant], paid by [Payer].
type BuyRam struct {
	Payer    codec.Name  `json:"payer"`
	Receiver codec.Name  `json:"receiver"`
	Quant    codec.Asset `json:"quant"`
}

func (*BuyRam) Contract() codec.Name {
	return SystemContract
}

func (*BuyRam) Name() codec.Name {
	return BuyRamName
}

func (b *BuyRam) Verify() error {
	if b.Quant.Amount < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeQuantity, b.Quant)
	}
	return nil
}

func (b *BuyRam) Marshal(p *codec.Packer) {
	b.Payer.Marshal(p)
	b.Receiver.Marshal(p)
	b.Quant.Marshal(p)
}

func UnmarshalBuyRam(p *codec.Packer) *BuyRam {
	return &BuyRam{
		Payer:    p.UnpackName(),
		Receiver: p.UnpackName(),
		Quant:    p.UnpackAsset(),
	}
}

// BuyRamBytes buys an exact number of RAM bytes.
type BuyRamBytes struct {
	Payer    codec.Name `json:"payer"`
	Receiver codec.Name `json:"receiver"`
	Bytes    uint32     `json:"bytes"`
}

func (*BuyRamBytes) Contract() codec.Name {
	return SystemContract
}

func (*BuyRamBytes) Name() codec.Name {
	return BuyRamBytesName
}

func (b *BuyRamBytes) Marshal(p *codec.Packer) {
	b.Payer.Marshal(p)
	b.Receiver.Marshal(p)
	p.PackUint32(b.Bytes)
}

func UnmarshalBuyRamBytes(p *codec.Packer) *BuyRamBytes {
	return &BuyRamBytes{
		Payer:    p.UnpackName(),
		Receiver: p.UnpackName(),
		Bytes:    p.UnpackUint32(),
	}
}

// SellRam sells [Bytes] of the account's RAM back to the system.
type SellRam struct {
	Account codec.Name `json:"account"`
	Bytes   int64      `json:"bytes"`
}

func (*SellRam) Contract() codec.Name {
	return SystemContract
}

func (*SellRam) Name() codec.Name {
	return SellRamName
}

func (s *SellRam) Verify() error {
	if s.Bytes < 0 {
		return fmt.Errorf("%w: %d bytes", ErrNegativeQuantity, s.Bytes)
	}
	return nil
}

func (s *SellRam) Marshal(p *codec.Packer) {
	s.Account.Marshal(p)
	p.PackInt64(s.Bytes)
}

func UnmarshalSellRam(p *codec.Packer) *SellRam {
	return &SellRam{
		Account: p.UnpackName(),
		Bytes:   p.UnpackInt64(),
	}
}
