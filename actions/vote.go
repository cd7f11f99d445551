// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"fmt"
	"sort"

	"github.com/daring5920/eosabi/codec"
)

var _ Body = (*VoteProducer)(nil)

// VoteProducer votes for up to [MaxVoteProducers] producers, or delegates
// the vote to [Proxy]. The system contract requires [Producers] in
// ascending order; [NewVoteProducer] sorts them.
type VoteProducer struct {
	Voter     codec.Name   `json:"voter"`
	Proxy     codec.Name   `json:"proxy"`
	Producers []codec.Name `json:"producers"`
}

func NewVoteProducer(voter codec.Name, producers ...codec.Name) *VoteProducer {
	sorted := make([]codec.Name, len(producers))
	copy(sorted, producers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return &VoteProducer{Voter: voter, Producers: sorted}
}

// NewVoteProxy delegates [voter]'s vote to [proxy].
func NewVoteProxy(voter, proxy codec.Name) *VoteProducer {
	return &VoteProducer{Voter: voter, Proxy: proxy, Producers: []codec.Name{}}
}

func (*VoteProducer) Contract() codec.Name {
	return SystemContract
}

func (*VoteProducer) Name() codec.Name {
	return VoteProducerName
}

func (v *VoteProducer) Verify() error {
	if len(v.Producers) > MaxVoteProducers {
		return fmt.Errorf("%w: %d > %d", ErrTooManyProducers, len(v.Producers), MaxVoteProducers)
	}
	if v.Proxy != 0 && len(v.Producers) > 0 {
		return ErrProxyAndProducers
	}
	return nil
}

// Marshal writes the producers in the order given.
func (v *VoteProducer) Marshal(p *codec.Packer) {
	v.Voter.Marshal(p)
	v.Proxy.Marshal(p)
	codec.PackMarshalers(p, v.Producers)
}

func UnmarshalVoteProducer(p *codec.Packer) *VoteProducer {
	return &VoteProducer{
		Voter:     p.UnpackName(),
		Proxy:     p.UnpackName(),
		Producers: p.UnpackNameCollection(),
	}
}
