// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "github.com/daring5920/eosabi/codec"

// Contracts
var (
	SystemContract = codec.MustParseName("eosio")
	TokenContract  = codec.MustParseName("eosio.token")
)

// Action names
var (
	TransferName     = codec.MustParseName("transfer")
	BuyRamName       = codec.MustParseName("buyram")
	BuyRamBytesName  = codec.MustParseName("buyrambytes")
	SellRamName      = codec.MustParseName("sellram")
	DelegateBWName   = codec.MustParseName("delegatebw")
	UndelegateBWName = codec.MustParseName("undelegatebw")
	VoteProducerName = codec.MustParseName("voteproducer")
	NewAccountName   = codec.MustParseName("newaccount")
)

// MaxVoteProducers is the largest producer list the system contract
// accepts in a single vote.
const MaxVoteProducers = 30
