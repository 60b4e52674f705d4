// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasury

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/gamekeys"
	"github.com/bitmark-inc/gamekeysd/rpc/auth"
	"github.com/bitmark-inc/gamekeysd/rpc/ratelimit"
)

// Treasury - type for the RPC
type Treasury struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Sequencer auth.Sequencer
}

// New - create the funds service
func New(log *logger.L, sequencer auth.Sequencer) *Treasury {
	return &Treasury{
		Log:       log,
		Limiter:   ratelimit.New("Treasury"),
		Sequencer: sequencer,
	}
}

// BalanceArguments - arguments for RPC request
type BalanceArguments struct {
	Account account.Account `json:"account"`
}

// BalanceReply - results from RPC request, wei
type BalanceReply struct {
	Balance string `json:"balance"`
}

// Balance - spendable funds of an account
func (t *Treasury) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	return t.Sequencer.Submit(func(l *gamekeys.Ledger) error {
		reply.Balance = l.TreasuryBalance(arguments.Account).Dec()
		return nil
	})
}
