// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/gamekeys"
	"github.com/bitmark-inc/gamekeysd/rpc/auth"
	"github.com/bitmark-inc/gamekeysd/rpc/ratelimit"
)

// MethodWithdraw - signed method name
const MethodWithdraw = "Escrow.Withdraw"

// Escrow - type for the RPC
type Escrow struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Sequencer auth.Sequencer
}

// New - create the escrow service
func New(log *logger.L, sequencer auth.Sequencer) *Escrow {
	return &Escrow{
		Log:       log,
		Limiter:   ratelimit.New("Escrow"),
		Sequencer: sequencer,
	}
}

// ---

// BalanceArguments - arguments for RPC request
type BalanceArguments struct {
	Creator account.Account `json:"creator"`
}

// BalanceReply - results from RPC request, wei
type BalanceReply struct {
	Balance string `json:"balance"`
}

// Balance - proceeds waiting for a creator
func (e *Escrow) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(e.Limiter); nil != err {
		return err
	}

	return e.Sequencer.Submit(func(l *gamekeys.Ledger) error {
		reply.Balance = l.GetCreatorBalance(arguments.Creator).Dec()
		return nil
	})
}

// ---

// WithdrawArguments - arguments for RPC request
type WithdrawArguments struct {
	auth.Signed
}

// Fields - the signed request fields
func (arguments *WithdrawArguments) Fields() [][]byte {
	return nil
}

// WithdrawReply - results from RPC request, wei
type WithdrawReply struct {
	Amount string `json:"amount"`
}

// Withdraw - pay the caller's whole balance into its funds
func (e *Escrow) Withdraw(arguments *WithdrawArguments, reply *WithdrawReply) error {

	if err := ratelimit.LimitSigned(e.Limiter); nil != err {
		return err
	}

	e.Log.Infof("Escrow.Withdraw: caller: %s", arguments.Caller)

	if err := auth.Authorise(e.Sequencer, &arguments.Signed, MethodWithdraw, arguments.Fields()...); nil != err {
		return err
	}

	return e.Sequencer.Submit(func(l *gamekeys.Ledger) error {
		amount, err := l.Withdraw(arguments.Caller)
		if nil != err {
			return err
		}
		reply.Amount = amount.Dec()
		return nil
	})
}
