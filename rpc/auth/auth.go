// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/gamekeys"
	"github.com/bitmark-inc/gamekeysd/nonce"
	"github.com/bitmark-inc/gamekeysd/rpc/ratelimit"
	"github.com/bitmark-inc/gamekeysd/storage"
)

// Auth - type for the RPC
type Auth struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Sequencer Sequencer
}

// New - create the auth service
func New(log *logger.L, sequencer Sequencer) *Auth {
	return &Auth{
		Log:       log,
		Limiter:   ratelimit.New("Auth"),
		Sequencer: sequencer,
	}
}

// NonceArguments - arguments for RPC
type NonceArguments struct {
	Account account.Account `json:"account"`
}

// NonceReply - result from RPC
type NonceReply struct {
	Nonce uint64 `json:"nonce,string"`
}

// Nonce - the nonce the next signed request from an account must use
func (a *Auth) Nonce(arguments *NonceArguments, reply *NonceReply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	return a.Sequencer.Submit(func(l *gamekeys.Ledger) error {
		return l.View(func(trx storage.Transaction, pools *storage.Pools) error {
			reply.Nonce = nonce.Current(trx, pools, arguments.Account)
			return nil
		})
	})
}
