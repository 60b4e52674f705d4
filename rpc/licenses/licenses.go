// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package licenses

import (
	"github.com/holiman/uint256"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/gamekeys"
	"github.com/bitmark-inc/gamekeysd/license"
	"github.com/bitmark-inc/gamekeysd/rpc/auth"
	"github.com/bitmark-inc/gamekeysd/rpc/ratelimit"
	"github.com/bitmark-inc/gamekeysd/storage"
	"github.com/bitmark-inc/gamekeysd/treasury"
)

const maximumLicenses = 100

// MethodBuy - signed method name
const MethodBuy = "Licenses.Buy"

// Licenses - type for the RPC
type Licenses struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Sequencer auth.Sequencer
}

// New - create the license service
func New(log *logger.L, sequencer auth.Sequencer) *Licenses {
	return &Licenses{
		Log:       log,
		Limiter:   ratelimit.New("Licenses"),
		Sequencer: sequencer,
	}
}

// ---

// BuyArguments - arguments for RPC request
//
// payment is a decimal wei amount drawn from the caller's funds
type BuyArguments struct {
	auth.Signed
	ID      uint64 `json:"gameId,string"`
	Payment string `json:"payment"`
}

// Fields - the signed request fields
func (arguments *BuyArguments) Fields() [][]byte {
	return [][]byte{
		auth.Uint64(arguments.ID),
		[]byte(arguments.Payment),
	}
}

// BuyReply - results from RPC request
type BuyReply struct {
	TokenID uint64 `json:"tokenId,string"`
}

// Buy - pay for a game and receive a license
//
// the payment moves to the ledger account in the same transaction
// as the purchase, both happen or neither does
func (lic *Licenses) Buy(arguments *BuyArguments, reply *BuyReply) error {

	if err := ratelimit.LimitSigned(lic.Limiter); nil != err {
		return err
	}

	lic.Log.Infof("Licenses.Buy: caller: %s  game: %d  payment: %s", arguments.Caller, arguments.ID, arguments.Payment)

	payment, err := uint256.FromDecimal(arguments.Payment)
	if nil != err {
		return fault.InvalidAmount
	}

	if err := auth.Authorise(lic.Sequencer, &arguments.Signed, MethodBuy, arguments.Fields()...); nil != err {
		return err
	}

	return lic.Sequencer.Submit(func(l *gamekeys.Ledger) error {
		return l.Atomic(func(trx storage.Transaction, pools *storage.Pools) error {
			if err := treasury.Move(trx, pools, arguments.Caller, l.Address(), payment); nil != err {
				return err
			}
			tokenID, err := l.BuyGame(arguments.Caller, arguments.ID, payment)
			if nil != err {
				return err
			}
			reply.TokenID = tokenID
			return nil
		})
	})
}

// ---

// BalanceArguments - arguments for RPC request
type BalanceArguments struct {
	Owner account.Account `json:"owner"`
}

// BalanceReply - results from RPC request
type BalanceReply struct {
	Count uint64 `json:"count,string"`
}

// Balance - number of licenses held by an account
func (lic *Licenses) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(lic.Limiter); nil != err {
		return err
	}

	return lic.Sequencer.Submit(func(l *gamekeys.Ledger) error {
		reply.Count = l.BalanceOf(arguments.Owner)
		return nil
	})
}

// ---

// GetArguments - arguments for RPC request
type GetArguments struct {
	TokenID uint64 `json:"tokenId,string"`
}

// GetReply - results from RPC request
type GetReply struct {
	License license.License `json:"license"`
}

// Get - fetch one license
func (lic *Licenses) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(lic.Limiter); nil != err {
		return err
	}

	return lic.Sequencer.Submit(func(l *gamekeys.Ledger) error {
		t, err := l.LicenseInfo(arguments.TokenID)
		if nil != err {
			return err
		}
		reply.License = *t
		return nil
	})
}

// ---

// ListArguments - arguments for RPC request
//
// start is the owner's purchase position, beginning at 1
type ListArguments struct {
	Owner account.Account `json:"owner"`
	Start uint64          `json:"start,string"`
	Count int             `json:"count"`
}

// ListReply - results from RPC request
type ListReply struct {
	Licenses  []license.License `json:"licenses"`
	NextStart uint64            `json:"nextStart,string"`
}

// List - licenses of an owner in purchase order
func (lic *Licenses) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitPage(lic.Limiter, arguments.Count, maximumLicenses); nil != err {
		return err
	}

	return lic.Sequencer.Submit(func(l *gamekeys.Ledger) error {
		records, err := l.ListLicenses(arguments.Owner, arguments.Start, arguments.Count)
		if nil != err {
			return err
		}
		reply.Licenses = records
		reply.NextStart = arguments.Start
		if n := len(records); n > 0 {
			reply.NextStart = records[n-1].N + 1
		}
		return nil
	})
}
