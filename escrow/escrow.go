// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package escrow - creator proceeds awaiting withdrawal
//
// a balance only grows by the price of a sold listing and only
// returns to zero by a withdrawal of the whole amount
package escrow

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/balance"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/storage"
)

// Balance - accumulated proceeds, zero if never credited
func Balance(trx storage.Transaction, pools *storage.Pools, creator account.Account) *uint256.Int {
	return balance.Get(trx, pools.Escrow, creator)
}

// Credit - add the proceeds of a sale
func Credit(trx storage.Transaction, pools *storage.Pools, creator account.Account, amount *uint256.Int) error {
	_, err := balance.Credit(trx, pools.Escrow, creator, amount)
	return err
}

// Take - zero the balance and return what it held
func Take(trx storage.Transaction, pools *storage.Pools, creator account.Account) (*uint256.Int, error) {
	amount := balance.Get(trx, pools.Escrow, creator)
	if amount.IsZero() {
		return nil, fault.EmptyBalance
	}
	balance.Set(trx, pools.Escrow, creator, new(uint256.Int))
	return amount, nil
}

// Total - sum of all committed escrow balances
func Total(pools *storage.Pools) (*uint256.Int, error) {
	return balance.Total(pools.Escrow)
}
