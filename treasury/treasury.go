// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package treasury - native funds held by accounts
//
// funds enter only through the genesis allocations and then move
// between accounts; the ledger's own account holds the payments
// backing the escrow balances
package treasury

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/balance"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/storage"
)

// Allocation - initial funds of an account
type Allocation struct {
	Account account.Account
	Amount  *uint256.Int
}

// Allocate - credit the genesis allocations
//
// does nothing if any funds already exist
func Allocate(trx storage.Transaction, pools *storage.Pools, allocations []Allocation) (bool, error) {
	if trx.Has(pools.Settings, allocatedKey) {
		return false, nil
	}
	for _, a := range allocations {
		if nil == a.Amount {
			return false, fault.InvalidAmount
		}
		if _, err := balance.Credit(trx, pools.Funds, a.Account, a.Amount); nil != err {
			return false, err
		}
	}
	trx.Put(pools.Settings, allocatedKey, []byte{0x01})
	return true, nil
}

var allocatedKey = []byte("allocated")

// Balance - spendable funds of an account
func Balance(trx storage.Transaction, pools *storage.Pools, a account.Account) *uint256.Int {
	return balance.Get(trx, pools.Funds, a)
}

// Move - transfer funds between accounts
func Move(trx storage.Transaction, pools *storage.Pools, from account.Account, to account.Account, amount *uint256.Int) error {
	if nil == amount {
		return fault.InvalidAmount
	}
	if _, err := balance.Debit(trx, pools.Funds, from, amount); nil != err {
		return err
	}
	_, err := balance.Credit(trx, pools.Funds, to, amount)
	return err
}

// Treasury - pays out of a source account inside the store's open transaction
type Treasury struct {
	store  *storage.Store
	source account.Account
}

// New - a payer drawing on source
func New(store *storage.Store, source account.Account) *Treasury {
	return &Treasury{
		store:  store,
		source: source,
	}
}

// Transfer - move amount from the source account to an account
func (t *Treasury) Transfer(to account.Account, amount *uint256.Int) error {
	trx := t.store.Transaction()
	if !trx.InUse() {
		return fault.TransactionNotInUse
	}
	return Move(trx, &t.store.Pool, t.source, to, amount)
}

// Source - the paying account
func (t *Treasury) Source() account.Account {
	return t.source
}
