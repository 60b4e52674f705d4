// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - account → 256 bit amount tables
//
// a zero balance is represented by the absence of the key
package balance

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/storage"
)

const amountLength = 32

// Get - current balance, zero if never credited
func Get(trx storage.Transaction, pool storage.Handle, a account.Account) *uint256.Int {
	packed := trx.Get(pool, a.Bytes())
	if nil == packed {
		return new(uint256.Int)
	}
	if amountLength != len(packed) {
		fault.Panicf("balance: %c%x corrupt record: %x", pool.Prefix(), a.Bytes(), packed)
	}
	return new(uint256.Int).SetBytes(packed)
}

// Set - overwrite a balance
func Set(trx storage.Transaction, pool storage.Handle, a account.Account, amount *uint256.Int) {
	if amount.IsZero() {
		trx.Delete(pool, a.Bytes())
		return
	}
	packed := amount.Bytes32()
	trx.Put(pool, a.Bytes(), packed[:])
}

// Credit - add to a balance, returning the new balance
func Credit(trx storage.Transaction, pool storage.Handle, a account.Account, amount *uint256.Int) (*uint256.Int, error) {
	if a.IsZero() {
		return nil, fault.InvalidAccount
	}
	total, overflow := new(uint256.Int).AddOverflow(Get(trx, pool, a), amount)
	if overflow {
		return nil, fault.BalanceOverflow
	}
	Set(trx, pool, a, total)
	return total, nil
}

// Debit - subtract from a balance, returning the new balance
func Debit(trx storage.Transaction, pool storage.Handle, a account.Account, amount *uint256.Int) (*uint256.Int, error) {
	current := Get(trx, pool, a)
	if current.Lt(amount) {
		return nil, fault.InsufficientFunds
	}
	remainder := new(uint256.Int).Sub(current, amount)
	Set(trx, pool, a, remainder)
	return remainder, nil
}

// Total - sum of all committed balances in a pool
func Total(pool storage.Handle) (*uint256.Int, error) {
	total := new(uint256.Int)
	err := pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if _, overflow := total.AddOverflow(total, new(uint256.Int).SetBytes(value)); overflow {
			return fault.BalanceOverflow
		}
		return nil
	})
	if nil != err {
		return nil, err
	}
	return total, nil
}
