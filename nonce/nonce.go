// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package nonce - per account replay protection for signed requests
//
// each account starts at zero and every accepted request advances
// its nonce by one
package nonce

import (
	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/storage"
)

// Current - the nonce the next request from an account must carry
func Current(trx storage.Transaction, pools *storage.Pools, a account.Account) uint64 {
	n, _ := trx.GetN(pools.Nonces, a.Bytes())
	return n
}

// Consume - accept n and advance the account's nonce
func Consume(trx storage.Transaction, pools *storage.Pools, a account.Account, n uint64) error {
	if a.IsZero() {
		return fault.InvalidAccount
	}
	if Current(trx, pools, a) != n {
		return fault.InvalidNonce
	}
	trx.PutN(pools.Nonces, a.Bytes(), n+1)
	return nil
}
