// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gamekeys

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/escrow"
	"github.com/bitmark-inc/gamekeysd/event"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/role"
	"github.com/bitmark-inc/gamekeysd/storage"
	"github.com/bitmark-inc/gamekeysd/treasury"
)

// GetCreatorBalance - escrowed proceeds, zero if never credited
func (l *Ledger) GetCreatorBalance(a account.Account) *uint256.Int {
	return escrow.Balance(l.trx, l.pools, a)
}

// Withdraw - pay the caller's whole escrow balance
//
// the balance is zeroed before the transfer so a reentrant withdraw
// sees nothing to withdraw; a failed transfer restores it
func (l *Ledger) Withdraw(caller account.Account) (*uint256.Int, error) {
	var amount *uint256.Int

	err := l.run(func(trx storage.Transaction) error {
		if !role.Has(trx, l.pools.Roles, role.GameCreator, caller) {
			return fault.Unauthorized
		}

		balance, err := escrow.Take(trx, l.pools, caller)
		if nil != err {
			return err
		}

		if nil == l.transferrer {
			l.log.Errorf("withdraw: %s  no transferrer", caller)
			return fault.TransferFailed
		}
		if err := l.transferrer.Transfer(caller, balance); nil != err {
			l.log.Warnf("withdraw: %s  amount: %s  transfer error: %s", caller, balance.Dec(), err)
			return fault.TransferFailed
		}

		l.emit(event.GameBenefitsWithdrew{
			Creator: caller,
			Amount:  balance,
		})
		l.log.Infof("withdrew: %s  amount: %s", caller, balance.Dec())
		amount = balance
		return nil
	})
	if nil != err {
		return nil, err
	}
	return amount, nil
}

// EscrowTotal - sum of all committed creator balances
func (l *Ledger) EscrowTotal() (*uint256.Int, error) {
	return escrow.Total(l.pools)
}

// TreasuryBalance - spendable funds of an account
func (l *Ledger) TreasuryBalance(a account.Account) *uint256.Int {
	return treasury.Balance(l.trx, l.pools, a)
}
