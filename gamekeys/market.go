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
	"github.com/bitmark-inc/gamekeysd/license"
	"github.com/bitmark-inc/gamekeysd/listing"
	"github.com/bitmark-inc/gamekeysd/storage"
)

// BuyGame - mint a license to caller for a payment of at least the price
//
// the listing price is credited to the creator's escrow, any excess
// payment is retained
func (l *Ledger) BuyGame(caller account.Account, id uint64, payment *uint256.Int) (uint64, error) {
	tokenID := uint64(0)

	err := l.run(func(trx storage.Transaction) error {
		game, err := listing.Get(trx, l.pools, id)
		if nil != err {
			return err
		}

		if nil == payment || payment.Lt(game.Price) {
			return fault.InsufficientPayment
		}

		tokenID, err = license.Mint(trx, l.pools, id, caller)
		if nil != err {
			return err
		}

		if err := escrow.Credit(trx, l.pools, game.Creator, game.Price); nil != err {
			return err
		}

		l.emit(event.GameBought{
			Buyer:     caller,
			ListingID: id,
			TokenID:   tokenID,
			Price:     game.Price,
		})
		l.log.Infof("bought: %d  token: %d  buyer: %s  payment: %s", id, tokenID, caller, payment.Dec())
		return nil
	})
	if nil != err {
		return 0, err
	}
	return tokenID, nil
}

// BalanceOf - number of licenses held
func (l *Ledger) BalanceOf(a account.Account) uint64 {
	return license.BalanceOf(l.trx, l.pools, a)
}

// LicenseInfo - a minted license
func (l *Ledger) LicenseInfo(tokenID uint64) (*license.License, error) {
	return license.Get(l.trx, l.pools, tokenID)
}

// OwnerOf - holder of a license
func (l *Ledger) OwnerOf(tokenID uint64) (account.Account, error) {
	t, err := license.Get(l.trx, l.pools, tokenID)
	if nil != err {
		return account.Zero, err
	}
	return t.Owner, nil
}

// LicenseCount - number of licenses minted
func (l *Ledger) LicenseCount() uint64 {
	return license.Total(l.trx, l.pools)
}

// ListLicenses - committed licenses of an owner from position start
func (l *Ledger) ListLicenses(owner account.Account, start uint64, count int) ([]license.License, error) {
	return license.ListFor(l.pools, owner, start, count)
}
