// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gamekeys

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/event"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/listing"
	"github.com/bitmark-inc/gamekeysd/role"
	"github.com/bitmark-inc/gamekeysd/storage"
)

// RegisterNewGame - list a game, priced in whole units
func (l *Ledger) RegisterNewGame(caller account.Account, title string, coverURL string, description string, priceUnits *uint256.Int) (uint64, error) {
	id := uint64(0)

	err := l.run(func(trx storage.Transaction) error {
		if !role.Has(trx, l.pools.Roles, role.GameCreator, caller) {
			return fault.Unauthorized
		}

		price, err := listing.PriceFromUnits(priceUnits)
		if nil != err {
			return err
		}

		game := &listing.Listing{
			Title:       title,
			CoverURL:    coverURL,
			Description: description,
			Creator:     caller,
			Price:       price,
			CreatedAt:   l.clock().UTC(),
		}
		id, err = listing.Register(trx, l.pools, game)
		if nil != err {
			return err
		}

		l.emit(event.NewGameRegistered{
			Creator:   caller,
			ListingID: id,
			Price:     price,
		})
		l.log.Infof("registered: %d  title: %q  creator: %s  price: %s", id, title, caller, price.Dec())
		return nil
	})
	if nil != err {
		return 0, err
	}
	return id, nil
}

// IsGameRegisteredByID - existence check
func (l *Ledger) IsGameRegisteredByID(id uint64) bool {
	return listing.Exists(l.trx, l.pools, id)
}

// GetGameInfosByID - the full listing
func (l *Ledger) GetGameInfosByID(id uint64) (*listing.Listing, error) {
	return listing.Get(l.trx, l.pools, id)
}

// FindGameByTitle - the listing whose title has the same fingerprint
func (l *Ledger) FindGameByTitle(title string) (*listing.Listing, error) {
	id, found := listing.FindByTitle(l.trx, l.pools, title)
	if !found {
		return nil, fault.ListingNotFound
	}
	return listing.Get(l.trx, l.pools, id)
}

// GameCount - number of registered listings
func (l *Ledger) GameCount() uint64 {
	return listing.Count(l.trx, l.pools)
}

// ListGames - committed listings from identifier start onwards
func (l *Ledger) ListGames(start uint64, count int) ([]*listing.Listing, error) {
	return listing.List(l.pools, start, count)
}
