// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listing

import (
	"encoding/binary"

	"github.com/bitmark-inc/gamekeysd/counter"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/storage"
)

const uint64ByteSize = 8

func idKey(id uint64) []byte {
	key := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// Register - store a new listing under the next identifier
//
// the ID and Fingerprint fields are assigned here
func Register(trx storage.Transaction, pools *storage.Pools, l *Listing) (uint64, error) {
	if nil == l.Price {
		return 0, fault.InvalidAmount
	}

	l.Fingerprint = FingerprintOf(l.Title)
	if trx.Has(pools.Titles, l.Fingerprint[:]) {
		return 0, fault.DuplicateListing
	}

	l.ID = counter.Games.Next(trx, pools.Counters)

	key := idKey(l.ID)
	trx.Put(pools.Games, key, l.Pack())
	trx.Put(pools.Titles, l.Fingerprint[:], key)

	return l.ID, nil
}

// Exists - check if an identifier has been assigned
func Exists(trx storage.Transaction, pools *storage.Pools, id uint64) bool {
	return trx.Has(pools.Games, idKey(id))
}

// Get - fetch a listing
func Get(trx storage.Transaction, pools *storage.Pools, id uint64) (*Listing, error) {
	packed := trx.Get(pools.Games, idKey(id))
	if nil == packed {
		return nil, fault.ListingNotFound
	}
	l, err := Unpack(id, packed)
	if nil != err {
		fault.Panicf("listing: %d corrupt record: %s", id, err)
	}
	return l, nil
}

// FindByTitle - identifier of the listing with this title
func FindByTitle(trx storage.Transaction, pools *storage.Pools, title string) (uint64, bool) {
	fp := FingerprintOf(title)
	return trx.GetN(pools.Titles, fp[:])
}

// Count - number of registered listings
func Count(trx storage.Transaction, pools *storage.Pools) uint64 {
	return counter.Games.Last(trx, pools.Counters)
}

// List - committed listings with identifiers from start onwards
func List(pools *storage.Pools, start uint64, count int) ([]*Listing, error) {
	if start < 1 {
		start = 1
	}
	items, err := pools.Games.NewFetchCursor().Seek(idKey(start)).Fetch(count)
	if nil != err {
		return nil, err
	}

	listings := make([]*Listing, 0, len(items))
	for _, item := range items {
		if uint64ByteSize != len(item.Key) {
			return nil, fault.UnknownRecord
		}
		l, err := Unpack(binary.BigEndian.Uint64(item.Key), item.Value)
		if nil != err {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, nil
}
