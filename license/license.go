// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package license - non-fungible proof of purchase
//
// one license token is minted for every successful purchase; tokens
// are never transferred or destroyed
package license

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/counter"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/storage"
)

const uint64ByteSize = 8

// License - a minted token
type License struct {
	N         uint64          `json:"n,omitempty"`
	TokenID   uint64          `json:"tokenId"`
	ListingID uint64          `json:"gameId"`
	Owner     account.Account `json:"owner"`
}

func toBytes(n uint64) []byte {
	buffer := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}

// Mint - create the next token for owner
//
//   L ⧺ token → listing ⧺ owner
//   O ⧺ owner → count
//   K ⧺ owner ⧺ count → token
func Mint(trx storage.Transaction, pools *storage.Pools, listingID uint64, owner account.Account) (uint64, error) {
	if owner.IsZero() {
		return 0, fault.InvalidAccount
	}

	tokenID := counter.Licenses.Next(trx, pools.Counters)
	tokenKey := toBytes(tokenID)

	trx.Put(pools.Licenses, tokenKey, append(toBytes(listingID), owner.Bytes()...))

	ownerKey := owner.Bytes()
	n, _ := trx.GetN(pools.OwnerCount, ownerKey)
	n += 1
	trx.PutN(pools.OwnerCount, ownerKey, n)
	trx.Put(pools.OwnerList, append(ownerKey, toBytes(n)...), tokenKey)

	return tokenID, nil
}

// BalanceOf - number of tokens held by an account
func BalanceOf(trx storage.Transaction, pools *storage.Pools, owner account.Account) uint64 {
	n, _ := trx.GetN(pools.OwnerCount, owner.Bytes())
	return n
}

// Get - fetch a token
func Get(trx storage.Transaction, pools *storage.Pools, tokenID uint64) (*License, error) {
	return unpack(tokenID, trx.Get(pools.Licenses, toBytes(tokenID)))
}

func unpack(tokenID uint64, packed []byte) (*License, error) {
	if nil == packed {
		return nil, fault.LicenseNotFound
	}
	if uint64ByteSize+account.Length != len(packed) {
		fault.Panicf("license: %d corrupt record: %x", tokenID, packed)
	}
	owner, _ := account.FromBytes(packed[uint64ByteSize:])

	return &License{
		TokenID:   tokenID,
		ListingID: binary.BigEndian.Uint64(packed[:uint64ByteSize]),
		Owner:     owner,
	}, nil
}

// Total - number of tokens minted
func Total(trx storage.Transaction, pools *storage.Pools) uint64 {
	return counter.Licenses.Last(trx, pools.Counters)
}

// ListFor - committed tokens of an owner, in purchase order from position start
func ListFor(pools *storage.Pools, owner account.Account, start uint64, count int) ([]License, error) {
	if start < 1 {
		start = 1
	}

	ownerBytes := owner.Bytes()
	prefix := append(owner.Bytes(), toBytes(start)...)

	// owner ⧺ count → token
	items, err := pools.OwnerList.NewFetchCursor().Seek(prefix).Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]License, 0, len(items))

loop:
	for _, item := range items {
		n := len(item.Key)
		split := n - uint64ByteSize
		if split <= 0 {
			fault.Panicf("split cannot be <= 0: %d", split)
		}
		if !bytes.Equal(ownerBytes, item.Key[:split]) {
			break loop
		}

		tokenID := binary.BigEndian.Uint64(item.Value)
		l, err := unpack(tokenID, pools.Licenses.Get(item.Value))
		if nil != err {
			return nil, err
		}
		l.N = binary.BigEndian.Uint64(item.Key[split:])
		records = append(records, *l)
	}

	return records, nil
}
