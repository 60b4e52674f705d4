// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listing

import (
	"encoding/binary"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/util"
)

// Rate - smallest currency units per price unit
const Rate = 1_000_000_000_000_000

// FingerprintLength - bytes in a title fingerprint
const FingerprintLength = 32

// Fingerprint - keccak256 of a title
type Fingerprint [FingerprintLength]byte

// Listing - a registered game
type Listing struct {
	ID          uint64          `json:"id"`
	Title       string          `json:"title"`
	CoverURL    string          `json:"cover"`
	Description string          `json:"description"`
	Creator     account.Account `json:"creator"`
	Price       *uint256.Int    `json:"price"`
	Fingerprint Fingerprint     `json:"fingerprint"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// FingerprintOf - compute the uniqueness key of a title
func FingerprintOf(title string) Fingerprint {
	var fp Fingerprint
	copy(fp[:], crypto.Keccak256([]byte(title)))
	return fp
}

// MarshalText - 0x prefixed hex
func (fp Fingerprint) MarshalText() ([]byte, error) {
	return []byte(hexutil.Encode(fp[:])), nil
}

// UnmarshalText - parse 0x prefixed hex
func (fp *Fingerprint) UnmarshalText(s []byte) error {
	buffer, err := hexutil.Decode(string(s))
	if nil != err {
		return err
	}
	if FingerprintLength != len(buffer) {
		return fault.InvalidCount
	}
	copy(fp[:], buffer)
	return nil
}

// PriceFromUnits - scale a price in whole units to the smallest unit
func PriceFromUnits(units *uint256.Int) (*uint256.Int, error) {
	if nil == units {
		return nil, fault.InvalidAmount
	}
	price, overflow := new(uint256.Int).MulOverflow(units, uint256.NewInt(Rate))
	if overflow {
		return nil, fault.InvalidAmount
	}
	return price, nil
}

// Pack - encode a listing for the games pool
//
//   title ⧺ cover ⧺ description  (varint length prefixed)
//   creator ⧺ price(32) ⧺ fingerprint(32) ⧺ created(8, unix nanoseconds)
func (l *Listing) Pack() []byte {
	buffer := make([]byte, 0, 128+len(l.Title)+len(l.CoverURL)+len(l.Description))
	buffer = util.AppendBytes(buffer, []byte(l.Title))
	buffer = util.AppendBytes(buffer, []byte(l.CoverURL))
	buffer = util.AppendBytes(buffer, []byte(l.Description))
	buffer = append(buffer, l.Creator.Bytes()...)

	price := l.Price.Bytes32()
	buffer = append(buffer, price[:]...)
	buffer = append(buffer, l.Fingerprint[:]...)

	created := make([]byte, 8)
	binary.BigEndian.PutUint64(created, uint64(l.CreatedAt.UnixNano()))
	return append(buffer, created...)
}

// Unpack - decode a listing record
func Unpack(id uint64, packed []byte) (*Listing, error) {
	l := &Listing{
		ID: id,
	}

	n := 0
	for _, field := range []*string{&l.Title, &l.CoverURL, &l.Description} {
		data, count := util.ReadBytes(packed[n:])
		if 0 == count {
			return nil, fault.TruncatedRecord
		}
		*field = string(data)
		n += count
	}

	if len(packed)-n != account.Length+32+FingerprintLength+8 {
		return nil, fault.TruncatedRecord
	}

	creator, err := account.FromBytes(packed[n : n+account.Length])
	if nil != err {
		return nil, err
	}
	l.Creator = creator
	n += account.Length

	l.Price = new(uint256.Int).SetBytes(packed[n : n+32])
	n += 32

	copy(l.Fingerprint[:], packed[n:n+FingerprintLength])
	n += FingerprintLength

	l.CreatedAt = time.Unix(0, int64(binary.BigEndian.Uint64(packed[n:]))).UTC()

	return l, nil
}
