// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/bitmark-inc/gamekeysd/fault"
)

// Length - number of bytes in an account
const Length = common.AddressLength

// Account - identifies a caller of the ledger
//
// the 20 byte form derived from a secp256k1 public key
type Account common.Address

// Zero - the account that nobody holds
var Zero Account

// FromString - parse a hex encoded account, "0x" prefix is optional
func FromString(s string) (Account, error) {
	if !common.IsHexAddress(s) {
		return Zero, fault.InvalidAccount
	}
	return Account(common.HexToAddress(s)), nil
}

// FromBytes - account from its raw bytes
func FromBytes(buffer []byte) (Account, error) {
	if Length != len(buffer) {
		return Zero, fault.InvalidAccount
	}
	return Account(common.BytesToAddress(buffer)), nil
}

// Bytes - the raw account bytes
func (a Account) Bytes() []byte {
	return common.Address(a).Bytes()
}

// IsZero - true for the unset account
func (a Account) IsZero() bool {
	return Zero == a
}

// String - checksummed hex form
func (a Account) String() string {
	return common.Address(a).Hex()
}

// MarshalText - convert account to text
func (a Account) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert text to account
func (a *Account) UnmarshalText(s []byte) error {
	acc, err := FromString(string(s))
	if nil != err {
		return err
	}
	*a = acc
	return nil
}
