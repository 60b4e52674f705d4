// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package role - capability table of the ledger
//
// each (account, role) pair is a key in the roles pool, the
// presence of the key grants the role
package role

import (
	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/storage"
)

// Role - the flag byte
type Role byte

// type codes for flag byte
const (
	SuperAdministrator Role = iota
	Administrator      Role = iota
	GameCreator        Role = iota
)

// All - every defined role in code order
var All = []Role{SuperAdministrator, Administrator, GameCreator}

var granted = []byte{0x01}

// internal conversion
func toString(r Role) ([]byte, error) {
	switch r {
	case SuperAdministrator:
		return []byte("SuperAdministrator"), nil
	case Administrator:
		return []byte("Administrator"), nil
	case GameCreator:
		return []byte("GameCreator"), nil
	default:
		return []byte{}, fault.InvalidRole
	}
}

// FromString - convert a role name to its code
func FromString(s string) (Role, error) {
	for _, r := range All {
		if n, _ := toString(r); string(n) == s {
			return r, nil
		}
	}
	return 0, fault.InvalidRole
}

// Valid - true for a defined role
func (r Role) Valid() bool {
	_, err := toString(r)
	return nil == err
}

// String - convert a role to its name
func (r Role) String() string {
	s, err := toString(r)
	if nil != err {
		fault.Panicf("invalid role enumeration: %d", r)
	}
	return string(s)
}

// MarshalText - convert role to text
func (r Role) MarshalText() ([]byte, error) {
	return toString(r)
}

// UnmarshalText - convert text to role
func (r *Role) UnmarshalText(s []byte) error {
	v, err := FromString(string(s))
	if nil != err {
		return err
	}
	*r = v
	return nil
}

func key(r Role, a account.Account) []byte {
	return append(a.Bytes(), byte(r))
}

// Has - membership query
func Has(trx storage.Transaction, pool storage.Handle, r Role, a account.Account) bool {
	return trx.Has(pool, key(r, a))
}

// HasAny - true if the account holds at least one of the roles
func HasAny(trx storage.Transaction, pool storage.Handle, a account.Account, roles ...Role) bool {
	for _, r := range roles {
		if Has(trx, pool, r, a) {
			return true
		}
	}
	return false
}

// Grant - add a role to an account
//
// returns false if the account already held the role
func Grant(trx storage.Transaction, pool storage.Handle, r Role, a account.Account) (bool, error) {
	if !r.Valid() {
		return false, fault.InvalidRole
	}
	if a.IsZero() {
		return false, fault.InvalidAccount
	}
	if Has(trx, pool, r, a) {
		return false, nil
	}
	trx.Put(pool, key(r, a), granted)
	return true, nil
}

// Of - every role held by an account
func Of(trx storage.Transaction, pool storage.Handle, a account.Account) []Role {
	roles := make([]Role, 0, len(All))
	for _, r := range All {
		if Has(trx, pool, r, a) {
			roles = append(roles, r)
		}
	}
	return roles
}
