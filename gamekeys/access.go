// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gamekeys

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/event"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/role"
	"github.com/bitmark-inc/gamekeysd/storage"
)

// settings keys
var (
	adminKey      = []byte("admin")
	superAdminKey = []byte("super")
	addressKey    = []byte("address")
	createdKey    = []byte("created")
)

// Initialise - assign the initial roles, only once per ledger
func (l *Ledger) Initialise(superAdmin account.Account, administrator account.Account) error {
	if superAdmin.IsZero() || administrator.IsZero() {
		return fault.InvalidAccount
	}

	return l.run(func(trx storage.Transaction) error {
		if trx.Has(l.pools.Settings, adminKey) {
			return fault.AlreadyInitialised
		}

		if err := l.grant(trx, role.SuperAdministrator, superAdmin, superAdmin); nil != err {
			return err
		}
		if err := l.grant(trx, role.Administrator, administrator, superAdmin); nil != err {
			return err
		}

		created := l.clock().UTC()
		createdBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(createdBytes, uint64(created.UnixNano()))

		address := ledgerAddress(superAdmin, administrator, createdBytes)

		trx.Put(l.pools.Settings, superAdminKey, superAdmin.Bytes())
		trx.Put(l.pools.Settings, adminKey, administrator.Bytes())
		trx.Put(l.pools.Settings, addressKey, address.Bytes())
		trx.Put(l.pools.Settings, createdKey, createdBytes)

		l.log.Infof("initialised: %s  super administrator: %s  administrator: %s", address, superAdmin, administrator)
		return nil
	})
}

// ledger address is the last 20 bytes of
// keccak256(super administrator ⧺ administrator ⧺ created)
func ledgerAddress(superAdmin account.Account, administrator account.Account, created []byte) account.Account {
	digest := account.Digest(superAdmin.Bytes(), administrator.Bytes(), created)
	a, _ := account.FromBytes(digest[len(digest)-account.Length:])
	return a
}

func (l *Ledger) grant(trx storage.Transaction, r role.Role, a account.Account, sender account.Account) error {
	added, err := role.Grant(trx, l.pools.Roles, r, a)
	if nil != err {
		return err
	}
	if added {
		l.emit(event.RoleGranted{
			Role:    r,
			Account: a,
			Sender:  sender,
		})
	}
	return nil
}

// Initialised - true once Initialise has succeeded
func (l *Ledger) Initialised() bool {
	return l.trx.Has(l.pools.Settings, adminKey)
}

func (l *Ledger) setting(key []byte) account.Account {
	a, err := account.FromBytes(l.trx.Get(l.pools.Settings, key))
	if nil != err {
		return account.Zero
	}
	return a
}

// Admin - the administrator recorded at initialisation
func (l *Ledger) Admin() account.Account {
	return l.setting(adminKey)
}

// SuperAdministrator - the account holding the super administrator role
func (l *Ledger) SuperAdministrator() account.Account {
	return l.setting(superAdminKey)
}

// Address - identifier of this ledger
func (l *Ledger) Address() account.Account {
	return l.setting(addressKey)
}

// CreatedAt - time of initialisation
func (l *Ledger) CreatedAt() time.Time {
	buffer := l.trx.Get(l.pools.Settings, createdKey)
	if 8 != len(buffer) {
		return time.Time{}
	}
	return time.Unix(0, int64(binary.BigEndian.Uint64(buffer))).UTC()
}

// AddGameCreator - grant the game creator role
//
// caller must be an administrator; granting twice is not an error
func (l *Ledger) AddGameCreator(caller account.Account, a account.Account) error {
	return l.run(func(trx storage.Transaction) error {
		if !role.HasAny(trx, l.pools.Roles, caller, role.Administrator, role.SuperAdministrator) {
			return fault.Unauthorized
		}
		if err := l.grant(trx, role.GameCreator, a, caller); nil != err {
			return err
		}
		l.log.Infof("game creator: %s  added by: %s", a, caller)
		return nil
	})
}

// IsAdmin - account holds the administrator role
func (l *Ledger) IsAdmin(a account.Account) bool {
	return role.Has(l.trx, l.pools.Roles, role.Administrator, a)
}

// IsGameCreator - account holds the game creator role
func (l *Ledger) IsGameCreator(a account.Account) bool {
	return role.Has(l.trx, l.pools.Roles, role.GameCreator, a)
}

// HasRole - account holds the role
func (l *Ledger) HasRole(r role.Role, a account.Account) bool {
	return role.Has(l.trx, l.pools.Roles, r, a)
}

// Roles - every role held by the account
func (l *Ledger) Roles(a account.Account) []role.Role {
	return role.Of(l.trx, l.pools.Roles, a)
}
