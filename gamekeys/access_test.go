// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gamekeys_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/event"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/fixtures"
	"github.com/bitmark-inc/gamekeysd/gamekeys"
	"github.com/bitmark-inc/gamekeysd/mocks"
	"github.com/bitmark-inc/gamekeysd/role"
	"github.com/bitmark-inc/gamekeysd/storage"
	"github.com/bitmark-inc/logger"
)

func TestInitialise(t *testing.T) {
	tl := setupTestLedger(t)

	assert.True(t, tl.Initialised(), "not initialised")
	assert.Equal(t, admin, tl.Admin(), "wrong admin")
	assert.Equal(t, deployer, tl.SuperAdministrator(), "wrong super administrator")
	assert.True(t, tl.IsAdmin(admin), "admin is not administrator")
	assert.True(t, tl.HasRole(role.Administrator, admin), "admin lacks role")
	assert.True(t, tl.HasRole(role.SuperAdministrator, deployer), "deployer lacks role")
	assert.False(t, tl.IsAdmin(deployer), "deployer is administrator")
	assert.False(t, tl.IsGameCreator(admin), "admin is game creator")
	assert.True(t, genesis.Equal(tl.CreatedAt()), "wrong created")
	assert.False(t, tl.Address().IsZero(), "missing ledger address")

	err := tl.Initialise(deployer, admin)
	assert.Equal(t, fault.AlreadyInitialised, err, "second Initialise")

	err = tl.Initialise(user1, user2)
	assert.Equal(t, fault.AlreadyInitialised, err, "second Initialise")
	assert.Equal(t, admin, tl.Admin(), "admin replaced")
}

func TestInitialiseRejectsZeroAccount(t *testing.T) {
	store, err := storage.OpenMemory()
	assert.Nil(t, err, "wrong OpenMemory")
	defer store.Close()

	l := gamekeys.New(store, logger.New(fixtures.LogCategory))
	assert.False(t, l.Initialised(), "fresh ledger initialised")
	assert.Equal(t, account.Zero, l.Admin(), "fresh ledger has admin")

	err = l.Initialise(deployer, account.Zero)
	assert.Equal(t, fault.InvalidAccount, err, "zero administrator")

	err = l.Initialise(account.Zero, admin)
	assert.Equal(t, fault.InvalidAccount, err, "zero super administrator")
	assert.False(t, l.Initialised(), "failed Initialise left state")
}

func TestLedgerAddressIsDeterministic(t *testing.T) {
	a := setupTestLedger(t)
	b := setupTestLedger(t)
	assert.Equal(t, a.Address(), b.Address(), "same inputs different address")

	store, _ := storage.OpenMemory()
	defer store.Close()
	later := genesis.Add(1)
	c := gamekeys.New(store, logger.New(fixtures.LogCategory), gamekeys.WithClock(func() time.Time { return later }))
	_ = c.Initialise(deployer, admin)
	assert.NotEqual(t, a.Address(), c.Address(), "creation time not in address")
}

func TestInitialiseEvents(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPublisher(ctl)

	var records []event.Record
	p.EXPECT().Publish(gomock.Any()).Do(func(r event.Record) {
		records = append(records, r)
	}).Times(2)

	setupTestLedgerWithPublisher(t, ctl, p)

	assert.Equal(t, 2, len(records), "wrong event count")
	assert.Equal(t, event.RoleGranted{Role: role.SuperAdministrator, Account: deployer, Sender: deployer}, records[0].Data, "wrong first event")
	assert.Equal(t, event.RoleGranted{Role: role.Administrator, Account: admin, Sender: deployer}, records[1].Data, "wrong second event")
	assert.Equal(t, uint64(1), records[0].Sequence, "wrong sequence")
	assert.True(t, genesis.Equal(records[0].Timestamp), "wrong timestamp")
}

func TestAddGameCreator(t *testing.T) {
	tl := setupTestLedger(t)

	err := tl.AddGameCreator(user1, creator1)
	assert.Equal(t, fault.Unauthorized, err, "non-administrator added creator")
	assert.False(t, tl.IsGameCreator(creator1), "unauthorised grant applied")

	err = tl.AddGameCreator(admin, creator1)
	assert.Nil(t, err, "wrong AddGameCreator")
	assert.True(t, tl.IsGameCreator(creator1), "creator not granted")

	// idempotent
	err = tl.AddGameCreator(admin, creator1)
	assert.Nil(t, err, "second AddGameCreator")
	assert.True(t, tl.IsGameCreator(creator1), "creator lost role")

	// super administrator may also grant
	err = tl.AddGameCreator(deployer, creator2)
	assert.Nil(t, err, "super administrator AddGameCreator")

	// a creator cannot grant
	err = tl.AddGameCreator(creator1, user1)
	assert.Equal(t, fault.Unauthorized, err, "creator added creator")

	err = tl.AddGameCreator(admin, account.Zero)
	assert.Equal(t, fault.InvalidAccount, err, "zero account granted")

	assert.Equal(t, []role.Role{role.GameCreator}, tl.Roles(creator1), "wrong roles")
}

func TestAddGameCreatorEmitsOnce(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	p := mocks.NewMockPublisher(ctl)
	p.EXPECT().Publish(gomock.Any()).Times(2) // initialisation

	tl := setupTestLedgerWithPublisher(t, ctl, p)

	p.EXPECT().Publish(gomock.Any()).Do(func(r event.Record) {
		assert.Equal(t, event.RoleGranted{Role: role.GameCreator, Account: creator1, Sender: admin}, r.Data, "wrong event")
	}).Times(1)

	tl.mustAddCreator(t, creator1)
	tl.mustAddCreator(t, creator1)
}
