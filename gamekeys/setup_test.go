// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gamekeys_test

import (
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/event"
	"github.com/bitmark-inc/gamekeysd/fixtures"
	"github.com/bitmark-inc/gamekeysd/gamekeys"
	"github.com/bitmark-inc/gamekeysd/mocks"
	"github.com/bitmark-inc/gamekeysd/storage"
	"github.com/bitmark-inc/logger"
)

var (
	deployer = fixtures.Deployer.Account()
	admin    = fixtures.Admin.Account()
	creator1 = fixtures.Creator1.Account()
	creator2 = fixtures.Creator2.Account()
	user1    = fixtures.User1.Account()
	user2    = fixtures.User2.Account()

	genesis = time.Date(2021, 10, 4, 12, 30, 0, 0, time.UTC)
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

type testLedger struct {
	*gamekeys.Ledger
	store       *storage.Store
	transferrer *mocks.MockTransferrer
	now         time.Time
}

// initialised ledger with events discarded
func setupTestLedger(t *testing.T) *testLedger {
	ctl := gomock.NewController(t)
	return setupTestLedgerWithPublisher(t, ctl, event.Discard{})
}

func setupTestLedgerWithPublisher(t *testing.T, ctl *gomock.Controller, publisher event.Publisher) *testLedger {
	store, err := storage.OpenMemory()
	assert.Nil(t, err, "wrong OpenMemory")
	t.Cleanup(store.Close)

	tl := &testLedger{
		store:       store,
		transferrer: mocks.NewMockTransferrer(ctl),
		now:         genesis,
	}

	tl.Ledger = gamekeys.New(
		store,
		logger.New(fixtures.LogCategory),
		gamekeys.WithTransferrer(tl.transferrer),
		gamekeys.WithPublisher(publisher),
		gamekeys.WithClock(func() time.Time {
			return tl.now
		}),
	)

	err = tl.Initialise(deployer, admin)
	assert.Nil(t, err, "wrong Initialise")

	return tl
}

func units(n uint64) *uint256.Int {
	return uint256.NewInt(n)
}

// price in smallest units: n × 10^15
func wei(n uint64) *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(n), uint256.NewInt(1_000_000_000_000_000))
}

func (tl *testLedger) mustAddCreator(t *testing.T, a account.Account) {
	err := tl.AddGameCreator(admin, a)
	assert.Nil(t, err, "wrong AddGameCreator")
}

func (tl *testLedger) mustRegister(t *testing.T, c account.Account, title string, price uint64) uint64 {
	id, err := tl.RegisterNewGame(c, title, "https://"+title+".com/png", "blablabla", units(price))
	assert.Nil(t, err, "wrong RegisterNewGame")
	return id
}
