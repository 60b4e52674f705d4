// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - a running ledger for RPC service tests
package fixtures

import (
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/background"
	"github.com/bitmark-inc/gamekeysd/fixtures"
	"github.com/bitmark-inc/gamekeysd/gamekeys"
	"github.com/bitmark-inc/gamekeysd/nonce"
	"github.com/bitmark-inc/gamekeysd/rpc/auth"
	"github.com/bitmark-inc/gamekeysd/storage"
	"github.com/bitmark-inc/gamekeysd/treasury"
)

// LogCategory - log channel for service tests
const LogCategory = fixtures.LogCategory

// Genesis - fixed ledger creation time
var Genesis = time.Date(2021, 10, 4, 12, 30, 0, 0, time.UTC)

// Funds - initial treasury allocation of each user account
var Funds = uint256.MustFromDecimal("1000000000000000000000") // 1000 ether

// Ledger - an initialised ledger served by a running sequencer
type Ledger struct {
	Store     *storage.Store
	Ledger    *gamekeys.Ledger
	Sequencer *gamekeys.Sequencer
	Log       *logger.L
}

// NewLedger - ledger administered by fixtures.Deployer and fixtures.Admin
// with Funds allocated to both users and both creators
//
// stopped when the test finishes
func NewLedger(t *testing.T) *Ledger {
	store, err := storage.OpenMemory()
	assert.Nil(t, err, "open memory store")

	log := logger.New(LogCategory)
	clock := func() time.Time { return Genesis }

	boot := gamekeys.New(store, log, gamekeys.WithClock(clock))
	err = boot.Initialise(fixtures.Deployer.Account(), fixtures.Admin.Account())
	assert.Nil(t, err, "initialise")

	ledger := gamekeys.New(
		store,
		log,
		gamekeys.WithClock(clock),
		gamekeys.WithTransferrer(treasury.New(store, boot.Address())),
	)

	allocations := []treasury.Allocation{}
	for _, key := range []*account.PrivateKey{fixtures.User1, fixtures.User2, fixtures.Creator1, fixtures.Creator2} {
		allocations = append(allocations, treasury.Allocation{Account: key.Account(), Amount: Funds.Clone()})
	}
	err = ledger.Atomic(func(trx storage.Transaction, pools *storage.Pools) error {
		_, err := treasury.Allocate(trx, pools, allocations)
		return err
	})
	assert.Nil(t, err, "allocate")

	sequencer := gamekeys.NewSequencer(ledger, log)
	processes := background.Start(background.Processes{sequencer}, nil)

	t.Cleanup(func() {
		processes.Stop()
		store.Close()
	})

	return &Ledger{
		Store:     store,
		Ledger:    ledger,
		Sequencer: sequencer,
		Log:       log,
	}
}

// Sign - authenticate a request from key using its current nonce
func (l *Ledger) Sign(t *testing.T, key *account.PrivateKey, method string, fields ...[]byte) auth.Signed {
	n := uint64(0)
	err := l.Sequencer.Submit(func(ledger *gamekeys.Ledger) error {
		return ledger.View(func(trx storage.Transaction, pools *storage.Pools) error {
			n = nonce.Current(trx, pools, key.Account())
			return nil
		})
	})
	assert.Nil(t, err, "read nonce")

	signed, err := auth.Sign(key, method, n, fields...)
	assert.Nil(t, err, "sign")
	return signed
}
