// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treasury_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/storage"
	"github.com/bitmark-inc/gamekeysd/treasury"
)

var (
	ledger, _ = account.FromString("0xa16E02E87b7454126E5E10d957A927A7F5B5d2be")
	buyer, _  = account.FromString("0x90F79bf6EB2c4f870365E785982E1f101E93b906")
	seller, _ = account.FromString("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

func TestAllocate(t *testing.T) {
	s, err := storage.OpenMemory()
	assert.Nil(t, err, "wrong OpenMemory")
	defer s.Close()

	trx := s.Transaction()
	allocations := []treasury.Allocation{
		{Account: buyer, Amount: uint256.NewInt(100)},
	}

	_ = trx.Begin()
	done, err := treasury.Allocate(trx, &s.Pool, allocations)
	assert.Nil(t, err, "wrong Allocate")
	assert.True(t, done, "allocation not applied")

	done, err = treasury.Allocate(trx, &s.Pool, allocations)
	assert.Nil(t, err, "wrong Allocate")
	assert.False(t, done, "allocation applied twice")
	_ = trx.Commit()

	assert.Equal(t, uint64(100), treasury.Balance(trx, &s.Pool, buyer).Uint64(), "wrong balance")

	_ = trx.Begin()
	_, err = treasury.Allocate(trx, &s.Pool, []treasury.Allocation{{Account: buyer}})
	trx.Abort()
	assert.Nil(t, err, "second allocation was not skipped")
}

func TestTransfer(t *testing.T) {
	s, err := storage.OpenMemory()
	assert.Nil(t, err, "wrong OpenMemory")
	defer s.Close()

	trx := s.Transaction()
	payer := treasury.New(s, ledger)
	assert.Equal(t, ledger, payer.Source(), "wrong source")

	err = payer.Transfer(seller, uint256.NewInt(1))
	assert.Equal(t, fault.TransactionNotInUse, err, "transfer outside transaction")

	_ = trx.Begin()
	_, _ = treasury.Allocate(trx, &s.Pool, []treasury.Allocation{{Account: buyer, Amount: uint256.NewInt(10)}})

	err = treasury.Move(trx, &s.Pool, buyer, ledger, uint256.NewInt(8))
	assert.Nil(t, err, "wrong Move")

	err = payer.Transfer(seller, uint256.NewInt(9))
	assert.Equal(t, fault.InsufficientFunds, err, "overdraft allowed")

	err = payer.Transfer(seller, uint256.NewInt(8))
	assert.Nil(t, err, "wrong Transfer")
	_ = trx.Commit()

	assert.Equal(t, uint64(2), treasury.Balance(trx, &s.Pool, buyer).Uint64(), "wrong buyer balance")
	assert.True(t, treasury.Balance(trx, &s.Pool, ledger).IsZero(), "wrong ledger balance")
	assert.Equal(t, uint64(8), treasury.Balance(trx, &s.Pool, seller).Uint64(), "wrong seller balance")
}
