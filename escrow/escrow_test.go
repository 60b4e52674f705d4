// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/escrow"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/storage"
)

var creator, _ = account.FromString("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")

func TestTake(t *testing.T) {
	s, err := storage.OpenMemory()
	assert.Nil(t, err, "wrong OpenMemory")
	defer s.Close()

	trx := s.Transaction()

	_ = trx.Begin()
	_, err = escrow.Take(trx, &s.Pool, creator)
	assert.Equal(t, fault.EmptyBalance, err, "took from empty balance")

	err = escrow.Credit(trx, &s.Pool, creator, uint256.NewInt(3_000_000_000_000_000))
	assert.Nil(t, err, "wrong Credit")
	err = escrow.Credit(trx, &s.Pool, creator, uint256.NewInt(5_000_000_000_000_000))
	assert.Nil(t, err, "wrong Credit")
	_ = trx.Commit()

	assert.Equal(t, "8000000000000000", escrow.Balance(trx, &s.Pool, creator).Dec(), "wrong balance")

	total, err := escrow.Total(&s.Pool)
	assert.Nil(t, err, "wrong Total")
	assert.Equal(t, "8000000000000000", total.Dec(), "wrong total")

	_ = trx.Begin()
	amount, err := escrow.Take(trx, &s.Pool, creator)
	assert.Nil(t, err, "wrong Take")
	assert.Equal(t, "8000000000000000", amount.Dec(), "wrong amount")
	assert.True(t, escrow.Balance(trx, &s.Pool, creator).IsZero(), "balance not zeroed in transaction")
	assert.True(t, s.Pool.Escrow.Has(creator.Bytes()), "uncommitted take applied to store")

	_, err = escrow.Take(trx, &s.Pool, creator)
	assert.Equal(t, fault.EmptyBalance, err, "second take succeeded")
	trx.Abort()

	assert.Equal(t, "8000000000000000", escrow.Balance(trx, &s.Pool, creator).Dec(), "aborted take applied")
}
