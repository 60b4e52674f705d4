// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gamekeysd/fault"
)

func TestBegin(t *testing.T) {
	s := setupTestStore(t)
	tx := s.Transaction()

	assert.False(t, tx.InUse(), "fresh transaction in use")

	err := tx.Begin()
	assert.Nil(t, err, "first time Begin should not return any error")
	assert.True(t, tx.InUse(), "transaction not in use")

	err = tx.Begin()
	assert.Equal(t, fault.TransactionAlreadyInUse, err, "second time Begin should return error")

	tx.Abort()
	assert.False(t, tx.InUse(), "aborted transaction in use")
}

func TestCommitWithoutBegin(t *testing.T) {
	s := setupTestStore(t)

	err := s.Transaction().Commit()
	assert.Equal(t, fault.TransactionNotInUse, err, "wrong Commit")
}

func TestWriteOutsideTransactionPanics(t *testing.T) {
	s := setupTestStore(t)

	assert.Panics(t, func() {
		s.Transaction().Put(s.Pool.TestData, []byte("k"), []byte("v"))
	}, "write without Begin did not panic")
}

func TestUncommittedWritesAreInvisible(t *testing.T) {
	s := setupTestStore(t)
	tx := s.Transaction()
	pool := s.Pool.TestData

	key := []byte("key")
	value := []byte("value")

	_ = tx.Begin()
	tx.Put(pool, key, value)

	assert.Equal(t, value, tx.Get(pool, key), "transaction cannot see its own write")
	assert.True(t, tx.Has(pool, key), "transaction cannot see its own write")
	assert.Nil(t, pool.Get(key), "uncommitted write visible in pool")

	err := tx.Commit()
	assert.Nil(t, err, "wrong Commit")

	assert.Equal(t, value, pool.Get(key), "committed write not visible in pool")
	assert.Equal(t, value, tx.Get(pool, key), "committed write not visible through transaction")
}

func TestAbortDiscardsWrites(t *testing.T) {
	s := setupTestStore(t)
	tx := s.Transaction()
	pool := s.Pool.TestData

	_ = tx.Begin()
	tx.PutN(pool, []byte("n"), 99)
	_ = tx.Commit()

	_ = tx.Begin()
	tx.PutN(pool, []byte("n"), 100)
	tx.Put(pool, []byte("x"), []byte{1})
	tx.Abort()

	n, ok := pool.GetN([]byte("n"))
	assert.True(t, ok, "value missing")
	assert.Equal(t, uint64(99), n, "aborted write visible")
	assert.False(t, pool.Has([]byte("x")), "aborted write visible")
}

func TestDeleteHidesCommittedValue(t *testing.T) {
	s := setupTestStore(t)
	tx := s.Transaction()
	pool := s.Pool.TestData

	_ = tx.Begin()
	tx.Put(pool, []byte("k"), []byte("v"))
	_ = tx.Commit()

	_ = tx.Begin()
	tx.Delete(pool, []byte("k"))
	assert.Nil(t, tx.Get(pool, []byte("k")), "deleted key visible through transaction")
	assert.True(t, pool.Has([]byte("k")), "uncommitted delete applied to pool")
	_ = tx.Commit()

	assert.False(t, pool.Has([]byte("k")), "committed delete not applied")
}

func TestRollbackToSavepoint(t *testing.T) {
	s := setupTestStore(t)
	tx := s.Transaction()
	pool := s.Pool.TestData

	_ = tx.Begin()
	tx.PutN(pool, []byte("a"), 1)

	sp := tx.Savepoint()
	tx.PutN(pool, []byte("a"), 2)
	tx.PutN(pool, []byte("b"), 3)
	tx.Delete(pool, []byte("a"))

	tx.Rollback(sp)

	a, ok := tx.GetN(pool, []byte("a"))
	assert.True(t, ok, "write before savepoint lost")
	assert.Equal(t, uint64(1), a, "write after savepoint survived")
	assert.False(t, tx.Has(pool, []byte("b")), "write after savepoint survived")

	tx.PutN(pool, []byte("c"), 4)
	err := tx.Commit()
	assert.Nil(t, err, "wrong Commit")

	a, _ = pool.GetN([]byte("a"))
	c, _ := pool.GetN([]byte("c"))
	assert.Equal(t, uint64(1), a, "wrong committed value")
	assert.Equal(t, uint64(4), c, "wrong committed value")
	assert.False(t, pool.Has([]byte("b")), "rolled back write committed")
}

func TestPoolsArePrefixed(t *testing.T) {
	s := setupTestStore(t)
	tx := s.Transaction()

	_ = tx.Begin()
	tx.Put(s.Pool.Games, []byte("k"), []byte("game"))
	tx.Put(s.Pool.Licenses, []byte("k"), []byte("license"))
	_ = tx.Commit()

	assert.Equal(t, []byte("game"), s.Pool.Games.Get([]byte("k")), "wrong pool value")
	assert.Equal(t, []byte("license"), s.Pool.Licenses.Get([]byte("k")), "wrong pool value")
	assert.Equal(t, byte('G'), s.Pool.Games.Prefix(), "wrong prefix")
}
