// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/gamekeysd/fault"
)

// Transaction - buffered writes that become visible atomically
//
// reads through the transaction see its own uncommitted writes
// first and then the committed database
type Transaction interface {
	Begin() error
	InUse() bool
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	Savepoint() Savepoint
	Rollback(Savepoint)
	Commit() error
	Abort()
}

// Savepoint - position in a transaction that can be rolled back to
type Savepoint int

type operation struct {
	op    int
	key   []byte
	value []byte
}

// TransactionImpl - a write batch with a read cache overlay
type TransactionImpl struct {
	sync.Mutex
	db    *leveldb.DB
	inUse bool
	ops   []operation
	cache Cache
}

func newTransaction(db *leveldb.DB) Transaction {
	return &TransactionImpl{
		db:    db,
		inUse: false,
		cache: newCache(),
	}
}

// Begin - start buffering writes
func (d *TransactionImpl) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.TransactionAlreadyInUse
	}
	d.inUse = true
	d.ops = d.ops[:0]
	d.cache.Clear()

	return nil
}

// InUse - true between Begin and Commit/Abort
func (d *TransactionImpl) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

func (d *TransactionImpl) record(op int, handle Handle, key []byte, value []byte) {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		fault.Panicf("transaction: write to pool: %c without Begin", handle.Prefix())
	}

	fullKey := make([]byte, 1, len(key)+1)
	fullKey[0] = handle.Prefix()
	fullKey = append(fullKey, key...)

	var data []byte
	if nil != value {
		data = make([]byte, len(value))
		copy(data, value)
	}

	d.ops = append(d.ops, operation{
		op:    op,
		key:   fullKey,
		value: data,
	})
	d.cache.Set(op, string(fullKey), data)
}

// Put - buffer a key/value write
func (d *TransactionImpl) Put(handle Handle, key []byte, value []byte) {
	d.record(dbPut, handle, key, value)
}

// PutN - buffer a uint64 write
func (d *TransactionImpl) PutN(handle Handle, key []byte, value uint64) {
	d.record(dbPut, handle, key, encodeN(value))
}

// Delete - buffer a key removal
func (d *TransactionImpl) Delete(handle Handle, key []byte) {
	d.record(dbDelete, handle, key, nil)
}

// Get - read through the overlay
func (d *TransactionImpl) Get(handle Handle, key []byte) []byte {
	d.Lock()
	if d.inUse {
		fullKey := make([]byte, 1, len(key)+1)
		fullKey[0] = handle.Prefix()
		fullKey = append(fullKey, key...)

		value, deleted, found := d.cache.Get(string(fullKey))
		if found {
			d.Unlock()
			if deleted {
				return nil
			}
			return value
		}
	}
	d.Unlock()

	return handle.Get(key)
}

// GetN - read a uint64 through the overlay
func (d *TransactionImpl) GetN(handle Handle, key []byte) (uint64, bool) {
	return decodeN(d.Get(handle, key))
}

// Has - check existence through the overlay
func (d *TransactionImpl) Has(handle Handle, key []byte) bool {
	return nil != d.Get(handle, key)
}

// Savepoint - mark the current position
func (d *TransactionImpl) Savepoint() Savepoint {
	d.Lock()
	defer d.Unlock()
	return Savepoint(len(d.ops))
}

// Rollback - discard all writes made after the savepoint
func (d *TransactionImpl) Rollback(sp Savepoint) {
	d.Lock()
	defer d.Unlock()

	n := int(sp)
	if !d.inUse || n < 0 || n > len(d.ops) {
		fault.Panicf("transaction: invalid savepoint: %d of %d", n, len(d.ops))
	}
	d.ops = d.ops[:n]

	// replay the surviving writes to rebuild the overlay
	d.cache.Clear()
	for _, o := range d.ops {
		d.cache.Set(o.op, string(o.key), o.value)
	}
}

// Commit - write all buffered operations as one leveldb batch
func (d *TransactionImpl) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.TransactionNotInUse
	}

	batch := new(leveldb.Batch)
	for _, o := range d.ops {
		switch o.op {
		case dbPut:
			batch.Put(o.key, o.value)
		case dbDelete:
			batch.Delete(o.key)
		}
	}

	err := d.db.Write(batch, nil)

	d.inUse = false
	d.ops = nil
	d.cache.Clear()

	return err
}

// Abort - discard all buffered operations
func (d *TransactionImpl) Abort() {
	d.Lock()
	defer d.Unlock()

	d.inUse = false
	d.ops = nil
	d.cache.Clear()
}
