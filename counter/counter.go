// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - in-memory gauges and persistent identifier sequences
package counter

import (
	"sync/atomic"

	"github.com/bitmark-inc/gamekeysd/storage"
)

// Counter - a 64 bit gauge that can be changed from several goroutines
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Decrement - subtract 1 from a counter, returns new value
func (ic *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// Sequence - a named, persisted identifier source
//
// identifiers start at 1 and are never reused; an identifier taken
// inside an aborted transaction is returned to the sequence
type Sequence string

// names of the ledger sequences
const (
	Games    Sequence = "game"
	Licenses Sequence = "license"
	Events   Sequence = "event"
)

// Next - reserve the next identifier within the transaction
func (s Sequence) Next(trx storage.Transaction, pool storage.Handle) uint64 {
	n, _ := trx.GetN(pool, []byte(s))
	n += 1
	trx.PutN(pool, []byte(s), n)
	return n
}

// Last - the most recently issued identifier, zero if none
func (s Sequence) Last(trx storage.Transaction, pool storage.Handle) uint64 {
	n, _ := trx.GetN(pool, []byte(s))
	return n
}
