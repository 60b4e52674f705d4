// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gamekeys

import (
	"time"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/event"
	"github.com/bitmark-inc/gamekeysd/storage"
	"github.com/bitmark-inc/logger"
)

//go:generate mockgen -destination=../mocks/transferrer.go -package=mocks github.com/bitmark-inc/gamekeysd/gamekeys Transferrer

// Transferrer - moves funds out of the ledger
//
// called with the withdrawal already applied to the open
// transaction; an error undoes the withdrawal
type Transferrer interface {
	Transfer(to account.Account, amount *uint256.Int) error
}

// Ledger - the owned aggregate of all ledger state
type Ledger struct {
	log         *logger.L
	store       *storage.Store
	pools       *storage.Pools
	trx         storage.Transaction
	transferrer Transferrer
	publisher   event.Publisher
	clock       func() time.Time

	// events of the outermost open operation
	pending []event.Event
}

// Option - ledger construction setting
type Option func(*Ledger)

// WithTransferrer - payer used by Withdraw
func WithTransferrer(t Transferrer) Option {
	return func(l *Ledger) {
		l.transferrer = t
	}
}

// WithPublisher - receiver of committed events
func WithPublisher(p event.Publisher) Option {
	return func(l *Ledger) {
		l.publisher = p
	}
}

// WithClock - time source for listing and event timestamps
func WithClock(clock func() time.Time) Option {
	return func(l *Ledger) {
		l.clock = clock
	}
}

// New - a ledger over an open store
func New(store *storage.Store, log *logger.L, options ...Option) *Ledger {
	l := &Ledger{
		log:       log,
		store:     store,
		pools:     &store.Pool,
		trx:       store.Transaction(),
		publisher: event.Discard{},
		clock:     time.Now,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *Ledger) emit(e event.Event) {
	l.pending = append(l.pending, e)
}

// run fn as one all-or-nothing unit
func (l *Ledger) run(fn func(storage.Transaction) error) error {
	trx := l.trx

	if trx.InUse() {
		sp := trx.Savepoint()
		mark := len(l.pending)
		if err := fn(trx); nil != err {
			trx.Rollback(sp)
			l.pending = l.pending[:mark]
			return err
		}
		return nil
	}

	if err := trx.Begin(); nil != err {
		return err
	}
	l.pending = nil

	if err := fn(trx); nil != err {
		trx.Abort()
		l.pending = nil
		return err
	}

	records, err := event.Append(trx, l.pools, l.clock(), l.pending)
	l.pending = nil
	if nil != err {
		trx.Abort()
		return err
	}

	if err := trx.Commit(); nil != err {
		l.log.Criticalf("commit error: %s", err)
		return err
	}

	for _, r := range records {
		l.publisher.Publish(r)
	}
	return nil
}

// Atomic - run fn inside the ledger transaction
//
// ledger operations called from fn join the same transaction, so a
// payment and a purchase can succeed or fail together
func (l *Ledger) Atomic(fn func(trx storage.Transaction, pools *storage.Pools) error) error {
	return l.run(func(trx storage.Transaction) error {
		return fn(trx, l.pools)
	})
}

// View - read state without starting a transaction
func (l *Ledger) View(fn func(trx storage.Transaction, pools *storage.Pools) error) error {
	return fn(l.trx, l.pools)
}

// Events - committed event records from sequence start onwards
func (l *Ledger) Events(start uint64, count int) ([]event.Record, error) {
	return event.Read(l.pools, start, count)
}

// LastEvent - sequence number of the most recent event
func (l *Ledger) LastEvent() uint64 {
	return event.Last(l.trx, l.pools)
}
