// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gamekeys

import (
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/logger"
)

type request struct {
	fn   func(*Ledger) error
	done chan error
}

// Sequencer - runs ledger operations one at a time
//
// it is a background process, all submitted functions execute on
// its goroutine in arrival order
type Sequencer struct {
	log     *logger.L
	ledger  *Ledger
	queue   chan request
	stopped chan struct{}
}

// NewSequencer - serialise access to a ledger
func NewSequencer(ledger *Ledger, log *logger.L) *Sequencer {
	return &Sequencer{
		log:     log,
		ledger:  ledger,
		queue:   make(chan request),
		stopped: make(chan struct{}),
	}
}

// Run - background process loop
func (s *Sequencer) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.log
	log.Info("starting…")

	defer close(s.stopped)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case r := <-s.queue:
			r.done <- r.fn(s.ledger)
		}
	}

	log.Info("stopped")
}

// Submit - run fn against the ledger and wait for its result
//
// fails with NotAvailable once the sequencer has stopped
func (s *Sequencer) Submit(fn func(*Ledger) error) error {
	r := request{
		fn:   fn,
		done: make(chan error, 1),
	}

	select {
	case s.queue <- r:
	case <-s.stopped:
		return fault.NotAvailable
	}
	return <-r.done
}
