// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/gamekeysd/messagebus"
)

//go:generate mockgen -destination=../mocks/publisher.go -package=mocks github.com/bitmark-inc/gamekeysd/event Publisher

// Publisher - receives records after they are committed
type Publisher interface {
	Publish(Record)
}

// BusPublisher - forwards records to a broadcast queue
//
// command is the event name, the single parameter its JSON record
type BusPublisher struct {
	log   *logger.L
	queue *messagebus.BroadcastQueue
}

// NewBusPublisher - publisher writing to queue
func NewBusPublisher(log *logger.L, queue *messagebus.BroadcastQueue) *BusPublisher {
	return &BusPublisher{
		log:   log,
		queue: queue,
	}
}

// Publish - send one record
func (p *BusPublisher) Publish(r Record) {
	packed, err := json.Marshal(r)
	if nil != err {
		p.log.Errorf("event: %d marshal error: %s", r.Sequence, err)
		return
	}
	p.log.Debugf("publish: %s  sequence: %d", r.Name, r.Sequence)
	p.queue.Send(string(r.Name), packed)
}

// Discard - a publisher that drops everything
type Discard struct{}

// Publish - ignore the record
func (Discard) Publish(Record) {}
