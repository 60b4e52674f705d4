// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/counter"
	"github.com/bitmark-inc/gamekeysd/event"
	"github.com/bitmark-inc/gamekeysd/gamekeys"
	"github.com/bitmark-inc/gamekeysd/rpc/auth"
	"github.com/bitmark-inc/gamekeysd/rpc/ratelimit"
)

// limit for count
const maximumEvents = 100

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Sequencer auth.Sequencer
	Start     time.Time
	Version   string
	Chain     string
	counter   *counter.Counter
}

// New - create the node service
func New(log *logger.L, sequencer auth.Sequencer, start time.Time, version string, chain string, counter *counter.Counter) *Node {
	return &Node{
		Log:       log,
		Limiter:   ratelimit.New("Node"),
		Sequencer: sequencer,
		Start:     start,
		Version:   version,
		Chain:     chain,
		counter:   counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain       string          `json:"chain"`
	Version     string          `json:"version"`
	Uptime      string          `json:"uptime"`
	RPCs        uint64          `json:"rpcs"`
	Address     account.Account `json:"address"`
	Admin       account.Account `json:"admin"`
	CreatedAt   time.Time       `json:"createdAt"`
	Games       uint64          `json:"games,string"`
	Licenses    uint64          `json:"licenses,string"`
	Events      uint64          `json:"events,string"`
	EscrowTotal string          `json:"escrowTotal"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	return node.Sequencer.Submit(func(l *gamekeys.Ledger) error {
		total, err := l.EscrowTotal()
		if nil != err {
			return err
		}

		reply.Chain = node.Chain
		reply.Version = node.Version
		reply.Uptime = time.Since(node.Start).String()
		reply.RPCs = node.counter.Uint64()
		reply.Address = l.Address()
		reply.Admin = l.Admin()
		reply.CreatedAt = l.CreatedAt()
		reply.Games = l.GameCount()
		reply.Licenses = l.LicenseCount()
		reply.Events = l.LastEvent()
		reply.EscrowTotal = total.Dec()
		return nil
	})
}

// ---

// EventsArguments - arguments for RPC
type EventsArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// EventsReply - result from RPC
type EventsReply struct {
	Events    []event.Record `json:"events"`
	NextStart uint64         `json:"nextStart,string"`
}

// Events - committed ledger events from sequence start onwards
func (node *Node) Events(arguments *EventsArguments, reply *EventsReply) error {

	if err := ratelimit.LimitPage(node.Limiter, arguments.Count, maximumEvents); nil != err {
		return err
	}

	return node.Sequencer.Submit(func(l *gamekeys.Ledger) error {
		records, err := l.Events(arguments.Start, arguments.Count)
		if nil != err {
			return err
		}
		reply.Events = records
		reply.NextStart = arguments.Start
		if n := len(records); n > 0 {
			reply.NextStart = records[n-1].Sequence + 1
		}
		return nil
	})
}
