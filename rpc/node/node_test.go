// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gamekeysd/chain"
	"github.com/bitmark-inc/gamekeysd/counter"
	"github.com/bitmark-inc/gamekeysd/event"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/fixtures"
	"github.com/bitmark-inc/gamekeysd/rpc/access"
	rpcfixtures "github.com/bitmark-inc/gamekeysd/rpc/fixtures"
	"github.com/bitmark-inc/gamekeysd/rpc/node"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestInfo(t *testing.T) {
	l := rpcfixtures.NewLedger(t)
	count := counter.Counter(3)
	n := node.New(l.Log, l.Sequencer, time.Now(), "v1.2", chain.Local, &count)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Local, reply.Chain, "wrong chain")
	assert.Equal(t, "v1.2", reply.Version, "wrong version")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong connection count")
	assert.False(t, reply.Address.IsZero(), "missing ledger address")
	assert.Equal(t, fixtures.Admin.Account(), reply.Admin, "wrong admin")
	assert.Equal(t, rpcfixtures.Genesis, reply.CreatedAt, "wrong creation time")
	assert.Equal(t, uint64(0), reply.Games, "wrong games")
	assert.Equal(t, uint64(0), reply.Licenses, "wrong licenses")
	assert.Equal(t, uint64(2), reply.Events, "initialisation events missing")
	assert.Equal(t, "0", reply.EscrowTotal, "wrong escrow total")
}

func TestEvents(t *testing.T) {
	l := rpcfixtures.NewLedger(t)
	count := counter.Counter(0)
	n := node.New(l.Log, l.Sequencer, time.Now(), "v1.2", chain.Local, &count)

	add := access.AddCreatorArguments{Account: fixtures.Creator1.Account()}
	add.Signed = l.Sign(t, fixtures.Admin, access.MethodAddCreator, add.Fields()...)
	assert.Nil(t, access.New(l.Log, l.Sequencer).AddCreator(&add, &access.AddCreatorReply{}), "add creator")

	var reply node.EventsReply
	err := n.Events(&node.EventsArguments{Start: 1, Count: 10}, &reply)
	assert.Nil(t, err, "wrong Events")
	assert.Equal(t, 3, len(reply.Events), "wrong event count")
	assert.Equal(t, uint64(4), reply.NextStart, "wrong next start")

	last := reply.Events[2]
	assert.Equal(t, event.RoleGrantedName, last.Name, "wrong event")
	granted, ok := last.Data.(event.RoleGranted)
	assert.True(t, ok, "wrong data type: %T", last.Data)
	assert.Equal(t, fixtures.Creator1.Account(), granted.Account, "wrong account")
	assert.Equal(t, fixtures.Admin.Account(), granted.Sender, "wrong sender")

	err = n.Events(&node.EventsArguments{Start: 4, Count: 10}, &reply)
	assert.Nil(t, err, "wrong Events")
	assert.Equal(t, 0, len(reply.Events), "events past the end")
	assert.Equal(t, uint64(4), reply.NextStart, "next start moved")

	err = n.Events(&node.EventsArguments{Start: 1, Count: 101}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "excessive count accepted")
}
