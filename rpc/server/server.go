// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/gamekeysd/counter"
	"github.com/bitmark-inc/gamekeysd/rpc/access"
	"github.com/bitmark-inc/gamekeysd/rpc/auth"
	"github.com/bitmark-inc/gamekeysd/rpc/escrow"
	"github.com/bitmark-inc/gamekeysd/rpc/games"
	"github.com/bitmark-inc/gamekeysd/rpc/licenses"
	"github.com/bitmark-inc/gamekeysd/rpc/node"
	"github.com/bitmark-inc/gamekeysd/rpc/treasury"
)

// Create - an RPC server with every ledger service registered
func Create(log *logger.L, sequencer auth.Sequencer, version string, chain string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(access.New(log, sequencer))
	_ = server.Register(auth.New(log, sequencer))
	_ = server.Register(escrow.New(log, sequencer))
	_ = server.Register(games.New(log, sequencer))
	_ = server.Register(licenses.New(log, sequencer))
	_ = server.Register(node.New(log, sequencer, start, version, chain, rpcCount))
	_ = server.Register(treasury.New(log, sequencer))

	return server
}
