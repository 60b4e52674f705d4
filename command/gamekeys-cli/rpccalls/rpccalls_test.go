// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"crypto/tls"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gamekeysd/chain"
	"github.com/bitmark-inc/gamekeysd/command/gamekeys-cli/rpccalls"
	"github.com/bitmark-inc/gamekeysd/counter"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/fixtures"
	"github.com/bitmark-inc/gamekeysd/rpc/certificate"
	rpcfixtures "github.com/bitmark-inc/gamekeysd/rpc/fixtures"
	"github.com/bitmark-inc/gamekeysd/rpc/server"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// TLS server on a loopback port, returns its address
func serve(t *testing.T) string {
	l := rpcfixtures.NewLedger(t)

	dir := t.TempDir()
	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")
	err := certificate.MakeSelfSigned("test", certificateFile, keyFile, []string{"127.0.0.1"})
	assert.Nil(t, err, "make certificate")

	tlsConfig, _, err := certificate.GetFiles(l.Log, "test", certificateFile, keyFile)
	assert.Nil(t, err, "load certificate")

	listen, err := tls.Listen("tcp", "127.0.0.1:0", tlsConfig)
	assert.Nil(t, err, "listen")
	t.Cleanup(func() { _ = listen.Close() })

	count := counter.Counter(0)
	s := server.Create(l.Log, l.Sequencer, "test", chain.Local, &count)
	go func() {
		for {
			conn, err := listen.Accept()
			if nil != err {
				return
			}
			go s.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	return listen.Addr().String()
}

func TestClientScenario(t *testing.T) {
	connect := serve(t)

	client, err := rpccalls.NewClient(connect, false, nil)
	assert.Nil(t, err, "connect")
	defer client.Close()

	err = client.AddCreator(fixtures.Admin, fixtures.Creator1.Account())
	assert.Nil(t, err, "AddCreator")

	roles, err := client.Roles(fixtures.Creator1.Account())
	assert.Nil(t, err, "Roles")
	assert.True(t, roles.IsGameCreator, "creator role missing")

	id, err := client.Register(fixtures.Creator1, &rpccalls.RegisterData{
		Title: "Snake",
		Price: "5",
	})
	assert.Nil(t, err, "Register")
	assert.Equal(t, uint64(1), id, "wrong game id")

	game, err := client.Game(id)
	assert.Nil(t, err, "Game")
	assert.Equal(t, "Snake", game.Title, "wrong title")
	assert.Equal(t, "5000000000000000", game.Price, "wrong price")

	found, err := client.FindGame("Snake")
	assert.Nil(t, err, "FindGame")
	assert.Equal(t, id, found.ID, "wrong game found")

	page, err := client.Games(0, 10)
	assert.Nil(t, err, "Games")
	assert.Equal(t, 1, len(page.Games), "wrong listing count")

	tokenID, err := client.Buy(fixtures.User1, id, "5000000000000000")
	assert.Nil(t, err, "Buy")
	assert.Equal(t, uint64(1), tokenID, "wrong token")

	count, err := client.LicenseCount(fixtures.User1.Account())
	assert.Nil(t, err, "LicenseCount")
	assert.Equal(t, uint64(1), count, "wrong license count")

	owned, err := client.Licenses(fixtures.User1.Account(), 0, 10)
	assert.Nil(t, err, "Licenses")
	assert.Equal(t, 1, len(owned.Licenses), "wrong licenses")

	funds, err := client.Funds(fixtures.User1.Account())
	assert.Nil(t, err, "Funds")
	assert.Equal(t, "999995000000000000000", funds, "payment not taken")

	escrowed, err := client.Escrow(fixtures.Creator1.Account())
	assert.Nil(t, err, "Escrow")
	assert.Equal(t, "5000000000000000", escrowed, "wrong escrow")

	amount, err := client.Withdraw(fixtures.Creator1)
	assert.Nil(t, err, "Withdraw")
	assert.Equal(t, "5000000000000000", amount, "wrong withdrawal")

	info, err := client.GetNodeInfo()
	assert.Nil(t, err, "GetNodeInfo")
	assert.Equal(t, chain.Local, info.Chain, "wrong chain")
	assert.Equal(t, uint64(1), info.Games, "wrong game count")

	events, err := client.Events(0, 100)
	assert.Nil(t, err, "Events")
	assert.Equal(t, 6, len(events.Events), "wrong event count")
}

func TestClientRejected(t *testing.T) {
	connect := serve(t)

	client, err := rpccalls.NewClient(connect, false, nil)
	assert.Nil(t, err, "connect")
	defer client.Close()

	_, err = client.Register(fixtures.User1, &rpccalls.RegisterData{Title: "Pong", Price: "1"})
	assert.NotNil(t, err, "non-creator registered")
	assert.Equal(t, fault.Unauthorized.Error(), err.Error(), "wrong error")

	nonce, err := client.Nonce(fixtures.User1.Account())
	assert.Nil(t, err, "Nonce")
	assert.Equal(t, uint64(1), nonce, "failed request must still consume its nonce")
}

func TestVerboseOutput(t *testing.T) {
	connect := serve(t)

	buffer := &bytes.Buffer{}
	client, err := rpccalls.NewClient(connect, true, buffer)
	assert.Nil(t, err, "connect")
	defer client.Close()

	_, err = client.GetNodeInfo()
	assert.Nil(t, err, "GetNodeInfo")
	assert.Contains(t, buffer.String(), "Node.Info Request:", "request not printed")
	assert.Contains(t, buffer.String(), "Node.Info Reply:", "reply not printed")
}
