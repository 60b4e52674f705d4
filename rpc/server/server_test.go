// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/chain"
	"github.com/bitmark-inc/gamekeysd/counter"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/fixtures"
	"github.com/bitmark-inc/gamekeysd/rpc/access"
	"github.com/bitmark-inc/gamekeysd/rpc/auth"
	"github.com/bitmark-inc/gamekeysd/rpc/escrow"
	rpcfixtures "github.com/bitmark-inc/gamekeysd/rpc/fixtures"
	"github.com/bitmark-inc/gamekeysd/rpc/games"
	"github.com/bitmark-inc/gamekeysd/rpc/licenses"
	"github.com/bitmark-inc/gamekeysd/rpc/node"
	"github.com/bitmark-inc/gamekeysd/rpc/server"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// JSON-RPC client connected to a fresh server over an in-memory pipe
func setup(t *testing.T) (*rpcfixtures.Ledger, *rpc.Client) {
	l := rpcfixtures.NewLedger(t)
	count := counter.Counter(0)
	s := server.Create(l.Log, l.Sequencer, "test", chain.Local, &count)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	client := jsonrpc.NewClient(clientConn)
	t.Cleanup(func() { _ = client.Close() })
	return l, client
}

func nonce(t *testing.T, client *rpc.Client, key *account.PrivateKey) uint64 {
	var reply auth.NonceReply
	err := client.Call("Auth.Nonce", auth.NonceArguments{Account: key.Account()}, &reply)
	assert.Nil(t, err, "Auth.Nonce")
	return reply.Nonce
}

func TestScenario(t *testing.T) {
	_, client := setup(t)

	add := access.AddCreatorArguments{Account: fixtures.Creator1.Account()}
	add.Signed, _ = auth.Sign(fixtures.Admin, access.MethodAddCreator, nonce(t, client, fixtures.Admin), add.Fields()...)
	err := client.Call("Access.AddCreator", add, &access.AddCreatorReply{})
	assert.Nil(t, err, "Access.AddCreator")

	register := games.RegisterArguments{
		Title:       "Snake",
		CoverURL:    "https://example.com/snake.png",
		Description: "eat the apples",
		Price:       "5",
	}
	register.Signed, _ = auth.Sign(fixtures.Creator1, games.MethodRegister, nonce(t, client, fixtures.Creator1), register.Fields()...)
	var registered games.RegisterReply
	err = client.Call("Games.Register", register, &registered)
	assert.Nil(t, err, "Games.Register")
	assert.Equal(t, uint64(1), registered.ID, "wrong game id")

	buy := licenses.BuyArguments{ID: registered.ID, Payment: "5000000000000000"}
	buy.Signed, _ = auth.Sign(fixtures.User1, licenses.MethodBuy, nonce(t, client, fixtures.User1), buy.Fields()...)
	var bought licenses.BuyReply
	err = client.Call("Licenses.Buy", buy, &bought)
	assert.Nil(t, err, "Licenses.Buy")
	assert.Equal(t, uint64(1), bought.TokenID, "wrong token id")

	var balance licenses.BalanceReply
	err = client.Call("Licenses.Balance", licenses.BalanceArguments{Owner: fixtures.User1.Account()}, &balance)
	assert.Nil(t, err, "Licenses.Balance")
	assert.Equal(t, uint64(1), balance.Count, "wrong license count")

	var escrowed escrow.BalanceReply
	err = client.Call("Escrow.Balance", escrow.BalanceArguments{Creator: fixtures.Creator1.Account()}, &escrowed)
	assert.Nil(t, err, "Escrow.Balance")
	assert.Equal(t, "5000000000000000", escrowed.Balance, "wrong escrow")

	withdraw := escrow.WithdrawArguments{}
	withdraw.Signed, _ = auth.Sign(fixtures.Creator1, escrow.MethodWithdraw, nonce(t, client, fixtures.Creator1), withdraw.Fields()...)
	var withdrew escrow.WithdrawReply
	err = client.Call("Escrow.Withdraw", withdraw, &withdrew)
	assert.Nil(t, err, "Escrow.Withdraw")
	assert.Equal(t, "5000000000000000", withdrew.Amount, "wrong withdrawal")

	err = client.Call("Escrow.Balance", escrow.BalanceArguments{Creator: fixtures.Creator1.Account()}, &escrowed)
	assert.Nil(t, err, "Escrow.Balance")
	assert.Equal(t, "0", escrowed.Balance, "escrow not cleared")

	var events node.EventsReply
	err = client.Call("Node.Events", node.EventsArguments{Start: 1, Count: 100}, &events)
	assert.Nil(t, err, "Node.Events")
	names := []string{}
	for _, e := range events.Events {
		names = append(names, string(e.Name))
	}
	assert.Equal(t, []string{"RoleGranted", "RoleGranted", "RoleGranted", "NewGameRegistered", "GameBought", "GameBenefitsWithdrew"}, names, "wrong event sequence")
}

func TestErrorsReachClient(t *testing.T) {
	_, client := setup(t)

	var reply games.GetReply
	err := client.Call("Games.Get", games.GetArguments{ID: 42}, &reply)
	assert.NotNil(t, err, "missing game found")
	assert.Equal(t, fault.ListingNotFound.Error(), err.Error(), "wrong error text")

	buy := licenses.BuyArguments{ID: 1, Payment: "1"}
	buy.Signed, _ = auth.Sign(fixtures.User1, licenses.MethodBuy, 99, buy.Fields()...)
	err = client.Call("Licenses.Buy", buy, &licenses.BuyReply{})
	assert.NotNil(t, err, "stale nonce accepted")
	assert.Equal(t, fault.InvalidNonce.Error(), err.Error(), "wrong error text")
}
