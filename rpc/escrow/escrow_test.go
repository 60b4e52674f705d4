// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package escrow_test

import (
	"os"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/fixtures"
	"github.com/bitmark-inc/gamekeysd/rpc/access"
	"github.com/bitmark-inc/gamekeysd/rpc/escrow"
	rpcfixtures "github.com/bitmark-inc/gamekeysd/rpc/fixtures"
	"github.com/bitmark-inc/gamekeysd/rpc/games"
	"github.com/bitmark-inc/gamekeysd/rpc/licenses"
	"github.com/bitmark-inc/gamekeysd/rpc/treasury"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func withdraw(t *testing.T, l *rpcfixtures.Ledger, e *escrow.Escrow) (string, error) {
	arguments := escrow.WithdrawArguments{}
	arguments.Signed = l.Sign(t, fixtures.Creator1, escrow.MethodWithdraw, arguments.Fields()...)

	var reply escrow.WithdrawReply
	err := e.Withdraw(&arguments, &reply)
	return reply.Amount, err
}

func TestWithdraw(t *testing.T) {
	l := rpcfixtures.NewLedger(t)
	e := escrow.New(l.Log, l.Sequencer)
	creator := fixtures.Creator1.Account()

	// not yet a creator
	_, err := withdraw(t, l, e)
	assert.Equal(t, fault.Unauthorized, err, "withdraw by non creator")

	add := access.AddCreatorArguments{Account: creator}
	add.Signed = l.Sign(t, fixtures.Admin, access.MethodAddCreator, add.Fields()...)
	assert.Nil(t, access.New(l.Log, l.Sequencer).AddCreator(&add, &access.AddCreatorReply{}), "add creator")

	_, err = withdraw(t, l, e)
	assert.Equal(t, fault.EmptyBalance, err, "withdrew nothing")

	register := games.RegisterArguments{Title: "Snake", Price: "5"}
	register.Signed = l.Sign(t, fixtures.Creator1, games.MethodRegister, register.Fields()...)
	assert.Nil(t, games.New(l.Log, l.Sequencer).Register(&register, &games.RegisterReply{}), "register")

	buy := licenses.BuyArguments{ID: 1, Payment: "6000000000000000"}
	buy.Signed = l.Sign(t, fixtures.User1, licenses.MethodBuy, buy.Fields()...)
	assert.Nil(t, licenses.New(l.Log, l.Sequencer).Buy(&buy, &licenses.BuyReply{}), "buy")

	var balance escrow.BalanceReply
	err = e.Balance(&escrow.BalanceArguments{Creator: creator}, &balance)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, "5000000000000000", balance.Balance, "creator credited with payment not price")

	amount, err := withdraw(t, l, e)
	assert.Nil(t, err, "wrong Withdraw")
	assert.Equal(t, "5000000000000000", amount, "wrong amount")

	err = e.Balance(&escrow.BalanceArguments{Creator: creator}, &balance)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, "0", balance.Balance, "balance not cleared")

	var funds treasury.BalanceReply
	err = treasury.New(l.Log, l.Sequencer).Balance(&treasury.BalanceArguments{Account: creator}, &funds)
	assert.Nil(t, err, "wrong treasury Balance")
	expected := new(uint256.Int).Add(rpcfixtures.Funds, uint256.NewInt(5000000000000000))
	assert.Equal(t, expected.Dec(), funds.Balance, "proceeds not paid")

	_, err = withdraw(t, l, e)
	assert.Equal(t, fault.EmptyBalance, err, "withdrew twice")
}
