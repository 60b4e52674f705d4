// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/gamekeysd/account"
)

type balanceReply struct {
	Account account.Account `json:"account"`
	Balance string          `json:"balance"`
}

func runEscrow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	creator, err := accountFromFlag(c, m, c.String("creator"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	balance, err := client.Escrow(creator)
	if nil != err {
		return err
	}

	return printJson(m.w, balanceReply{Account: creator, Balance: balance})
}

type withdrawReply struct {
	Creator account.Account `json:"creator"`
	Amount  string          `json:"amount"`
}

func runWithdraw(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := signingKey(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	amount, err := client.Withdraw(key)
	if nil != err {
		return err
	}

	return printJson(m.w, withdrawReply{Creator: key.Account(), Amount: amount})
}

func runFunds(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, err := accountFromFlag(c, m, c.String("account"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	balance, err := client.Funds(a)
	if nil != err {
		return err
	}

	return printJson(m.w, balanceReply{Account: a, Balance: balance})
}
