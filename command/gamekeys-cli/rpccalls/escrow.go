// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/rpc/escrow"
	"github.com/bitmark-inc/gamekeysd/rpc/treasury"
)

// Escrow - wei held for a creator
func (client *Client) Escrow(creator account.Account) (string, error) {
	var reply escrow.BalanceReply
	if err := client.call("Escrow.Balance", escrow.BalanceArguments{Creator: creator}, &reply); err != nil {
		return "", err
	}
	return reply.Balance, nil
}

// Withdraw - move the key owner's whole escrow into its funds
func (client *Client) Withdraw(key *account.PrivateKey) (string, error) {
	arguments := escrow.WithdrawArguments{}

	signed, err := client.sign(key, escrow.MethodWithdraw, arguments.Fields()...)
	if err != nil {
		return "", err
	}
	arguments.Signed = signed

	var reply escrow.WithdrawReply
	if err := client.call(escrow.MethodWithdraw, &arguments, &reply); err != nil {
		return "", err
	}
	return reply.Amount, nil
}

// Funds - spendable wei of an account
func (client *Client) Funds(a account.Account) (string, error) {
	var reply treasury.BalanceReply
	if err := client.call("Treasury.Balance", treasury.BalanceArguments{Account: a}, &reply); err != nil {
		return "", err
	}
	return reply.Balance, nil
}
