// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/rpc/licenses"
)

// Buy - pay for a game, payment in wei
func (client *Client) Buy(key *account.PrivateKey, id uint64, payment string) (uint64, error) {
	arguments := licenses.BuyArguments{
		ID:      id,
		Payment: payment,
	}

	signed, err := client.sign(key, licenses.MethodBuy, arguments.Fields()...)
	if err != nil {
		return 0, err
	}
	arguments.Signed = signed

	var reply licenses.BuyReply
	if err := client.call(licenses.MethodBuy, &arguments, &reply); err != nil {
		return 0, err
	}
	return reply.TokenID, nil
}

// LicenseCount - number of licenses held by an account
func (client *Client) LicenseCount(owner account.Account) (uint64, error) {
	var reply licenses.BalanceReply
	if err := client.call("Licenses.Balance", licenses.BalanceArguments{Owner: owner}, &reply); err != nil {
		return 0, err
	}
	return reply.Count, nil
}

// Licenses - a page of an owner's licenses
func (client *Client) Licenses(owner account.Account, start uint64, count int) (*licenses.ListReply, error) {
	arguments := licenses.ListArguments{
		Owner: owner,
		Start: start,
		Count: count,
	}

	var reply licenses.ListReply
	if err := client.call("Licenses.List", arguments, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
