// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/rpc/access"
)

// AddCreator - grant the game creator role, key must belong to the administrator
func (client *Client) AddCreator(key *account.PrivateKey, creator account.Account) error {
	arguments := access.AddCreatorArguments{Account: creator}

	signed, err := client.sign(key, access.MethodAddCreator, arguments.Fields()...)
	if err != nil {
		return err
	}
	arguments.Signed = signed

	return client.call(access.MethodAddCreator, &arguments, &access.AddCreatorReply{})
}

// Roles - administrators and the roles held by an account
func (client *Client) Roles(a account.Account) (*access.InfoReply, error) {
	var reply access.InfoReply
	if err := client.call("Access.Info", access.InfoArguments{Account: a}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
