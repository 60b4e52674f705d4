// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/rpc/auth"
)

// Nonce - the nonce the next signed request from an account must use
func (client *Client) Nonce(a account.Account) (uint64, error) {
	var reply auth.NonceReply
	if err := client.call("Auth.Nonce", auth.NonceArguments{Account: a}, &reply); err != nil {
		return 0, err
	}
	return reply.Nonce, nil
}

// sign a request with the key's current nonce
func (client *Client) sign(key *account.PrivateKey, method string, fields ...[]byte) (auth.Signed, error) {
	n, err := client.Nonce(key.Account())
	if err != nil {
		return auth.Signed{}, err
	}
	return auth.Sign(key, method, n, fields...)
}
