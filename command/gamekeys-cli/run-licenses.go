// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type buyReply struct {
	GameID  uint64 `json:"gameId,string"`
	TokenID uint64 `json:"tokenId,string"`
	Payment string `json:"payment"`
}

func runBuy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id := c.Uint64("game")
	if 0 == id {
		return ErrRequiredGame
	}

	key, err := signingKey(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	payment := c.String("payment")
	if "" == payment {
		game, err := client.Game(id)
		if nil != err {
			return err
		}
		payment = game.Price
	}

	tokenID, err := client.Buy(key, id, payment)
	if nil != err {
		return err
	}

	return printJson(m.w, buyReply{
		GameID:  id,
		TokenID: tokenID,
		Payment: payment,
	})
}

func runLicenses(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := accountFromFlag(c, m, c.String("owner"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Licenses(owner, c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
