// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/gamekeysd/command/gamekeys-cli/rpccalls"
	"github.com/bitmark-inc/gamekeysd/rpc/games"
)

type registerReply struct {
	ID uint64 `json:"id,string"`
}

func runRegister(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	data := &rpccalls.RegisterData{
		Title:       c.String("title"),
		CoverURL:    c.String("cover"),
		Description: c.String("description"),
		Price:       c.String("price"),
	}
	if "" == data.Title {
		return ErrRequiredTitle
	}
	if "" == data.Price {
		return ErrRequiredPrice
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

	id, err := client.Register(key, data)
	if nil != err {
		return err
	}

	return printJson(m.w, registerReply{ID: id})
}

func runGame(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id := c.Uint64("game")
	title := c.String("title")
	if 0 == id && "" == title {
		return ErrRequiredGameOrTitle
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	var game *games.Info
	if 0 != id {
		game, err = client.Game(id)
	} else {
		game, err = client.FindGame(title)
	}
	if nil != err {
		return err
	}

	return printJson(m.w, game)
}

func runGames(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Games(c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
