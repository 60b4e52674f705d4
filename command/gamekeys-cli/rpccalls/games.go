// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/rpc/games"
)

// RegisterData - a new listing, price in whole units
type RegisterData struct {
	Title       string
	CoverURL    string
	Description string
	Price       string
}

// Register - list a game, key must belong to a game creator
func (client *Client) Register(key *account.PrivateKey, data *RegisterData) (uint64, error) {
	arguments := games.RegisterArguments{
		Title:       data.Title,
		CoverURL:    data.CoverURL,
		Description: data.Description,
		Price:       data.Price,
	}

	signed, err := client.sign(key, games.MethodRegister, arguments.Fields()...)
	if err != nil {
		return 0, err
	}
	arguments.Signed = signed

	var reply games.RegisterReply
	if err := client.call(games.MethodRegister, &arguments, &reply); err != nil {
		return 0, err
	}
	return reply.ID, nil
}

// Game - fetch one listing
func (client *Client) Game(id uint64) (*games.Info, error) {
	var reply games.GetReply
	if err := client.call("Games.Get", games.GetArguments{ID: id}, &reply); err != nil {
		return nil, err
	}
	return &reply.Game, nil
}

// FindGame - fetch the listing registered under a title
func (client *Client) FindGame(title string) (*games.Info, error) {
	var reply games.GetReply
	if err := client.call("Games.Find", games.FindArguments{Title: title}, &reply); err != nil {
		return nil, err
	}
	return &reply.Game, nil
}

// Games - a page of listings from start
func (client *Client) Games(start uint64, count int) (*games.ListReply, error) {
	var reply games.ListReply
	if err := client.call("Games.List", games.ListArguments{Start: start, Count: count}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
