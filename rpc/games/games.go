// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package games

import (
	"time"

	"github.com/holiman/uint256"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/gamekeys"
	"github.com/bitmark-inc/gamekeysd/listing"
	"github.com/bitmark-inc/gamekeysd/rpc/auth"
	"github.com/bitmark-inc/gamekeysd/rpc/ratelimit"
)

const maximumGames = 100

// MethodRegister - signed method name
const MethodRegister = "Games.Register"

// Games - type for the RPC
type Games struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Sequencer auth.Sequencer
}

// New - create the listing service
func New(log *logger.L, sequencer auth.Sequencer) *Games {
	return &Games{
		Log:       log,
		Limiter:   ratelimit.New("Games"),
		Sequencer: sequencer,
	}
}

// Info - structure of a listing in responses
//
// price is in wei
type Info struct {
	ID          uint64              `json:"id,string"`
	Title       string              `json:"title"`
	CoverURL    string              `json:"cover"`
	Description string              `json:"description"`
	Creator     account.Account     `json:"creator"`
	Price       string              `json:"price"`
	Fingerprint listing.Fingerprint `json:"fingerprint"`
	CreatedAt   time.Time           `json:"createdAt"`
}

func toInfo(l *listing.Listing) Info {
	return Info{
		ID:          l.ID,
		Title:       l.Title,
		CoverURL:    l.CoverURL,
		Description: l.Description,
		Creator:     l.Creator,
		Price:       l.Price.Dec(),
		Fingerprint: l.Fingerprint,
		CreatedAt:   l.CreatedAt,
	}
}

// ---

// RegisterArguments - arguments for RPC request
//
// price is a decimal count of 0.001 ether units
type RegisterArguments struct {
	auth.Signed
	Title       string `json:"title"`
	CoverURL    string `json:"cover"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// Fields - the signed request fields
func (arguments *RegisterArguments) Fields() [][]byte {
	return [][]byte{
		[]byte(arguments.Title),
		[]byte(arguments.CoverURL),
		[]byte(arguments.Description),
		[]byte(arguments.Price),
	}
}

// RegisterReply - results from RPC request
type RegisterReply struct {
	ID uint64 `json:"id,string"`
}

// Register - list a new game, caller must be a game creator
func (games *Games) Register(arguments *RegisterArguments, reply *RegisterReply) error {

	if err := ratelimit.LimitSigned(games.Limiter); nil != err {
		return err
	}

	games.Log.Infof("Games.Register: caller: %s  title: %q  price: %s", arguments.Caller, arguments.Title, arguments.Price)

	units, err := uint256.FromDecimal(arguments.Price)
	if nil != err {
		return fault.InvalidAmount
	}

	if err := auth.Authorise(games.Sequencer, &arguments.Signed, MethodRegister, arguments.Fields()...); nil != err {
		return err
	}

	return games.Sequencer.Submit(func(l *gamekeys.Ledger) error {
		id, err := l.RegisterNewGame(arguments.Caller, arguments.Title, arguments.CoverURL, arguments.Description, units)
		if nil != err {
			return err
		}
		reply.ID = id
		return nil
	})
}

// ---

// GetArguments - arguments for RPC request
type GetArguments struct {
	ID uint64 `json:"id,string"`
}

// GetReply - results from RPC request
type GetReply struct {
	Game Info `json:"game"`
}

// Get - fetch one listing
func (games *Games) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(games.Limiter); nil != err {
		return err
	}

	return games.Sequencer.Submit(func(l *gamekeys.Ledger) error {
		game, err := l.GetGameInfosByID(arguments.ID)
		if nil != err {
			return err
		}
		reply.Game = toInfo(game)
		return nil
	})
}

// ---

// FindArguments - arguments for RPC request
type FindArguments struct {
	Title string `json:"title"`
}

// Find - fetch the listing registered under a title
func (games *Games) Find(arguments *FindArguments, reply *GetReply) error {

	if err := ratelimit.Limit(games.Limiter); nil != err {
		return err
	}

	if "" == arguments.Title {
		return fault.MissingParameters
	}

	return games.Sequencer.Submit(func(l *gamekeys.Ledger) error {
		game, err := l.FindGameByTitle(arguments.Title)
		if nil != err {
			return err
		}
		reply.Game = toInfo(game)
		return nil
	})
}

// ---

// ExistsReply - results from RPC request
type ExistsReply struct {
	Exists bool `json:"exists"`
}

// Exists - check a listing identifier
func (games *Games) Exists(arguments *GetArguments, reply *ExistsReply) error {

	if err := ratelimit.Limit(games.Limiter); nil != err {
		return err
	}

	return games.Sequencer.Submit(func(l *gamekeys.Ledger) error {
		reply.Exists = l.IsGameRegisteredByID(arguments.ID)
		return nil
	})
}

// ---

// ListArguments - arguments for RPC request
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListReply - results from RPC request
type ListReply struct {
	Games     []Info `json:"games"`
	Total     uint64 `json:"total,string"`
	NextStart uint64 `json:"nextStart,string"`
}

// List - listings in identifier order from start
func (games *Games) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitPage(games.Limiter, arguments.Count, maximumGames); nil != err {
		return err
	}

	return games.Sequencer.Submit(func(l *gamekeys.Ledger) error {
		listings, err := l.ListGames(arguments.Start, arguments.Count)
		if nil != err {
			return err
		}

		reply.Games = make([]Info, len(listings))
		reply.NextStart = arguments.Start
		for i, game := range listings {
			reply.Games[i] = toInfo(game)
			reply.NextStart = game.ID + 1
		}
		reply.Total = l.GameCount()
		return nil
	})
}
