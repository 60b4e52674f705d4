// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/gamekeys"
	"github.com/bitmark-inc/gamekeysd/role"
	"github.com/bitmark-inc/gamekeysd/rpc/auth"
	"github.com/bitmark-inc/gamekeysd/rpc/ratelimit"
)

// MethodAddCreator - signed method name
const MethodAddCreator = "Access.AddCreator"

// Access - type for the RPC
type Access struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Sequencer auth.Sequencer
}

// New - create the access control service
func New(log *logger.L, sequencer auth.Sequencer) *Access {
	return &Access{
		Log:       log,
		Limiter:   ratelimit.New("Access"),
		Sequencer: sequencer,
	}
}

// ---

// AddCreatorArguments - arguments for RPC request
type AddCreatorArguments struct {
	auth.Signed
	Account account.Account `json:"account"`
}

// Fields - the signed request fields
func (arguments *AddCreatorArguments) Fields() [][]byte {
	return [][]byte{arguments.Account.Bytes()}
}

// AddCreatorReply - results from RPC request
type AddCreatorReply struct {
	Account account.Account `json:"account"`
	Roles   []role.Role     `json:"roles"`
}

// AddCreator - grant the game creator role, caller must be an administrator
func (a *Access) AddCreator(arguments *AddCreatorArguments, reply *AddCreatorReply) error {

	if err := ratelimit.LimitSigned(a.Limiter); nil != err {
		return err
	}

	a.Log.Infof("Access.AddCreator: caller: %s  account: %s", arguments.Caller, arguments.Account)

	if err := auth.Authorise(a.Sequencer, &arguments.Signed, MethodAddCreator, arguments.Fields()...); nil != err {
		return err
	}

	return a.Sequencer.Submit(func(l *gamekeys.Ledger) error {
		if err := l.AddGameCreator(arguments.Caller, arguments.Account); nil != err {
			return err
		}
		reply.Account = arguments.Account
		reply.Roles = l.Roles(arguments.Account)
		return nil
	})
}

// ---

// InfoArguments - arguments for RPC request
type InfoArguments struct {
	Account account.Account `json:"account"`
}

// InfoReply - results from RPC request
type InfoReply struct {
	Admin              account.Account `json:"admin"`
	SuperAdministrator account.Account `json:"superAdministrator"`
	Account            account.Account `json:"account"`
	Roles              []role.Role     `json:"roles"`
	IsAdmin            bool            `json:"isAdmin"`
	IsGameCreator      bool            `json:"isGameCreator"`
}

// Info - the administrator and the roles held by an account
func (a *Access) Info(arguments *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	return a.Sequencer.Submit(func(l *gamekeys.Ledger) error {
		reply.Admin = l.Admin()
		reply.SuperAdministrator = l.SuperAdministrator()
		reply.Account = arguments.Account
		reply.Roles = l.Roles(arguments.Account)
		reply.IsAdmin = l.IsAdmin(arguments.Account)
		reply.IsGameCreator = l.IsGameCreator(arguments.Account)
		return nil
	})
}
