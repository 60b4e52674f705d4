// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - records of successful ledger state changes
//
// one record per successful triggering call, written to the event
// log in the same batch as the change it describes
package event

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/role"
)

// Name - the event type tag
type Name string

// the defined events
const (
	NewGameRegisteredName    Name = "NewGameRegistered"
	GameBoughtName           Name = "GameBought"
	GameBenefitsWithdrewName Name = "GameBenefitsWithdrew"
	RoleGrantedName          Name = "RoleGranted"
)

// Event - payload of a record
type Event interface {
	Name() Name
}

// NewGameRegistered - a listing was created
type NewGameRegistered struct {
	Creator   account.Account `json:"creator"`
	ListingID uint64          `json:"gameId"`
	Price     *uint256.Int    `json:"price"`
}

// GameBought - a license was minted
type GameBought struct {
	Buyer     account.Account `json:"buyer"`
	ListingID uint64          `json:"gameId"`
	TokenID   uint64          `json:"tokenId"`
	Price     *uint256.Int    `json:"price"`
}

// GameBenefitsWithdrew - a creator was paid their escrow
type GameBenefitsWithdrew struct {
	Creator account.Account `json:"creator"`
	Amount  *uint256.Int    `json:"amount"`
}

// RoleGranted - an account gained a role
type RoleGranted struct {
	Role    role.Role       `json:"role"`
	Account account.Account `json:"account"`
	Sender  account.Account `json:"sender"`
}

// Name - event tag
func (NewGameRegistered) Name() Name { return NewGameRegisteredName }

// Name - event tag
func (GameBought) Name() Name { return GameBoughtName }

// Name - event tag
func (GameBenefitsWithdrew) Name() Name { return GameBenefitsWithdrewName }

// Name - event tag
func (RoleGranted) Name() Name { return RoleGrantedName }

// empty payload for decoding
func newEvent(name Name) Event {
	switch name {
	case NewGameRegisteredName:
		return &NewGameRegistered{}
	case GameBoughtName:
		return &GameBought{}
	case GameBenefitsWithdrewName:
		return &GameBenefitsWithdrew{}
	case RoleGrantedName:
		return &RoleGranted{}
	default:
		return nil
	}
}
