// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gamekeys - registry, marketplace and escrow ledger
//
// The Ledger owns the role table, the listings, the license tokens
// and the creator escrow balances.  Every mutating operation runs as
// a single storage transaction: either all of its writes and events
// become visible or none do.
//
// An operation called while another is still executing on the same
// ledger (for example from inside a Transferrer) joins the open
// transaction behind a savepoint; if it fails only its own writes
// are discarded.
//
// A Ledger must only be used from one goroutine at a time, the
// Sequencer provides this for concurrent clients.
package gamekeys
