// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC over TLS access to the ledger
//
// services:
//
//   Access.AddCreator  Access.Info
//   Auth.Nonce
//   Games.Register     Games.Get     Games.Exists   Games.List
//   Licenses.Buy       Licenses.Get  Licenses.Balance  Licenses.List
//   Escrow.Balance     Escrow.Withdraw
//   Treasury.Balance
//   Node.Info          Node.Events
//
// Register, Buy, AddCreator and Withdraw are signed requests, see
// package auth
package rpc
