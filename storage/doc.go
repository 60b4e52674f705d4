// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ⧺            = concatenation of byte data
// 3. id           = big endian uint64 (8 bytes)
// 4. account      = 20 byte account
// 5. fingerprint  = keccak256 of the listing title (32 bytes)
// 6. amount       = big endian 256 bit unsigned (32 bytes)
// 7. role         = single byte role code
//
// Settings:
//
//   S ⧺ name                   - ledger attributes
//                                data: administrator / super administrator / address: account
//                                      created: big endian unix nanoseconds
//
// Access control:
//
//   R ⧺ account ⧺ role         - role membership
//                                data: 0x01
//
// Counters:
//
//   N ⧺ name                   - last assigned value of a sequence ("game", "license", "event")
//                                data: big endian uint64
//
// Listings:
//
//   G ⧺ id                     - listing record
//                                data: packed listing
//   F ⧺ fingerprint            - title uniqueness index
//                                data: id
//
// Licenses:
//
//   L ⧺ token id               - license record
//                                data: listing id ⧺ owner
//   O ⧺ owner                  - number of licenses held
//                                data: count
//   K ⧺ owner ⧺ count          - list of owned licenses
//                                data: token id
//
// Escrow:
//
//   E ⧺ account                - creator proceeds awaiting withdrawal
//                                data: amount (absent when zero)
//
// Treasury:
//
//   W ⧺ account                - spendable funds
//                                data: amount (absent when zero)
//
// Request authentication:
//
//   C ⧺ account                - next request nonce
//                                data: big endian uint64
//
// Events:
//
//   V ⧺ sequence               - emitted events
//                                data: JSON encoded event record
//
// Testing:
//   Z ⧺ key                    - testing data
package storage
