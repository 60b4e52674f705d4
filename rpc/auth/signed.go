// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auth - signed request verification and account nonces
//
// a mutating request carries the caller, the caller's next nonce and
// a secp256k1 signature over
//
//   keccak256("gamekeys" ⧺ method ⧺ nonce ⧺ field…)
//
// where method and each field are varint length prefixed and the
// nonce is 8 bytes big endian
package auth

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/gamekeys"
	"github.com/bitmark-inc/gamekeysd/nonce"
	"github.com/bitmark-inc/gamekeysd/storage"
	"github.com/bitmark-inc/gamekeysd/util"
)

const domain = "gamekeys"

// Sequencer - serialised access to the ledger
type Sequencer interface {
	Submit(fn func(*gamekeys.Ledger) error) error
}

// Signed - authentication part of a mutating request
type Signed struct {
	Caller    account.Account `json:"caller"`
	Nonce     uint64          `json:"nonce,string"`
	Signature hexutil.Bytes   `json:"signature"`
}

// Digest - the hash a request signature covers
func Digest(method string, n uint64, fields ...[]byte) []byte {
	buffer := []byte(domain)
	buffer = util.AppendBytes(buffer, []byte(method))
	buffer = append(buffer, Uint64(n)...)
	for _, f := range fields {
		buffer = util.AppendBytes(buffer, f)
	}
	return account.Digest(buffer)
}

// Sign - create the authentication part for a request
func Sign(key *account.PrivateKey, method string, n uint64, fields ...[]byte) (Signed, error) {
	signature, err := key.Sign(Digest(method, n, fields...))
	if nil != err {
		return Signed{}, err
	}
	return Signed{
		Caller:    key.Account(),
		Nonce:     n,
		Signature: signature,
	}, nil
}

// Verify - check the signature was made by the caller
func (s *Signed) Verify(method string, fields ...[]byte) error {
	if s.Caller.IsZero() {
		return fault.InvalidAccount
	}
	signer, err := account.Recover(Digest(method, s.Nonce, fields...), s.Signature)
	if nil != err {
		return err
	}
	if signer != s.Caller {
		return fault.InvalidSignature
	}
	return nil
}

// Authorise - verify a request and consume its nonce
//
// the nonce is committed on its own, so it stays used even when the
// operation that follows fails
func Authorise(sequencer Sequencer, s *Signed, method string, fields ...[]byte) error {
	if nil == s {
		return fault.MissingParameters
	}
	if err := s.Verify(method, fields...); nil != err {
		return err
	}
	return sequencer.Submit(func(l *gamekeys.Ledger) error {
		return l.Atomic(func(trx storage.Transaction, pools *storage.Pools) error {
			return nonce.Consume(trx, pools, s.Caller, s.Nonce)
		})
	})
}

// Uint64 - field encoding of an identifier
func Uint64(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}

// Amount - field encoding of an amount, nil encodes as zero
func Amount(amount *uint256.Int) []byte {
	if nil == amount {
		amount = uint256.NewInt(0)
	}
	b := amount.Bytes32()
	return b[:]
}
