// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/bitmark-inc/gamekeysd/fault"
)

// SignatureLength - recoverable secp256k1 signature [R || S || V]
const SignatureLength = crypto.SignatureLength

// PrivateKey - signing key for an account
type PrivateKey struct {
	key *ecdsa.PrivateKey
}

// NewPrivateKey - generate a random key
func NewPrivateKey() (*PrivateKey, error) {
	key, err := crypto.GenerateKey()
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes - restore a key from its 32 byte form
func PrivateKeyFromBytes(buffer []byte) (*PrivateKey, error) {
	key, err := crypto.ToECDSA(buffer)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// Bytes - the 32 byte private key
func (p *PrivateKey) Bytes() []byte {
	return crypto.FromECDSA(p.key)
}

// Account - the account controlled by this key
func (p *PrivateKey) Account() Account {
	return Account(crypto.PubkeyToAddress(p.key.PublicKey))
}

// Sign - sign a 32 byte digest
func (p *PrivateKey) Sign(digest []byte) ([]byte, error) {
	return crypto.Sign(digest, p.key)
}

// Digest - keccak256 of the concatenated parts
func Digest(parts ...[]byte) []byte {
	return crypto.Keccak256(parts...)
}

// Recover - the account that produced a signature over digest
func Recover(digest []byte, signature []byte) (Account, error) {
	if SignatureLength != len(signature) {
		return Zero, fault.InvalidSignature
	}
	publicKey, err := crypto.SigToPub(digest, signature)
	if nil != err {
		return Zero, fault.InvalidSignature
	}
	return Account(crypto.PubkeyToAddress(*publicKey)), nil
}
