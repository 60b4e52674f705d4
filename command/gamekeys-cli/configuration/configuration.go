// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - gamekeys-cli identities and connection
package configuration

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/fault"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	Chain           string              `json:"chain"`
	Connect         string              `json:"connect"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and encrypted data
type Identity struct {
	Description string          `json:"description"`
	Account     account.Account `json:"account"`
	Data        string          `json:"data"`
	Salt        string          `json:"salt"`
}

// InfoIdentity - public view of an identity
type InfoIdentity struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Account     account.Account `json:"account"`
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	options := &Configuration{}
	dec := json.NewDecoder(f)
	err = dec.Decode(options)
	if nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, ErrIdentityNameNotFound
	}

	return &id, nil
}

// Account - the account of a named identity, or the literal account
func (config *Configuration) Account(name string) (account.Account, error) {
	id, err := config.Identity(name)
	if nil == err {
		return id.Account, nil
	}

	a, err := account.FromString(name)
	if nil != err {
		return account.Zero, ErrIdentityNameNotFound
	}
	return a, nil
}

// Private - decrypt the signing key of a named identity
func (config *Configuration) Private(password string, name string) (*account.PrivateKey, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return decryptIdentity(password, id)
}

// AddIdentity - store an encrypted identity
//
// a nil key creates a new random one
func (config *Configuration) AddIdentity(name string, description string, key *account.PrivateKey, password string) error {

	if _, ok := config.Identities[name]; ok {
		return ErrIdentityNameAlreadyExists
	}

	if nil == key {
		var err error
		key, err = account.NewPrivateKey()
		if nil != err {
			return err
		}
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(hex.EncodeToString(key.Bytes()), secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     key.Account(),
		Data:        encrypted,
		Salt:        salt.String(),
	}

	return nil
}

// ChangePassword - re-encrypt an identity under a new password
func (config *Configuration) ChangePassword(name string, oldPassword string, newPassword string) error {
	key, err := config.Private(oldPassword, name)
	if nil != err {
		return err
	}

	id := config.Identities[name]
	delete(config.Identities, name)

	err = config.AddIdentity(name, id.Description, key, newPassword)
	if nil != err {
		config.Identities[name] = id
	}
	return err
}

// Info - identities without their encrypted data, sorted by name
func (config *Configuration) Info() []InfoIdentity {
	info := make([]InfoIdentity, 0, len(config.Identities))
	for name, id := range config.Identities {
		info = append(info, InfoIdentity{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
		})
	}
	sort.Slice(info, func(i, j int) bool {
		return info[i].Name < info[j].Name
	})
	return info
}

// PrivateKeyFromHex - parse an optional 0x prefixed 32 byte key
func PrivateKeyFromHex(s string) (*account.PrivateKey, error) {
	if len(s) > 2 && "0x" == s[:2] {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if nil != err || 32 != len(b) {
		return nil, fault.InvalidPrivateKey
	}
	return account.PrivateKeyFromBytes(b)
}
