// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/command/gamekeys-cli/rpccalls"
)

// check if file exists, returning whether it is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}

// the selected identity name, falling back to the default
func identityName(c *cli.Context, m *metadata) (string, error) {
	name := c.GlobalString("identity")
	if "" == name && nil != m.config {
		name = m.config.DefaultIdentity
	}
	if "" == name {
		return "", ErrRequiredIdentity
	}
	return name, nil
}

// account of a flag value: identity name, literal account or the
// selected identity when blank
func accountFromFlag(c *cli.Context, m *metadata, value string) (account.Account, error) {
	if "" == value {
		name, err := identityName(c, m)
		if nil != err {
			return account.Zero, err
		}
		value = name
	}
	return m.config.Account(value)
}

// decrypt the selected identity's signing key
func signingKey(c *cli.Context, m *metadata) (*account.PrivateKey, error) {
	name, err := identityName(c, m)
	if nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptCheckPassword()
		if nil != err {
			return nil, err
		}
	}

	return m.config.Private(password, name)
}

func connect(m *metadata) (*rpccalls.Client, error) {
	if nil == m.config {
		return nil, ErrNoConfiguration
	}
	return rpccalls.NewClient(m.config.Connect, m.verbose, m.e)
}
