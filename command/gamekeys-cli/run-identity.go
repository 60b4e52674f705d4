// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/command/gamekeys-cli/configuration"
)

type generatedKey struct {
	PrivateKey string          `json:"privateKey"`
	Account    account.Account `json:"account"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := account.NewPrivateKey()
	if nil != err {
		return err
	}

	return printJson(m.w, generatedKey{
		PrivateKey: "0x" + hex.EncodeToString(key.Bytes()),
		Account:    key.Account(),
	})
}

// optional existing key
func checkOptionalKey(s string) (*account.PrivateKey, error) {
	if "" == s {
		return nil, nil
	}
	return configuration.PrivateKeyFromHex(s)
}

func newIdentityPassword(c *cli.Context) (string, error) {
	password := c.GlobalString("password")
	if "" != password {
		if len(password) < minimumPasswordLength {
			return "", ErrInvalidPasswordLength
		}
		return password, nil
	}
	return promptNewPassword()
}

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.GlobalString("identity")
	if "" == name {
		return ErrRequiredIdentity
	}

	connect := c.String("connect")
	if "" == connect {
		return ErrRequiredConnect
	}

	description := c.String("description")
	if "" == description {
		return ErrRequiredDescription
	}

	key, err := checkOptionalKey(c.String("key"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "chain: %s\n", m.chain)
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// Create the folder hierarchy for configuration if not existing
	configDir := path.Dir(m.file)
	d, err := checkFileExists(configDir)
	if nil != err {
		if err := os.MkdirAll(configDir, 0o750); nil != err {
			return err
		}
	} else if !d {
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	config := &configuration.Configuration{
		DefaultIdentity: name,
		Chain:           m.chain,
		Connect:         connect,
		Identities:      make(map[string]configuration.Identity),
	}

	password, err := newIdentityPassword(c)
	if nil != err {
		return err
	}

	err = config.AddIdentity(name, description, key, password)
	if nil != err {
		return err
	}

	m.config = config
	m.save = true

	return printJson(m.w, config.Info())
}

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.GlobalString("identity")
	if "" == name {
		return ErrRequiredIdentity
	}

	description := c.String("description")
	if "" == description {
		return ErrRequiredDescription
	}

	key, err := checkOptionalKey(c.String("key"))
	if nil != err {
		return err
	}

	password, err := newIdentityPassword(c)
	if nil != err {
		return err
	}

	err = m.config.AddIdentity(name, description, key, password)
	if nil != err {
		return err
	}

	m.config.DefaultIdentity = name
	m.save = true

	return printJson(m.w, m.config.Info())
}

type infoReply struct {
	DefaultIdentity string                       `json:"default_identity"`
	Chain           string                       `json:"chain"`
	Connect         string                       `json:"connect"`
	Identities      []configuration.InfoIdentity `json:"identities"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	return printJson(m.w, infoReply{
		DefaultIdentity: m.config.DefaultIdentity,
		Chain:           m.config.Chain,
		Connect:         m.config.Connect,
		Identities:      m.config.Info(),
	})
}

func runChangePassword(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := identityName(c, m)
	if nil != err {
		return err
	}

	oldPassword := c.GlobalString("password")
	if "" == oldPassword {
		oldPassword, err = promptCheckPassword()
		if nil != err {
			return err
		}
	}

	newPassword, err := promptNewPassword()
	if nil != err {
		return err
	}

	err = m.config.ChangePassword(name, oldPassword, newPassword)
	if nil != err {
		return err
	}

	m.save = true
	return nil
}
