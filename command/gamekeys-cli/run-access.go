// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, err := accountFromFlag(c, m, c.String("account"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Roles(a)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runAddCreator(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	value := c.String("account")
	if "" == value {
		return ErrRequiredIdentity
	}
	creator, err := m.config.Account(value)
	if nil != err {
		return err
	}

	key, err := signingKey(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	err = client.AddCreator(key, creator)
	if nil != err {
		return err
	}

	reply, err := client.Roles(creator)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
