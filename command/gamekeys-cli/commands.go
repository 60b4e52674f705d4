// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a new key, will not store in config file",
			Action: runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise gamekeys-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, x",
					Value: "",
					Usage: "*gamekeysd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " using existing hex private `KEY`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file, set it as default",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " using existing hex private `KEY`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "info",
			Usage:  "display gamekeys-cli identities",
			Action: runInfo,
		},
		{
			Name:   "password",
			Usage:  "change default identity's password",
			Action: runChangePassword,
		},
		{
			Name:      "account",
			Usage:     "display the roles of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
			},
			Action: runAccount,
		},
		{
			Name:      "add-creator",
			Usage:     "grant the game creator role (administrator only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*identity name or `ACCOUNT` to become a creator",
				},
			},
			Action: runAddCreator,
		},
		{
			Name:      "register",
			Usage:     "list a new game (game creator only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: "*game title `STRING`",
				},
				cli.StringFlag{
					Name:  "cover, u",
					Value: "",
					Usage: " cover image `URL`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " game description `STRING`",
				},
				cli.StringFlag{
					Name:  "price, m",
					Value: "",
					Usage: "*price in units of 0.001 ether `UNITS`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "game",
			Usage:     "display a game",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "game, g",
					Value: 0,
					Usage: "*game `ID`",
				},
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: "*or game `TITLE`",
				},
			},
			Action: runGame,
		},
		{
			Name:  "games",
			Usage: "list games",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start from game `ID`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runGames,
		},
		{
			Name:      "buy",
			Usage:     "buy a license for a game",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "game, g",
					Value: 0,
					Usage: "*game `ID`",
				},
				cli.StringFlag{
					Name:  "payment, m",
					Value: "",
					Usage: " payment in wei `AMOUNT` default is the game price",
				},
			},
			Action: runBuy,
		},
		{
			Name:  "licenses",
			Usage: "list licenses owned",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start point `COUNT`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runLicenses,
		},
		{
			Name:  "escrow",
			Usage: "display a creator's escrow balance",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "creator, a",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
			},
			Action: runEscrow,
		},
		{
			Name:   "withdraw",
			Usage:  "withdraw the identity's escrow balance",
			Action: runWithdraw,
		},
		{
			Name:  "funds",
			Usage: "display spendable funds",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " identity name or `ACCOUNT` default is global identity",
				},
			},
			Action: runFunds,
		},
		{
			Name:   "node-info",
			Usage:  "display gamekeysd status",
			Action: runNodeInfo,
		},
		{
			Name:  "events",
			Usage: "list ledger events",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " start from event `SEQUENCE`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runEvents,
		},
		{
			Name:  "version",
			Usage: "display gamekeys-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
}
