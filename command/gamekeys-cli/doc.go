// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// gamekeys-cli - command line client for gamekeysd
//
// identities are kept encrypted in:
//
//	$XDG_CONFIG_HOME/gamekeys-cli/<chain>-gamekeys-cli.json
//
// typical session on a local node:
//
//	gamekeys-cli -c local -i admin setup -x 127.0.0.1:2130 -d "administrator" -k <hex key>
//	gamekeys-cli -i admin add-creator -a <creator account>
//	gamekeys-cli -i creator register -t Snake -p 5
//	gamekeys-cli -i player buy -g 1 -m 5000000000000000
//	gamekeys-cli -i creator withdraw
package main
