// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/gamekeysd/rpc/node"
)

// GetNodeInfo - request status from gamekeysd
func (client *Client) GetNodeInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.call("Node.Info", node.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

// Events - a page of ledger events from start
func (client *Client) Events(start uint64, count int) (*node.EventsReply, error) {
	var reply node.EventsReply
	if err := client.call("Node.Events", node.EventsArguments{Start: start, Count: count}, &reply); err != nil {
		return nil, err
	}

	return &reply, nil
}
