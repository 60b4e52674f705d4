// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package deployment - record of where each ledger was created
//
// the file maps ledger name to chain to details:
//
//	{
//	  "GameKeys": {
//	    "local": {
//	      "address": "0x...",
//	      "deployer": "0x...",
//	      "admin": "0x...",
//	      "time": "2021-10-04T12:30:00Z"
//	    }
//	  }
//	}
package deployment

import (
	"encoding/json"
	"os"
	"time"

	"github.com/bitmark-inc/gamekeysd/account"
)

// Name - the entry written by the daemon
const Name = "GameKeys"

// Record - one deployed ledger
type Record struct {
	Address  account.Account `json:"address"`
	Deployer account.Account `json:"deployer"`
	Admin    account.Account `json:"admin"`
	Time     time.Time       `json:"time"`
}

// Deployments - name -> chain -> record
type Deployments map[string]map[string]Record

// Read - load a deployment file, a missing file is empty
func Read(fileName string) (Deployments, error) {
	d := make(Deployments)

	b, err := os.ReadFile(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return d, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(b, &d); nil != err {
		return nil, err
	}
	if nil == d {
		d = make(Deployments)
	}
	return d, nil
}

// Get - the record of a name on a chain
func (d Deployments) Get(name string, chain string) (Record, bool) {
	chains, ok := d[name]
	if !ok {
		return Record{}, false
	}
	r, ok := chains[chain]
	return r, ok
}

// Set - add or replace the record of a name on a chain, other
// entries are kept
func (d Deployments) Set(name string, chain string, r Record) {
	chains := d[name]
	if nil == chains {
		chains = make(map[string]Record)
		d[name] = chains
	}
	r.Time = r.Time.UTC()
	chains[chain] = r
}

// Write - save atomically through a temporary file
func (d Deployments) Write(fileName string) error {
	b, err := json.MarshalIndent(d, "", "  ")
	if nil != err {
		return err
	}

	tempFile := fileName + ".new"
	if err := os.WriteFile(tempFile, append(b, '\n'), 0644); nil != err {
		return err
	}
	return os.Rename(tempFile, fileName)
}

// Merge - record one deployment in a file, merging with existing entries
//
// the file is left untouched when it already records the same address;
// written reports whether it changed
func Merge(fileName string, name string, chain string, r Record) (bool, error) {
	d, err := Read(fileName)
	if nil != err {
		return false, err
	}
	if current, ok := d.Get(name, chain); ok && current.Address == r.Address {
		return false, nil
	}
	d.Set(name, chain, r)
	if err := d.Write(fileName); nil != err {
		return false, err
	}
	return true, nil
}
