// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/gamekeysd/deployment"
	"github.com/bitmark-inc/gamekeysd/event"
	"github.com/bitmark-inc/gamekeysd/gamekeys"
	"github.com/bitmark-inc/gamekeysd/messagebus"
	"github.com/bitmark-inc/gamekeysd/storage"
	"github.com/bitmark-inc/gamekeysd/treasury"
)

// openLedger - initialise on first run, then build the serving ledger
//
// the deployment file gets a record whenever it lacks one for this
// ledger and the genesis allocations are credited once
func openLedger(log *logger.L, store *storage.Store, options *Configuration, queue *messagebus.BroadcastQueue) (*gamekeys.Ledger, error) {

	boot := gamekeys.New(store, log)

	if !boot.Initialised() {
		superAdmin, admin, err := options.owners()
		if nil != err {
			return nil, err
		}

		log.Infof("first run: initialise ledger  super administrator: %s  administrator: %s", superAdmin, admin)
		if err := boot.Initialise(superAdmin, admin); nil != err {
			return nil, err
		}
	}

	if err := recordDeployment(log, boot, options); nil != err {
		return nil, err
	}

	ledger := gamekeys.New(
		store,
		log,
		gamekeys.WithTransferrer(treasury.New(store, boot.Address())),
		gamekeys.WithPublisher(event.NewBusPublisher(log, queue)),
	)

	allocations, err := options.allocations()
	if nil != err {
		return nil, err
	}
	err = ledger.Atomic(func(trx storage.Transaction, pools *storage.Pools) error {
		allocated, err := treasury.Allocate(trx, pools, allocations)
		if allocated {
			log.Infof("allocated genesis funds to: %d accounts", len(allocations))
		}
		return err
	})
	if nil != err {
		return nil, err
	}

	log.Infof("ledger: %s  administrator: %s", ledger.Address(), ledger.Admin())
	return ledger, nil
}

// recordDeployment - write the deployment record if it is missing or
// names a different ledger
func recordDeployment(log *logger.L, ledger *gamekeys.Ledger, options *Configuration) error {
	record := deployment.Record{
		Address:  ledger.Address(),
		Deployer: ledger.SuperAdministrator(),
		Admin:    ledger.Admin(),
		Time:     ledger.CreatedAt(),
	}
	written, err := deployment.Merge(options.DeploymentFile, deployment.Name, options.Chain, record)
	if nil != err {
		log.Errorf("deployment file: %q  error: %s", options.DeploymentFile, err)
		return err
	}
	if written {
		log.Infof("deployed: %s  on: %s", record.Address, options.Chain)
	}
	return nil
}
