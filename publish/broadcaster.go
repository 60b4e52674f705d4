// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/gamekeysd/messagebus"
	"github.com/bitmark-inc/gamekeysd/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
	broadcasterQueueSize = 1000
)

type broadcaster struct {
	log     *logger.L
	bus     *messagebus.BroadcastQueue
	queue   <-chan messagebus.Message
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string, bus *messagebus.BroadcastQueue) error {

	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	if err := zmqutil.StartAuthentication(); nil != err {
		log.Errorf("zmq authentication error: %s", err)
		return err
	}

	// allocate IPv4 and IPv6 sockets
	var err error
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	brdc.bus = bus
	brdc.queue = bus.Chan(broadcasterQueueSize)

	return nil
}

// Run - forward every queued event to the bound sockets
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			log.Debugf("sending: %s  data: %s", item.Command, item.Parameters)
			brdc.process(brdc.socket4, &item)
			brdc.process(brdc.socket6, &item)
		}
	}

	brdc.bus.Release(brdc.queue)
	if nil != brdc.socket4 {
		_ = brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		_ = brdc.socket6.Close()
	}
	log.Info("stopped")
}

// send one multipart message: command then each parameter
func (brdc *broadcaster) process(socket *zmq.Socket, item *messagebus.Message) {
	if nil == socket {
		return
	}

	flags := zmq.DONTWAIT
	if len(item.Parameters) > 0 {
		flags |= zmq.SNDMORE
	}
	if _, err := socket.Send(item.Command, flags); nil != err {
		brdc.log.Warnf("send: %s  error: %s", item.Command, err)
		return
	}

	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		flags := zmq.DONTWAIT
		if i != last {
			flags |= zmq.SNDMORE
		}
		if _, err := socket.SendBytes(p, flags); nil != err {
			brdc.log.Warnf("send: %s  parameter: %d  error: %s", item.Command, i, err)
			return
		}
	}
}
