// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"net"
	"strings"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/logger"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
	lingerTime        = 250 * time.Millisecond
)

// Endpoint - convert "IP:port", "[IPv6]:port" or "*:port" to a zmq
// tcp endpoint and report whether it needs an IPv6 socket
func Endpoint(listen string) (string, bool, error) {
	host, port, err := net.SplitHostPort(listen)
	if nil != err {
		return "", false, err
	}
	if "" == port {
		return "", false, fault.InvalidIPAddress
	}

	if "*" == host || "" == host {
		return "tcp://*:" + port, true, nil
	}

	ip := net.ParseIP(host)
	if nil == ip {
		return "", false, fault.InvalidIPAddress
	}
	if nil != ip.To4() {
		return "tcp://" + ip.String() + ":" + port, false, nil
	}
	return "tcp://[" + ip.String() + "]:" + port, true, nil
}

// NewBind - bind a list of addresses
//
// creates up to 2 sockets for separate IPv4 and IPv6 traffic
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []string) (*zmq.Socket, *zmq.Socket, error) {

	socket4 := (*zmq.Socket)(nil) // IPv4 traffic
	socket6 := (*zmq.Socket)(nil) // IPv6 traffic

	fail := func(err error) (*zmq.Socket, *zmq.Socket, error) {
		if nil != socket4 {
			_ = socket4.Close()
		}
		if nil != socket6 {
			_ = socket6.Close()
		}
		return nil, nil, err
	}

	for i, address := range listen {
		bindTo, v6, err := Endpoint(strings.TrimSpace(address))
		if nil != err {
			log.Errorf("invalid listen[%d]: %q  error: %s", i, address, err)
			return fail(err)
		}

		socket := socket4
		if v6 {
			socket = socket6
		}
		if nil == socket {
			socket, err = NewServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
			if nil != err {
				return fail(err)
			}
			if v6 {
				socket6 = socket
			} else {
				socket4 = socket
			}
		}

		if err := socket.Bind(bindTo); nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			return fail(err)
		}
		log.Infof("bind[%d]: %q  IPv6: %v", i, bindTo, v6)
	}
	return socket4, socket6, nil
}

// NewServerSocket - create a curve server socket accepting any client
func NewServerSocket(socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

	// curve keys are binary 32 byte strings
	if err = socket.SetCurveServer(1); nil != err {
		goto fail
	}
	if err = socket.SetCurveSecretkey(string(privateKey)); nil != err {
		goto fail
	}
	if err = socket.SetZapDomain(zapDomain); nil != err {
		goto fail
	}
	if err = socket.SetIdentity(string(publicKey)); nil != err {
		goto fail
	}
	if err = socket.SetIpv6(v6); nil != err {
		goto fail
	}
	if err = socket.SetLinger(lingerTime); nil != err {
		goto fail
	}

	// heartbeat
	if err = socket.SetHeartbeatIvl(heartbeatInterval); nil != err {
		goto fail
	}
	if err = socket.SetHeartbeatTimeout(heartbeatTimeout); nil != err {
		goto fail
	}
	if err = socket.SetHeartbeatTtl(heartbeatTTL); nil != err {
		goto fail
	}

	return socket, nil

fail:
	_ = socket.Close()
	return nil, err
}
