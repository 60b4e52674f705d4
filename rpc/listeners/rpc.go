// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"context"
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/gamekeysd/counter"
	"github.com/bitmark-inc/gamekeysd/fault"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
	minBandwidth       = 1000000 // 1Mbps
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Bandwidth          float64  `gluamapper:"bandwidth" json:"bandwidth"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex
	log             *logger.L
	listeners       []net.Listener
	count           *counter.Counter
	server          *rpc.Server
	maxConnections  uint64
	bytesPerSecond  int
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
}

// Serve - start accepting on every listen address
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)
		l, err := tls.Listen(r.ipType[i], listen, r.tlsConfig)
		if err != nil {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, l)

		go r.accept(l)
	}
	return nil
}

// Stop - close all listen sockets
//
// connections already accepted run until their client disconnects
func (r *rpcListener) Stop() {
	r.Lock()
	defer r.Unlock()

	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
}

func (r *rpcListener) accept(listen net.Listener) {
	log := r.log
	for {
		conn, err := listen.Accept()
		if err != nil {
			log.Infof("rpc accept terminated: %s", err)
			break
		}
		if r.count.Increment() <= r.maxConnections {
			go func() {
				r.server.ServeCodec(jsonrpc.NewServerCodec(newThrottledConn(conn, r.bytesPerSecond)))
				_ = conn.Close()
				r.count.Decrement()
			}()
		} else {
			r.count.Decrement()
			log.Warnf("connection limit reached, rejected: %s", conn.RemoteAddr())
			_ = conn.Close()
		}
	}
	_ = listen.Close()
}

// NewRPC - validate configuration and create a JSON-RPC over TLS listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}
	if configuration.Bandwidth < minBandwidth {
		log.Errorf("invalid %s bandwidth: %.0f bps < 1Mbps", logName, configuration.Bandwidth)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	r := rpcListener{
		log:             log,
		maxConnections:  configuration.MaximumConnections,
		bytesPerSecond:  int(configuration.Bandwidth / 8),
		listenIPAndPort: append([]string{}, configuration.Listen...),
		server:          server,
		count:           count,
		tlsConfig:       tlsConfig,
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	// validate all listen addresses
	var err error
	r.ipType, err = parseListenAddress(r.listenIPAndPort, r.log)
	if nil != err {
		return nil, err
	}

	return &r, nil
}

// converts "*:PORT" entries in place and returns the network for each
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		host, port, err := net.SplitHostPort(strings.TrimSpace(listen))
		if nil != err {
			log.Errorf("rpc server listen: %q  error: %s", listen, err)
			return nil, fault.InvalidIPAddress
		}

		if "*" == host {
			// on the assumption that this will listen on tcp4 and tcp6
			addrs[i] = "[::]:" + port
			parsed[i] = "tcp"
			continue
		}

		ip := net.ParseIP(host)
		if nil == ip {
			log.Errorf("rpc server listen: %q  error: %s", listen, fault.InvalidIPAddress)
			return nil, fault.InvalidIPAddress
		}
		if nil != ip.To4() {
			parsed[i] = "tcp4"
		} else {
			parsed[i] = "tcp6"
		}
	}

	return parsed, nil
}

// limits the inbound byte rate of one connection
type throttledConn struct {
	net.Conn
	limiter *rate.Limiter
	burst   int
}

func newThrottledConn(conn net.Conn, bytesPerSecond int) net.Conn {
	return &throttledConn{
		Conn:    conn,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSecond), bytesPerSecond),
		burst:   bytesPerSecond,
	}
}

func (c *throttledConn) Read(buffer []byte) (int, error) {
	if len(buffer) > c.burst {
		buffer = buffer[:c.burst]
	}
	n, err := c.Conn.Read(buffer)
	if n > 0 {
		if werr := c.limiter.WaitN(context.Background(), n); nil != werr {
			return n, werr
		}
	}
	return n, err
}
