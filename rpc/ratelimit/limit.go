// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - per service request limiting for the RPC services
//
// reads cost one token, paged reads cost one token per item and signed
// ledger writes cost SignedWeight tokens since each one recovers a
// signature and holds the sequencer for a transaction
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/gamekeysd/fault"
)

// SignedWeight - tokens charged for a signed ledger write
const SignedWeight = 5

type setting struct {
	limit rate.Limit
	burst int
}

// per service refill rate (tokens/second) and burst
var settings = map[string]setting{
	"Access":   {limit: 100, burst: 50},
	"Auth":     {limit: 200, burst: 100},
	"Escrow":   {limit: 100, burst: 50},
	"Games":    {limit: 200, burst: 100},
	"Licenses": {limit: 200, burst: 100},
	"Node":     {limit: 200, burst: 100},
	"Treasury": {limit: 200, burst: 100},
}

var defaultSetting = setting{limit: 100, burst: 50}

// New - limiter for a named RPC service
func New(service string) *rate.Limiter {
	s, ok := settings[service]
	if !ok {
		s = defaultSetting
	}
	return rate.NewLimiter(s.limit, s.burst)
}

func reserve(limiter *rate.Limiter, tokens int) error {
	r := limiter.ReserveN(time.Now(), tokens)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// Limit - a single read
func Limit(limiter *rate.Limiter) error {
	return reserve(limiter, 1)
}

// LimitSigned - a signed ledger write
func LimitSigned(limiter *rate.Limiter) error {
	return reserve(limiter, SignedWeight)
}

// LimitPage - a paged read returning up to count items
//
// an out of range count is charged as a single read and rejected
func LimitPage(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := reserve(limiter, 1); nil != err {
			return err
		}
		return fault.InvalidCount
	}
	return reserve(limiter, count)
}
