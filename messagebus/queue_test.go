// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gamekeysd/messagebus"
)

func TestBroadcast(t *testing.T) {
	queue := messagebus.NewBroadcast()

	// nothing listening so these messages should be dropped
	queue.Send("ignored")

	commands := []string{"c1", "c2", "c3"}

	// create some listeners
	const listeners = 5

	var received [listeners]int
	var wg sync.WaitGroup

	channels := make([]<-chan messagebus.Message, listeners)
	for i := 0; i < listeners; i += 1 {
		channels[i] = queue.Chan(10)
	}
	assert.Equal(t, listeners, queue.Listeners(), "wrong listener count")

	for i := 0; i < listeners; i += 1 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for _, command := range commands {
				item := <-channels[n]
				if item.Command == command {
					received[n] += 1
				}
			}
		}(i)
	}

	for _, command := range commands {
		queue.Send(command, []byte(command))
	}

	// wait for completion
	wg.Wait()
	for i, n := range received {
		assert.Equal(t, len(commands), n, "listener[%d] wrong count", i)
	}

	for _, c := range channels {
		queue.Release(c)
	}
	assert.Equal(t, 0, queue.Listeners(), "listeners not released")
}

func TestSlowListenerDoesNotBlock(t *testing.T) {
	queue := messagebus.NewBroadcast()
	c := queue.Chan(1)

	queue.Send("first")
	queue.Send("second")

	item := <-c
	assert.Equal(t, "first", item.Command, "wrong message")
	assert.Equal(t, uint64(1), queue.Dropped(), "wrong dropped count")
	select {
	case item = <-c:
		t.Fatalf("unexpected message: %q", item.Command)
	default:
	}
}
