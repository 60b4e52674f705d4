// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"

	"github.com/bitmark-inc/gamekeysd/counter"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Message - command with its parameters
type Message struct {
	Command    string   // type of packed data
	Parameters [][]byte // array of parameters
}

// BroadcastQueue - one sender, many listeners
type BroadcastQueue struct {
	sync.RWMutex
	out     []chan Message
	dropped counter.Counter
}

// NewBroadcast - an empty queue with no listeners
func NewBroadcast() *BroadcastQueue {
	return &BroadcastQueue{}
}

// Send - queue a message to every listener
func (queue *BroadcastQueue) Send(command string, parameters ...[]byte) {
	queue.RLock()
	defer queue.RUnlock()

	m := Message{
		Command:    command,
		Parameters: parameters,
	}
	for _, out := range queue.out {
		select {
		case out <- m:
		default:
			queue.dropped.Increment()
		}
	}
}

// Chan - add a listener
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.out = append(queue.out, c)
	queue.Unlock()

	return c
}

// Release - remove a listener
func (queue *BroadcastQueue) Release(c <-chan Message) {
	queue.Lock()
	defer queue.Unlock()

	for i, out := range queue.out {
		if (<-chan Message)(out) == c {
			queue.out = append(queue.out[:i], queue.out[i+1:]...)
			close(out)
			return
		}
	}
}

// Listeners - number of attached listeners
func (queue *BroadcastQueue) Listeners() int {
	queue.RLock()
	defer queue.RUnlock()
	return len(queue.out)
}

// Dropped - messages lost to full listeners
func (queue *BroadcastQueue) Dropped() uint64 {
	return queue.dropped.Uint64()
}
