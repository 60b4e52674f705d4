// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/binary"
	"encoding/json"
	"reflect"
	"time"

	"github.com/bitmark-inc/gamekeysd/counter"
	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/storage"
)

// Record - a sequenced event
type Record struct {
	Sequence  uint64    `json:"sequence"`
	Name      Name      `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	Data      Event     `json:"data"`
}

type packedRecord struct {
	Sequence  uint64          `json:"sequence"`
	Name      Name            `json:"name"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// UnmarshalJSON - restore the typed payload from its name
func (r *Record) UnmarshalJSON(s []byte) error {
	var p packedRecord
	if err := json.Unmarshal(s, &p); nil != err {
		return err
	}

	data := newEvent(p.Name)
	if nil == data {
		return fault.UnknownRecord
	}
	if err := json.Unmarshal(p.Data, data); nil != err {
		return err
	}

	r.Sequence = p.Sequence
	r.Name = p.Name
	r.Timestamp = p.Timestamp

	// payloads are held by value
	r.Data = reflect.ValueOf(data).Elem().Interface().(Event)
	return nil
}

func sequenceKey(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}

// Append - number and store events in the event log
func Append(trx storage.Transaction, pools *storage.Pools, timestamp time.Time, events []Event) ([]Record, error) {
	records := make([]Record, 0, len(events))
	for _, e := range events {
		r := Record{
			Sequence:  counter.Events.Next(trx, pools.Counters),
			Name:      e.Name(),
			Timestamp: timestamp.UTC(),
			Data:      e,
		}
		packed, err := json.Marshal(r)
		if nil != err {
			return nil, err
		}
		trx.Put(pools.Events, sequenceKey(r.Sequence), packed)
		records = append(records, r)
	}
	return records, nil
}

// Read - committed records from sequence start onwards
func Read(pools *storage.Pools, start uint64, count int) ([]Record, error) {
	items, err := pools.Events.NewFetchCursor().Seek(sequenceKey(start)).Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]Record, len(items))
	for i, item := range items {
		if err := json.Unmarshal(item.Value, &records[i]); nil != err {
			return nil, err
		}
	}
	return records, nil
}

// Last - sequence number of the most recent record
func Last(trx storage.Transaction, pools *storage.Pools) uint64 {
	return counter.Events.Last(trx, pools.Counters)
}
