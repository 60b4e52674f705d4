// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/bitmark-inc/gamekeysd/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		if result := util.ToVarint64(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToVarint64(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
		value, count := util.FromVarint64(item.encoded)
		if value != item.value || count != len(item.encoded) {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: %d", i, item.encoded, value, count, item.value)
		}
	}

	if _, count := util.FromVarint64([]byte{0x80, 0x80}); 0 != count {
		t.Errorf("truncated varint gave count: %d", count)
	}
}

func TestBytes(t *testing.T) {
	buffer := util.AppendBytes(nil, []byte("Snake"))
	buffer = util.AppendBytes(buffer, []byte{})
	buffer = util.AppendBytes(buffer, []byte("https://snake.com/png"))

	first, n := util.ReadBytes(buffer)
	if "Snake" != string(first) || 6 != n {
		t.Fatalf("first: %q  count: %d", first, n)
	}
	buffer = buffer[n:]

	second, n := util.ReadBytes(buffer)
	if 0 != len(second) || 1 != n {
		t.Fatalf("second: %q  count: %d", second, n)
	}
	buffer = buffer[n:]

	third, n := util.ReadBytes(buffer)
	if "https://snake.com/png" != string(third) || len(buffer) != n {
		t.Fatalf("third: %q  count: %d", third, n)
	}

	// length prefix larger than the remaining data
	if _, n := util.ReadBytes([]byte{0x05, 'a', 'b'}); 0 != n {
		t.Errorf("truncated item gave count: %d", n)
	}
}
