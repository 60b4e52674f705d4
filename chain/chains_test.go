// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gamekeysd/chain"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Live, chain.Testing, chain.Local} {
		assert.True(t, chain.Valid(name), "rejected: %q", name)
	}
	for _, name := range []string{"", "bitmark", "Live", "mainnet"} {
		assert.False(t, chain.Valid(name), "accepted: %q", name)
	}
}

func TestIsTesting(t *testing.T) {
	assert.False(t, chain.IsTesting(chain.Live))
	assert.True(t, chain.IsTesting(chain.Testing))
	assert.True(t, chain.IsTesting(chain.Local))
}
