// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gamekeysd/account"
	"github.com/bitmark-inc/gamekeysd/fault"
)

const adminHex = "0x4AF539F51e28b6f6274f44b9219cF25076bd1EE8"

func TestFromString(t *testing.T) {
	a, err := account.FromString(adminHex)
	assert.Nil(t, err, "valid account")
	assert.Equal(t, strings.ToLower(adminHex), strings.ToLower(a.String()), "wrong account text")
	assert.False(t, a.IsZero(), "account is zero")

	b, err := account.FromString(strings.TrimPrefix(adminHex, "0x"))
	assert.Nil(t, err, "prefix should be optional")
	assert.Equal(t, a, b, "accounts differ")

	_, err = account.FromString("0x1234")
	assert.Equal(t, fault.InvalidAccount, err, "short account accepted")

	_, err = account.FromString("not an account")
	assert.Equal(t, fault.InvalidAccount, err, "junk accepted")
}

func TestFromBytes(t *testing.T) {
	a, _ := account.FromString(adminHex)
	b, err := account.FromBytes(a.Bytes())
	assert.Nil(t, err, "valid bytes")
	assert.Equal(t, a, b, "accounts differ")

	_, err = account.FromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.InvalidAccount, err, "short bytes accepted")
}

func TestJSON(t *testing.T) {
	type holder struct {
		Owner account.Account `json:"owner"`
	}
	a, _ := account.FromString(adminHex)

	buffer, err := json.Marshal(holder{Owner: a})
	assert.Nil(t, err, "marshal")

	var h holder
	err = json.Unmarshal(buffer, &h)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, a, h.Owner, "round trip account")
}

func TestSignature(t *testing.T) {
	key, err := account.NewPrivateKey()
	assert.Nil(t, err, "generate key")

	digest := account.Digest([]byte("gamekeys"), []byte("withdraw"))
	signature, err := key.Sign(digest)
	assert.Nil(t, err, "sign")

	signer, err := account.Recover(digest, signature)
	assert.Nil(t, err, "recover")
	assert.Equal(t, key.Account(), signer, "wrong signer")

	restored, err := account.PrivateKeyFromBytes(key.Bytes())
	assert.Nil(t, err, "restore key")
	assert.Equal(t, key.Account(), restored.Account(), "restored key differs")

	other := account.Digest([]byte("gamekeys"), []byte("buy"))
	signer, err = account.Recover(other, signature)
	if nil == err {
		assert.NotEqual(t, key.Account(), signer, "signature valid for a different digest")
	}

	_, err = account.Recover(digest, signature[:10])
	assert.Equal(t, fault.InvalidSignature, err, "short signature accepted")
}
