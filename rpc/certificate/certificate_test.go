// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/gamekeysd/fault"
	"github.com/bitmark-inc/gamekeysd/fixtures"
	"github.com/bitmark-inc/gamekeysd/rpc/certificate"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestGet(t *testing.T) {
	dir := t.TempDir()
	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")

	err := certificate.MakeSelfSigned("test", certificateFile, keyFile, []string{"127.0.0.1"})
	assert.Nil(t, err, "make certificate")

	cer, _ := os.ReadFile(certificateFile)
	key, _ := os.ReadFile(keyFile)

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		string(cer),
		string(key),
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair(cer, key)

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair.Certificate, tlsConfig.Certificates[0].Certificate, "wrong config")

	_, fromFiles, err := certificate.GetFiles(logger.New(fixtures.LogCategory), "test", certificateFile, keyFile)
	assert.Nil(t, err, "wrong GetFiles")
	assert.Equal(t, fingerprint, fromFiles, "files gave a different fingerprint")
}

func TestGetInvalid(t *testing.T) {
	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "not a certificate", "not a key")
	assert.NotNil(t, err, "accepted invalid PEM")

	dir := t.TempDir()
	_, _, err = certificate.GetFiles(logger.New(fixtures.LogCategory), "test", filepath.Join(dir, "a"), filepath.Join(dir, "b"))
	assert.True(t, os.IsNotExist(err), "wrong error: %v", err)
}

func TestMakeSelfSignedExisting(t *testing.T) {
	dir := t.TempDir()
	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")

	assert.Nil(t, certificate.MakeSelfSigned("test", certificateFile, keyFile, nil), "first")
	assert.Equal(t, fault.CertificateFileExists, certificate.MakeSelfSigned("test", certificateFile, filepath.Join(dir, "other.key"), nil), "overwrote certificate")
	assert.Equal(t, fault.KeyFileExists, certificate.MakeSelfSigned("test", filepath.Join(dir, "other.crt"), keyFile, nil), "overwrote key")
}
