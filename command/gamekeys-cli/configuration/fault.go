// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/bitmark-inc/gamekeysd/fault"
)

// configuration errors - keep in alphabetic order
var (
	ErrCryptoFailed              = fault.ProcessError("encryption failed")
	ErrIdentityNameAlreadyExists = fault.ExistsError("identity name already exists")
	ErrIdentityNameNotFound      = fault.NotFoundError("identity name not found")
	ErrInvalidSalt               = fault.InvalidError("invalid salt")
	ErrNotPrivateKey             = fault.InvalidError("identity has no private key")
)
