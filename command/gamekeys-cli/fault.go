// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/gamekeysd/fault"
)

// common errors - keep in alphabetic order
var (
	ErrInvalidPasswordLength = fault.InvalidError("password must be at least 8 characters")
	ErrNoConfiguration       = fault.NotFoundError("configuration not loaded")
	ErrPasswordMismatch      = fault.InvalidError("passwords do not match")
	ErrRequiredConnect       = fault.InvalidError("connect is required")
	ErrRequiredDescription   = fault.InvalidError("description is required")
	ErrRequiredGame          = fault.InvalidError("game id is required")
	ErrRequiredGameOrTitle   = fault.InvalidError("game id or title is required")
	ErrRequiredIdentity      = fault.InvalidError("identity is required")
	ErrRequiredPrice         = fault.InvalidError("price is required")
	ErrRequiredTitle         = fault.InvalidError("title is required")
)
