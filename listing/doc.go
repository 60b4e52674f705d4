// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listing - the registry of games offered for sale
//
// a listing is immutable once registered, the title fingerprint
// index guarantees that no two listings share a title
package listing
