// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised        = ExistsError("already initialised")
	BalanceOverflow           = ProcessError("balance overflow")
	CertificateFileExists     = ExistsError("certificate file already exists")
	DuplicateListing          = ExistsError("this game already exists")
	EmptyBalance              = InvalidError("nothing to withdraw")
	InsufficientFunds         = InvalidError("insufficient funds")
	InsufficientPayment       = InvalidError("not enough funds")
	InvalidAccount            = InvalidError("invalid account")
	InvalidAmount             = InvalidError("invalid amount")
	InvalidChain              = InvalidError("invalid chain")
	InvalidCount              = InvalidError("invalid count")
	InvalidCursor             = InvalidError("invalid cursor")
	InvalidIPAddress          = InvalidError("invalid IP address")
	InvalidNonce              = InvalidError("invalid nonce")
	InvalidPrivateKey         = InvalidError("invalid private key")
	InvalidPublicKey          = InvalidError("invalid public key")
	InvalidRole               = InvalidError("invalid role")
	InvalidSignature          = InvalidError("invalid signature")
	InvalidStructPointer      = InvalidError("invalid struct pointer")
	KeyFileExists             = ExistsError("key file already exists")
	LicenseNotFound           = NotFoundError("license not found")
	ListingNotFound           = NotFoundError("this game does not exist")
	MissingParameters         = InvalidError("missing parameters")
	NotAvailable              = ProcessError("not available")
	NotInitialised            = NotFoundError("not initialised")
	RateLimiting              = InvalidError("rate limiting")
	TransactionAlreadyInUse   = ProcessError("transaction already in use")
	TransactionNotInUse       = ProcessError("transaction not in use")
	TransferFailed            = ProcessError("transfer failed")
	TruncatedRecord           = RecordError("truncated record")
	Unauthorized              = PermissionError("caller is not authorised")
	UnknownRecord             = RecordError("unknown record")
	UnsupportedDatabaseFormat = RecordError("unsupported database format")
	WrongPassword             = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
