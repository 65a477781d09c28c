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
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// request errors - these are the only failures a request reports
var (
	ErrAlreadyInitialized   = ExistsError("record already initialized")
	ErrIllegalOwner         = InvalidError("illegal owner")
	ErrInvalidAddress       = InvalidError("invalid seeds for derived address")
	ErrInvalidDataLength    = LengthError("input data exceeds max length")
	ErrInvalidRating        = InvalidError("invalid rating")
	ErrMalformedPayload     = RecordError("malformed payload")
	ErrMissingSignature     = InvalidError("missing required signature")
	ErrUninitializedAccount = NotFoundError("record not initialized")
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrBumpSeedExhausted      = ProcessError("no viable bump seed for derived address")
	ErrCannotDecodeSeed       = RecordError("cannot decode seed")
	ErrChecksumMismatch       = ProcessError("checksum mismatch")
	ErrConfigDirPath          = InvalidError("config is not a folder")
	ErrConfigNotTable         = InvalidError("config did not return a table")
	ErrInvalidCount           = InvalidError("invalid count")
	ErrInvalidCursor          = InvalidError("invalid cursor")
	ErrInvalidPrivateKey      = InvalidError("invalid private key")
	ErrInvalidProgram         = InvalidError("invalid program identity")
	ErrInvalidSeedHeader      = InvalidError("invalid seed header")
	ErrInvalidSeedLength      = InvalidError("invalid seed length")
	ErrInvalidSignature       = InvalidError("invalid signature")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrInvalidSystemHandle    = InvalidError("create space handle is not the system program")
	ErrKeyLength              = InvalidError("key length is invalid")
	ErrNotEnoughHandles       = RecordError("not enough record handles")
	ErrNotInitialised         = NotFoundError("not initialised")
	ErrOnCurve                = InvalidError("derived address is on the ed25519 curve")
	ErrReadOnlyHandleModified = InvalidError("read-only handle was modified")
	ErrSpaceInUse             = ExistsError("space already allocated")
	ErrSpaceNotFound          = NotFoundError("space not found")
	ErrTooManySeeds           = InvalidError("too many seeds for derived address")
	ErrTruncatedSpace         = RecordError("stored space is truncated")
	ErrUnknownAction          = RecordError("unknown action")
	ErrWrongProgram           = InvalidError("request addressed to a different program")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
