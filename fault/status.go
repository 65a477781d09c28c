// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// Status - the code a failed request is reported with
type Status uint8

// all possible status codes
const (
	StatusOK Status = iota
	StatusMissingSignature
	StatusIllegalOwner
	StatusInvalidAddress
	StatusInvalidRating
	StatusInvalidDataLength
	StatusAlreadyInitialized
	StatusUninitializedAccount
	StatusMalformedPayload

	StatusInternal Status = 255
)

var statusNames = map[Status]string{
	StatusOK:                   "Success",
	StatusMissingSignature:     "MissingSignature",
	StatusIllegalOwner:         "IllegalOwner",
	StatusInvalidAddress:       "InvalidAddress",
	StatusInvalidRating:        "InvalidRating",
	StatusInvalidDataLength:    "InvalidDataLength",
	StatusAlreadyInitialized:   "AlreadyInitialized",
	StatusUninitializedAccount: "UninitializedAccount",
	StatusMalformedPayload:     "MalformedPayload",
	StatusInternal:             "Internal",
}

// String - name of the status
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// StatusOf - map an error returned from a request to its status code
func StatusOf(err error) Status {
	switch err {
	case nil:
		return StatusOK

	case ErrMissingSignature, ErrInvalidSignature:
		return StatusMissingSignature

	case ErrIllegalOwner, ErrReadOnlyHandleModified, ErrWrongProgram:
		return StatusIllegalOwner

	case ErrInvalidAddress, ErrInvalidSystemHandle, ErrOnCurve, ErrTooManySeeds:
		return StatusInvalidAddress

	case ErrInvalidRating:
		return StatusInvalidRating

	case ErrInvalidDataLength:
		return StatusInvalidDataLength

	case ErrAlreadyInitialized, ErrSpaceInUse:
		return StatusAlreadyInitialized

	case ErrUninitializedAccount:
		return StatusUninitializedAccount

	case ErrMalformedPayload, ErrNotEnoughHandles, ErrUnknownAction, ErrTruncatedSpace:
		return StatusMalformedPayload

	default:
		return StatusInternal
	}
}
