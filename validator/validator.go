// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package validator - preconditions checked before any record changes
//
// every action runs its checks in the same order and stops at the
// first failure:
//
//   signer, owner, address, rating, size, initialisation state
//
// no check modifies a handle
package validator

import (
	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/record"
)

// Validator - checks on behalf of one program identity
type Validator struct {
	program address.Address
}

// New - create a validator for a program
func New(program address.Address) *Validator {
	return &Validator{
		program: program,
	}
}

// Program - the identity that must own every record space
func (v *Validator) Program() address.Address {
	return v.program
}

// Signer - the handle must have signed the request
func (v *Validator) Signer(h *ledger.Handle) error {
	if !h.IsSigner {
		return fault.ErrMissingSignature
	}
	return nil
}

// Owner - an allocated space must belong to this program
//
// a space that was never allocated has nothing to protect and is left
// to the initialisation check
func (v *Validator) Owner(h *ledger.Handle) error {
	if h.Allocated() && h.Owner != v.program {
		return fault.ErrIllegalOwner
	}
	return nil
}

// Address - the handle must sit at the address derived from seeds,
// returns the bump needed to create the space
func (v *Validator) Address(h *ledger.Handle, seeds [][]byte) (uint8, error) {
	expected, bump, err := address.Derive(seeds, v.program)
	if fault.ErrBumpSeedExhausted == err {
		fault.Criticalf("derive: %s", err)
		return 0, err
	}
	if nil != err || expected != h.Key {
		return 0, fault.ErrInvalidAddress
	}
	return bump, nil
}

// System - the create space collaborator must be the system program
func (v *Validator) System(h *ledger.Handle) error {
	if !h.Key.IsZero() {
		return fault.ErrInvalidSystemHandle
	}
	return nil
}

// Rating - reviews rate from 1 to 5
func (v *Validator) Rating(rating uint8) error {
	if rating < 1 || rating > 5 {
		return fault.ErrInvalidRating
	}
	return nil
}

// Size - the packed record must fit its space
func (v *Validator) Size(r record.Record) error {
	if r.Size() > r.Budget() {
		return fault.ErrInvalidDataLength
	}
	return nil
}

// Fresh - a record about to be created must not exist yet
func (v *Validator) Fresh(r record.Record) error {
	if r.Initialised() {
		return fault.ErrAlreadyInitialized
	}
	return nil
}

// Initialised - a record about to be read or updated must exist
func (v *Validator) Initialised(r record.Record) error {
	if !r.Initialised() {
		return fault.ErrUninitializedAccount
	}
	return nil
}
