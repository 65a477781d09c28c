// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/fault"
)

// Allocator - the create space call available to a running program
type Allocator interface {
	CreateSpace(payer *Handle, target *Handle, size int, owner address.Address, seeds [][]byte) error
}

type allocator struct {
	program   address.Address
	allocated map[address.Address]struct{}
}

func newAllocator(program address.Address) *allocator {
	return &allocator{
		program:   program,
		allocated: make(map[address.Address]struct{}),
	}
}

// CreateSpace - give target a zeroed space of size bytes owned by owner
//
// the seeds, including the bump, are the proof that target was derived
// from owner; a program can only create spaces for itself
func (a *allocator) CreateSpace(payer *Handle, target *Handle, size int, owner address.Address, seeds [][]byte) error {
	if !payer.IsSigner {
		return fault.ErrMissingSignature
	}
	if owner != a.program {
		return fault.ErrWrongProgram
	}
	if size <= 0 || size > MaxSpaceSize {
		return fault.ErrInvalidDataLength
	}

	derived, err := address.CreateDerived(seeds, owner)
	if nil != err || derived != target.Key {
		return fault.ErrInvalidAddress
	}

	if target.Allocated() || 0 != len(target.Data) {
		return fault.ErrSpaceInUse
	}

	target.Owner = owner
	target.Data = make([]byte, size)
	a.allocated[target.Key] = struct{}{}
	return nil
}

func (a *allocator) created(key address.Address) bool {
	_, ok := a.allocated[key]
	return ok
}
