// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/fault"
)

// MaxSpaceSize - largest space the allocator will create
const MaxSpaceSize = 10240

// Space - a stored region of bytes and the program allowed to write it
type Space struct {
	Owner address.Address `json:"owner"`
	Data  []byte          `json:"data"`
}

// Allocated - false for a space that was never created
func (s *Space) Allocated() bool {
	return !s.Owner.IsZero()
}

// pack a space for the S pool
func (s *Space) pack() []byte {
	buffer := make([]byte, 0, address.Length+len(s.Data))
	buffer = append(buffer, s.Owner[:]...)
	return append(buffer, s.Data...)
}

// UnpackSpace - decode a value from the spaces pool
//
// a nil value is an unallocated space
func UnpackSpace(packed []byte) (*Space, error) {
	if nil == packed {
		return &Space{
			Owner: address.SystemProgram,
			Data:  []byte{},
		}, nil
	}
	if len(packed) < address.Length {
		return nil, fault.ErrTruncatedSpace
	}

	s := &Space{
		Data: make([]byte, len(packed)-address.Length),
	}
	copy(s.Owner[:], packed[:address.Length])
	copy(s.Data, packed[address.Length:])
	return s, nil
}
