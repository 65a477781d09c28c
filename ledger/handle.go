// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/reviewd/address"
)

// Handle - a space as a program sees it during one request
//
// a program may change Data in place on writable handles that it owns,
// everything else is read only
type Handle struct {
	Key        address.Address
	IsSigner   bool
	IsWritable bool
	Owner      address.Address
	Data       []byte
}

// Allocated - the space has been created
func (h *Handle) Allocated() bool {
	return !h.Owner.IsZero()
}

// state of a handle before the program ran
type snapshot struct {
	owner address.Address
	data  []byte
}

func (h *Handle) snapshot() snapshot {
	data := make([]byte, len(h.Data))
	copy(data, h.Data)
	return snapshot{
		owner: h.Owner,
		data:  data,
	}
}
