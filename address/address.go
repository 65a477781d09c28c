// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/reviewd/fault"
)

// Length - number of bytes in an address
const Length = 32

// Address - a storage location or an identity public key
type Address [Length]byte

// SystemProgram - owner of every unallocated space and the key of the
// create space collaborator
var SystemProgram = Address{}

// FromBytes - copy a byte slice into an address
func FromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if Length != len(buffer) {
		return a, fault.ErrKeyLength
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode the text form of an address
func FromBase58(s string) (Address, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Address{}, err
	}
	return FromBytes(buffer)
}

// Bytes - slice referencing a copy of the address
func (a Address) Bytes() []byte {
	b := make([]byte, Length)
	copy(b, a[:])
	return b
}

// IsZero - true for the system program address
func (a Address) IsZero() bool {
	return a == SystemProgram
}

// Equal - compare to a byte slice
func (a Address) Equal(b []byte) bool {
	return bytes.Equal(a[:], b)
}

// String - base58 for the fmt package %s
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - for the fmt package %#v
func (a Address) GoString() string {
	return "<address:" + hex.EncodeToString(a[:]) + ">"
}

// MarshalText - convert address to base58 text
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 text to an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}

// Uint64Seed - the seed encoding of a sequence number
//
// big endian is used everywhere a counter value becomes a seed
func Uint64Seed(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}
