// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/reviewd/fault"
)

// MaxSeeds - including the bump seed
const MaxSeeds = 16

// appended to every derivation so that derived addresses cannot
// collide with any other use of the hash
var derivationMarker = []byte("ProgramDerivedAddress")

// CreateDerived - compute the address for a complete set of seeds
//
// the final seed is normally the bump returned by Derive.  An address
// that happens to be a valid curve point is rejected since its private
// key could exist
func CreateDerived(seeds [][]byte, program Address) (Address, error) {
	if len(seeds) > MaxSeeds {
		return Address{}, fault.ErrTooManySeeds
	}

	h := sha3.New256()
	for _, seed := range seeds {
		h.Write(seed)
	}
	h.Write(program[:])
	h.Write(derivationMarker)

	a := Address{}
	copy(a[:], h.Sum(nil))

	if onCurve(a) {
		return Address{}, fault.ErrOnCurve
	}
	return a, nil
}

// Derive - find the derived address and its bump seed
//
// the bump is probed downwards from 255 and the first off-curve address
// is returned.  Callers must cite the bump as the last seed when asking
// for the space to be created
func Derive(seeds [][]byte, program Address) (Address, uint8, error) {
	if len(seeds) > MaxSeeds-1 {
		return Address{}, 0, fault.ErrTooManySeeds
	}

	bumped := make([][]byte, len(seeds)+1)
	copy(bumped, seeds)

	for bump := 255; bump >= 0; bump -= 1 {
		bumped[len(seeds)] = []byte{uint8(bump)}
		a, err := CreateDerived(bumped, program)
		if fault.ErrOnCurve == err {
			continue
		}
		if nil != err {
			return Address{}, 0, err
		}
		return a, uint8(bump), nil
	}
	return Address{}, 0, fault.ErrBumpSeedExhausted
}

// WithBump - append the bump to a copy of the seeds
func WithBump(seeds [][]byte, bump uint8) [][]byte {
	s := make([][]byte, 0, len(seeds)+1)
	s = append(s, seeds...)
	return append(s, []byte{bump})
}

func onCurve(a Address) bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return nil == err
}
