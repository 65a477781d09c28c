// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/reviewd/fault"
)

// seed parameters
var (
	seedHeader = []byte{0x5a, 0xfe, 0x02}
)

const (
	seedHeaderLength   = 3
	secretKeyLength    = 16
	seedChecksumLength = 4

	seedLength = seedHeaderLength + secretKeyLength + seedChecksumLength

	// number of times the secret is fed to the hash
	seedRounds = 4
)

// PrivateKeyFromBase58Seed - this converts a Base58 encoded seed
// string and returns a private key
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, error) {

	seed, err := base58.Decode(seedBase58Encoded)
	if nil != err {
		return nil, fault.ErrCannotDecodeSeed
	}

	if seedLength != len(seed) {
		return nil, fault.ErrInvalidSeedLength
	}

	checksumStart := seedLength - seedChecksumLength
	digest := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(digest[:seedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	if !bytes.Equal(seedHeader, seed[:seedHeaderLength]) {
		return nil, fault.ErrInvalidSeedHeader
	}

	sk := seed[seedHeaderLength:checksumStart]

	hash := sha3.NewShake256()
	for i := 0; i < seedRounds; i++ {
		n, err := hash.Write(sk)
		if nil != err {
			return nil, err
		}
		if secretKeyLength != n {
			return nil, fault.ErrCannotDecodeSeed
		}
	}

	ed25519Seed := make([]byte, ed25519.SeedSize)
	n, err := hash.Read(ed25519Seed)
	if nil != err {
		return nil, err
	}
	if ed25519.SeedSize != n {
		return nil, fault.ErrCannotDecodeSeed
	}

	return &PrivateKey{
		PrivateKey: ed25519.NewKeyFromSeed(ed25519Seed),
	}, nil
}

// NewBase58EncodedSeed - generate a random base58 seed
func NewBase58EncodedSeed() (string, error) {
	sk := make([]byte, secretKeyLength)

	n, err := rand.Read(sk)
	if nil != err {
		return "", err
	}
	if secretKeyLength != n {
		return "", fmt.Errorf("got: %d bytes, expected: %d bytes", n, secretKeyLength)
	}

	seed := make([]byte, 0, seedLength)
	seed = append(seed, seedHeader...)
	seed = append(seed, sk...)
	digest := sha3.Sum256(seed)
	seed = append(seed, digest[:seedChecksumLength]...)

	return base58.Encode(seed), nil
}
