// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/reviewd/fault"
)

// PrivateKey - the secret half of a signing identity
type PrivateKey struct {
	PrivateKey ed25519.PrivateKey
}

// PrivateKeyFromBytes - wrap a raw ed25519 private key
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if ed25519.PrivateKeySize != len(b) {
		return nil, fault.ErrInvalidPrivateKey
	}
	k := make([]byte, ed25519.PrivateKeySize)
	copy(k, b)
	return &PrivateKey{
		PrivateKey: k,
	}, nil
}

// Account - the public account for this key
func (privateKey *PrivateKey) Account() *Account {
	return &Account{
		PublicKey: privateKey.PrivateKey.Public().(ed25519.PublicKey),
	}
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// Bytes - copy of the raw private key
func (privateKey *PrivateKey) Bytes() []byte {
	b := make([]byte, len(privateKey.PrivateKey))
	copy(b, privateKey.PrivateKey)
	return b
}
