// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/fault"
)

// Account - the public half of a signing identity
type Account struct {
	PublicKey ed25519.PublicKey
}

// FromAddress - an account can sign for exactly the address that is
// its public key
func FromAddress(a address.Address) *Account {
	return &Account{
		PublicKey: ed25519.PublicKey(a.Bytes()),
	}
}

// FromBase58 - convert the text form of an identity to an account
func FromBase58(s string) (*Account, error) {
	a, err := address.FromBase58(s)
	if nil != err {
		return nil, err
	}
	return FromAddress(a), nil
}

// Address - the identity as it appears in a request
func (account *Account) Address() address.Address {
	a, _ := address.FromBytes(account.PublicKey)
	return a
}

// CheckSignature - verify a signature over a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.PublicKeySize != len(account.PublicKey) || ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// String - base58 identity for %s
func (account *Account) String() string {
	return account.Address().String()
}

// MarshalText - base58 identity
func (account *Account) MarshalText() ([]byte, error) {
	return account.Address().MarshalText()
}
