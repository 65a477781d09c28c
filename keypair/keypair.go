// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"encoding/hex"
	"encoding/json"
	"io/ioutil"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/fault"
)

// KeyPair - structure to hold public and private keys and the seed
// that was used to generate them
type KeyPair struct {
	Seed       string
	PrivateKey *account.PrivateKey
}

// RawKeyPair - text version of seed and keys
type RawKeyPair struct {
	Seed       string `json:"seed"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// MakeRawKeyPair - create new seed and generate public/private keys from it
func MakeRawKeyPair() (*RawKeyPair, *KeyPair, error) {
	seed, err := account.NewBase58EncodedSeed()
	if nil != err {
		return nil, nil, err
	}
	return MakeRawKeyPairFromSeed(seed)
}

// MakeRawKeyPairFromSeed - generate public/private keys from existing seed
func MakeRawKeyPairFromSeed(seed string) (*RawKeyPair, *KeyPair, error) {

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return nil, nil, err
	}

	keyPair := KeyPair{
		Seed:       seed,
		PrivateKey: privateKey,
	}

	rawKeyPair := RawKeyPair{
		Seed:       seed,
		PublicKey:  privateKey.Account().String(),
		PrivateKey: hex.EncodeToString(privateKey.Bytes()),
	}

	return &rawKeyPair, &keyPair, nil
}

// KeyPair - recover the keys, the seed wins over a stored private key
func (raw *RawKeyPair) KeyPair() (*KeyPair, error) {
	if "" != raw.Seed {
		_, keyPair, err := MakeRawKeyPairFromSeed(raw.Seed)
		return keyPair, err
	}

	b, err := hex.DecodeString(raw.PrivateKey)
	if nil != err {
		return nil, fault.ErrInvalidPrivateKey
	}
	privateKey, err := account.PrivateKeyFromBytes(b)
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		PrivateKey: privateKey,
	}, nil
}

// ReadFile - load a JSON key file
func ReadFile(filename string) (*KeyPair, error) {
	b, err := ioutil.ReadFile(filename)
	if nil != err {
		return nil, err
	}
	var raw RawKeyPair
	err = json.Unmarshal(b, &raw)
	if nil != err {
		return nil, err
	}
	return raw.KeyPair()
}

// WriteFile - save a JSON key file readable only by the owner
func (raw *RawKeyPair) WriteFile(filename string) error {
	b, err := json.MarshalIndent(raw, "", "  ")
	if nil != err {
		return err
	}
	return ioutil.WriteFile(filename, append(b, '\n'), 0600)
}
