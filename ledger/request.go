// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/address"
)

// HandleRef - a space named by a request
type HandleRef struct {
	Key        address.Address `json:"key"`
	IsWritable bool            `json:"writable"`
}

// Signature - one signer's endorsement of a request
type Signature struct {
	Key       address.Address   `json:"key"`
	Signature account.Signature `json:"signature"`
}

// Request - a program invocation
type Request struct {
	Program    address.Address `json:"program"`
	Handles    []HandleRef     `json:"handles"`
	Data       []byte          `json:"data"`
	Signatures []Signature     `json:"signatures"`
}

// Message - the bytes every signer signs
func (r *Request) Message() []byte {
	h := sha3.New256()
	h.Write(r.Program[:])
	for _, ref := range r.Handles {
		h.Write(ref.Key[:])
		if ref.IsWritable {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	h.Write(r.Data)
	return h.Sum(nil)
}

// Sign - attach a signature, the request must not change afterwards
func (r *Request) Sign(privateKey *account.PrivateKey) {
	r.Signatures = append(r.Signatures, Signature{
		Key:       privateKey.Account().Address(),
		Signature: privateKey.Sign(r.Message()),
	})
}

// return the set of verified signers
func (r *Request) signers() (map[address.Address]struct{}, error) {
	message := r.Message()
	signers := make(map[address.Address]struct{}, len(r.Signatures))
	for _, s := range r.Signatures {
		err := account.FromAddress(s.Key).CheckSignature(message, s.Signature)
		if nil != err {
			return nil, err
		}
		signers[s.Key] = struct{}{}
	}
	return signers, nil
}
