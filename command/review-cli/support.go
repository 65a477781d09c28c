// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/keypair"
	"github.com/bitmark-inc/reviewd/processor"
)

// the signing key from the configured key file
func signingKey(m *metadata) (*keypair.KeyPair, error) {
	return keypair.ReadFile(m.config.KeyFile)
}

// an explicit account or the key file account when blank
func accountOrSelf(m *metadata, s string) (address.Address, error) {
	if "" != s {
		a, err := account.FromBase58(s)
		if nil != err {
			return address.Address{}, err
		}
		return a.Address(), nil
	}
	keyPair, err := signingKey(m)
	if nil != err {
		return address.Address{}, err
	}
	return keyPair.PrivateKey.Account().Address(), nil
}

func checkRating(rating int) (uint8, error) {
	if rating < 0 || rating > 255 {
		return 0, ErrRatingOutOfRange
	}
	return uint8(rating), nil
}

// a review given directly or derived from its author and title
func reviewAddress(m *metadata, review string, author string, title string) (address.Address, error) {
	if "" != review {
		return address.FromBase58(review)
	}
	if "" == title {
		return address.Address{}, ErrNoReview
	}
	a, err := accountOrSelf(m, author)
	if nil != err {
		return address.Address{}, err
	}
	return processor.ReviewAddress(m.config.ProgramID, a, title)
}
