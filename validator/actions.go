// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validator

import (
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/record"
)

// CreateReview - checks for a new review, returns its bump
func (v *Validator) CreateReview(author *ledger.Handle, space *ledger.Handle, review *record.Review) (uint8, error) {
	err := v.Signer(author)
	if nil != err {
		return 0, err
	}
	err = v.Owner(space)
	if nil != err {
		return 0, err
	}
	bump, err := v.Address(space, record.ReviewSeeds(author.Key, review.Title))
	if nil != err {
		return 0, err
	}
	err = v.Rating(review.Rating)
	if nil != err {
		return 0, err
	}
	err = v.Size(review)
	if nil != err {
		return 0, err
	}
	existing, err := record.Packed(space.Data).UnpackReview()
	if nil != err {
		return 0, err
	}
	err = v.Fresh(existing)
	if nil != err {
		return 0, err
	}
	return bump, nil
}

// CreateCounter - checks for the counter paired with a new review,
// returns its bump
func (v *Validator) CreateCounter(review *ledger.Handle, space *ledger.Handle) (uint8, error) {
	err := v.Owner(space)
	if nil != err {
		return 0, err
	}
	bump, err := v.Address(space, record.CounterSeeds(review.Key))
	if nil != err {
		return 0, err
	}
	existing, err := record.Packed(space.Data).UnpackCounter()
	if nil != err {
		return 0, err
	}
	err = v.Fresh(existing)
	if nil != err {
		return 0, err
	}
	return bump, nil
}

// UpdateReview - checks for changing an existing review, the title
// is bound to the address so only rating and description can change
func (v *Validator) UpdateReview(author *ledger.Handle, space *ledger.Handle, review *record.Review) (*record.Review, error) {
	err := v.Signer(author)
	if nil != err {
		return nil, err
	}
	err = v.Owner(space)
	if nil != err {
		return nil, err
	}
	_, err = v.Address(space, record.ReviewSeeds(author.Key, review.Title))
	if nil != err {
		return nil, err
	}
	err = v.Rating(review.Rating)
	if nil != err {
		return nil, err
	}
	err = v.Size(review)
	if nil != err {
		return nil, err
	}
	existing, err := record.Packed(space.Data).UnpackReview()
	if nil != err {
		return nil, err
	}
	err = v.Initialised(existing)
	if nil != err {
		return nil, err
	}
	return existing, nil
}

// AddComment - checks for appending a comment to a review, returns
// the current counter and the bump of the comment address
//
// the comment address depends on the stored count, so the counter is
// loaded and required to exist before the comment address is checked
func (v *Validator) AddComment(commenter *ledger.Handle, review *ledger.Handle, counter *ledger.Handle, space *ledger.Handle, comment *record.Comment) (*record.CommentCounter, uint8, error) {
	err := v.Signer(commenter)
	if nil != err {
		return nil, 0, err
	}
	for _, h := range []*ledger.Handle{review, counter, space} {
		err = v.Owner(h)
		if nil != err {
			return nil, 0, err
		}
	}
	_, err = v.Address(counter, record.CounterSeeds(review.Key))
	if nil != err {
		return nil, 0, err
	}
	current, err := record.Packed(counter.Data).UnpackCounter()
	if nil != err {
		return nil, 0, err
	}
	err = v.Initialised(current)
	if nil != err {
		return nil, 0, err
	}
	bump, err := v.Address(space, record.CommentSeeds(review.Key, current.Count))
	if nil != err {
		return nil, 0, err
	}
	err = v.Size(comment)
	if nil != err {
		return nil, 0, err
	}
	existing, err := record.Packed(space.Data).UnpackComment()
	if nil != err {
		return nil, 0, err
	}
	err = v.Fresh(existing)
	if nil != err {
		return nil, 0, err
	}
	return current, bump, nil
}
