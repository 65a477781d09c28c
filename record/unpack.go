// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/util"
)

// Tag - read just the discriminator
//
// a freshly allocated space has an empty discriminator
func (record Packed) Tag() (string, error) {
	if 0 == len(record) {
		return "", nil
	}
	r := util.NewFieldReader(record)
	tag := r.String()
	if r.Failed() {
		return "", fault.ErrMalformedPayload
	}
	return tag, nil
}

// Unpack - turn a byte slice into whichever record its discriminator names
//
// must cast result to correct type
//
// e.g.
//   switch r := result.(type) {
//   case *record.Review:
func (record Packed) Unpack() (Record, error) {
	tag, err := record.Tag()
	if nil != err {
		return nil, err
	}
	switch tag {
	case ReviewTag:
		return record.UnpackReview()
	case CounterTag:
		return record.UnpackCounter()
	case CommentTag:
		return record.UnpackComment()
	default:
		return nil, fault.ErrMalformedPayload
	}
}

// UnpackReview - decode a space expected to hold a review
//
// an empty space gives an uninitialised review, any other
// discriminator is malformed
func (record Packed) UnpackReview() (*Review, error) {
	r, empty, err := record.open(ReviewTag)
	if nil != err {
		return nil, err
	}
	if empty {
		return &Review{}, nil
	}

	review := &Review{
		IsInitialised: r.Bool(),
	}
	review.Author = fixedAddress(r)
	review.Rating = r.Uint8()
	review.Title = r.String()
	review.Description = r.String()
	if r.Failed() {
		return nil, fault.ErrMalformedPayload
	}
	return review, nil
}

// UnpackCounter - decode a space expected to hold a comment counter
func (record Packed) UnpackCounter() (*CommentCounter, error) {
	r, empty, err := record.open(CounterTag)
	if nil != err {
		return nil, err
	}
	if empty {
		return &CommentCounter{}, nil
	}

	counter := &CommentCounter{
		IsInitialised: r.Bool(),
	}
	counter.Count = r.Uint64()
	if r.Failed() {
		return nil, fault.ErrMalformedPayload
	}
	return counter, nil
}

// UnpackComment - decode a space expected to hold a comment
func (record Packed) UnpackComment() (*Comment, error) {
	r, empty, err := record.open(CommentTag)
	if nil != err {
		return nil, err
	}
	if empty {
		return &Comment{}, nil
	}

	comment := &Comment{
		IsInitialised: r.Bool(),
	}
	comment.Review = fixedAddress(r)
	comment.Commenter = fixedAddress(r)
	comment.Text = r.String()
	comment.Sequence = r.Uint64()
	if r.Failed() {
		return nil, fault.ErrMalformedPayload
	}
	return comment, nil
}

// validate the discriminator and position a reader after it
func (record Packed) open(expected string) (*util.FieldReader, bool, error) {
	if 0 == len(record) {
		return nil, true, nil
	}
	r := util.NewFieldReader(record)
	tag := r.String()
	if r.Failed() {
		return nil, false, fault.ErrMalformedPayload
	}
	if "" == tag {
		return nil, true, nil
	}
	if expected != tag {
		return nil, false, fault.ErrMalformedPayload
	}
	return r, false, nil
}

func fixedAddress(r *util.FieldReader) address.Address {
	a := address.Address{}
	copy(a[:], r.Fixed(address.Length))
	return a
}
