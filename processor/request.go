// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/instruction"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/record"
)

// ReviewAddress - where an author's review of a title is stored
func ReviewAddress(program address.Address, author address.Address, title string) (address.Address, error) {
	a, _, err := address.Derive(record.ReviewSeeds(author, title), program)
	return a, err
}

// CounterAddress - where the comment counter of a review is stored
func CounterAddress(program address.Address, review address.Address) (address.Address, error) {
	a, _, err := address.Derive(record.CounterSeeds(review), program)
	return a, err
}

// CommentAddress - where a review's comment with a sequence number is stored
func CommentAddress(program address.Address, review address.Address, sequence uint64) (address.Address, error) {
	a, _, err := address.Derive(record.CommentSeeds(review, sequence), program)
	return a, err
}

// CreateReviewRequest - unsigned request creating a review
func CreateReviewRequest(program address.Address, author address.Address, title string, rating uint8, description string) (*ledger.Request, error) {
	reviewKey, err := ReviewAddress(program, author, title)
	if nil != err {
		return nil, err
	}
	counterKey, err := CounterAddress(program, reviewKey)
	if nil != err {
		return nil, err
	}

	payload := &instruction.CreateReview{
		Title:       title,
		Rating:      rating,
		Description: description,
	}
	return &ledger.Request{
		Program: program,
		Handles: []ledger.HandleRef{
			{Key: author, IsWritable: true},
			{Key: reviewKey, IsWritable: true},
			{Key: counterKey, IsWritable: true},
			{Key: address.SystemProgram, IsWritable: false},
		},
		Data: payload.Pack(),
	}, nil
}

// UpdateReviewRequest - unsigned request updating a review
func UpdateReviewRequest(program address.Address, author address.Address, title string, rating uint8, description string) (*ledger.Request, error) {
	reviewKey, err := ReviewAddress(program, author, title)
	if nil != err {
		return nil, err
	}

	payload := &instruction.UpdateReview{
		Title:       title,
		Rating:      rating,
		Description: description,
	}
	return &ledger.Request{
		Program: program,
		Handles: []ledger.HandleRef{
			{Key: author, IsWritable: false},
			{Key: reviewKey, IsWritable: true},
		},
		Data: payload.Pack(),
	}, nil
}

// AddCommentRequest - unsigned request adding a comment
//
// sequence must be the review's current comment count
func AddCommentRequest(program address.Address, commenter address.Address, review address.Address, sequence uint64, text string) (*ledger.Request, error) {
	counterKey, err := CounterAddress(program, review)
	if nil != err {
		return nil, err
	}
	commentKey, err := CommentAddress(program, review, sequence)
	if nil != err {
		return nil, err
	}

	payload := &instruction.AddComment{
		Comment: text,
	}
	return &ledger.Request{
		Program: program,
		Handles: []ledger.HandleRef{
			{Key: commenter, IsWritable: true},
			{Key: review, IsWritable: false},
			{Key: counterKey, IsWritable: true},
			{Key: commentKey, IsWritable: true},
			{Key: address.SystemProgram, IsWritable: false},
		},
		Data: payload.Pack(),
	}, nil
}
