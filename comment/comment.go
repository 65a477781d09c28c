// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package comment - appending comments to a review
package comment

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/record"
	"github.com/bitmark-inc/reviewd/validator"
)

// Comments - comment operations for one program
type Comments struct {
	log       *logger.L
	validator *validator.Validator
}

// New - create the comment operations
func New(v *validator.Validator) *Comments {
	return &Comments{
		log:       logger.New("comment"),
		validator: v,
	}
}

// Add - write a comment at the review's next sequence number
//
// the counter only advances after the comment has been written
func (c *Comments) Add(commenter *ledger.Handle, review *ledger.Handle, counter *ledger.Handle, space *ledger.Handle, system *ledger.Handle, allocator ledger.Allocator, text string) error {
	comment := &record.Comment{
		IsInitialised: true,
		Review:        review.Key,
		Commenter:     commenter.Key,
		Text:          text,
	}

	current, bump, err := c.validator.AddComment(commenter, review, counter, space, comment)
	if nil != err {
		return err
	}
	err = c.validator.System(system)
	if nil != err {
		return err
	}

	sequence := current.Count
	comment.Sequence = sequence

	if !space.Allocated() {
		seeds := address.WithBump(record.CommentSeeds(review.Key, sequence), bump)
		err = allocator.CreateSpace(commenter, space, record.CommentSpace, c.validator.Program(), seeds)
		if nil != err {
			return err
		}
	}
	err = record.Write(space.Data, comment)
	if nil != err {
		return err
	}

	current.Count = sequence + 1
	err = record.Write(counter.Data, current)
	if nil != err {
		return err
	}

	c.log.Infof("review: %s  comment: %d  commenter: %s", review.Key, sequence, commenter.Key)
	return nil
}
