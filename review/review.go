// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package review - creation and update of reviews
//
// a review is created together with its comment counter, both live at
// addresses derived from the author and the title
package review

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/record"
	"github.com/bitmark-inc/reviewd/validator"
)

// Reviews - review operations for one program
type Reviews struct {
	log       *logger.L
	validator *validator.Validator
}

// New - create the review operations
func New(v *validator.Validator) *Reviews {
	return &Reviews{
		log:       logger.New("review"),
		validator: v,
	}
}

// Create - a new review and its empty comment counter
//
// nothing is allocated until both records have passed validation, a
// failure while allocating the counter leaves the review written but
// the ledger discards the whole request
func (r *Reviews) Create(author *ledger.Handle, space *ledger.Handle, counter *ledger.Handle, system *ledger.Handle, allocator ledger.Allocator, title string, rating uint8, description string) error {
	review := &record.Review{
		IsInitialised: true,
		Author:        author.Key,
		Rating:        rating,
		Title:         title,
		Description:   description,
	}

	reviewBump, err := r.validator.CreateReview(author, space, review)
	if nil != err {
		return err
	}
	counterBump, err := r.validator.CreateCounter(space, counter)
	if nil != err {
		return err
	}
	err = r.validator.System(system)
	if nil != err {
		return err
	}

	program := r.validator.Program()

	err = allocate(allocator, author, space, record.ReviewSpace, program, address.WithBump(record.ReviewSeeds(author.Key, title), reviewBump))
	if nil != err {
		return err
	}
	err = record.Write(space.Data, review)
	if nil != err {
		return err
	}

	err = allocate(allocator, author, counter, record.CounterSpace, program, address.WithBump(record.CounterSeeds(space.Key), counterBump))
	if nil != err {
		return err
	}
	err = record.Write(counter.Data, &record.CommentCounter{
		IsInitialised: true,
		Count:         0,
	})
	if nil != err {
		return err
	}

	r.log.Infof("created review: %s  author: %s  title: %q  rating: %d", space.Key, author.Key, title, rating)
	r.log.Debugf("review: %s  counter: %s", space.Key, counter.Key)
	return nil
}

// Update - replace rating and description of an existing review
//
// the title is part of the address so it can only be rewritten with
// its original value
func (r *Reviews) Update(author *ledger.Handle, space *ledger.Handle, title string, rating uint8, description string) error {
	review := &record.Review{
		IsInitialised: true,
		Author:        author.Key,
		Rating:        rating,
		Title:         title,
		Description:   description,
	}

	existing, err := r.validator.UpdateReview(author, space, review)
	if nil != err {
		return err
	}

	existing.Title = title
	existing.Rating = rating
	existing.Description = description

	err = record.Write(space.Data, existing)
	if nil != err {
		return err
	}

	r.log.Infof("updated review: %s  author: %s  rating: %d", space.Key, author.Key, rating)
	return nil
}

// create a space unless an earlier request already did
func allocate(allocator ledger.Allocator, payer *ledger.Handle, target *ledger.Handle, size int, program address.Address, seeds [][]byte) error {
	if target.Allocated() {
		return nil
	}
	return allocator.CreateSpace(payer, target, size, program, seeds)
}
