// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor - entry point of the review program
//
// the handles of each action are positional:
//
//   create review:  author(signer), review, counter, system
//   update review:  author(signer), review
//   add comment:    commenter(signer), review, counter, comment, system
package processor

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/comment"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/instruction"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/review"
	"github.com/bitmark-inc/reviewd/validator"
)

// number of handles each action needs
const (
	createReviewHandles = 4
	updateReviewHandles = 2
	addCommentHandles   = 5
)

// Processor - decodes payloads and runs the matching use case
type Processor struct {
	log      *logger.L
	program  address.Address
	reviews  *review.Reviews
	comments *comment.Comments
}

// New - create the program for an identity
func New(program address.Address) *Processor {
	v := validator.New(program)
	return &Processor{
		log:      logger.New("processor"),
		program:  program,
		reviews:  review.New(v),
		comments: comment.New(v),
	}
}

// Program - identity the processor runs as
func (p *Processor) Program() address.Address {
	return p.program
}

// Process - run one request
func (p *Processor) Process(program address.Address, handles []*ledger.Handle, data []byte, allocator ledger.Allocator) error {
	if program != p.program {
		p.log.Errorf("request for program: %s", program)
		return fault.ErrWrongProgram
	}

	unpacked, err := instruction.Packed(data).Unpack()
	if nil != err {
		p.log.Warnf("payload: %x  error: %s", data, err)
		return err
	}

	action := unpacked.Action()
	p.log.Debugf("action: %s  handles: %d", action, len(handles))

	switch ins := unpacked.(type) {

	case *instruction.CreateReview:
		if len(handles) < createReviewHandles {
			err = fault.ErrNotEnoughHandles
			break
		}
		err = p.reviews.Create(handles[0], handles[1], handles[2], handles[3], allocator, ins.Title, ins.Rating, ins.Description)

	case *instruction.UpdateReview:
		if len(handles) < updateReviewHandles {
			err = fault.ErrNotEnoughHandles
			break
		}
		err = p.reviews.Update(handles[0], handles[1], ins.Title, ins.Rating, ins.Description)

	case *instruction.AddComment:
		if len(handles) < addCommentHandles {
			err = fault.ErrNotEnoughHandles
			break
		}
		err = p.comments.Add(handles[0], handles[1], handles[2], handles[3], handles[4], allocator, ins.Comment)

	default:
		err = fault.ErrUnknownAction
	}

	if nil != err {
		p.log.Warnf("action: %s  rejected: %s  status: %s", action, err, fault.StatusOf(err))
	}
	return err
}
