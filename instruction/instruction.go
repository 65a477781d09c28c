// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - the request payload of the review program
//
// one action byte followed by the action's fields, strings are count
// prefixed as in stored records:
//
//   0  create review  title, rating(u8), description
//   1  update review  title, rating(u8), description
//   2  add comment    comment
//
// bytes left over after the last field make the payload malformed
package instruction

import (
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/util"
)

// Action - the leading byte of a payload
type Action uint8

// all actions
const (
	CreateReviewAction Action = 0
	UpdateReviewAction Action = 1
	AddCommentAction   Action = 2
)

// String - name of the action
func (a Action) String() string {
	switch a {
	case CreateReviewAction:
		return "CreateReview"
	case UpdateReviewAction:
		return "UpdateReview"
	case AddCommentAction:
		return "AddComment"
	default:
		return "Unknown"
	}
}

// Packed - an encoded payload
type Packed []byte

// Instruction - any decoded payload
type Instruction interface {
	Action() Action
	Pack() Packed
}

// CreateReview - payload of action 0
type CreateReview struct {
	Title       string `json:"title"`
	Rating      uint8  `json:"rating"`
	Description string `json:"description"`
}

// UpdateReview - payload of action 1
type UpdateReview struct {
	Title       string `json:"title"`
	Rating      uint8  `json:"rating"`
	Description string `json:"description"`
}

// AddComment - payload of action 2
type AddComment struct {
	Comment string `json:"comment"`
}

// Action - always CreateReviewAction
func (c *CreateReview) Action() Action { return CreateReviewAction }

// Action - always UpdateReviewAction
func (u *UpdateReview) Action() Action { return UpdateReviewAction }

// Action - always AddCommentAction
func (a *AddComment) Action() Action { return AddCommentAction }

// Pack - encode a create review payload
func (c *CreateReview) Pack() Packed {
	return packReview(CreateReviewAction, c.Title, c.Rating, c.Description)
}

// Pack - encode an update review payload
func (u *UpdateReview) Pack() Packed {
	return packReview(UpdateReviewAction, u.Title, u.Rating, u.Description)
}

// Pack - encode an add comment payload
func (a *AddComment) Pack() Packed {
	buffer := make([]byte, 0, 1+util.StringPrefixBytes+len(a.Comment))
	buffer = util.AppendUint8(buffer, uint8(AddCommentAction))
	buffer = util.AppendString(buffer, a.Comment)
	return buffer
}

func packReview(action Action, title string, rating uint8, description string) Packed {
	buffer := make([]byte, 0, 2+2*util.StringPrefixBytes+len(title)+len(description))
	buffer = util.AppendUint8(buffer, uint8(action))
	buffer = util.AppendString(buffer, title)
	buffer = util.AppendUint8(buffer, rating)
	buffer = util.AppendString(buffer, description)
	return buffer
}

// Unpack - decode a payload
//
// must cast result to correct type
func (packed Packed) Unpack() (Instruction, error) {
	if 0 == len(packed) {
		return nil, fault.ErrMalformedPayload
	}

	r := util.NewFieldReader(packed)
	var result Instruction

	switch action := Action(r.Uint8()); action {

	case CreateReviewAction:
		c := &CreateReview{}
		c.Title = r.String()
		c.Rating = r.Uint8()
		c.Description = r.String()
		result = c

	case UpdateReviewAction:
		u := &UpdateReview{}
		u.Title = r.String()
		u.Rating = r.Uint8()
		u.Description = r.String()
		result = u

	case AddCommentAction:
		a := &AddComment{}
		a.Comment = r.String()
		result = a

	default:
		return nil, fault.ErrUnknownAction
	}

	if r.Failed() || 0 != r.Remaining() {
		return nil, fault.ErrMalformedPayload
	}
	return result, nil
}
