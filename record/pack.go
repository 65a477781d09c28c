// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/util"
)

// Pack - discriminator, initialised flag then fields in the order of
// the struct above
func (review *Review) Pack() (Packed, error) {
	if review.Size() > review.Budget() {
		return nil, fault.ErrInvalidDataLength
	}

	buffer := make([]byte, 0, review.Size())
	buffer = util.AppendString(buffer, ReviewTag)
	buffer = util.AppendBool(buffer, review.IsInitialised)
	buffer = util.AppendFixed(buffer, review.Author[:])
	buffer = util.AppendUint8(buffer, review.Rating)
	buffer = util.AppendString(buffer, review.Title)
	buffer = util.AppendString(buffer, review.Description)
	return buffer, nil
}

// Pack - discriminator, initialised flag then the count
func (counter *CommentCounter) Pack() (Packed, error) {
	buffer := make([]byte, 0, counter.Size())
	buffer = util.AppendString(buffer, CounterTag)
	buffer = util.AppendBool(buffer, counter.IsInitialised)
	buffer = util.AppendUint64(buffer, counter.Count)
	return buffer, nil
}

// Pack - discriminator, initialised flag then fields in the order of
// the struct above
func (comment *Comment) Pack() (Packed, error) {
	if comment.Size() > comment.Budget() {
		return nil, fault.ErrInvalidDataLength
	}

	buffer := make([]byte, 0, comment.Size())
	buffer = util.AppendString(buffer, CommentTag)
	buffer = util.AppendBool(buffer, comment.IsInitialised)
	buffer = util.AppendFixed(buffer, comment.Review[:])
	buffer = util.AppendFixed(buffer, comment.Commenter[:])
	buffer = util.AppendString(buffer, comment.Text)
	buffer = util.AppendUint64(buffer, comment.Sequence)
	return buffer, nil
}

// Write - pack a record into the start of a space and clear the rest
func Write(space []byte, r Record) error {
	packed, err := r.Pack()
	if nil != err {
		return err
	}
	if len(packed) > len(space) {
		return fault.ErrInvalidDataLength
	}
	n := copy(space, packed)
	for i := n; i < len(space); i += 1 {
		space[i] = 0
	}
	return nil
}
