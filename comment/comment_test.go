// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package comment_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/comment"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/record"
	"github.com/bitmark-inc/reviewd/validator"
)

var (
	program = address.Address{0x72, 0x65, 0x76}
	alice   = address.Address{0xa1, 0x1c, 0xe0}
	bob     = address.Address{0xb0, 0xb0}
)

type fixture struct {
	comments  *comment.Comments
	allocator *testAllocator
	commenter *ledger.Handle
	review    *ledger.Handle
	counter   *ledger.Handle
	system    *ledger.Handle
}

func allocatedWith(t *testing.T, key address.Address, r record.Record, size int) *ledger.Handle {
	data := make([]byte, size)
	err := record.Write(data, r)
	require.Nil(t, err, "write error")
	return &ledger.Handle{Key: key, IsWritable: true, Owner: program, Data: data}
}

func setup(t *testing.T) *fixture {
	reviewKey, _, err := address.Derive(record.ReviewSeeds(alice, "Inception"), program)
	require.Nil(t, err, "derive error")
	counterKey, _, err := address.Derive(record.CounterSeeds(reviewKey), program)
	require.Nil(t, err, "derive error")

	return &fixture{
		comments:  comment.New(validator.New(program)),
		allocator: newTestAllocator(),
		commenter: &ledger.Handle{Key: bob, IsSigner: true, IsWritable: true, Data: []byte{}},
		review: allocatedWith(t, reviewKey, &record.Review{
			IsInitialised: true,
			Author:        alice,
			Rating:        5,
			Title:         "Inception",
			Description:   "great movie",
		}, record.ReviewSpace),
		counter: allocatedWith(t, counterKey, &record.CommentCounter{IsInitialised: true}, record.CounterSpace),
		system:  &ledger.Handle{Key: address.SystemProgram, Data: []byte{}},
	}
}

// the comment handle a client would build for the next sequence number
func (f *fixture) next(t *testing.T, sequence uint64) *ledger.Handle {
	key, _, err := address.Derive(record.CommentSeeds(f.review.Key, sequence), program)
	require.Nil(t, err, "derive error")
	return &ledger.Handle{Key: key, IsWritable: true, Data: []byte{}}
}

func (f *fixture) count(t *testing.T) uint64 {
	counter, err := record.Packed(f.counter.Data).UnpackCounter()
	require.Nil(t, err, "unpack counter")
	return counter.Count
}

func TestAddSequence(t *testing.T) {
	f := setup(t)

	const n = 5
	for i := uint64(0); i < n; i += 1 {
		space := f.next(t, i)
		err := f.comments.Add(f.commenter, f.review, f.counter, space, f.system, f.allocator, "comment")
		require.Nil(t, err, "add error at: %d", i)

		stored, err := record.Packed(space.Data).UnpackComment()
		require.Nil(t, err, "unpack comment")
		assert.Equal(t, &record.Comment{
			IsInitialised: true,
			Review:        f.review.Key,
			Commenter:     bob,
			Text:          "comment",
			Sequence:      i,
		}, stored, "stored comment")
		assert.Equal(t, record.CommentSpace, len(space.Data), "comment space size")
	}
	assert.Equal(t, uint64(n), f.count(t), "final count")
}

func TestAddStaleSequence(t *testing.T) {
	f := setup(t)

	first := f.next(t, 0)
	err := f.comments.Add(f.commenter, f.review, f.counter, first, f.system, f.allocator, "first")
	require.Nil(t, err, "add error")

	// reusing sequence 0 must fail on the address, not overwrite
	again := f.next(t, 0)
	err = f.comments.Add(f.commenter, f.review, f.counter, again, f.system, f.allocator, "again")
	assert.Equal(t, fault.ErrInvalidAddress, err, "sequence reused")
	assert.Equal(t, uint64(1), f.count(t), "counter moved")
}

func TestAddNeedsCounter(t *testing.T) {
	f := setup(t)
	f.counter = &ledger.Handle{Key: f.counter.Key, IsWritable: true, Data: []byte{}}

	err := f.comments.Add(f.commenter, f.review, f.counter, f.next(t, 0), f.system, f.allocator, "text")
	assert.Equal(t, fault.ErrUninitializedAccount, err, "missing counter accepted")
	assert.Equal(t, 0, len(f.allocator.calls), "allocated")
}

func TestAddUnsigned(t *testing.T) {
	f := setup(t)
	f.commenter.IsSigner = false

	err := f.comments.Add(f.commenter, f.review, f.counter, f.next(t, 0), f.system, f.allocator, "text")
	assert.Equal(t, fault.ErrMissingSignature, err, "unsigned comment accepted")
}

func TestAddSizeCeiling(t *testing.T) {
	overhead := 4 + len(record.CommentTag) + 1 + 2*address.Length + 4 + 8
	room := record.CommentSpace - overhead

	f := setup(t)
	err := f.comments.Add(f.commenter, f.review, f.counter, f.next(t, 0), f.system, f.allocator, strings.Repeat("t", room+1))
	assert.Equal(t, fault.ErrInvalidDataLength, err, "oversize comment accepted")
	assert.Equal(t, uint64(0), f.count(t), "counter moved")

	err = f.comments.Add(f.commenter, f.review, f.counter, f.next(t, 0), f.system, f.allocator, strings.Repeat("t", room))
	assert.Nil(t, err, "exact fit rejected")
}

func TestAddAllocationFailureKeepsCounter(t *testing.T) {
	f := setup(t)
	space := f.next(t, 0)
	f.allocator.fail[space.Key] = fault.ErrSpaceInUse

	err := f.comments.Add(f.commenter, f.review, f.counter, space, f.system, f.allocator, "text")
	assert.Equal(t, fault.ErrSpaceInUse, err, "allocation failure hidden")
	assert.Equal(t, uint64(0), f.count(t), "counter advanced without a comment")
}

func TestAddSystemHandle(t *testing.T) {
	f := setup(t)
	f.system.Key = bob

	err := f.comments.Add(f.commenter, f.review, f.counter, f.next(t, 0), f.system, f.allocator, "text")
	assert.Equal(t, fault.ErrInvalidSystemHandle, err, "wrong system handle accepted")
}
