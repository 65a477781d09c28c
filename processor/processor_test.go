// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/instruction"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/processor"
	"github.com/bitmark-inc/reviewd/record"
	"github.com/bitmark-inc/reviewd/storage"
)

var errInjected = fault.ProcessError("injected failure")

func createReview(t *testing.T, l *ledger.Ledger, author *account.PrivateKey, title string, rating uint8, description string) error {
	request, err := processor.CreateReviewRequest(program, author.Account().Address(), title, rating, description)
	require.Nil(t, err, "request error")
	request.Sign(author)
	return l.Execute(request)
}

func updateReview(t *testing.T, l *ledger.Ledger, author *account.PrivateKey, title string, rating uint8, description string) error {
	request, err := processor.UpdateReviewRequest(program, author.Account().Address(), title, rating, description)
	require.Nil(t, err, "request error")
	request.Sign(author)
	return l.Execute(request)
}

func storedReview(t *testing.T, l *ledger.Ledger, key address.Address) *record.Review {
	space, err := l.Space(key)
	require.Nil(t, err, "review space missing")
	r, err := record.Packed(space.Data).UnpackReview()
	require.Nil(t, err, "unpack review")
	return r
}

func storedCount(t *testing.T, l *ledger.Ledger, review address.Address) uint64 {
	key, err := processor.CounterAddress(program, review)
	require.Nil(t, err, "counter address")
	space, err := l.Space(key)
	require.Nil(t, err, "counter space missing")
	c, err := record.Packed(space.Data).UnpackCounter()
	require.Nil(t, err, "unpack counter")
	require.True(t, c.IsInitialised, "counter not initialised")
	return c.Count
}

func TestDeterministicAddress(t *testing.T) {
	alice := newSigner(t).Account().Address()

	a1, err := processor.ReviewAddress(program, alice, "Inception")
	require.Nil(t, err, "derive error")
	a2, err := processor.ReviewAddress(program, alice, "Inception")
	require.Nil(t, err, "derive error")
	assert.Equal(t, a1, a2, "address changed between calls")

	other, err := processor.ReviewAddress(program, alice, "Interstellar")
	require.Nil(t, err, "derive error")
	assert.NotEqual(t, a1, other, "title ignored")
}

func TestCreateAndUpdate(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	alice := newSigner(t)
	err := createReview(t, l, alice, "Inception", 5, "great movie")
	require.Nil(t, err, "create error")

	key, _ := processor.ReviewAddress(program, alice.Account().Address(), "Inception")
	r := storedReview(t, l, key)
	assert.Equal(t, &record.Review{
		IsInitialised: true,
		Author:        alice.Account().Address(),
		Rating:        5,
		Title:         "Inception",
		Description:   "great movie",
	}, r, "stored review")
	assert.Equal(t, uint64(0), storedCount(t, l, key), "initial count")

	space, _ := l.Space(key)
	assert.Equal(t, program, space.Owner, "review owner")
	assert.Equal(t, record.ReviewSpace, len(space.Data), "review space size")

	err = updateReview(t, l, alice, "Inception", 4, "still great")
	require.Nil(t, err, "update error")

	r = storedReview(t, l, key)
	assert.Equal(t, uint8(4), r.Rating, "rating not updated")
	assert.Equal(t, "still great", r.Description, "description not updated")
}

func TestAddressBinding(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	alice := newSigner(t)
	err := createReview(t, l, alice, "Inception", 5, "great movie")
	require.Nil(t, err, "create error")

	key, _ := processor.ReviewAddress(program, alice.Account().Address(), "Inception")

	// same handle, different title
	request := &ledger.Request{
		Program: program,
		Handles: []ledger.HandleRef{
			{Key: alice.Account().Address()},
			{Key: key, IsWritable: true},
		},
		Data: (&instruction.UpdateReview{Title: "Interstellar", Rating: 4, Description: "great movie"}).Pack(),
	}
	request.Sign(alice)

	err = l.Execute(request)
	assert.Equal(t, fault.ErrInvalidAddress, err, "title change accepted")
	assert.Equal(t, "Inception", storedReview(t, l, key).Title, "title changed")
}

func TestRatingBounds(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	alice := newSigner(t)

	for _, rating := range []uint8{0, 6} {
		err := createReview(t, l, alice, "Inception", rating, "x")
		assert.Equal(t, fault.ErrInvalidRating, err, "create rating: %d", rating)
	}

	err := createReview(t, l, alice, "Inception", 1, "x")
	assert.Nil(t, err, "rating 1 rejected")
	err = createReview(t, l, alice, "Tenet", 5, "x")
	assert.Nil(t, err, "rating 5 rejected")

	for _, rating := range []uint8{0, 6} {
		err := updateReview(t, l, alice, "Inception", rating, "x")
		assert.Equal(t, fault.ErrInvalidRating, err, "update rating: %d", rating)
	}
	for _, rating := range []uint8{1, 5} {
		err := updateReview(t, l, alice, "Inception", rating, "x")
		assert.Nil(t, err, "update rating: %d", rating)
	}
}

func TestSingleInitialisation(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	alice := newSigner(t)
	err := createReview(t, l, alice, "Inception", 5, "great movie")
	require.Nil(t, err, "create error")

	err = createReview(t, l, alice, "Inception", 2, "changed my mind")
	assert.Equal(t, fault.ErrAlreadyInitialized, err, "created twice")
	assert.Equal(t, fault.StatusAlreadyInitialized, fault.StatusOf(err), "status")

	key, _ := processor.ReviewAddress(program, alice.Account().Address(), "Inception")
	assert.Equal(t, uint8(5), storedReview(t, l, key).Rating, "first review overwritten")
}

func TestCounterMonotonic(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	alice := newSigner(t)
	bob := newSigner(t)

	err := createReview(t, l, alice, "Inception", 5, "great movie")
	require.Nil(t, err, "create error")
	reviewKey, _ := processor.ReviewAddress(program, alice.Account().Address(), "Inception")

	const n = 6
	for i := uint64(0); i < n; i += 1 {
		request, err := processor.AddCommentRequest(program, bob.Account().Address(), reviewKey, storedCount(t, l, reviewKey), "agreed")
		require.Nil(t, err, "request error")
		request.Sign(bob)
		err = l.Execute(request)
		require.Nil(t, err, "add comment: %d", i)
	}

	assert.Equal(t, uint64(n), storedCount(t, l, reviewKey), "final count")

	for i := uint64(0); i < n; i += 1 {
		key, _ := processor.CommentAddress(program, reviewKey, i)
		space, err := l.Space(key)
		require.Nil(t, err, "comment: %d missing", i)
		c, err := record.Packed(space.Data).UnpackComment()
		require.Nil(t, err, "unpack comment")
		assert.Equal(t, i, c.Sequence, "sequence")
		assert.Equal(t, reviewKey, c.Review, "review reference")
		assert.Equal(t, bob.Account().Address(), c.Commenter, "commenter")
	}

	// a stale sequence number must not overwrite an existing comment
	request, _ := processor.AddCommentRequest(program, bob.Account().Address(), reviewKey, 2, "late")
	request.Sign(bob)
	err = l.Execute(request)
	assert.Equal(t, fault.ErrInvalidAddress, err, "stale sequence accepted")
	assert.Equal(t, uint64(n), storedCount(t, l, reviewKey), "count moved")
}

func TestCommentOnMissingReview(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	bob := newSigner(t)
	reviewKey, _ := processor.ReviewAddress(program, bob.Account().Address(), "Nothing")

	request, _ := processor.AddCommentRequest(program, bob.Account().Address(), reviewKey, 0, "hello")
	request.Sign(bob)
	err := l.Execute(request)
	assert.Equal(t, fault.ErrUninitializedAccount, err, "comment on missing review")
}

func TestAtomicPairing(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	alice := newSigner(t)
	reviewKey, _ := processor.ReviewAddress(program, alice.Account().Address(), "Inception")
	counterKey, _ := processor.CounterAddress(program, reviewKey)

	// same storage, counter creation disabled
	faulty := ledger.New(storage.Pool.Spaces, storage.DefaultTransaction())
	p := processor.New(program)
	err := faulty.Register(program, programFunc(func(id address.Address, handles []*ledger.Handle, data []byte, allocator ledger.Allocator) error {
		return p.Process(id, handles, data, &failingAllocator{Allocator: allocator, refuse: counterKey})
	}))
	require.Nil(t, err, "register error")

	request, _ := processor.CreateReviewRequest(program, alice.Account().Address(), "Inception", 5, "great movie")
	request.Sign(alice)
	err = faulty.Execute(request)
	assert.Equal(t, errInjected, err, "injected failure not reported")

	_, err = l.Space(reviewKey)
	assert.Equal(t, fault.ErrSpaceNotFound, err, "review left behind")

	err = updateReview(t, l, alice, "Inception", 4, "still great")
	assert.Equal(t, fault.ErrUninitializedAccount, err, "update after failed create")

	// the normal program can still create it
	err = createReview(t, l, alice, "Inception", 5, "great movie")
	assert.Nil(t, err, "create after failed create")
}

func TestSizeCeiling(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	alice := newSigner(t)
	title := "Inception"
	overhead := 4 + len(record.ReviewTag) + 1 + address.Length + 1 + 4 + len(title) + 4
	room := record.ReviewSpace - overhead

	err := createReview(t, l, alice, title, 5, strings.Repeat("d", room+1))
	assert.Equal(t, fault.ErrInvalidDataLength, err, "oversize accepted")

	err = createReview(t, l, alice, title, 5, strings.Repeat("d", room-1))
	assert.Nil(t, err, "one byte under rejected")

	err = updateReview(t, l, alice, title, 5, strings.Repeat("d", room+1))
	assert.Equal(t, fault.ErrInvalidDataLength, err, "oversize update accepted")
}

func TestMissingSignature(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	alice := newSigner(t)
	request, _ := processor.CreateReviewRequest(program, alice.Account().Address(), "Inception", 5, "great movie")
	err := l.Execute(request)
	assert.Equal(t, fault.ErrMissingSignature, err, "unsigned create")

	// signed by someone else
	request.Sign(newSigner(t))
	err = l.Execute(request)
	assert.Equal(t, fault.ErrMissingSignature, err, "create signed by another key")
}

func TestMalformedRequests(t *testing.T) {
	l := setupLedger(t)
	defer teardownLedger()

	alice := newSigner(t)

	request, _ := processor.CreateReviewRequest(program, alice.Account().Address(), "Inception", 5, "great movie")
	request.Handles = request.Handles[:3]
	request.Sign(alice)
	err := l.Execute(request)
	assert.Equal(t, fault.ErrNotEnoughHandles, err, "short handle list")
	assert.Equal(t, fault.StatusMalformedPayload, fault.StatusOf(err), "status")

	request, _ = processor.CreateReviewRequest(program, alice.Account().Address(), "Inception", 5, "great movie")
	request.Data = []byte{0x09}
	request.Sign(alice)
	err = l.Execute(request)
	assert.Equal(t, fault.StatusMalformedPayload, fault.StatusOf(err), "unknown action")

	request, _ = processor.CreateReviewRequest(program, alice.Account().Address(), "Inception", 5, "great movie")
	request.Handles[3].Key = alice.Account().Address()
	request.Sign(alice)
	err = l.Execute(request)
	assert.Equal(t, fault.StatusInvalidAddress, fault.StatusOf(err), "wrong system handle")
}

func TestWrongProgram(t *testing.T) {
	p := processor.New(program)
	err := p.Process(address.Address{0x01}, nil, nil, nil)
	assert.Equal(t, fault.ErrWrongProgram, err, "foreign program accepted")
	assert.Equal(t, program, p.Program(), "program identity")
}
