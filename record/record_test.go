// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/record"
)

var (
	alice  = address.Address{0xa1, 0x1c, 0xe0}
	bob    = address.Address{0xb0, 0xb0}
	target = address.Address{0x7a, 0x26, 0xe7}
)

// review header: tag(4+6) flag(1) author(32) rating(1) two string prefixes(8)
const reviewOverhead = 52

func TestReviewPackUnpack(t *testing.T) {
	review := &record.Review{
		IsInitialised: true,
		Author:        alice,
		Rating:        5,
		Title:         "Inception",
		Description:   "great movie",
	}

	packed, err := review.Pack()
	assert.Nil(t, err, "pack error")
	assert.Equal(t, review.Size(), len(packed), "size does not match packed length")
	assert.Equal(t, reviewOverhead+len("Inception")+len("great movie"), review.Size(), "wrong size")

	space := make([]byte, record.ReviewSpace)
	err = record.Write(space, review)
	assert.Nil(t, err, "write error")

	decoded, err := record.Packed(space).UnpackReview()
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, review, decoded, "review changed by pack/unpack")

	generic, err := record.Packed(space).Unpack()
	assert.Nil(t, err, "generic unpack error")
	assert.IsType(t, &record.Review{}, generic, "wrong record type")
}

func TestCounterPackUnpack(t *testing.T) {
	assert.Equal(t, 20, record.CounterSpace, "counter space")

	counter := &record.CommentCounter{
		IsInitialised: true,
		Count:         42,
	}
	space := make([]byte, record.CounterSpace)
	err := record.Write(space, counter)
	assert.Nil(t, err, "write error")

	decoded, err := record.Packed(space).UnpackCounter()
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, counter, decoded, "counter changed by pack/unpack")
}

func TestCommentPackUnpack(t *testing.T) {
	comment := &record.Comment{
		IsInitialised: true,
		Review:        target,
		Commenter:     bob,
		Text:          "agreed",
		Sequence:      7,
	}
	packed, err := comment.Pack()
	assert.Nil(t, err, "pack error")
	assert.Equal(t, comment.Size(), len(packed), "size does not match packed length")

	decoded, err := packed.UnpackComment()
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, comment, decoded, "comment changed by pack/unpack")

	tag, err := packed.Tag()
	assert.Nil(t, err, "tag error")
	assert.Equal(t, record.CommentTag, tag, "wrong tag")
}

func TestSizeCeiling(t *testing.T) {
	title := "Inception"
	fits := strings.Repeat("x", record.ReviewSpace-reviewOverhead-len(title))

	review := &record.Review{Title: title, Description: fits}
	assert.Equal(t, record.ReviewSpace, review.Size(), "exact fit")
	_, err := review.Pack()
	assert.Nil(t, err, "exact fit rejected")

	review.Description = fits[1:]
	_, err = review.Pack()
	assert.Nil(t, err, "one byte under rejected")

	review.Description = fits + "x"
	_, err = review.Pack()
	assert.Equal(t, fault.ErrInvalidDataLength, err, "oversize accepted")

	comment := &record.Comment{Text: strings.Repeat("y", record.CommentSpace)}
	_, err = comment.Pack()
	assert.Equal(t, fault.ErrInvalidDataLength, err, "oversize comment accepted")
}

func TestWriteClearsTail(t *testing.T) {
	space := make([]byte, record.ReviewSpace)
	for i := range space {
		space[i] = 0xff
	}

	review := &record.Review{IsInitialised: true, Rating: 1, Title: "t"}
	err := record.Write(space, review)
	assert.Nil(t, err, "write error")
	for i := review.Size(); i < len(space); i += 1 {
		if 0 != space[i] {
			t.Fatalf("byte %d not cleared: %02x", i, space[i])
		}
	}

	err = record.Write(make([]byte, 10), review)
	assert.Equal(t, fault.ErrInvalidDataLength, err, "short space accepted")
}

func TestEmptySpaceIsUninitialised(t *testing.T) {
	review, err := record.Packed(make([]byte, record.ReviewSpace)).UnpackReview()
	assert.Nil(t, err, "unpack error")
	assert.False(t, review.Initialised(), "zero space initialised")

	counter, err := record.Packed(nil).UnpackCounter()
	assert.Nil(t, err, "unpack error")
	assert.False(t, counter.Initialised(), "missing space initialised")

	comment, err := record.Packed([]byte{}).UnpackComment()
	assert.Nil(t, err, "unpack error")
	assert.False(t, comment.Initialised(), "empty space initialised")
}

func TestWrongDiscriminator(t *testing.T) {
	counter := &record.CommentCounter{IsInitialised: true}
	packed, err := counter.Pack()
	assert.Nil(t, err, "pack error")

	_, err = packed.UnpackReview()
	assert.Equal(t, fault.ErrMalformedPayload, err, "counter decoded as review")

	_, err = packed.UnpackComment()
	assert.Equal(t, fault.ErrMalformedPayload, err, "counter decoded as comment")

	unknown := record.Packed{0x03, 0x00, 0x00, 0x00, 'f', 'o', 'o', 0x01}
	_, err = unknown.Unpack()
	assert.Equal(t, fault.ErrMalformedPayload, err, "unknown tag accepted")
}

func TestTruncatedRecord(t *testing.T) {
	review := &record.Review{IsInitialised: true, Title: "Inception", Description: "great"}
	packed, err := review.Pack()
	assert.Nil(t, err, "pack error")

	for _, n := range []int{3, 11, 20, len(packed) - 1} {
		_, err := packed[:n].UnpackReview()
		assert.Equal(t, fault.ErrMalformedPayload, err, "truncated at %d accepted", n)
	}

	// invalid initialised flag
	packed[10] = 0x02
	_, err = packed.UnpackReview()
	assert.Equal(t, fault.ErrMalformedPayload, err, "invalid flag accepted")
}

func TestSeeds(t *testing.T) {
	assert.Equal(t, [][]byte{alice.Bytes(), []byte("Inception")}, record.ReviewSeeds(alice, "Inception"), "review seeds")
	assert.Equal(t, [][]byte{target.Bytes(), []byte("comment")}, record.CounterSeeds(target), "counter seeds")
	assert.Equal(t, [][]byte{target.Bytes(), {0, 0, 0, 0, 0, 0, 0, 3}}, record.CommentSeeds(target, 3), "comment seeds")
}
