// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/util"
)

// discriminators, stored as the first field of every record
const (
	ReviewTag  = "review"
	CounterTag = "counter"
	CommentTag = "comment"
)

// byte sizes of the spaces allocated for each record type
const (
	ReviewSpace  = 1000
	CounterSpace = util.StringPrefixBytes + len(CounterTag) + 1 + 8
	CommentSpace = 1000
)

// the initialised flag follows the discriminator in every record
const flagBytes = 1

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
type Record interface {
	Tag() string
	Initialised() bool
	Size() int
	Budget() int
	Pack() (Packed, error)
}

// Review - a rating and description of a title by one author
//
// stored at Derive(author, title)
type Review struct {
	IsInitialised bool            `json:"initialised"`
	Author        address.Address `json:"author"`
	Rating        uint8           `json:"rating"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
}

// CommentCounter - the next comment sequence number for one review
//
// stored at Derive(review, "comment")
type CommentCounter struct {
	IsInitialised bool   `json:"initialised"`
	Count         uint64 `json:"count"`
}

// Comment - one comment on a review
//
// stored at Derive(review, Uint64Seed(sequence))
type Comment struct {
	IsInitialised bool            `json:"initialised"`
	Review        address.Address `json:"review"`
	Commenter     address.Address `json:"commenter"`
	Text          string          `json:"text"`
	Sequence      uint64          `json:"sequence"`
}

// CounterSeed - second seed of a comment counter address
var CounterSeed = []byte("comment")

// ReviewSeeds - seeds of a review address
func ReviewSeeds(author address.Address, title string) [][]byte {
	return [][]byte{author.Bytes(), []byte(title)}
}

// CounterSeeds - seeds of a comment counter address
func CounterSeeds(review address.Address) [][]byte {
	return [][]byte{review.Bytes(), CounterSeed}
}

// CommentSeeds - seeds of a comment address
func CommentSeeds(review address.Address, sequence uint64) [][]byte {
	return [][]byte{review.Bytes(), address.Uint64Seed(sequence)}
}

func tagBytes(tag string) int {
	return util.StringPrefixBytes + len(tag)
}

// Tag - the discriminator
func (review *Review) Tag() string { return ReviewTag }

// Initialised - true once created
func (review *Review) Initialised() bool { return review.IsInitialised }

// Budget - fixed space size
func (review *Review) Budget() int { return ReviewSpace }

// Size - packed size in bytes
func (review *Review) Size() int {
	return tagBytes(ReviewTag) + flagBytes +
		address.Length +
		1 +
		util.StringPrefixBytes + len(review.Title) +
		util.StringPrefixBytes + len(review.Description)
}

// Tag - the discriminator
func (counter *CommentCounter) Tag() string { return CounterTag }

// Initialised - true once created
func (counter *CommentCounter) Initialised() bool { return counter.IsInitialised }

// Budget - fixed space size
func (counter *CommentCounter) Budget() int { return CounterSpace }

// Size - packed size in bytes
func (counter *CommentCounter) Size() int {
	return tagBytes(CounterTag) + flagBytes + 8
}

// Tag - the discriminator
func (comment *Comment) Tag() string { return CommentTag }

// Initialised - true once created
func (comment *Comment) Initialised() bool { return comment.IsInitialised }

// Budget - fixed space size
func (comment *Comment) Budget() int { return CommentSpace }

// Size - packed size in bytes
func (comment *Comment) Size() int {
	return tagBytes(CommentTag) + flagBytes +
		address.Length +
		address.Length +
		util.StringPrefixBytes + len(comment.Text) +
		8
}
