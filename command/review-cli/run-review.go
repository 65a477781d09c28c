// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/keypair"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/processor"
)

type reviewResult struct {
	Status  string          `json:"status"`
	Review  address.Address `json:"review"`
	Counter address.Address `json:"counter,omitempty"`
}

func runCreateReview(c *cli.Context) error {
	return runReview(c, processor.CreateReviewRequest)
}

func runUpdateReview(c *cli.Context) error {
	return runReview(c, processor.UpdateReviewRequest)
}

type reviewRequestFunc func(program address.Address, author address.Address, title string, rating uint8, description string) (*ledger.Request, error)

func runReview(c *cli.Context, makeRequest reviewRequestFunc) error {

	m := c.App.Metadata["config"].(*metadata)

	title := c.String("title")
	if "" == title {
		return ErrTitleRequired
	}
	rating, err := checkRating(c.Int("rating"))
	if nil != err {
		return err
	}
	description := c.String("description")

	keyPair, err := signingKey(m)
	if nil != err {
		return err
	}
	author := keyPair.PrivateKey.Account().Address()

	if m.verbose {
		fmt.Fprintf(m.e, "author: %s\n", author)
		fmt.Fprintf(m.e, "title: %q\n", title)
		fmt.Fprintf(m.e, "rating: %d\n", rating)
		fmt.Fprintf(m.e, "description: %q\n", description)
	}

	request, err := makeRequest(m.config.ProgramID, author, title, rating, description)
	if nil != err {
		return err
	}

	if err := execute(m, request, keyPair); nil != err {
		return err
	}

	review, err := processor.ReviewAddress(m.config.ProgramID, author, title)
	if nil != err {
		return err
	}
	result := reviewResult{
		Status: fault.StatusOK.String(),
		Review: review,
	}
	if len(request.Handles) > 2 {
		result.Counter = request.Handles[2].Key
	}
	return printJson(m.w, result)
}

// sign with the key file account and run the request
func execute(m *metadata, request *ledger.Request, keyPair *keypair.KeyPair) error {
	request.Sign(keyPair.PrivateKey)

	if m.verbose {
		for i, h := range request.Handles {
			fmt.Fprintf(m.e, "handle[%d]: %s  writable: %t\n", i, h.Key, h.IsWritable)
		}
	}

	err := m.ledger.Execute(request)
	if nil != err && m.verbose {
		fmt.Fprintf(m.e, "status: %s\n", fault.StatusOf(err))
	}
	return err
}
