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
	"github.com/bitmark-inc/reviewd/processor"
	"github.com/bitmark-inc/reviewd/record"
)

type commentResult struct {
	Status   string          `json:"status"`
	Review   address.Address `json:"review"`
	Comment  address.Address `json:"comment"`
	Sequence uint64          `json:"sequence"`
}

func runAddComment(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	text := c.String("comment")

	review, err := reviewAddress(m, c.String("review"), c.String("author"), c.String("title"))
	if nil != err {
		return err
	}

	keyPair, err := signingKey(m)
	if nil != err {
		return err
	}
	commenter := keyPair.PrivateKey.Account().Address()

	// next sequence comes from the stored counter
	counterAddress, err := processor.CounterAddress(m.config.ProgramID, review)
	if nil != err {
		return err
	}
	space, err := m.ledger.Space(counterAddress)
	if nil != err {
		return fault.ErrUninitializedAccount
	}
	counter, err := record.Packed(space.Data).UnpackCounter()
	if nil != err {
		return err
	}
	if !counter.IsInitialised {
		return fault.ErrUninitializedAccount
	}

	if m.verbose {
		fmt.Fprintf(m.e, "commenter: %s\n", commenter)
		fmt.Fprintf(m.e, "review: %s\n", review)
		fmt.Fprintf(m.e, "sequence: %d\n", counter.Count)
		fmt.Fprintf(m.e, "comment: %q\n", text)
	}

	request, err := processor.AddCommentRequest(m.config.ProgramID, commenter, review, counter.Count, text)
	if nil != err {
		return err
	}

	if err := execute(m, request, keyPair); nil != err {
		return err
	}

	return printJson(m.w, commentResult{
		Status:   fault.StatusOK.String(),
		Review:   review,
		Comment:  request.Handles[3].Key,
		Sequence: counter.Count,
	})
}
