// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/processor"
)

type addressResult struct {
	Program address.Address `json:"program"`
	Author  address.Address `json:"author"`
	Review  address.Address `json:"review"`
	Counter address.Address `json:"counter"`
	Comment address.Address `json:"comment"`
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	title := c.String("title")
	if "" == title {
		return ErrTitleRequired
	}

	author, err := accountOrSelf(m, c.String("author"))
	if nil != err {
		return err
	}

	sequence := c.Uint64("sequence")

	if m.verbose {
		fmt.Fprintf(m.e, "author: %s\n", author)
		fmt.Fprintf(m.e, "title: %q\n", title)
		fmt.Fprintf(m.e, "sequence: %d\n", sequence)
	}

	program := m.config.ProgramID
	review, err := processor.ReviewAddress(program, author, title)
	if nil != err {
		return err
	}
	counter, err := processor.CounterAddress(program, review)
	if nil != err {
		return err
	}
	comment, err := processor.CommentAddress(program, review, sequence)
	if nil != err {
		return err
	}

	return printJson(m.w, addressResult{
		Program: program,
		Author:  author,
		Review:  review,
		Counter: counter,
		Comment: comment,
	})
}
