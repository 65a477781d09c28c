// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/record"
)

type showResult struct {
	Address address.Address `json:"address"`
	Owner   address.Address `json:"owner"`
	Size    int             `json:"size"`
	Tag     string          `json:"tag"`
	Record  record.Record   `json:"record,omitempty"`
}

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, err := address.FromBase58(c.String("address"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "address: %s\n", a)
	}

	space, err := m.ledger.Space(a)
	if nil != err {
		return err
	}

	packed := record.Packed(space.Data)
	tag, err := packed.Tag()
	if nil != err {
		return err
	}

	result := showResult{
		Address: a,
		Owner:   space.Owner,
		Size:    len(space.Data),
		Tag:     tag,
	}

	// a freshly allocated space has nothing to decode
	if "" != tag {
		result.Record, err = packed.Unpack()
		if nil != err {
			return err
		}
	}

	return printJson(m.w, result)
}
