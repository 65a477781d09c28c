// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/reviewd/keypair"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var rawKeyPair *keypair.RawKeyPair
	var err error
	if seed := c.String("seed"); "" != seed {
		rawKeyPair, _, err = keypair.MakeRawKeyPairFromSeed(seed)
	} else {
		rawKeyPair, _, err = keypair.MakeRawKeyPair()
	}
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "rawKeyPair: %#v\n", rawKeyPair)
	}

	if c.Bool("save") {
		if nil == m.config {
			return ErrConfigRequired
		}
		if m.verbose {
			fmt.Fprintf(m.e, "writing key file: %s\n", m.config.KeyFile)
		}
		if err := rawKeyPair.WriteFile(m.config.KeyFile); nil != err {
			return err
		}
	}

	return printJson(m.w, rawKeyPair)
}
