// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/reviewd/configuration"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/processor"
	"github.com/bitmark-inc/reviewd/storage"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	ledger  *ledger.Ledger
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "review-cli"
	app.Usage = "create and comment on movie reviews"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "review.conf",
			Usage: " configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, optionally save it as the configured key file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " use an existing `SEED`",
				},
				cli.BoolFlag{
					Name:  "save",
					Usage: " write the key pair to the configured key file",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "address",
			Usage:     "derive the review, counter and comment addresses",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "author, a",
					Value: "",
					Usage: " review author `ACCOUNT` default is the key file account",
				},
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: "*movie title `STRING`",
				},
				cli.Uint64Flag{
					Name:  "sequence, s",
					Value: 0,
					Usage: " comment sequence `NUMBER`",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "create-review",
			Usage:     "create a review signed by the key file account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: "*movie title `STRING`",
				},
				cli.IntFlag{
					Name:  "rating, r",
					Value: 0,
					Usage: "*rating 1..5 `NUMBER`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " review text `STRING`",
				},
			},
			Action: runCreateReview,
		},
		{
			Name:      "update-review",
			Usage:     "replace the rating and description of an existing review",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: "*movie title `STRING`",
				},
				cli.IntFlag{
					Name:  "rating, r",
					Value: 0,
					Usage: "*rating 1..5 `NUMBER`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " review text `STRING`",
				},
			},
			Action: runUpdateReview,
		},
		{
			Name:      "add-comment",
			Usage:     "add a comment to a review",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "review, r",
					Value: "",
					Usage: "+review `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "author, a",
					Value: "",
					Usage: "+review author `ACCOUNT` used with --title",
				},
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: "+movie title `STRING` used with --author",
				},
				cli.StringFlag{
					Name:  "comment, c",
					Value: "",
					Usage: "*comment text `STRING`",
				},
			},
			Action: runAddComment,
		},
		{
			Name:      "show",
			Usage:     "decode the record stored at an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*space `ADDRESS`",
				},
			},
			Action: runShow,
		},
		{
			Name:   "version",
			Usage:  "display review-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			file:    c.GlobalString("config"),
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "help", "version":
			return nil
		case "generate":
			if !hasSave(c.Args()) {
				return nil
			}
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", m.file)
		}

		config, err := configuration.GetConfiguration(m.file)
		if nil != err {
			return err
		}
		m.config = config

		if "generate" == command {
			return nil
		}

		return openLedger(m)
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.ledger {
			return nil
		}
		executed, failed := m.ledger.Stats()
		if m.verbose {
			fmt.Fprintf(m.e, "requests executed: %d  failed: %d\n", executed, failed)
		}
		storage.Finalise()
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		status := fault.StatusOf(err)
		if fault.StatusOK == status {
			status = fault.StatusInternal
		}
		exitwithstatus.Exit(int(status))
	}
}

// the generate command only needs configuration to locate the key file
func hasSave(args cli.Args) bool {
	for _, a := range args.Tail() {
		if "--save" == a || "-save" == a {
			return true
		}
	}
	return false
}

// start logging, open the database and register the review program
func openLedger(m *metadata) error {

	if err := logger.Initialise(m.config.Logging); nil != err {
		return err
	}

	log := logger.New("main")
	log.Info("starting…")

	if err := fault.Initialise(); nil != err {
		return err
	}

	log.Infof("database: %q", m.config.Database.Name)
	if err := storage.Initialise(m.config.Database.Name, storage.ReadWrite); nil != err {
		log.Criticalf("storage initialise error: %s", err)
		return err
	}

	l := ledger.New(storage.Pool.Spaces, storage.DefaultTransaction())
	if err := l.Register(m.config.ProgramID, processor.New(m.config.ProgramID)); nil != err {
		return err
	}
	m.ledger = l

	if m.verbose {
		fmt.Fprintf(m.e, "program: %s\n", m.config.ProgramID)
	}
	return nil
}
