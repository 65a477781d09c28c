// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/record"
	"github.com/bitmark-inc/reviewd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// colours
const (
	keyColour1 = "\033[1;36m"
	keyColour2 = "\033[1;31m"
	valColour1 = "\033[1;33m"
	valColour2 = "\033[1;34m"
	endColour  = "\033[0m"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "ascii", HasArg: getoptions.NO_ARGUMENT, Short: 'a'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["list"]) > 0 {

		// this will be a struct type
		poolType := reflect.TypeOf(storage.Pool)

		// print all available tags
		fmt.Printf(" tags:\n")
		for i := 0; i < poolType.NumField(); i += 1 {
			fieldInfo := poolType.Field(i)
			prefixTag := fieldInfo.Tag.Get("prefix")
			fmt.Printf("       %s → %s\n", prefixTag, fieldInfo.Name)
		}
		return
	}

	if len(options["help"]) > 0 || 1 != len(options["file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--colour] [--ascii] [--count=N] --file=FILE [--list] [tag [start-address]]", program)
	}

	colour := len(options["colour"]) > 0
	ascii := len(options["ascii"]) > 0
	verbose := len(options["verbose"]) > 0

	count := 10
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	filename := options["file"][0]
	tag := "S"
	if len(arguments) > 0 {
		tag = arguments[0]
	}
	if verbose {
		fmt.Printf("read tag: %s from file: %q\n", tag, filename)
	}

	start := []byte(nil)
	if len(arguments) > 1 {
		a, err := address.FromBase58(arguments[1])
		if nil != err {
			exitwithstatus.Message("%s: convert start address error: %s", program, err)
		}
		start = a.Bytes()
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "review-dumpdb.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// start of main processing
	err = storage.Initialise(filename, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer storage.Finalise()

	p := poolByTag(tag)
	if nil == p {
		exitwithstatus.Message("%s: no pool corresponding to: %q", program, tag)
	}

	cursor := p.NewFetchCursor()
	if len(start) > 0 {
		cursor.Seek(start)
	}

	data, err := cursor.Fetch(count)
	if nil != err {
		exitwithstatus.Message("%s: error on Fetch: %s", program, err)
	}

	ck1 := ""
	ck2 := ""
	cv1 := ""
	cv2 := ""
	ce := ""
	if colour {
		ck1 = keyColour1
		ck2 = keyColour2
		cv1 = valColour1
		cv2 = valColour2
		ce = endColour
	}

	for i, e := range data {
		if "S" == tag {
			if a, err := address.FromBytes(e.Key); nil == err {
				fmt.Printf("%d: %sKey: %s%s%s\n", i, ck1, ck2, a, ce)
			} else {
				fmt.Printf("%d: %sKey: %s%x%s\n", i, ck1, ck2, e.Key, ce)
			}
			fmt.Printf("%d: %sVal: %s%s%s\n", i, cv1, cv2, decodeSpace(e.Value), ce)
		} else {
			fmt.Printf("%d: %sKey: %s%x%s\n", i, ck1, ck2, e.Key, ce)
		}

		if ascii {
			prefix := fmt.Sprintf("%d: %sRaw: %s", i, cv1, cv2)
			hexDump(prefix, ce, e.Value)
		} else if "S" != tag || verbose {
			fmt.Printf("%d: %sRaw: %s%x%s\n", i, cv1, cv2, e.Value, ce)
		}
	}
}

// locate the pool whose prefix tag matches
func poolByTag(tag string) *storage.PoolHandle {

	// this will be a struct type
	poolType := reflect.TypeOf(storage.Pool)

	// read-only access
	poolValue := reflect.ValueOf(storage.Pool)

	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		if tag == fieldInfo.Tag.Get("prefix") {
			p, _ := poolValue.Field(i).Interface().(*storage.PoolHandle)
			return p
		}
	}
	return nil
}

type decodedSpace struct {
	Owner  address.Address `json:"owner"`
	Size   int             `json:"size"`
	Record record.Record   `json:"record,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// JSON text of a stored space and the record it holds
func decodeSpace(value []byte) string {
	space, err := ledger.UnpackSpace(value)
	if nil != err {
		return err.Error()
	}
	d := decodedSpace{
		Owner: space.Owner,
		Size:  len(space.Data),
	}

	packed := record.Packed(space.Data)
	if tag, err := packed.Tag(); nil != err {
		d.Error = err.Error()
	} else if "" != tag {
		d.Record, err = packed.Unpack()
		if nil != err {
			d.Error = err.Error()
		}
	}

	b, err := json.Marshal(d)
	if nil != err {
		return err.Error()
	}
	return string(b)
}

// dump hex data on stdout
func hexDump(prefix string, suffix string, data []byte) {
	offset := 0
	const bytesPerLine = 32
	for i := 0; i < len(data); i += bytesPerLine {
		fmt.Printf("%s%04x  ", prefix, offset)
		offset += bytesPerLine
		for j := 0; j < bytesPerLine; j += 1 {
			if bytesPerLine/2 == j {
				fmt.Printf(" ")
			}
			if i+j < len(data) {
				fmt.Printf("%02x ", data[i+j])
			} else {
				fmt.Printf("   ")
			}
		}
		fmt.Printf(" |")
	ascii_loop:
		for j := 0; j < bytesPerLine; j += 1 {
			if i+j < len(data) {
				c := data[i+j]
				if c < 32 || c >= 127 {
					c = '.'
				}
				fmt.Printf("%c", c)

			} else {
				break ascii_loop
			}
		}
		fmt.Printf("|%s\n", suffix)
	}
}
