// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/reviewd/account"
	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/ledger"
	"github.com/bitmark-inc/reviewd/processor"
	"github.com/bitmark-inc/reviewd/storage"
)

const (
	dir = "testing"
)

var program = address.Address{
	0x6d, 0x6f, 0x76, 0x69, 0x65, 0x2d, 0x72, 0x65,
	0x76, 0x69, 0x65, 0x77, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
}

// adapt a function to the program interface
type programFunc func(program address.Address, handles []*ledger.Handle, data []byte, allocator ledger.Allocator) error

func (f programFunc) Process(program address.Address, handles []*ledger.Handle, data []byte, allocator ledger.Allocator) error {
	return f(program, handles, data, allocator)
}

// allocator that refuses to create one address
type failingAllocator struct {
	ledger.Allocator
	refuse address.Address
}

func (a *failingAllocator) CreateSpace(payer *ledger.Handle, target *ledger.Handle, size int, owner address.Address, seeds [][]byte) error {
	if target.Key == a.refuse {
		return errInjected
	}
	return a.Allocator.CreateSpace(payer, target, size, owner, seeds)
}

func newSigner(t *testing.T) *account.PrivateKey {
	seed, err := account.NewBase58EncodedSeed()
	require.Nil(t, err, "seed error")
	key, err := account.PrivateKeyFromBase58Seed(seed)
	require.Nil(t, err, "key error")
	return key
}

func databaseName() string {
	return filepath.Join(dir, "processor.leveldb")
}

// a ledger with the review program registered
func setupLedger(t *testing.T) *ledger.Ledger {
	_ = os.RemoveAll(databaseName())
	err := storage.Initialise(databaseName(), storage.ReadWrite)
	require.Nil(t, err, "storage initialise error")

	l := ledger.New(storage.Pool.Spaces, storage.DefaultTransaction())
	err = l.Register(program, processor.New(program))
	require.Nil(t, err, "register error")
	return l
}

func teardownLedger() {
	storage.Finalise()
	_ = os.RemoveAll(databaseName())
}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}
