// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - all writes between Begin and Commit land together or,
// after Abort, not at all
type Transaction interface {
	Begin() error
	Put(Handle, []byte, []byte)
	Get(Handle, []byte) []byte
	Has(Handle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

// TransactionData - the single transaction over the database batch
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - start a transaction, fails if one is already in progress
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Put - add a key/value to the transaction
func (t *TransactionData) Put(h Handle, key []byte, value []byte) {
	h.Put(key, value)
}

// Get - read, observing earlier writes in this transaction
func (t *TransactionData) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

// Has - check key, observing earlier writes in this transaction
func (t *TransactionData) Has(h Handle, key []byte) bool {
	return h.Has(key)
}

// Commit - write everything
func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

// Abort - discard everything
func (t *TransactionData) Abort() {
	t.access.Abort()
}

// InUse - a transaction is in progress
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}
