// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/reviewd/address"
	"github.com/bitmark-inc/reviewd/counter"
	"github.com/bitmark-inc/reviewd/fault"
	"github.com/bitmark-inc/reviewd/storage"
)

// Program - logic that owns spaces
type Program interface {
	Process(program address.Address, handles []*Handle, data []byte, allocator Allocator) error
}

// Ledger - runs requests against stored spaces
type Ledger struct {
	sync.Mutex

	log      *logger.L
	spaces   storage.Handle
	trx      storage.Transaction
	programs map[address.Address]Program

	executed counter.Counter
	failed   counter.Counter
}

// New - create a ledger over a spaces pool
//
// trx is the transaction the pool writes through, it is begun and
// ended by each request
func New(spaces storage.Handle, trx storage.Transaction) *Ledger {
	return &Ledger{
		log:      logger.New("ledger"),
		spaces:   spaces,
		trx:      trx,
		programs: make(map[address.Address]Program),
	}
}

// Register - make a program available under an identity
func (l *Ledger) Register(id address.Address, program Program) error {
	l.Lock()
	defer l.Unlock()

	if id.IsZero() {
		return fault.ErrInvalidProgram
	}
	if _, ok := l.programs[id]; ok {
		return fault.ErrAlreadyInitialised
	}
	l.programs[id] = program
	return nil
}

// Execute - run one request atomically
func (l *Ledger) Execute(request *Request) error {
	l.Lock()
	defer l.Unlock()

	n := l.executed.Increment()

	err := l.execute(request)
	if nil != err {
		l.failed.Increment()
		l.log.Warnf("request: %d  program: %s  status: %s  error: %s", n, request.Program, fault.StatusOf(err), err)
		return err
	}

	l.log.Debugf("request: %d  program: %s  handles: %d  committed", n, request.Program, len(request.Handles))
	return nil
}

func (l *Ledger) execute(request *Request) error {
	program, ok := l.programs[request.Program]
	if !ok {
		return fault.ErrInvalidProgram
	}

	signers, err := request.signers()
	if nil != err {
		return err
	}

	err = l.trx.Begin()
	if nil != err {
		return err
	}

	// anything short of a successful commit, including a panic in the
	// program, must release the batch
	committed := false
	defer func() {
		if !committed {
			l.trx.Abort()
		}
	}()

	handles, originals, err := l.load(request, signers)
	if nil != err {
		return err
	}

	alloc := newAllocator(request.Program)
	err = program.Process(request.Program, handles, request.Data, alloc)
	if nil != err {
		return err
	}

	err = l.store(request.Program, handles, originals, alloc)
	if nil != err {
		return err
	}

	err = l.trx.Commit()
	if nil != err {
		return err
	}
	committed = true
	return nil
}

// load every named space, a key named twice shares one handle
func (l *Ledger) load(request *Request, signers map[address.Address]struct{}) ([]*Handle, map[address.Address]snapshot, error) {
	handles := make([]*Handle, 0, len(request.Handles))
	loaded := make(map[address.Address]*Handle, len(request.Handles))
	originals := make(map[address.Address]snapshot, len(request.Handles))

	for _, ref := range request.Handles {
		if h, ok := loaded[ref.Key]; ok {
			h.IsWritable = h.IsWritable || ref.IsWritable
			handles = append(handles, h)
			continue
		}

		space, err := UnpackSpace(l.trx.Get(l.spaces, ref.Key[:]))
		if nil != err {
			return nil, nil, err
		}

		_, signed := signers[ref.Key]
		h := &Handle{
			Key:        ref.Key,
			IsSigner:   signed,
			IsWritable: ref.IsWritable,
			Owner:      space.Owner,
			Data:       space.Data,
		}
		loaded[ref.Key] = h
		originals[ref.Key] = h.snapshot()
		handles = append(handles, h)
	}
	return handles, originals, nil
}

// write back changed spaces, only the owner may change a space and
// only the allocator may change the owner
func (l *Ledger) store(program address.Address, handles []*Handle, originals map[address.Address]snapshot, alloc *allocator) error {
	done := make(map[address.Address]struct{}, len(originals))

	for _, h := range handles {
		if _, ok := done[h.Key]; ok {
			continue
		}
		done[h.Key] = struct{}{}

		original := originals[h.Key]
		if h.Owner == original.owner && bytes.Equal(h.Data, original.data) {
			continue
		}

		if !h.IsWritable {
			return fault.ErrReadOnlyHandleModified
		}

		created := alloc.created(h.Key)
		if !created {
			if original.owner != program || h.Owner != original.owner {
				return fault.ErrWrongProgram
			}
			if len(h.Data) != len(original.data) {
				return fault.ErrInvalidDataLength
			}
		}

		space := Space{
			Owner: h.Owner,
			Data:  h.Data,
		}
		l.trx.Put(l.spaces, h.Key[:], space.pack())
	}
	return nil
}

// Space - direct lookup of a committed space
//
// waits for any request in progress so its pending batch is never seen
func (l *Ledger) Space(a address.Address) (*Space, error) {
	l.Lock()
	defer l.Unlock()

	packed := l.spaces.Get(a[:])
	if nil == packed {
		return nil, fault.ErrSpaceNotFound
	}
	return UnpackSpace(packed)
}

// Stats - number of requests run and how many of them failed
func (l *Ledger) Stats() (uint64, uint64) {
	l.Lock()
	defer l.Unlock()

	return l.executed.Uint64(), l.failed.Uint64()
}
