// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the execution host for record programs
//
// A request names a program, an ordered list of space handles and an
// opaque payload.  The ledger verifies the attached signatures, loads
// every space named by the request, runs the program and then writes
// back the spaces it changed.  All of this happens inside one storage
// transaction: a request either lands completely or not at all.
//
// Spaces are stored in the S pool keyed by address:
//
//   S<address>  - owner(32) ++ data
//
// A space that was never created reads as owned by the system program
// with no data.  Only the allocator can change the owner of a space and
// it only does so when the caller proves the address was derived from
// the caller's own program identity.
package ledger
