// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/reviewd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrConfigRequired   = fault.InvalidError("configuration is required")
	ErrNoReview         = fault.InvalidError("review address or author and title are required")
	ErrRatingOutOfRange = fault.InvalidError("rating is out of range")
	ErrTitleRequired    = fault.InvalidError("title is required")
)
