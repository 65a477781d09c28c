// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"
)

// StringPrefixBytes - size of the length prefix of a string field
const StringPrefixBytes = 4

// fixed width field encoding, all integers are little endian
//
//   bool:    1 byte 0x00 or 0x01
//   uint8:   1 byte
//   uint64:  8 bytes
//   string:  uint32 byte count followed by the bytes
//   fixed:   the bytes as is (e.g. 32 byte addresses)

// AppendBool - add a one byte flag
func AppendBool(buffer []byte, b bool) []byte {
	if b {
		return append(buffer, 0x01)
	}
	return append(buffer, 0x00)
}

// AppendUint8 - add a single byte
func AppendUint8(buffer []byte, n uint8) []byte {
	return append(buffer, n)
}

// AppendUint64 - add 8 bytes
func AppendUint64(buffer []byte, n uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, n)
	return append(buffer, b...)
}

// AppendString - add a count prefixed string
func AppendString(buffer []byte, s string) []byte {
	count := make([]byte, StringPrefixBytes)
	binary.LittleEndian.PutUint32(count, uint32(len(s)))
	buffer = append(buffer, count...)
	return append(buffer, s...)
}

// AppendFixed - add bytes without any prefix
func AppendFixed(buffer []byte, b []byte) []byte {
	return append(buffer, b...)
}

// FieldReader - sequential decoder for fixed width fields
//
// the first failure is sticky: all later reads return zero values and
// Failed reports it
type FieldReader struct {
	buffer []byte
	offset int
	failed bool
}

// NewFieldReader - start reading at the beginning of a buffer
func NewFieldReader(buffer []byte) *FieldReader {
	return &FieldReader{
		buffer: buffer,
	}
}

// Failed - true if any read ran past the end or met an invalid value
func (r *FieldReader) Failed() bool {
	return r.failed
}

// Offset - bytes consumed so far
func (r *FieldReader) Offset() int {
	return r.offset
}

// Remaining - bytes not yet consumed
func (r *FieldReader) Remaining() int {
	return len(r.buffer) - r.offset
}

func (r *FieldReader) take(n int) []byte {
	if r.failed || n < 0 || r.Remaining() < n {
		r.failed = true
		return nil
	}
	b := r.buffer[r.offset : r.offset+n]
	r.offset += n
	return b
}

// Bool - read a one byte flag, values other than 0 and 1 are invalid
func (r *FieldReader) Bool() bool {
	b := r.take(1)
	if nil == b {
		return false
	}
	switch b[0] {
	case 0x00:
		return false
	case 0x01:
		return true
	default:
		r.failed = true
		return false
	}
}

// Uint8 - read a single byte
func (r *FieldReader) Uint8() uint8 {
	b := r.take(1)
	if nil == b {
		return 0
	}
	return b[0]
}

// Uint64 - read 8 bytes
func (r *FieldReader) Uint64() uint64 {
	b := r.take(8)
	if nil == b {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// String - read a count prefixed string
func (r *FieldReader) String() string {
	count := r.take(StringPrefixBytes)
	if nil == count {
		return ""
	}
	n := binary.LittleEndian.Uint32(count)
	if uint64(n) > uint64(r.Remaining()) {
		r.failed = true
		return ""
	}
	return string(r.take(int(n)))
}

// Fixed - read exactly n bytes into a new slice
func (r *FieldReader) Fixed(n int) []byte {
	b := r.take(n)
	if nil == b {
		return nil
	}
	result := make([]byte, n)
	copy(result, b)
	return result
}
