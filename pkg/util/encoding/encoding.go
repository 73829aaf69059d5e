// Copyright 2014 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package encoding contains order-preserving byte encodings shared by the
// key formats in this repository.
package encoding

import "github.com/cockroachdb/errors"

// MaxUint64MinimalLen is the largest number of bytes a minimal big-endian
// uint64 encoding can occupy.
const MaxUint64MinimalLen = 8

// Uint64MinimalLen returns the number of bytes EncodeUint64MinimalAscending
// emits for v. Leading zero bytes are stripped; zero itself takes one byte.
func Uint64MinimalLen(v uint64) int {
	n := 1
	for v >>= 8; v != 0; v >>= 8 {
		n++
	}
	return n
}

// EncodeUint64MinimalAscending appends the big-endian representation of v
// without leading zero bytes. Two encodings of the same length compare like
// the values they encode; callers that mix lengths must encode the length
// separately (typically in a tag byte). The final buffer is returned.
func EncodeUint64MinimalAscending(b []byte, v uint64) []byte {
	for i := Uint64MinimalLen(v) - 1; i >= 0; i-- {
		b = append(b, byte(v>>(8*uint(i))))
	}
	return b
}

// EncodeUint64MinimalDescending encodes the uint64 value like
// EncodeUint64MinimalAscending and then complements each byte, so that
// encodings of the same length sort from largest to smallest.
func EncodeUint64MinimalDescending(b []byte, v uint64) []byte {
	start := len(b)
	b = EncodeUint64MinimalAscending(b, v)
	onesComplement(b[start:])
	return b
}

// DecodeUint64MinimalAscending decodes all of b as a big-endian unsigned
// integer. b must hold between 1 and MaxUint64MinimalLen bytes.
func DecodeUint64MinimalAscending(b []byte) (uint64, error) {
	if len(b) == 0 || len(b) > MaxUint64MinimalLen {
		return 0, errors.Newf("invalid minimal uint64 length of %d", len(b))
	}
	var v uint64
	for _, t := range b {
		v = (v << 8) | uint64(t)
	}
	return v, nil
}

// DecodeUint64MinimalDescending decodes a value which was encoded using
// EncodeUint64MinimalDescending. b is not modified.
func DecodeUint64MinimalDescending(b []byte) (uint64, error) {
	if len(b) == 0 || len(b) > MaxUint64MinimalLen {
		return 0, errors.Newf("invalid minimal uint64 length of %d", len(b))
	}
	var v uint64
	for _, t := range b {
		v = (v << 8) | uint64(^t)
	}
	return v, nil
}
