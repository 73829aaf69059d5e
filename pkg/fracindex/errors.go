// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package fracindex

import "github.com/cockroachdb/errors"

var (
	// ErrFormat is the class of errors returned for malformed or
	// non-canonical keys. Use errors.Is to test for it.
	ErrFormat = errors.New("invalid fractional index format")

	// ErrBounds is the class of errors returned by Between when the bounds
	// are not strictly ordered. Equal bounds report "bounds must be
	// distinct".
	ErrBounds = errors.New("lower bound must be smaller than upper bound")

	// ErrOverflow is the class of errors returned by Before and After when
	// the key already sits on the extreme major and its minor has no room
	// left in the requested direction.
	ErrOverflow = errors.New("major overflow")
)

func errDistinctBounds() error {
	return errors.Mark(errors.New("bounds must be distinct"), ErrBounds)
}

func errInvalidBounds() error {
	return errors.Mark(errors.New("lower bound must be smaller than upper bound"), ErrBounds)
}

func errMajorUnderflow() error {
	return errors.Mark(errors.New("major underflow"), ErrOverflow)
}

func errMajorOverflow() error {
	return errors.Mark(errors.New("major overflow"), ErrOverflow)
}

// errNoSlack reports a minor with no byte that can move in the requested
// direction. Every valid minor ends in the terminator, which always has
// slack, so this only happens for corrupted input.
func errNoSlack(minor []byte, dir direction) error {
	return errors.Mark(
		errors.AssertionFailedf("minor %x has no valid %s point", minor, dir),
		ErrFormat)
}
