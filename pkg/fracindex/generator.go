// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package fracindex

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Strategy selects how Between trades the length of the key it returns
// against the room it leaves for later inserts next to that key.
type Strategy int8

const (
	// Balanced returns the shorter of the Minimal and Spread results,
	// preferring Spread when they are equally long. It is the default.
	Balanced Strategy = iota
	// Minimal always returns the shortest key it can find.
	Minimal
	// Spread places the new key toward the middle of the available room,
	// which keeps keys short under repeated inserts at the same position.
	Spread
)

var strategyNames = [...]string{
	Balanced: "balanced",
	Minimal:  "minimal",
	Spread:   "spread",
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "unknown"
	}
	return strategyNames[s]
}

// SafeValue implements the redact.SafeValue interface.
func (Strategy) SafeValue() {}

// ParseStrategy returns the strategy with the given name, as printed by
// String. Matching is case-insensitive.
func ParseStrategy(s string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(s, n) {
			return Strategy(i), nil
		}
	}
	return 0, errors.Newf("unknown strategy %q", s)
}

// Before returns a key that sorts immediately before k. The result prefers
// staying on k's major and moves to the next smaller major only when that
// is no longer than the same-major candidate. It returns an error wrapping
// ErrOverflow when k is already on MinMajor and cannot be decremented.
func Before(k Key) (Key, error) {
	return edgeInsert(k, down)
}

// After is the mirror image of Before.
func After(k Key) (Key, error) {
	return edgeInsert(k, up)
}

// Between returns a key strictly between a and b using the Balanced
// strategy. The arguments may be given in either order. It returns an error
// wrapping ErrBounds when a and b are equal.
func Between(a, b Key) (Key, error) {
	return BetweenWithStrategy(a, b, Balanced)
}

// BetweenWithStrategy is like Between but lets the caller pick the
// strategy.
func BetweenWithStrategy(a, b Key, s Strategy) (Key, error) {
	if s < Balanced || s > Spread {
		return Key{}, errors.AssertionFailedf("invalid strategy %d", int(s))
	}
	cmp := a.Compare(b)
	if cmp == 0 {
		return Key{}, errDistinctBounds()
	}
	left, right := a.point(), b.point()
	if cmp > 0 {
		left, right = right, left
	}

	switch {
	case hasNonAdjacentMajorGap(left.major, right.major):
		return encode(midpointMajor(left.major, right.major), defaultRaw)
	case left.major < right.major:
		return betweenAdjacentMajors(left, right, s)
	default:
		minor, err := betweenSameMajor(left.major, left.minor, right.minor, s)
		if err != nil {
			return Key{}, err
		}
		return encode(left.major, minor)
	}
}

// MustBefore is like Before but panics on error.
func MustBefore(k Key) Key {
	r, err := Before(k)
	if err != nil {
		panic(err)
	}
	return r
}

// MustAfter is like After but panics on error.
func MustAfter(k Key) Key {
	r, err := After(k)
	if err != nil {
		panic(err)
	}
	return r
}

// MustBetween is like Between but panics on error.
func MustBetween(a, b Key) Key {
	r, err := Between(a, b)
	if err != nil {
		panic(err)
	}
	return r
}

// point is a decoded (major, minor) pair. The minor aliases key storage and
// must not be modified.
type point struct {
	major int64
	minor []byte
}

func (k Key) point() point {
	return point{major: k.major, minor: k.minor()}
}

// edgeInsert steps k's minor one position in dir. When the step leaves the
// compact range, or when moving to the neighboring major with the default
// minor is strictly shorter, the neighboring major is used instead. On the
// extreme major the minor keeps growing in place.
func edgeInsert(k Key, dir direction) (Key, error) {
	boundary, delta, overflow := MinMajor, int64(-1), errMajorUnderflow
	if dir == up {
		boundary, delta, overflow = MaxMajor, 1, errMajorOverflow
	}

	cand, err := stepMinor(k.minor(), dir)
	if err != nil {
		return Key{}, err
	}
	if k.major == boundary {
		if !isEncodableMinorForMajor(k.major, cand) {
			return Key{}, overflow()
		}
		return encode(k.major, cand)
	}

	fallback := k.major + delta
	if !isCompactMinor(cand) ||
		encodedLength(k.major, len(cand)) > encodedLength(fallback, len(defaultRaw)) {
		return encode(fallback, defaultRaw)
	}
	return encode(k.major, cand)
}
