// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package fracindex

// direction is the way a minor walk moves a key: down produces a smaller
// minor, up a larger one. The two walks mirror each other around the
// terminator, so one implementation serves both.
type direction int8

const (
	down direction = iota
	up
)

func (d direction) String() string {
	if d == down {
		return "decrement"
	}
	return "increment"
}

// SafeValue implements the redact.SafeValue interface.
func (direction) SafeValue() {}

// truncates returns whether the walk can stop at b by dropping it and
// everything after it. Dropping a byte above the terminator makes the minor
// smaller, dropping one below makes it larger.
func (d direction) truncates(b byte) bool {
	if d == down {
		return b > Terminator
	}
	return b < Terminator
}

// hasRoom returns whether b can be moved one step in the walk's direction.
func (d direction) hasRoom(b byte) bool {
	if d == down {
		return b > 0
	}
	return b < 0xff
}

// step moves b by one in the walk's direction.
func (d direction) step(b byte) byte {
	if d == down {
		return b - 1
	}
	return b + 1
}

// spreadTruncated is the replacement for a byte the walk could truncate at,
// placed halfway toward the terminator so that later inserts on the same
// side still find room. The result is always at least one step from b.
func (d direction) spreadTruncated(b byte) byte {
	if d == down {
		return min(b-1, Terminator+(b-Terminator)/2)
	}
	return max(b+1, b+max(1, (Terminator-b)/2))
}

// spreadRoom is the replacement for a byte with room, placed halfway toward
// the extreme in the walk's direction.
func (d direction) spreadRoom(b byte) byte {
	if d == down {
		return min(b-1, b/2)
	}
	return max(b+1, b+max(1, (0xff-b)/2))
}

// spliceStrategy chooses how far a splice moves the byte it modifies.
type spliceStrategy int8

const (
	// minimalSplice moves the modified byte by exactly one.
	minimalSplice spliceStrategy = iota
	// spreadSplice moves it halfway into the available room.
	spreadSplice
)

// splice walks src from tailStart looking for the first byte the walk can
// act on, and returns
//
//	src[:prefixEnd] + src[tailStart:tailStart+tailLen] + Terminator
//
// where the last tail byte may be replaced by a moved value. Every valid
// minor ends with the terminator, which always has room, so an error means
// src was not a valid minor.
func splice(
	src []byte, prefixEnd, tailStart int, dir direction, strat spliceStrategy,
) ([]byte, error) {
	for idx := tailStart; idx < len(src); idx++ {
		b := src[idx]
		switch {
		case dir.truncates(b):
			if strat == minimalSplice {
				return buildSplicedCopy(src, prefixEnd, tailStart, idx-tailStart, -1, 0), nil
			}
			return buildSplicedCopy(src, prefixEnd, tailStart, idx-tailStart+1, idx-tailStart, dir.spreadTruncated(b)), nil
		case dir.hasRoom(b):
			v := dir.step(b)
			if strat == spreadSplice {
				v = dir.spreadRoom(b)
			}
			return buildSplicedCopy(src, prefixEnd, tailStart, idx-tailStart+1, idx-tailStart, v), nil
		}
	}
	return nil, errNoSlack(src, dir)
}

// spliceSize returns the length of the minimal splice of src at tailStart
// without building it.
func spliceSize(src []byte, tailStart int, dir direction) (int, error) {
	for idx := tailStart; idx < len(src); idx++ {
		switch b := src[idx]; {
		case dir.truncates(b):
			return idx + 1, nil
		case dir.hasRoom(b):
			return idx + 2, nil
		}
	}
	return 0, errNoSlack(src, dir)
}

// buildSplicedCopy assembles a splice result. modIdx is relative to the tail
// and is ignored when negative.
func buildSplicedCopy(src []byte, prefixEnd, tailStart, tailLen, modIdx int, mod byte) []byte {
	out := make([]byte, 0, prefixEnd+tailLen+1)
	out = append(out, src[:prefixEnd]...)
	out = append(out, src[tailStart:tailStart+tailLen]...)
	out = append(out, Terminator)
	if modIdx >= 0 {
		out[prefixEnd+modIdx] = mod
	}
	return out
}

// stepMinor returns the nearest minor in the walk's direction that is no
// more than one byte longer than minor.
func stepMinor(minor []byte, dir direction) ([]byte, error) {
	return splice(minor, 0, 0, dir, minimalSplice)
}

func stepMinorSize(minor []byte, dir direction) (int, error) {
	return spliceSize(minor, 0, dir)
}
