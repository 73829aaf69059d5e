// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package fracindex

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fracindex/pkg/util/encoding"
)

// Terminator is the last byte of every minor, and therefore of every key.
// It is also the "center" digit that minor walks step toward or away from.
const Terminator byte = 0x80

const (
	// MinMajor is the smallest representable major. math.MinInt64 is
	// reserved so that negating a major never overflows.
	MinMajor int64 = math.MinInt64 + 1
	// MaxMajor is the largest representable major.
	MaxMajor int64 = math.MaxInt64
)

// The first byte of a key is a tag that selects one of seven tiers. The tier
// ranges are laid out in ascending major order, so that comparing encoded
// keys byte-wise orders them by major and then by minor:
//
//	0x00-0x06  negative long    tag = 8-len, payload = ^bigendian(|major|)
//	0x07-0x16  negative medium  tag = 0x16-group, 2nd byte = 0xff-remainder
//	0x17-0x3f  negative short   |major| = 64-tag
//	0x40-0xbf  compact          major = 0, the whole key is the minor
//	0xc0-0xe8  positive short   major = tag-0xc0+1
//	0xe9-0xf8  positive medium  tag = 0xe9+group, 2nd byte = remainder
//	0xf9-0xff  positive long    tag = len+0xf7, payload = bigendian(major)
//
// Short tiers hold |major| in [1, 41]. Medium tiers hold |major| in
// [42, 4137] as 42 + group*256 + remainder. Long tiers hold anything larger
// with a 2 to 8 byte payload.
const (
	shortMajorMax  = 41
	mediumMajorMin = shortMajorMax + 1
	mediumMajorMax = 4137

	minLongPayloadLen = 2
	maxLongPayloadLen = encoding.MaxUint64MinimalLen

	negativeLongMaxTag   = 0x06
	negativeMediumMinTag = 0x07
	negativeMediumMaxTag = 0x16
	negativeShortMinTag  = 0x17
	negativeShortMaxTag  = 0x3f
	compactMinByte       = 0x40
	compactMaxByte       = 0xbf
	positiveShortMinTag  = 0xc0
	positiveShortMaxTag  = 0xe8
	positiveMediumMinTag = 0xe9
	positiveMediumMaxTag = 0xf8
	positiveLongMinTag   = 0xf9
)

// Tier identifies the tag range a key's first byte falls in. Tiers are
// ordered the same way the keys in them sort.
type Tier int8

const (
	NegativeLong Tier = iota
	NegativeMedium
	NegativeShort
	Compact
	PositiveShort
	PositiveMedium
	PositiveLong
)

func (t Tier) String() string {
	switch t {
	case NegativeLong:
		return "negative-long"
	case NegativeMedium:
		return "negative-medium"
	case NegativeShort:
		return "negative-short"
	case Compact:
		return "compact"
	case PositiveShort:
		return "positive-short"
	case PositiveMedium:
		return "positive-medium"
	case PositiveLong:
		return "positive-long"
	default:
		return "unknown"
	}
}

// SafeValue implements the redact.SafeValue interface.
func (Tier) SafeValue() {}

func tierOf(tag byte) Tier {
	switch {
	case tag <= negativeLongMaxTag:
		return NegativeLong
	case tag <= negativeMediumMaxTag:
		return NegativeMedium
	case tag <= negativeShortMaxTag:
		return NegativeShort
	case tag <= compactMaxByte:
		return Compact
	case tag <= positiveShortMaxTag:
		return PositiveShort
	case tag <= positiveMediumMaxTag:
		return PositiveMedium
	default:
		return PositiveLong
	}
}

func isCompactByte(b byte) bool {
	return b >= compactMinByte && b <= compactMaxByte
}

// isCompactMinor returns whether minor alone is a valid encoding, i.e.
// whether it can be stored with major 0.
func isCompactMinor(minor []byte) bool {
	return len(minor) > 0 && minor[len(minor)-1] == Terminator && isCompactByte(minor[0])
}

// isEncodableMinorForMajor checks minor validity for the given major
// without materializing the encoding.
func isEncodableMinorForMajor(major int64, minor []byte) bool {
	if len(minor) == 0 || minor[len(minor)-1] != Terminator {
		return false
	}
	return major != 0 || isCompactByte(minor[0])
}

func magnitude(major int64) uint64 {
	if major < 0 {
		return uint64(-major)
	}
	return uint64(major)
}

// encodedLength returns the length of the encoding of (major, minor) for a
// minor of minorSize bytes. It matches len(encode(major, minor)) exactly.
func encodedLength(major int64, minorSize int) int {
	if major == 0 {
		return minorSize
	}
	m := magnitude(major)
	switch {
	case m <= shortMajorMax:
		return 1 + minorSize
	case m <= mediumMajorMax:
		return 2 + minorSize
	default:
		return 1 + encoding.Uint64MinimalLen(m) + minorSize
	}
}

// appendMajor appends the tag (and any medium or long payload) for major.
// A zero major has no prefix.
func appendMajor(b []byte, major int64) []byte {
	m := magnitude(major)
	switch {
	case major == 0:
		return b
	case major > 0 && m <= shortMajorMax:
		return append(b, positiveShortMinTag+byte(m-1))
	case major > 0 && m <= mediumMajorMax:
		off := m - mediumMajorMin
		return append(b, positiveMediumMinTag+byte(off/256), byte(off%256))
	case major > 0:
		n := encoding.Uint64MinimalLen(m)
		b = append(b, positiveLongMinTag+byte(n-minLongPayloadLen))
		return encoding.EncodeUint64MinimalAscending(b, m)
	case m <= shortMajorMax:
		return append(b, negativeShortMaxTag+1-byte(m))
	case m <= mediumMajorMax:
		off := m - mediumMajorMin
		return append(b, negativeMediumMaxTag-byte(off/256), 0xff-byte(off%256))
	default:
		n := encoding.Uint64MinimalLen(m)
		b = append(b, byte(maxLongPayloadLen-n))
		return encoding.EncodeUint64MinimalDescending(b, m)
	}
}

// encode builds the canonical key for (major, minor). minor is copied.
func encode(major int64, minor []byte) (Key, error) {
	if major < MinMajor {
		return Key{}, errors.Wrapf(ErrFormat, "major %d out of range", major)
	}
	if !isEncodableMinorForMajor(major, minor) {
		return Key{}, errors.Wrapf(ErrFormat, "minor %x cannot be encoded with major %d", minor, major)
	}
	raw := appendMajor(make([]byte, 0, encodedLength(major, len(minor))), major)
	off := len(raw)
	raw = append(raw, minor...)
	return Key{raw: raw, major: major, minorOffset: off}, nil
}

// decode validates raw as a canonical key. raw is retained; callers must
// pass a buffer they own.
func decode(raw []byte) (Key, error) {
	if len(raw) == 0 {
		return Key{}, errors.Wrap(ErrFormat, "empty key")
	}
	if raw[len(raw)-1] != Terminator {
		return Key{}, errors.Wrapf(ErrFormat, "key %x does not end with the terminator", raw)
	}

	tag := raw[0]
	tier := tierOf(tag)
	var major int64
	var off int
	switch tier {
	case Compact:
		return Key{raw: raw}, nil

	case NegativeShort:
		major, off = -int64(negativeShortMaxTag+1-tag), 1

	case PositiveShort:
		major, off = int64(tag-positiveShortMinTag)+1, 1

	case NegativeMedium, PositiveMedium:
		if len(raw) < 3 {
			return Key{}, errors.Wrapf(ErrFormat, "truncated %s key %x", tier, raw)
		}
		var group, rem int64
		if tier == NegativeMedium {
			group, rem = int64(negativeMediumMaxTag-tag), int64(0xff-raw[1])
		} else {
			group, rem = int64(tag-positiveMediumMinTag), int64(raw[1])
		}
		m := mediumMajorMin + group*256 + rem
		if m > mediumMajorMax {
			return Key{}, errors.Wrapf(ErrFormat, "%s magnitude %d out of range", tier, m)
		}
		major, off = m, 2
		if tier == NegativeMedium {
			major = -m
		}

	case NegativeLong, PositiveLong:
		var n int
		if tier == NegativeLong {
			n = maxLongPayloadLen - int(tag)
		} else {
			n = int(tag) - positiveLongMinTag + minLongPayloadLen
		}
		off = 1 + n
		if len(raw) <= off {
			return Key{}, errors.Wrapf(ErrFormat, "truncated %s key %x", tier, raw)
		}
		var m uint64
		var err error
		if tier == NegativeLong {
			m, err = encoding.DecodeUint64MinimalDescending(raw[1:off])
		} else {
			m, err = encoding.DecodeUint64MinimalAscending(raw[1:off])
		}
		if err != nil {
			return Key{}, errors.Mark(err, ErrFormat)
		}
		if m <= mediumMajorMax || encoding.Uint64MinimalLen(m) != n {
			return Key{}, errors.Wrapf(ErrFormat, "non-canonical %s magnitude %d", tier, m)
		}
		if m > math.MaxInt64 {
			return Key{}, errors.Wrapf(ErrFormat, "%s magnitude overflows int64", tier)
		}
		major = int64(m)
		if tier == NegativeLong {
			major = -major
		}
	}

	if len(raw) <= off {
		return Key{}, errors.Wrapf(ErrFormat, "truncated %s key %x", tier, raw)
	}
	return Key{raw: raw, major: major, minorOffset: off}, nil
}
