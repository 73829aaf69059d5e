// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package fracindex

import (
	"bytes"
	"encoding/hex"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// defaultRaw backs the zero Key. It must never be handed out without a copy.
var defaultRaw = []byte{Terminator}

// Key is an immutable fractional index. Keys order by comparing their
// canonical byte encodings; see Compare.
//
// The zero Key is equivalent to Default().
type Key struct {
	raw         []byte
	major       int64
	minorOffset int
}

// Default returns the key with major 0 and minor [0x80]. It is the usual
// first key of an empty list.
func Default() Key {
	return Key{}
}

// Encode returns the canonical key for (major, minor). The minor must be
// non-empty and end with Terminator, and when major is 0 its first byte must
// lie in the compact range [0x40, 0xbf]. The minor is copied.
func Encode(major int64, minor []byte) (Key, error) {
	return encode(major, minor)
}

// DecodeBytes parses a canonical key from its raw bytes. The input is copied.
func DecodeBytes(b []byte) (Key, error) {
	if len(b) == 0 {
		return Key{}, errors.Wrap(ErrFormat, "empty key")
	}
	return decode(append([]byte(nil), b...))
}

func (k Key) rawBytes() []byte {
	if k.raw == nil {
		return defaultRaw
	}
	return k.raw
}

func (k Key) minor() []byte {
	return k.rawBytes()[k.minorOffset:]
}

// Bytes returns a copy of the canonical encoding.
func (k Key) Bytes() []byte {
	return append([]byte(nil), k.rawBytes()...)
}

// Len returns the length of the canonical encoding in bytes.
func (k Key) Len() int {
	return len(k.rawBytes())
}

// Major returns the integer part of the key.
func (k Key) Major() int64 {
	return k.major
}

// Minor returns a copy of the fractional part of the key. It always ends
// with Terminator.
func (k Key) Minor() []byte {
	return append([]byte(nil), k.minor()...)
}

// Tier returns the tag tier of the key's first byte.
func (k Key) Tier() Tier {
	return tierOf(k.rawBytes()[0])
}

// Compare returns -1, 0 or +1 depending on whether k sorts before, equal to,
// or after o.
func (k Key) Compare(o Key) int {
	return bytes.Compare(k.rawBytes(), o.rawBytes())
}

// Equal returns whether k and o are the same key.
func (k Key) Equal(o Key) bool {
	return bytes.Equal(k.rawBytes(), o.rawBytes())
}

// Less returns whether k sorts strictly before o.
func (k Key) Less(o Key) bool {
	return k.Compare(o) < 0
}

// String returns the lowercase hex encoding of the key.
func (k Key) String() string {
	return redact.StringWithoutMarkers(k)
}

// SafeFormat implements the redact.SafeFormatter interface. Keys carry no
// user data beyond their position, so they print unredacted.
func (k Key) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(hex.EncodeToString(k.rawBytes())))
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (k Key) MarshalBinary() ([]byte, error) {
	return k.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (k *Key) UnmarshalBinary(data []byte) error {
	dec, err := DecodeBytes(data)
	if err != nil {
		return err
	}
	*k = dec
	return nil
}

// MarshalText implements encoding.TextMarshaler using the hex encoding.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the hex encoding.
func (k *Key) UnmarshalText(text []byte) error {
	dec, err := DecodeHex(string(text))
	if err != nil {
		return err
	}
	*k = dec
	return nil
}
