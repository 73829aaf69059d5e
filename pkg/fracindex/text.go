// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package fracindex

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fracindex/pkg/util/encoding"
)

// Hex returns the lowercase hex encoding of the key.
func (k Key) Hex() string {
	return hex.EncodeToString(k.rawBytes())
}

// DecodeHex parses a key from its hex encoding. Both cases are accepted;
// whitespace, prefixes and odd lengths are not.
func DecodeHex(s string) (Key, error) {
	if len(s) == 0 {
		return Key{}, errors.Wrap(ErrFormat, "empty hex key")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Key{}, errors.Mark(errors.Wrapf(err, "decoding hex key %q", s), ErrFormat)
	}
	return decode(b)
}

// MustDecodeHex is like DecodeHex but panics on error. It is intended for
// constants and tests.
func MustDecodeHex(s string) Key {
	k, err := DecodeHex(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Base64Variant selects one of the RFC 4648 base64 alphabets and whether
// padding is emitted.
type Base64Variant int8

const (
	// Base64Std is the standard alphabet with padding.
	Base64Std Base64Variant = iota
	// Base64StdRaw is the standard alphabet without padding.
	Base64StdRaw
	// Base64URL is the URL-safe alphabet with padding.
	Base64URL
	// Base64URLRaw is the URL-safe alphabet without padding.
	Base64URLRaw
)

var base64VariantNames = [...]string{
	Base64Std:    "std",
	Base64StdRaw: "std-raw",
	Base64URL:    "url",
	Base64URLRaw: "url-raw",
}

func (v Base64Variant) String() string {
	if v < 0 || int(v) >= len(base64VariantNames) {
		return "unknown"
	}
	return base64VariantNames[v]
}

// SafeValue implements the redact.SafeValue interface.
func (Base64Variant) SafeValue() {}

// ParseBase64Variant returns the variant with the given name, as printed by
// String.
func ParseBase64Variant(s string) (Base64Variant, error) {
	for i, n := range base64VariantNames {
		if strings.EqualFold(s, n) {
			return Base64Variant(i), nil
		}
	}
	return 0, errors.Newf("unknown base64 variant %q", s)
}

func (v Base64Variant) raw() bool {
	return v == Base64StdRaw || v == Base64URLRaw
}

func (v Base64Variant) codec() *base64.Encoding {
	switch v {
	case Base64StdRaw:
		return base64.RawStdEncoding.Strict()
	case Base64URL:
		return base64.URLEncoding.Strict()
	case Base64URLRaw:
		return base64.RawURLEncoding.Strict()
	default:
		return base64.StdEncoding.Strict()
	}
}

// padded returns the padded encoding with the same alphabet.
func (v Base64Variant) padded() *base64.Encoding {
	if v == Base64URL || v == Base64URLRaw {
		return base64.URLEncoding.Strict()
	}
	return base64.StdEncoding.Strict()
}

// Base64 returns the base64 encoding of the key in the given variant.
func (k Key) Base64(v Base64Variant) string {
	return v.codec().EncodeToString(k.rawBytes())
}

// DecodeBase64 parses a key from its base64 encoding in the given variant.
// The unpadded variants also accept correctly padded input. Line breaks,
// which the standard library decoder would otherwise skip, are rejected.
func DecodeBase64(s string, v Base64Variant) (Key, error) {
	if len(s) == 0 {
		return Key{}, errors.Wrap(ErrFormat, "empty base64 key")
	}
	if strings.ContainsAny(s, "\r\n") {
		return Key{}, errors.Wrapf(ErrFormat, "base64 key %q contains a line break", s)
	}
	enc := v.codec()
	if v.raw() && strings.HasSuffix(s, "=") {
		enc = v.padded()
	}
	b, err := enc.DecodeString(s)
	if err != nil {
		return Key{}, errors.Mark(errors.Wrapf(err, "decoding %s base64 key %q", v, s), ErrFormat)
	}
	return decode(b)
}

// SortableText returns the order-preserving base64 encoding of the key.
// Comparing two such strings gives the same result as Compare on the keys.
func (k Key) SortableText() string {
	return encoding.EncodeSortableBase64ToString(k.rawBytes())
}

// DecodeSortableText parses a key produced by SortableText. Only the
// canonical text for each key is accepted.
func DecodeSortableText(s string) (Key, error) {
	if len(s) == 0 {
		return Key{}, errors.Wrap(ErrFormat, "empty sortable key")
	}
	b, err := encoding.DecodeSortableBase64(s)
	if err != nil {
		return Key{}, errors.Mark(errors.Wrapf(err, "decoding sortable key %q", s), ErrFormat)
	}
	return decode(b)
}
