// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

/*
Package fracindex implements fractional indexes: opaque, byte-comparable keys
that can always be split to produce a new key between any two existing ones.
They are used to keep a user-defined order over rows without renumbering.

A key is logically a (major, minor) pair. The major is a signed integer and
the minor is a byte string that ends with Terminator (0x80). Keys are stored
in a canonical encoding whose first byte selects a tier (see Tier) so that
comparing encodings with bytes.Compare orders keys by major and then minor.
Keys with major 0 are stored as the bare minor and are the common case.

New keys are created with Before, After and Between:

	a := fracindex.Default()
	b := fracindex.MustAfter(a)
	c := fracindex.MustBetween(a, b)

Between accepts its bounds in either order. BetweenWithStrategy selects how
the result trades its own length against room for later inserts.

Keys have three text forms: lowercase hex (Hex, DecodeHex), RFC 4648 base64
(Base64, DecodeBase64) and an order-preserving base64 (SortableText,
DecodeSortableText) whose strings sort like the keys they encode. All
decoders accept only canonical encodings.

Errors are classified with errors.Is against ErrFormat, ErrBounds and
ErrOverflow.
*/
package fracindex
