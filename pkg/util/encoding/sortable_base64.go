// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package encoding

import "github.com/cockroachdb/errors"

// sortableBase64Alphabet lists 64 URL-safe characters in ascending ASCII
// order, which is what makes the encoding order-preserving.
const sortableBase64Alphabet = "-0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"

var sortableBase64DecodeMap = func() (m [256]int8) {
	for i := range m {
		m[i] = -1
	}
	for i := 0; i < len(sortableBase64Alphabet); i++ {
		m[sortableBase64Alphabet[i]] = int8(i)
	}
	return m
}()

// ErrInvalidSortableBase64 is returned (wrapped) for any input that
// DecodeSortableBase64 rejects.
var ErrInvalidSortableBase64 = errors.New("invalid sortable base64")

// SortableBase64EncodedLen returns the length of the sortable base64
// encoding of n bytes. A trailing group of one byte takes two characters and
// a trailing group of two bytes takes three; no padding is emitted.
func SortableBase64EncodedLen(n int) int {
	return n/3*4 + [3]int{0, 2, 3}[n%3]
}

// EncodeSortableBase64 appends the sortable base64 encoding of data to b and
// returns the final buffer.
//
// The encoding is standard base64 bit packing over an alphabet sorted by
// character code, without padding. Comparing two encodings character by
// character yields the same result as comparing the inputs with
// bytes.Compare, including the rule that a proper prefix sorts first. Unused
// trailing bits of the last character are always zero.
func EncodeSortableBase64(b []byte, data []byte) []byte {
	const a = sortableBase64Alphabet
	i := 0
	for ; i+2 < len(data); i += 3 {
		b0, b1, b2 := data[i], data[i+1], data[i+2]
		b = append(b,
			a[b0>>2],
			a[(b0&0x03)<<4|b1>>4],
			a[(b1&0x0f)<<2|b2>>6],
			a[b2&0x3f])
	}
	switch len(data) - i {
	case 1:
		b0 := data[i]
		b = append(b, a[b0>>2], a[(b0&0x03)<<4])
	case 2:
		b0, b1 := data[i], data[i+1]
		b = append(b, a[b0>>2], a[(b0&0x03)<<4|b1>>4], a[(b1&0x0f)<<2])
	}
	return b
}

// EncodeSortableBase64ToString is like EncodeSortableBase64 but returns a
// string.
func EncodeSortableBase64ToString(data []byte) string {
	return string(EncodeSortableBase64(make([]byte, 0, SortableBase64EncodedLen(len(data))), data))
}

// DecodeSortableBase64 decodes s, which must have been produced by
// EncodeSortableBase64. Inputs whose length is 1 mod 4, that contain
// characters outside the alphabet, or that carry non-zero unused trailing
// bits are rejected, so every byte string has exactly one accepted encoding.
// The empty string decodes to an empty slice.
func DecodeSortableBase64(s string) ([]byte, error) {
	if len(s)%4 == 1 {
		return nil, errors.Wrapf(ErrInvalidSortableBase64, "invalid length %d", len(s))
	}
	out := make([]byte, 0, len(s)/4*3+[4]int{0, 0, 1, 2}[len(s)%4])

	var c [4]byte
	for i := 0; i < len(s); i += 4 {
		n := len(s) - i
		if n > 4 {
			n = 4
		}
		for j := 0; j < n; j++ {
			v := sortableBase64DecodeMap[s[i+j]]
			if v < 0 {
				return nil, errors.Wrapf(ErrInvalidSortableBase64,
					"invalid character %q at offset %d", s[i+j], i+j)
			}
			c[j] = byte(v)
		}
		switch n {
		case 4:
			out = append(out, c[0]<<2|c[1]>>4, c[1]<<4|c[2]>>2, c[2]<<6|c[3])
		case 3:
			if c[2]&0x03 != 0 {
				return nil, errors.Wrap(ErrInvalidSortableBase64, "non-zero trailing bits")
			}
			out = append(out, c[0]<<2|c[1]>>4, c[1]<<4|c[2]>>2)
		case 2:
			if c[1]&0x0f != 0 {
				return nil, errors.Wrap(ErrInvalidSortableBase64, "non-zero trailing bits")
			}
			out = append(out, c[0]<<2|c[1]>>4)
		}
	}
	return out, nil
}
