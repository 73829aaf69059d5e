// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package encoding

// onesComplement inverts every bit of b in place. Applying it twice is the
// identity, and it reverses the unsigned lexicographic order of equal-length
// byte strings.
func onesComplement(b []byte) {
	for i := range b {
		b[i] = ^b[i]
	}
}
