// Copyright 2020 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package humanizeutil

import "time"

// Duration formats a duration in a user-friendly way. The result is not exact
// and the granularity is no smaller than microseconds.
//
// Examples:
//
//	0              ->  "0µs"
//	123456ns       ->  "123µs"
//	12345678ns     ->  "12ms"
//	12345678912ns  ->  "12.3s"
func Duration(val time.Duration) string {
	val = val.Round(time.Microsecond)
	if val == 0 {
		return "0µs"
	}

	switch {
	case val < time.Millisecond:
		return val.String()
	case val < time.Second:
		return val.Round(time.Millisecond).String()
	case val < time.Minute:
		return val.Round(100 * time.Millisecond).String()
	default:
		return val.Round(time.Second).String()
	}
}
