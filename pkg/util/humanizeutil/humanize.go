// Copyright 2016 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package humanizeutil

import (
	"flag"
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
)

// IBytes is an int64 version of go-humanize's IBytes.
func IBytes(value int64) string {
	if value < 0 {
		return "-" + humanize.IBytes(uint64(-value))
	}
	return humanize.IBytes(uint64(value))
}

// Count renders an operation or key count with thousands separators.
func Count(value int64) string {
	return humanize.Comma(value)
}

// ParseCount parses a non-negative count. Plain integers and SI-suffixed
// values such as "10k" or "1.5M" are accepted; fractional results are
// rejected.
func ParseCount(s string) (int64, error) {
	if s == "" {
		return 0, errors.New("parsing \"\": invalid syntax")
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		if v < 0 {
			return 0, errors.Newf("count must not be negative: %s", s)
		}
		return v, nil
	}
	f, unit, err := humanize.ParseSI(s)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %q", s)
	}
	if unit != "" {
		return 0, errors.Newf("unexpected unit %q in count %s", unit, s)
	}
	if f < 0 || f > math.MaxInt64 || f != math.Trunc(f) {
		return 0, errors.Newf("invalid count: %s", s)
	}
	return int64(f), nil
}

// CountValue is a struct that implements flag.Value and pflag.Value
// suitable to create command-line parameters that accept counts
// specified using a format recognized by ParseCount.
type CountValue struct {
	val   *int64
	isSet bool
}

var _ flag.Value = &CountValue{}
var _ pflag.Value = &CountValue{}

// NewCountValue creates a new pflag.Value bound to the specified
// int64 variable. It also happens to be a flag.Value.
func NewCountValue(val *int64) *CountValue {
	return &CountValue{val: val}
}

// Set implements the flag.Value and pflag.Value interfaces.
func (c *CountValue) Set(s string) error {
	v, err := ParseCount(s)
	if err != nil {
		return err
	}
	if c.val == nil {
		c.val = new(int64)
	}
	*c.val = v
	c.isSet = true
	return nil
}

// Type implements the pflag.Value interface.
func (c *CountValue) Type() string {
	return "count"
}

// String implements the flag.Value and pflag.Value interfaces.
func (c *CountValue) String() string {
	if c.val == nil {
		return "0"
	}
	return strconv.FormatInt(*c.val, 10)
}

// IsSet returns true iff Set has successfully been called.
func (c *CountValue) IsSet() bool {
	return c.isSet
}
