// Copyright 2020 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package exit encapsulates calls to os.Exit to control the
// production of process exit status codes.
//
// Its goal is to ensure that all possible exit codes produced
// by the fracindex tools are registered in one place.
package exit

import (
	"fmt"
	"os"
)

// Code represents an exit code.
type Code struct {
	code int
}

// String implements the fmt.Stringer interface.
func (c Code) String() string { return fmt.Sprintf("%d", c.code) }

// Format implements the fmt.Formatter interface.
func (c Code) Format(s fmt.State, verb rune) {
	fmt.Fprintf(s, "%"+string(verb), c.code)
}

// SafeValue implements the redact.SafeValue interface.
func (Code) SafeValue() {}

// WithCode terminates the process and sets its exit status code to
// the provided code.
func WithCode(code Code) {
	os.Exit(code.code)
}
