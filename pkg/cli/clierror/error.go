// Copyright 2019 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clierror

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fracindex/pkg/cli/exit"
	"github.com/cockroachdb/fracindex/pkg/util/log"
)

// Error annotates an error with an exit code and, optionally, the severity
// at which it should be logged.
type Error struct {
	exitCode exit.Code
	severity log.Severity
	cause    error
}

// NewError instantiates a new Error.
func NewError(cause error, exitCode exit.Code) error {
	return NewErrorWithSeverity(cause, exitCode, log.SeverityUnknown)
}

// NewErrorWithSeverity instantiates a new Error with a logging severity.
func NewErrorWithSeverity(cause error, exitCode exit.Code, sev log.Severity) error {
	return &Error{
		exitCode: exitCode,
		severity: sev,
		cause:    cause,
	}
}

// GetExitCode retrieves the exit code.
func (e *Error) GetExitCode() exit.Code { return e.exitCode }

// GetSeverity retrieves the severity.
func (e *Error) GetSeverity() log.Severity { return e.severity }

// Error implements the error interface.
func (e *Error) Error() string { return fmt.Sprintf("%v", e) }

// Cause implements causer.
func (e *Error) Cause() error { return e.cause }

// Unwrap implements the Go 1.13 wrapper interface.
func (e *Error) Unwrap() error { return e.cause }

// Format implements fmt.Formatter.
func (e *Error) Format(s fmt.State, verb rune) { errors.FormatError(e, s, verb) }

// FormatError implements errors.Formatter.
func (e *Error) FormatError(p errors.Printer) error {
	if p.Detail() {
		p.Printf("error with exit code: %d", e.exitCode)
	}
	return e.cause
}

// ExitCodeOf returns the exit code carried by err, or def if err carries
// none.
func ExitCodeOf(err error, def exit.Code) exit.Code {
	var cliErr *Error
	if errors.As(err, &cliErr) {
		return cliErr.exitCode
	}
	return def
}
