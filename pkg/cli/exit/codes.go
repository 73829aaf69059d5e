// Copyright 2020 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package exit

// Codes that are common to all command-line tools in this repository.

// Success (0) represents a normal process termination.
func Success() Code { return Code{0} }

// UnspecifiedError (1) indicates the process has terminated with an
// error condition. The specific cause of the error can be found in the
// logging output.
func UnspecifiedError() Code { return Code{1} }

// UnspecifiedGoPanic (2) indicates the process has terminated due to
// an uncaught Go panic or some other error in the Go runtime.
func UnspecifiedGoPanic() Code { return Code{2} }

// Interrupted (3) indicates the process was interrupted before it
// could finish, for example while a long growth run was in progress.
func Interrupted() Code { return Code{3} }

// CommandLineFlagError (4) indicates there was an error in the
// command-line parameters.
func CommandLineFlagError() Code { return Code{4} }

// FatalError (7) indicates that a logical error in the program caused
// it to terminate via log.Fatal.
func FatalError() Code { return Code{7} }

// Codes specific to fracindex.

// InvalidKey (10) indicates that a key given on the command line could
// not be decoded, or that a key operation rejected its inputs.
func InvalidKey() Code { return Code{10} }
