// Copyright 2019 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clierror

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fracindex/pkg/util/log"
)

// LogFn is the logging function used by CheckAndMaybeLog.
type LogFn = func(ctx context.Context, sev log.Severity, format string, args ...interface{})

// CheckAndMaybeLog reports the error, if non-nil, to the given logger. Only
// the outermost Error is unwrapped; its severity, if set, replaces the
// default ERROR severity. The error is returned unchanged.
func CheckAndMaybeLog(err error, logger LogFn) error {
	if err == nil {
		return nil
	}
	sev := log.SeverityError
	cause := err
	var ec *Error
	if errors.As(err, &ec) {
		if ec.severity != log.SeverityUnknown {
			sev = ec.severity
		}
		cause = ec.Unwrap()
	}
	logger(context.Background(), sev, "%v", cause)
	return err
}
