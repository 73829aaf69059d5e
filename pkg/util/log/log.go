// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log implements the leveled, context-aware logging used by the
// fracindex packages and tools. Log lines carry the logging tags attached
// to the context with logtags and the location of the caller. Message
// arguments go through redact so that unsafe values can be marked and
// stripped when output is not redactable.
package log

import (
	"context"
	"io"
	"os"
	"sync/atomic"

	"github.com/cockroachdb/fracindex/pkg/cli/exit"
	"github.com/cockroachdb/fracindex/pkg/util/syncutil"
	"github.com/cockroachdb/fracindex/pkg/util/timeutil"
	"github.com/cockroachdb/redact"
)

// Severity identifies the importance of a log entry.
type Severity int32

const (
	// SeverityUnknown is the zero value; it is never emitted.
	SeverityUnknown Severity = iota
	// SeverityInfo is used for informational messages.
	SeverityInfo
	// SeverityWarning is used for situations that may require attention.
	SeverityWarning
	// SeverityError is used for errors that do not stop the process.
	SeverityError
	// SeverityFatal is used for errors that terminate the process.
	SeverityFatal
)

var severityNames = [...]string{
	SeverityInfo:    "INFO",
	SeverityWarning: "WARNING",
	SeverityError:   "ERROR",
	SeverityFatal:   "FATAL",
}

// String implements fmt.Stringer.
func (s Severity) String() string {
	if s < SeverityInfo || s > SeverityFatal {
		return "UNKNOWN"
	}
	return severityNames[s]
}

// SafeValue implements the redact.SafeValue interface.
func (Severity) SafeValue() {}

// char is the single-letter severity marker at the start of a log line.
func (s Severity) char() byte {
	return s.String()[0]
}

// OrigStderr points to the original stderr stream at process start.
var OrigStderr = os.Stderr

// timeNow is overridden in tests.
var timeNow = timeutil.Now

var logging struct {
	// verbosity is read on every V call and is kept outside of mu.
	verbosity atomic.Int32

	mu struct {
		syncutil.Mutex
		out          io.Writer
		color        *colorProfile
		redactable   bool
		minSeverity  Severity
		exitOverride struct {
			f         func(exit.Code)
			hideStack bool
		}
	}
}

func init() {
	logging.mu.out = OrigStderr
	logging.mu.color = stderrColorProfile()
	logging.mu.minSeverity = SeverityInfo
}

// SetVerbosity sets the level up to which V returns true.
func SetVerbosity(level int32) {
	logging.verbosity.Store(level)
}

// Verbosity returns the current verbosity level.
func Verbosity() int32 {
	return logging.verbosity.Load()
}

// V returns true if the logging verbosity is set to the specified level or
// higher.
func V(level int32) bool {
	return logging.verbosity.Load() >= level
}

// SetRedactable controls whether redaction markers are kept in the output.
// By default they are stripped.
func SetRedactable(redactable bool) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	logging.mu.redactable = redactable
}

// SetMinSeverity suppresses entries below the given severity. Fatal entries
// are always emitted.
func SetMinSeverity(s Severity) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	logging.mu.minSeverity = s
}

// CaptureOutput redirects log output to w, without colors, until the
// returned function is called.
func CaptureOutput(w io.Writer) (restore func()) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prevOut, prevColor := logging.mu.out, logging.mu.color
	logging.mu.out, logging.mu.color = w, nil
	return func() {
		logging.mu.Lock()
		defer logging.mu.Unlock()
		logging.mu.out, logging.mu.color = prevOut, prevColor
	}
}

// Infof logs to the INFO severity.
func Infof(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, SeverityInfo, format, args...)
}

// Info logs a constant message to the INFO severity.
func Info(ctx context.Context, msg redact.SafeString) {
	logDepth(ctx, 1, SeverityInfo, string(msg))
}

// Warningf logs to the WARNING severity.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, SeverityWarning, format, args...)
}

// Errorf logs to the ERROR severity.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, SeverityError, format, args...)
}

// Fatalf logs to the FATAL severity and then terminates the process, unless
// an exit function was installed with SetExitFunc.
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, SeverityFatal, format, args...)
}

// Logf logs to the given severity.
func Logf(ctx context.Context, sev Severity, format string, args ...interface{}) {
	if sev == SeverityUnknown {
		sev = SeverityInfo
	}
	logDepth(ctx, 1, sev, format, args...)
}

// VEventf logs to the INFO severity if the verbosity is at least level.
func VEventf(ctx context.Context, level int32, format string, args ...interface{}) {
	if V(level) {
		logDepth(ctx, 1, SeverityInfo, format, args...)
	}
}

// InfofDepth logs to the INFO severity, attributing the entry to the caller
// depth frames above the caller of InfofDepth.
func InfofDepth(ctx context.Context, depth int, format string, args ...interface{}) {
	logDepth(ctx, depth+1, SeverityInfo, format, args...)
}

func logDepth(
	ctx context.Context, depth int, sev Severity, format string, args ...interface{},
) {
	e := makeEntry(ctx, depth+1, sev, format, args...)

	logging.mu.Lock()
	if sev < logging.mu.minSeverity && sev != SeverityFatal {
		logging.mu.Unlock()
		return
	}
	line := e.format(logging.mu.redactable, logging.mu.color)
	_, _ = logging.mu.out.Write(line)
	var exitFn func(exit.Code)
	var hideStack bool
	if sev == SeverityFatal {
		exitFn = logging.mu.exitOverride.f
		hideStack = logging.mu.exitOverride.hideStack
		if !hideStack {
			_, _ = logging.mu.out.Write(stacks())
		}
	}
	logging.mu.Unlock()

	if sev == SeverityFatal {
		if exitFn != nil {
			exitFn(exit.FatalError())
			return
		}
		exit.WithCode(exit.FatalError())
	}
}
