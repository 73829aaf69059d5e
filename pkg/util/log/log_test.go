// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/fracindex/pkg/cli/exit"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func withFixedTime(t *testing.T) {
	prev := timeNow
	timeNow = func() time.Time { return time.Date(2026, 10, 16, 9, 8, 7, 654321000, time.UTC) }
	t.Cleanup(func() { timeNow = prev })
}

func TestLineFormat(t *testing.T) {
	withFixedTime(t)
	var buf bytes.Buffer
	defer CaptureOutput(&buf)()

	ctx := logtags.AddTag(context.Background(), "list", 3)
	ctx = logtags.AddTag(ctx, "move", nil)
	Infof(ctx, "moved %s to %d", redact.Safe("item-1"), 2)
	Warningf(context.Background(), "plain")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Regexp(t,
		regexp.MustCompile(`^I261016 09:08:07\.654321 \d+ util/log/log_test\.go:\d+  \[list=3,move\] moved item-1 to 2$`),
		lines[0])
	require.Regexp(t,
		regexp.MustCompile(`^W261016 09:08:07\.654321 \d+ util/log/log_test\.go:\d+  plain$`),
		lines[1])
}

func TestRedactable(t *testing.T) {
	var buf bytes.Buffer
	defer CaptureOutput(&buf)()

	Infof(context.Background(), "key %s", "817f80")
	require.Contains(t, buf.String(), "key 817f80")
	require.NotContains(t, buf.String(), "‹")

	buf.Reset()
	SetRedactable(true)
	defer SetRedactable(false)
	Infof(context.Background(), "key %s", "817f80")
	require.Contains(t, buf.String(), "key ‹817f80›")
}

func TestVerbosity(t *testing.T) {
	var buf bytes.Buffer
	defer CaptureOutput(&buf)()
	defer SetVerbosity(Verbosity())

	SetVerbosity(0)
	require.False(t, V(1))
	VEventf(context.Background(), 1, "hidden")
	require.Empty(t, buf.String())

	SetVerbosity(2)
	require.True(t, V(1))
	require.True(t, V(2))
	require.False(t, V(3))
	VEventf(context.Background(), 1, "shown")
	require.Contains(t, buf.String(), "shown")
}

func TestMinSeverity(t *testing.T) {
	var buf bytes.Buffer
	defer CaptureOutput(&buf)()
	defer SetMinSeverity(SeverityInfo)

	SetMinSeverity(SeverityError)
	Infof(context.Background(), "info")
	Warningf(context.Background(), "warning")
	Errorf(context.Background(), "error")
	require.NotContains(t, buf.String(), "info")
	require.NotContains(t, buf.String(), "warning")
	require.Contains(t, buf.String(), "error")
}

func TestFatalUsesExitFunc(t *testing.T) {
	var buf bytes.Buffer
	defer CaptureOutput(&buf)()

	var code exit.Code
	called := false
	SetExitFunc(true /* hideStack */, func(c exit.Code) {
		called = true
		code = c
	})
	defer ResetExitFunc()

	Fatalf(context.Background(), "cannot continue: %d", 7)
	require.True(t, called)
	require.Equal(t, exit.FatalError(), code)
	require.True(t, strings.HasPrefix(buf.String(), "F"))
	require.NotContains(t, buf.String(), "goroutine")
}

func TestSeverityString(t *testing.T) {
	require.Equal(t, "INFO", SeverityInfo.String())
	require.Equal(t, "FATAL", SeverityFatal.String())
	require.Equal(t, "UNKNOWN", Severity(0).String())
}

func TestProfileForTerm(t *testing.T) {
	require.Equal(t, colorProfile256, profileForTerm("xterm-256color"))
	require.Equal(t, colorProfile8, profileForTerm("screen"))
	require.Nil(t, profileForTerm("dumb"))

	e := entry{sev: SeverityWarning, time: time.Unix(0, 0).UTC(), gid: 7, file: "f.go", line: 1, msg: "m"}
	colored := string(e.format(false, colorProfile8))
	require.True(t, strings.HasPrefix(colored, string(colorProfile8.warnPrefix)+"W"))
	require.Equal(t, "W700101 00:00:00.000000 7 f.go:1  m\n", string(e.format(false, nil)))
}

func TestEveryN(t *testing.T) {
	defer SetVerbosity(Verbosity())
	SetVerbosity(0)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	e := Every(time.Minute)
	require.True(t, e.shouldLog(start))
	require.False(t, e.shouldLog(start.Add(time.Second)))
	require.True(t, e.shouldLog(start.Add(time.Minute)))
	SetVerbosity(2)
	require.True(t, e.shouldLog(start.Add(time.Minute)))
}
