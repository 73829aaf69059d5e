// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/cockroachdb/fracindex/pkg/util/caller"
	"github.com/cockroachdb/fracindex/pkg/util/timeutil"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
	"github.com/petermattis/goid"
)

// entry is a single log event before formatting.
type entry struct {
	sev  Severity
	time time.Time
	gid  int64
	file string
	line int
	tags redact.RedactableString
	msg  redact.RedactableString
}

func makeEntry(
	ctx context.Context, depth int, sev Severity, format string, args ...interface{},
) entry {
	file, line, _ := caller.Lookup(depth + 1)
	e := entry{
		sev:  sev,
		time: timeNow(),
		gid:  goid.Get(),
		file: file,
		line: line,
		tags: renderTags(ctx),
	}
	if len(args) == 0 {
		e.msg = redact.Sprint(redact.Safe(format))
	} else {
		e.msg = redact.Sprintf(format, args...)
	}
	return e
}

// renderTags formats the logging tags of ctx as "[k=v,flag]".
func renderTags(ctx context.Context) redact.RedactableString {
	b := logtags.FromContext(ctx)
	if b == nil || len(b.Get()) == 0 {
		return ""
	}
	var sb redact.StringBuilder
	sb.SafeRune('[')
	for i, t := range b.Get() {
		if i > 0 {
			sb.SafeRune(',')
		}
		sb.SafeString(redact.SafeString(t.Key()))
		if v := t.Value(); v != nil {
			sb.SafeRune('=')
			sb.Print(v)
		}
	}
	sb.SafeRune(']')
	return sb.RedactableString()
}

// format renders the entry as a single line:
//
//	I261016 09:08:07.654321 17 fracindex/rankedlist/list.go:42  [list=1] message
//
// where 17 is the id of the logging goroutine.
func (e entry) format(redactable bool, cp *colorProfile) []byte {
	var buf bytes.Buffer
	if cp != nil {
		buf.Write(cp.prefixFor(e.sev))
	}
	buf.WriteByte(e.sev.char())
	if cp != nil {
		buf.Write(colorReset)
		buf.Write(cp.timePrefix)
	}
	buf.WriteString(e.time.Format(timeutil.LogTimeFormat))
	if cp != nil {
		buf.Write(colorReset)
	}
	fmt.Fprintf(&buf, " %d %s:%d  ", e.gid, e.file, e.line)

	body := e.msg
	if e.tags != "" {
		body = e.tags + " " + body
	}
	if redactable {
		buf.WriteString(string(body))
	} else {
		buf.WriteString(body.StripMarkers())
	}
	if b := buf.Bytes(); b[len(b)-1] != '\n' {
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// stacks returns the stack of the current goroutine, for fatal entries.
func stacks() []byte {
	return debug.Stack()
}
