// Copyright 2017 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"time"

	"github.com/cockroachdb/fracindex/pkg/util"
)

// EveryN throttles a recurring log line, such as the progress messages
// printed while `fracindex sequence` generates a long run of keys.
type EveryN struct {
	util.EveryN
}

// Every returns an EveryN that lets one message through per interval n.
func Every(n time.Duration) EveryN {
	return EveryN{EveryN: util.Every(n)}
}

// ShouldLog reports whether the caller may emit its message now. Every call
// passes at verbosity 2 and above.
func (e *EveryN) ShouldLog() bool {
	return e.shouldLog(timeNow())
}

func (e *EveryN) shouldLog(now time.Time) bool {
	if V(2) {
		return true
	}
	return e.ShouldProcess(now)
}
