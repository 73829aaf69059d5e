// Copyright 2017 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// colorProfile defines escape sequences which provide color in
// terminals. Some terminals support 8 colors, some 256, others
// none at all.
type colorProfile struct {
	infoPrefix  []byte
	warnPrefix  []byte
	errorPrefix []byte
	timePrefix  []byte
}

var colorReset = []byte("\033[0m")

// For terms with 8-color support.
var colorProfile8 = &colorProfile{
	infoPrefix:  []byte("\033[0;36;49m"),
	warnPrefix:  []byte("\033[0;33;49m"),
	errorPrefix: []byte("\033[0;31;49m"),
	timePrefix:  []byte("\033[2;37;49m"),
}

// For terms with 256-color support.
var colorProfile256 = &colorProfile{
	infoPrefix:  []byte("\033[38;5;33m"),
	warnPrefix:  []byte("\033[38;5;214m"),
	errorPrefix: []byte("\033[38;5;160m"),
	timePrefix:  []byte("\033[38;5;246m"),
}

func (cp *colorProfile) prefixFor(s Severity) []byte {
	switch s {
	case SeverityInfo:
		return cp.infoPrefix
	case SeverityWarning:
		return cp.warnPrefix
	default:
		return cp.errorPrefix
	}
}

// SetNoColor disables (or re-enables) colors on the stderr sink. It is
// bound to the --no-color flag.
func SetNoColor(noColor bool) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	if noColor {
		logging.mu.color = nil
	} else if logging.mu.out == OrigStderr {
		logging.mu.color = stderrColorProfile()
	}
}

// stderrColorProfile determines whether stderr is a terminal and, if so,
// which color profile the terminal supports.
func stderrColorProfile() *colorProfile {
	fd := OrigStderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil
	}
	return profileForTerm(os.Getenv("TERM"))
}

func profileForTerm(term string) *colorProfile {
	switch term {
	case "ansi", "tmux":
		return colorProfile8
	case "st":
		return colorProfile256
	default:
		if strings.HasSuffix(term, "256color") {
			return colorProfile256
		}
		if strings.HasSuffix(term, "color") || strings.HasPrefix(term, "screen") {
			return colorProfile8
		}
	}
	return nil
}
