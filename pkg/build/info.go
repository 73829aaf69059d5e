// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package build

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// TimeFormat is the reference format for build.Time. Make sure it stays in sync
// with the string passed to the linker.
const TimeFormat = "2006/01/02 15:04:05"

var (
	// These variables are initialized via the linker -X flag when compiling
	// release binaries.
	tag      = "unknown" // Tag of this build (git describe --tags w/ optional '-dirty' suffix)
	utcTime  string      // Build time in UTC (year/month/day hour:min:sec)
	rev      string      // SHA-1 of this build (git rev-parse)
	platform = fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH)
	typ      string // Type of this build: <empty>, "development", or "release"
)

// Info describes the binary.
type Info struct {
	GoVersion string
	Tag       string
	Time      string
	Revision  string
	Platform  string
	Type      string
}

// Short returns a pretty printed build and version summary.
func (b Info) Short() string {
	built := b.Time
	if built == "" {
		built = "unknown time"
	}
	return fmt.Sprintf("fracindex %s (%s, built %s, %s)", b.Tag, b.Platform, built, b.GoVersion)
}

// GoTime parses the utcTime string and returns a time.Time.
func (b Info) GoTime() time.Time {
	val, err := time.Parse(TimeFormat, b.Time)
	if err != nil {
		return time.Time{}
	}
	return val
}

// readBuildInfo is overridden in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetInfo returns an Info struct populated with the build information. Values
// not provided by the linker are taken from the module build information
// embedded by the go tool, when available.
func GetInfo() Info {
	info := Info{
		GoVersion: runtime.Version(),
		Tag:       tag,
		Time:      utcTime,
		Revision:  rev,
		Platform:  platform,
		Type:      typ,
	}
	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Tag == "unknown" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Tag = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Revision == "" {
				info.Revision = s.Value
			}
		case "vcs.time":
			if info.Time == "" {
				if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
					info.Time = t.UTC().Format(TimeFormat)
				}
			}
		}
	}
	return info
}

// TestingOverrideTag allows tests to override the build tag.
func TestingOverrideTag(t string) func() {
	prev := tag
	tag = t
	return func() { tag = prev }
}
