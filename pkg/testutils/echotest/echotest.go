// Copyright 2022 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package echotest pins a whole block of test output, such as a CLI
// command's JSON rendering, to a golden datadriven file.
package echotest

import (
	"testing"

	"github.com/cockroachdb/datadriven"
)

// Require fails t unless act equals the output recorded under the file's
// echo directives:
//
//	echo
//	----
//	[{"scenario": "edge-after", ...}]
//
// Run the test with -rewrite to regenerate the file from act.
func Require(t *testing.T, act, path string) {
	t.Helper()
	var checked int
	datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
		if d.Cmd != "echo" {
			d.Fatalf(t, "unknown command %s, expected echo", d.Cmd)
		}
		checked++
		return act
	})
	if checked == 0 {
		t.Errorf("%s has no echo directive", path)
	}
}
