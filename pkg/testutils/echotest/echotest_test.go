// Copyright 2022 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package echotest

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/fracindex/pkg/testutils"
)

func TestRequire(t *testing.T) {
	Require(t, fmt.Sprintf("hello, %s", "world"), testutils.TestDataPath(t, "hello"))
}
