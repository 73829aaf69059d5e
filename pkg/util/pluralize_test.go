// Copyright 2017 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPluralize(t *testing.T) {
	require.Equal(t, "s", Pluralize(0))
	require.Equal(t, "", Pluralize(1))
	require.Equal(t, "s", Pluralize(2))
}
