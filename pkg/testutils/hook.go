// Copyright 2021 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package testutils

import "reflect"

// TestingHook overrides a package-level variable for the duration of a test,
// e.g. the CLI's terminal detection or the build info reader:
//
//	defer testutils.TestingHook(&isInteractiveOutput, false)()
//
// ptr must point at the variable and val must be assignable to it; anything
// else panics. The returned func puts the previous value back.
func TestingHook(ptr, val interface{}) func() {
	target := reflect.ValueOf(ptr).Elem()
	saved := reflect.New(target.Type()).Elem()
	saved.Set(target)
	target.Set(reflect.ValueOf(val))
	return func() { target.Set(saved) }
}
