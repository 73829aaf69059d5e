// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package caller

import (
	"runtime"
	"strings"
	"sync"
)

type cachedLookup struct {
	file string
	line int
	fun  string
}

// A CallResolver is a helper that resolves the file, line and function of a
// caller. Lookups are cached by program counter.
type CallResolver struct {
	mu    sync.Mutex
	cache map[uintptr]*cachedLookup
}

var defaultCallResolver = NewCallResolver()

// NewCallResolver returns a CallResolver with an empty cache.
func NewCallResolver() *CallResolver {
	return &CallResolver{cache: map[uintptr]*cachedLookup{}}
}

// trimPath strips everything up to and including the last "/pkg/" element of
// a source path, leaving the repository-relative location.
func trimPath(file string) string {
	if i := strings.LastIndex(file, "/pkg/"); i >= 0 {
		return file[i+len("/pkg/"):]
	}
	return file
}

// Lookup returns the (reduced) file, line and function of the caller at the
// requested depth, using a cache to speed up repeated lookups. A depth of
// zero refers to the function calling Lookup.
func (cr *CallResolver) Lookup(depth int) (file string, line int, fun string) {
	pc, file, line, ok := runtime.Caller(depth + 1)
	if !ok || cr == nil {
		return "?", 1, "?"
	}
	cr.mu.Lock()
	defer cr.mu.Unlock()
	if v, ok := cr.cache[pc]; ok {
		return v.file, v.line, v.fun
	}
	if f := runtime.FuncForPC(pc); f != nil {
		_, fun = parseFQFun(f.Name())
	} else {
		fun = "?"
	}
	file = trimPath(file)
	cr.cache[pc] = &cachedLookup{file: file, line: line, fun: fun}
	return file, line, fun
}

// Lookup returns the (reduced) file, line and function of the caller at the
// requested depth, using the default resolver.
func Lookup(depth int) (file string, line int, fun string) {
	return defaultCallResolver.Lookup(depth + 1)
}

// modulePrefix is stripped from package paths within this repository.
const modulePrefix = "github.com/cockroachdb/fracindex/pkg/"

// parseFQFun splits a fully qualified function name as reported by the
// runtime into its package path and function parts.
func parseFQFun(fqFun string) (pkg string, fun string) {
	// The package ends at the first dot after the last slash.
	slash := strings.LastIndexByte(fqFun, '/')
	dot := strings.IndexByte(fqFun[slash+1:], '.')
	if dot < 0 {
		return "", fqFun
	}
	dot += slash + 1
	pkg, fun = fqFun[:dot], fqFun[dot+1:]
	pkg = strings.TrimPrefix(pkg, modulePrefix)
	pkg = strings.TrimPrefix(pkg, "github.com/cockroachdb/")
	return pkg, fun
}
