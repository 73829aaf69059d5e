// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fracindex/pkg/cli/clierror"
	"github.com/cockroachdb/fracindex/pkg/cli/exit"
	"github.com/cockroachdb/fracindex/pkg/fracindex"
	"github.com/cockroachdb/fracindex/pkg/testutils"
	"github.com/cockroachdb/fracindex/pkg/testutils/echotest"
	"github.com/cockroachdb/fracindex/pkg/util/log"
	"github.com/google/shlex"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

// runCLI runs the command line and returns what it printed to stdout and
// stderr.
func runCLI(t *testing.T, args ...string) (string, exit.Code) {
	t.Helper()
	defer testutils.TestingHook(&isInteractiveOutput, false)()
	initCLIDefaults()

	var out bytes.Buffer
	defer testutils.TestingHook(&stderr, io.Writer(&out))()
	fracindexCmd.SetOut(&out)
	fracindexCmd.SetErr(&out)
	defer func() {
		fracindexCmd.SetOut(nil)
		fracindexCmd.SetErr(nil)
	}()

	code := doMain(context.Background(), args)
	return out.String(), code
}

func TestCLI(t *testing.T) {
	defer log.CaptureOutput(io.Discard)()

	datadriven.RunTest(t, testutils.TestDataPath(t, "cli"),
		func(t *testing.T, d *datadriven.TestData) string {
			if d.Cmd != "exec" {
				d.Fatalf(t, "unknown command %s", d.Cmd)
			}
			args, err := shlex.Split(d.Input)
			if err != nil {
				d.Fatalf(t, "%v", err)
			}
			out, code := runCLI(t, args...)
			if code != exit.Success() {
				out += fmt.Sprintf("exit code: %d\n", code)
			}
			return out
		})
}

func TestTableDisplay(t *testing.T) {
	defer log.CaptureOutput(io.Discard)()

	out, code := runCLI(t, "inspect", "--display-format", "table", "817f80", "c080")
	require.Equal(t, exit.Success(), code, out)
	require.Contains(t, out, "positive-short")
	require.Contains(t, out, "+--")
	require.Contains(t, out, "817f80")
	require.True(t, strings.HasSuffix(out, "(2 rows)\n"), out)

	out, code = runCLI(t, "rank", "--display-format", "table")
	require.Equal(t, exit.Success(), code, out)
	require.True(t, strings.HasSuffix(out, "(0 rows)\n"), out)
}

func TestGrowthJSON(t *testing.T) {
	defer log.CaptureOutput(io.Discard)()

	out, code := runCLI(t, "growth", "--scenario", "edge-after", "--scenario", "edge-before",
		"--steps", "100", "--display-format", "json")
	require.Equal(t, exit.Success(), code, out)
	echotest.Require(t, out, testutils.TestDataPath(t, "growth_json"))
}

func TestYAMLDisplay(t *testing.T) {
	defer log.CaptureOutput(io.Discard)()

	out, code := runCLI(t, "rank", "--labels", "a,b,c", "--move", "0:3", "--display-format", "yaml")
	require.Equal(t, exit.Success(), code, out)

	var rows []map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.Equal(t, []map[string]string{
		{"index": "0", "id": "item-2", "label": "b", "key": "8180", "length": "2"},
		{"index": "1", "id": "item-3", "label": "c", "key": "8280", "length": "2"},
		{"index": "2", "id": "item-1", "label": "a", "key": "8380", "length": "2"},
	}, rows)
}

func TestVerboseLogging(t *testing.T) {
	var logs bytes.Buffer
	defer log.CaptureOutput(&logs)()

	out, code := runCLI(t, "between", "-v", "1", "80", "8180")
	require.Equal(t, exit.Success(), code, out)
	require.Equal(t, "817f80\n", out)
	require.Contains(t, logs.String(), "between 80 and 8180 (balanced): 817f80")
	require.Contains(t, logs.String(), "cmd=between")

	logs.Reset()
	_, code = runCLI(t, "between", "80", "8180")
	require.Equal(t, exit.Success(), code)
	require.Empty(t, logs.String())
}

func TestKeyFormats(t *testing.T) {
	keys := []fracindex.Key{
		fracindex.Default(),
		fracindex.MustDecodeHex("817f80"),
		fracindex.MustDecodeHex("c080"),
		fracindex.MustDecodeHex("3f80"),
	}
	for i := range keyFormatNames {
		f := keyFormat(i)
		var parsed keyFormat
		require.NoError(t, parsed.Set(strings.ToUpper(f.String())))
		require.Equal(t, f, parsed)
		for _, k := range keys {
			dec, err := f.decode(f.encode(k))
			require.NoError(t, err, "%s %s", f.String(), k)
			require.True(t, k.Equal(dec))
		}
	}

	var f keyFormat
	err := f.Set("base32")
	require.Error(t, err)
	require.Contains(t, errors.FlattenHints(err), "sortable")

	_, err = keyFormatHex.decode("0x80")
	require.True(t, errors.Is(err, fracindex.ErrFormat))
	require.Equal(t, exit.InvalidKey(), clierror.ExitCodeOf(err, exit.UnspecifiedError()))
}

func TestExitCodeFor(t *testing.T) {
	testCases := []struct {
		err      error
		expected exit.Code
	}{
		{errors.New("boom"), exit.UnspecifiedError()},
		{errors.Wrap(fracindex.ErrOverflow, "after"), exit.InvalidKey()},
		{errors.Mark(errors.New("bounds must be distinct"), fracindex.ErrBounds), exit.InvalidKey()},
		{flagError(errors.Wrap(fracindex.ErrFormat, "flag")), exit.CommandLineFlagError()},
		{clierror.NewError(errors.New("fatal"), exit.FatalError()), exit.FatalError()},
	}
	for _, c := range testCases {
		require.Equal(t, c.expected, exitCodeFor(c.err), "%v", c.err)
	}
}

func TestParseMove(t *testing.T) {
	from, drop, err := parseMove("2: 0")
	require.NoError(t, err)
	require.Equal(t, 2, from)
	require.Equal(t, 0, drop)

	for _, s := range []string{"", "1", "a:1", "1:b", "1:2:3"} {
		_, _, err := parseMove(s)
		require.Error(t, err, "%q", s)
	}
}

func TestDisplayFormatValue(t *testing.T) {
	for f := tableDisplayFormat(0); f < tableDisplayLastFormat; f++ {
		var parsed tableDisplayFormat
		require.NoError(t, parsed.Set(f.String()))
		require.Equal(t, f, parsed)
	}
	var f tableDisplayFormat
	require.Error(t, f.Set("html"))
}
