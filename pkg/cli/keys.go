// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fracindex/pkg/fracindex"
	"github.com/cockroachdb/fracindex/pkg/util/humanizeutil"
	"github.com/cockroachdb/fracindex/pkg/util/log"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <key> [<key>...]",
	Short: "decode keys and show their structure",
	Long: `
Decode each key and print its tier, major and minor, and its other text
encodings.
`,
	Args: checkArgs(cobra.MinimumNArgs(1)),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	keys := make([]fracindex.Key, len(args))
	for i, arg := range args {
		k, err := cliCtx.keyFormat.decode(arg)
		if err != nil {
			return err
		}
		keys[i] = k
	}
	cols := []string{"key", "tier", "major", "minor", "length", "sortable", "base64"}
	rows := make([][]string, len(keys))
	for i, k := range keys {
		rows[i] = []string{
			cliCtx.keyFormat.encode(k),
			k.Tier().String(),
			strconv.FormatInt(k.Major(), 10),
			fmt.Sprintf("%x", k.Minor()),
			strconv.Itoa(k.Len()),
			k.SortableText(),
			k.Base64(fracindex.Base64Std),
		}
	}
	return printRows(cmd.OutOrStdout(), cols, newRowSliceIter(rows), cliCtx.tableDisplayFormat)
}

var beforeCmd = &cobra.Command{
	Use:   "before <key>",
	Short: "generate a key that sorts before the given key",
	Args:  checkArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStep(cmd, args[0], fracindex.Before)
	},
}

var afterCmd = &cobra.Command{
	Use:   "after <key>",
	Short: "generate a key that sorts after the given key",
	Args:  checkArgs(cobra.ExactArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStep(cmd, args[0], fracindex.After)
	},
}

func runStep(cmd *cobra.Command, arg string, step func(fracindex.Key) (fracindex.Key, error)) error {
	ctx := cmdContext(cmd)
	k, err := cliCtx.keyFormat.decode(arg)
	if err != nil {
		return err
	}
	res, err := step(k)
	if err != nil {
		return err
	}
	log.VEventf(ctx, 1, "%s -> %s", k, res)
	return printKey(cmd.OutOrStdout(), res, cliCtx.keyFormat)
}

var betweenCmd = &cobra.Command{
	Use:   "between <a> <b>",
	Short: "generate a key that sorts strictly between two keys",
	Long: `
Generate a key strictly between two distinct keys. The bounds may be given
in either order.
`,
	Args: checkArgs(cobra.ExactArgs(2)),
	RunE: runBetween,
}

func runBetween(cmd *cobra.Command, args []string) error {
	ctx := cmdContext(cmd)
	a, err := cliCtx.keyFormat.decode(args[0])
	if err != nil {
		return err
	}
	b, err := cliCtx.keyFormat.decode(args[1])
	if err != nil {
		return err
	}
	res, err := fracindex.BetweenWithStrategy(a, b, genCtx.strategy)
	if err != nil {
		return err
	}
	log.VEventf(ctx, 1, "between %s and %s (%s): %s", a, b, genCtx.strategy, res)
	return printKey(cmd.OutOrStdout(), res, cliCtx.keyFormat)
}

var convertCmd = &cobra.Command{
	Use:   "convert <key> [<key>...]",
	Short: "convert keys between text encodings",
	Long: `
Read each key in the --from encoding and print it in the --to encoding,
one per line.
`,
	Args: checkArgs(cobra.MinimumNArgs(1)),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		k, err := genCtx.fromFormat.decode(arg)
		if err != nil {
			return err
		}
		if err := printKey(cmd.OutOrStdout(), k, genCtx.toFormat); err != nil {
			return err
		}
	}
	return nil
}

var sequenceCmd = &cobra.Command{
	Use:   "sequence",
	Short: "generate a run of consecutive keys",
	Long: `
Generate --count keys, starting with --start and stepping with after, or
with before if --descending is set.
`,
	Args: checkArgs(cobra.NoArgs),
	RunE: runSequence,
}

func runSequence(cmd *cobra.Command, _ []string) error {
	ctx := cmdContext(cmd)
	k := fracindex.Default()
	if genCtx.start != "" {
		var err error
		if k, err = cliCtx.keyFormat.decode(genCtx.start); err != nil {
			return err
		}
	}
	step := fracindex.After
	if genCtx.descending {
		step = fracindex.Before
	}

	progress := log.Every(5 * time.Second)
	n := int64(0)
	next := func() ([]string, error) {
		if n >= genCtx.count {
			return nil, io.EOF
		}
		if n > 0 {
			var err error
			if k, err = step(k); err != nil {
				return nil, errors.Wrapf(err, "generating key %d", n+1)
			}
			log.VEventf(ctx, 2, "generated %s", k)
		}
		n++
		if n%(1<<16) == 0 && progress.ShouldLog() {
			log.Infof(ctx, "generated %s of %s keys",
				humanizeutil.Count(n), humanizeutil.Count(genCtx.count))
		}
		return []string{strconv.FormatInt(n, 10), cliCtx.keyFormat.encode(k), strconv.Itoa(k.Len())}, nil
	}
	return printRows(cmd.OutOrStdout(), []string{"n", "key", "length"},
		newRowFuncIter(next), cliCtx.tableDisplayFormat)
}

func printKey(w io.Writer, k fracindex.Key, f keyFormat) error {
	_, err := fmt.Fprintln(w, f.encode(k))
	return err
}
