// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fracindex/pkg/fracindex/rankedlist"
	"github.com/cockroachdb/fracindex/pkg/util/log"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "simulate a user-ordered list",
	Long: `
Build a ranked list from --labels, append the items named by --add, then
apply each --move in order and print the resulting list in display order.

For example:

  fracindex rank --labels a,b,c --move 0:3
`,
	Args: checkArgs(cobra.NoArgs),
	RunE: runRank,
}

// parseMove parses a from:drop pair.
func parseMove(s string) (from, drop int, _ error) {
	f, d, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, errors.Newf("invalid move %q: expected from:drop", s)
	}
	from, err := strconv.Atoi(strings.TrimSpace(f))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid move %q", s)
	}
	drop, err = strconv.Atoi(strings.TrimSpace(d))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid move %q", s)
	}
	return from, drop, nil
}

func runRank(cmd *cobra.Command, _ []string) error {
	ctx := cmdContext(cmd)

	type move struct{ from, drop int }
	moves := make([]move, len(rankCtx.moves))
	for i, s := range rankCtx.moves {
		from, drop, err := parseMove(s)
		if err != nil {
			return flagError(err)
		}
		moves[i] = move{from, drop}
	}

	var labels []string
	if rankCtx.labels != "" {
		labels = strings.Split(rankCtx.labels, ",")
	}
	l := rankedlist.New(labels...)
	if rankCtx.descending {
		l.SortByKey(rankedlist.Descending)
	}
	for _, label := range rankCtx.adds {
		it, err := l.Add(label)
		if err != nil {
			return err
		}
		log.VEventf(ctx, 1, "added %s at %s", it.ID, it.Key)
	}
	for _, m := range moves {
		if m.from < 0 || m.from >= l.Len() {
			log.Warningf(ctx, "ignoring move %d:%d: no item at index %d", m.from, m.drop, m.from)
			continue
		}
		_, moved, err := l.MoveByDropIndex(ctx, m.from, m.drop)
		if err != nil {
			return err
		}
		if !moved {
			log.VEventf(ctx, 1, "move %d:%d leaves the list unchanged", m.from, m.drop)
		}
	}

	items := l.Items()
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = []string{
			strconv.Itoa(i),
			it.ID,
			it.Label,
			cliCtx.keyFormat.encode(it.Key),
			strconv.Itoa(it.Key.Len()),
		}
	}
	return printRows(cmd.OutOrStdout(), []string{"index", "id", "label", "key", "length"},
		newRowSliceIter(rows), cliCtx.tableDisplayFormat)
}
