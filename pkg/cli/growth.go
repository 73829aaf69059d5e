// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fracindex/pkg/fracindex/growth"
	"github.com/cockroachdb/fracindex/pkg/util/humanizeutil"
	"github.com/cockroachdb/fracindex/pkg/util/log"
	"github.com/spf13/cobra"
)

var growthCmd = &cobra.Command{
	Use:   "growth",
	Short: "measure key length growth under insertion and move patterns",
	Long: `
Run key growth scenarios and report the key lengths they produce. Scenarios
run concurrently. Without --scenario every built-in scenario runs.
`,
	Args: checkArgs(cobra.NoArgs),
	RunE: runGrowth,
}

func init() {
	var names string
	for i, s := range growth.Scenarios() {
		if i > 0 {
			names += "\n"
		}
		names += fmt.Sprintf("  %-24s %s", s.Name, s.Description)
	}
	growthCmd.Long += "\nScenarios:\n\n" + names + "\n"
}

func runGrowth(cmd *cobra.Command, _ []string) error {
	ctx := cmdContext(cmd)
	scenarios := growth.Scenarios()
	if len(growthCtx.scenarios) > 0 {
		scenarios = scenarios[:0:0]
		for _, name := range growthCtx.scenarios {
			s, err := growth.LookupScenario(name)
			if err != nil {
				return flagError(err)
			}
			scenarios = append(scenarios, s)
		}
	}
	if growthCtx.steps > int64(^uint32(0)>>1) {
		return flagError(errors.Newf("--steps %d is too large", growthCtx.steps))
	}

	report, err := growth.RunAll(ctx, growth.Config{
		Steps: int(growthCtx.steps),
		Seed:  growthCtx.seed,
	}, scenarios)
	if err != nil {
		return err
	}

	var keyBytes int64
	var rows [][]string
	for _, res := range report.Results {
		add := func(metric, value string) {
			rows = append(rows, []string{res.Scenario, res.Measure, metric, value})
		}
		for _, c := range res.Checkpoints {
			add(fmt.Sprintf("len@%d", c.Step), strconv.Itoa(c.Value))
		}
		if s := res.Stats; s != nil {
			keyBytes += int64(s.Total)
			add("total", strconv.Itoa(s.Total))
			add("mean", strconv.FormatFloat(s.Mean, 'f', 3, 64))
			add("median", strconv.FormatFloat(s.Median, 'f', 1, 64))
			add("p95", strconv.Itoa(s.P95))
			add("max", strconv.Itoa(s.Max))
		}
	}
	if keyBytes > 0 {
		log.Infof(ctx, "pattern scenarios generated %s of keys", humanizeutil.IBytes(keyBytes))
	}
	return printRows(cmd.OutOrStdout(), []string{"scenario", "measure", "metric", "value"},
		newRowSliceIter(rows), cliCtx.tableDisplayFormat)
}
