// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package growth

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fracindex/pkg/fracindex"
	"github.com/cockroachdb/fracindex/pkg/util/humanizeutil"
	"github.com/cockroachdb/fracindex/pkg/util/log"
	"github.com/cockroachdb/fracindex/pkg/util/timeutil"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
	"golang.org/x/sync/errgroup"
)

// Config parameterizes the built-in scenarios. The zero value runs every
// scenario at its reference size.
type Config struct {
	// Steps, if positive, replaces the step count of pattern scenarios and
	// the checkpoints of checkpoint scenarios with a single checkpoint.
	Steps int
	// Seed seeds the random selectors.
	Seed int64
}

// Result is the outcome of one scenario. Exactly one of Checkpoints and
// Stats is set.
type Result struct {
	Scenario    string
	Measure     string
	Checkpoints []Checkpoint
	Stats       *LengthStats
	Elapsed     time.Duration
}

// Report collects the results of RunAll in scenario order.
type Report struct {
	Results []Result
	Elapsed time.Duration
}

// Scenario is a named, repeatable workload.
type Scenario struct {
	Name        string
	Description string
	run         func(ctx context.Context, cfg Config) (Result, error)
}

// Run executes the scenario.
func (s Scenario) Run(ctx context.Context, cfg Config) (Result, error) {
	start := timeutil.Now()
	res, err := s.run(ctx, cfg)
	if err != nil {
		return Result{}, errors.Wrapf(err, "scenario %s", redact.Safe(s.Name))
	}
	res.Scenario = s.Name
	res.Elapsed = timeutil.Since(start)
	return res, nil
}

func checkpointsOr(cfg Config, def ...int) []int {
	if cfg.Steps > 0 {
		return []int{cfg.Steps}
	}
	return def
}

func stepsOr(cfg Config, def int) int {
	if cfg.Steps > 0 {
		return cfg.Steps
	}
	return def
}

func checkpointScenario(
	name, desc, measure string,
	run func(ctx context.Context, cfg Config) ([]Checkpoint, error),
) Scenario {
	return Scenario{
		Name:        name,
		Description: desc,
		run: func(ctx context.Context, cfg Config) (Result, error) {
			cps, err := run(ctx, cfg)
			if err != nil {
				return Result{}, err
			}
			return Result{Measure: measure, Checkpoints: cps}, nil
		},
	}
}

func statsScenario(
	name, desc, measure string,
	run func(ctx context.Context, cfg Config) (LengthStats, error),
) Scenario {
	return Scenario{
		Name:        name,
		Description: desc,
		run: func(ctx context.Context, cfg Config) (Result, error) {
			s, err := run(ctx, cfg)
			if err != nil {
				return Result{}, err
			}
			return Result{Measure: measure, Stats: &s}, nil
		},
	}
}

var edgeCheckpoints = []int{100, 1000, 4000, 4500}
var pairCheckpoints = []int{300, 3000, 10000}

var builtinScenarios = []Scenario{
	checkpointScenario("edge-after", "repeated after() from the default key", "raw",
		func(ctx context.Context, cfg Config) ([]Checkpoint, error) {
			return EdgeGrowth(ctx, fracindex.After, checkpointsOr(cfg, edgeCheckpoints...))
		}),
	checkpointScenario("edge-before", "repeated before() from the default key", "raw",
		func(ctx context.Context, cfg Config) ([]Checkpoint, error) {
			return EdgeGrowth(ctx, fracindex.Before, checkpointsOr(cfg, edgeCheckpoints...))
		}),
	checkpointScenario("adjacent-pair", "narrow a pair of keys from both sides", "raw",
		func(ctx context.Context, cfg Config) ([]Checkpoint, error) {
			return AdjacentPair(ctx, checkpointsOr(cfg, pairCheckpoints...), RawLength)
		}),
	checkpointScenario("adjacent-pair-base64", "narrow a pair of keys from both sides", "base64",
		func(ctx context.Context, cfg Config) ([]Checkpoint, error) {
			return AdjacentPair(ctx, checkpointsOr(cfg, pairCheckpoints...), Base64Length)
		}),
	checkpointScenario("root-anchored", "split toward the default key", "raw",
		func(ctx context.Context, cfg Config) ([]Checkpoint, error) {
			return RootAnchored(ctx, checkpointsOr(cfg, pairCheckpoints...), RawLength)
		}),
	checkpointScenario("root-anchored-base64", "split toward the default key", "base64",
		func(ctx context.Context, cfg Config) ([]Checkpoint, error) {
			return RootAnchored(ctx, checkpointsOr(cfg, pairCheckpoints...), Base64Length)
		}),
	statsScenario("small-inward-move", "move edge items three positions inward", "raw",
		func(ctx context.Context, cfg Config) (LengthStats, error) {
			return MovePattern(ctx, 64, stepsOr(cfg, 240), InwardMove(3), RawLength)
		}),
	statsScenario("edge-to-inner-move", "move edge items four positions inward", "raw",
		func(ctx context.Context, cfg Config) (LengthStats, error) {
			return MovePattern(ctx, 256, stepsOr(cfg, 4000), EdgeToInnerMove, RawLength)
		}),
	statsScenario("uniform-insert", "insert at uniformly random positions", "raw",
		func(ctx context.Context, cfg Config) (LengthStats, error) {
			rng := rand.New(rand.NewSource(cfg.Seed))
			return InsertPattern(ctx, 64, stepsOr(cfg, 2500), UniformInsert(rng), RawLength)
		}),
	statsScenario("edge-biased-insert", "insert at the ends 90% of the time", "raw",
		func(ctx context.Context, cfg Config) (LengthStats, error) {
			rng := rand.New(rand.NewSource(cfg.Seed))
			return InsertPattern(ctx, 64, stepsOr(cfg, 2500), EdgeBiasedInsert(rng, 90), RawLength)
		}),
	statsScenario("uniform-move", "move random items to random positions", "raw",
		func(ctx context.Context, cfg Config) (LengthStats, error) {
			rng := rand.New(rand.NewSource(cfg.Seed))
			return MovePattern(ctx, 256, stepsOr(cfg, 4000), UniformMove(rng), RawLength)
		}),
	statsScenario("uniform-insert-sortable", "insert at uniformly random positions", "sortable",
		func(ctx context.Context, cfg Config) (LengthStats, error) {
			rng := rand.New(rand.NewSource(cfg.Seed))
			return InsertPattern(ctx, 64, stepsOr(cfg, 2500), UniformInsert(rng), SortableLength)
		}),
}

// Scenarios returns the built-in scenarios.
func Scenarios() []Scenario {
	return append([]Scenario(nil), builtinScenarios...)
}

// LookupScenario returns the built-in scenario with the given name.
func LookupScenario(name string) (Scenario, error) {
	for _, s := range builtinScenarios {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return Scenario{}, errors.Newf("unknown scenario %q", name)
}

// RunAll runs the scenarios concurrently. The first failure cancels the
// remaining scenarios and is returned.
func RunAll(ctx context.Context, cfg Config, scenarios []Scenario) (Report, error) {
	start := timeutil.Now()
	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	for i := range scenarios {
		i := i
		g.Go(func() error {
			ctx := logtags.AddTag(ctx, "scenario", scenarios[i].Name)
			log.VEventf(ctx, 1, "starting")
			res, err := scenarios[i].Run(ctx, cfg)
			if err != nil {
				return err
			}
			log.VEventf(ctx, 1, "finished in %s", redact.Safe(humanizeutil.Duration(res.Elapsed)))
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	report := Report{Results: results, Elapsed: timeutil.Since(start)}
	log.Infof(ctx, "ran %d scenarios (%s generated keys) in %s",
		len(results), redact.Safe(humanizeutil.Count(report.KeyCount())),
		redact.Safe(humanizeutil.Duration(report.Elapsed)))
	return report, nil
}

// KeyCount returns the number of keys the pattern scenarios of the report
// generated. Checkpoint scenarios count their largest checkpoint.
func (r Report) KeyCount() int64 {
	var n int64
	for _, res := range r.Results {
		if res.Stats != nil {
			n += int64(res.Stats.Count)
			continue
		}
		var last int
		for _, c := range res.Checkpoints {
			last = max(last, c.Step)
		}
		n += int64(last)
	}
	return n
}
