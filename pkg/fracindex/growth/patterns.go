// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package growth drives the key generator through repeatable insertion and
// move workloads and reports how long the generated keys become.
package growth

import (
	"context"
	"math/rand"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fracindex/pkg/fracindex"
	"github.com/montanaflynn/stats"
)

// Measure maps a generated key to the length that is being tracked.
type Measure func(fracindex.Key) int

// RawLength measures the encoded byte length of a key.
func RawLength(k fracindex.Key) int { return k.Len() }

// Base64Length measures the length of the padded standard base64 form.
func Base64Length(k fracindex.Key) int { return len(k.Base64(fracindex.Base64Std)) }

// SortableLength measures the length of the sortable text form.
func SortableLength(k fracindex.Key) int { return len(k.SortableText()) }

// Step generates a key next to its argument, e.g. fracindex.After.
type Step func(fracindex.Key) (fracindex.Key, error)

// Checkpoint records a measurement taken after a given number of steps.
type Checkpoint struct {
	Step  int
	Value int
}

// ctxCheckInterval is how many generator calls run between context checks.
const ctxCheckInterval = 1024

func checkCtx(ctx context.Context, step int) error {
	if step%ctxCheckInterval == 0 {
		return ctx.Err()
	}
	return nil
}

// checkpointRecorder collects measurements at a set of step counts and
// returns them in the order the checkpoints were given.
type checkpointRecorder struct {
	order   []int
	last    int
	results map[int]int
}

func makeCheckpointRecorder(checkpoints []int) (checkpointRecorder, error) {
	if len(checkpoints) == 0 {
		return checkpointRecorder{}, errors.New("at least one checkpoint is required")
	}
	r := checkpointRecorder{order: checkpoints, results: make(map[int]int, len(checkpoints))}
	for _, c := range checkpoints {
		if c <= 0 {
			return checkpointRecorder{}, errors.Newf("checkpoint %d must be positive", c)
		}
		r.results[c] = 0
		r.last = max(r.last, c)
	}
	return r, nil
}

func (r *checkpointRecorder) record(step int, m Measure, k fracindex.Key) {
	if _, ok := r.results[step]; ok {
		r.results[step] = m(k)
	}
}

func (r *checkpointRecorder) checkpoints() []Checkpoint {
	res := make([]Checkpoint, len(r.order))
	for i, c := range r.order {
		res[i] = Checkpoint{Step: c, Value: r.results[c]}
	}
	return res
}

// EdgeGrowth applies step repeatedly starting from the default key and
// records the raw length of the key at every checkpoint.
func EdgeGrowth(ctx context.Context, step Step, checkpoints []int) ([]Checkpoint, error) {
	r, err := makeCheckpointRecorder(checkpoints)
	if err != nil {
		return nil, err
	}
	cur := fracindex.Default()
	for i := 1; i <= r.last; i++ {
		if err := checkCtx(ctx, i-1); err != nil {
			return nil, err
		}
		next, err := step(cur)
		if err != nil {
			return nil, errors.Wrapf(err, "step %d", i)
		}
		if next.Equal(cur) {
			return nil, errors.AssertionFailedf("step %d did not move away from %s", i, cur)
		}
		cur = next
		r.record(i, RawLength, cur)
	}
	return r.checkpoints(), nil
}

// AdjacentPair narrows a pair of keys from both sides: every step replaces
// the start with between(start, end) and then the end with between(start,
// end). The start key is measured at every checkpoint.
func AdjacentPair(ctx context.Context, checkpoints []int, m Measure) ([]Checkpoint, error) {
	r, err := makeCheckpointRecorder(checkpoints)
	if err != nil {
		return nil, err
	}
	start := fracindex.Default()
	end := fracindex.MustAfter(start)
	for i := 1; i <= r.last; i++ {
		if err := checkCtx(ctx, i-1); err != nil {
			return nil, err
		}
		if start, err = fracindex.Between(start, end); err != nil {
			return nil, errors.Wrapf(err, "step %d", i)
		}
		if end, err = fracindex.Between(start, end); err != nil {
			return nil, errors.Wrapf(err, "step %d", i)
		}
		r.record(i, m, start)
	}
	return r.checkpoints(), nil
}

// RootAnchored repeatedly splits the gap between the default key and an end
// key that moves toward it. The end key is measured at every checkpoint.
func RootAnchored(ctx context.Context, checkpoints []int, m Measure) ([]Checkpoint, error) {
	r, err := makeCheckpointRecorder(checkpoints)
	if err != nil {
		return nil, err
	}
	start := fracindex.Default()
	end := fracindex.MustAfter(start)
	for i := 1; i <= r.last; i++ {
		if err := checkCtx(ctx, i-1); err != nil {
			return nil, err
		}
		if end, err = fracindex.Between(start, end); err != nil {
			return nil, errors.Wrapf(err, "step %d", i)
		}
		r.record(i, m, end)
	}
	return r.checkpoints(), nil
}

// LengthStats summarizes the measured lengths of a workload. P95 is the
// value at index (n-1)*95/100 of the sorted measurements.
type LengthStats struct {
	Count  int
	Total  int
	Mean   float64
	Median float64
	P95    int
	Max    int
}

func summarize(measures []int) (LengthStats, error) {
	if len(measures) == 0 {
		return LengthStats{}, errors.New("no measurements")
	}
	data := make(stats.Float64Data, len(measures))
	for i, v := range measures {
		data[i] = float64(v)
	}
	total, err := stats.Sum(data)
	if err != nil {
		return LengthStats{}, err
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return LengthStats{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return LengthStats{}, err
	}
	maxLen, err := stats.Max(data)
	if err != nil {
		return LengthStats{}, err
	}
	sorted := append([]int(nil), measures...)
	sort.Ints(sorted)
	return LengthStats{
		Count:  len(measures),
		Total:  int(total),
		Mean:   mean,
		Median: median,
		P95:    sorted[(len(sorted)-1)*95/100],
		Max:    int(maxLen),
	}, nil
}

// sequentialKeys returns n keys built by repeated After from the default key.
func sequentialKeys(n int) ([]fracindex.Key, error) {
	if n <= 0 {
		return nil, errors.Newf("initial size %d must be positive", n)
	}
	res := make([]fracindex.Key, 1, n)
	res[0] = fracindex.Default()
	for len(res) < n {
		k, err := fracindex.After(res[len(res)-1])
		if err != nil {
			return nil, err
		}
		res = append(res, k)
	}
	return res, nil
}

// keyAt generates a key for position at of ordered, which does not yet
// contain it: before the first key, after the last, or between neighbors.
func keyAt(ordered []fracindex.Key, at int) (fracindex.Key, error) {
	switch {
	case at == 0:
		return fracindex.Before(ordered[0])
	case at == len(ordered):
		return fracindex.After(ordered[len(ordered)-1])
	default:
		return fracindex.Between(ordered[at-1], ordered[at])
	}
}

// insertKey places k at position at and verifies it sorts between its new
// neighbors.
func insertKey(ordered []fracindex.Key, at int, k fracindex.Key) ([]fracindex.Key, error) {
	ordered = append(ordered, fracindex.Key{})
	copy(ordered[at+1:], ordered[at:])
	ordered[at] = k
	if (at > 0 && !ordered[at-1].Less(k)) || (at+1 < len(ordered) && !k.Less(ordered[at+1])) {
		return nil, errors.AssertionFailedf("key %s out of order at position %d", k, at)
	}
	return ordered, nil
}

// InsertSelector picks the position of the next insertion into a list of
// size keys. Positions are clamped to [0, size].
type InsertSelector func(size, step int) int

// UniformInsert inserts at a uniformly random position.
func UniformInsert(rng *rand.Rand) InsertSelector {
	return func(size, _ int) int {
		return rng.Intn(size + 1)
	}
}

// EdgeBiasedInsert inserts at one of the two ends with probability pct
// percent, choosing the end at random, and uniformly otherwise.
func EdgeBiasedInsert(rng *rand.Rand, pct int) InsertSelector {
	return func(size, _ int) int {
		if rng.Intn(100) < pct {
			if rng.Intn(2) == 0 {
				return 0
			}
			return size
		}
		return rng.Intn(size + 1)
	}
}

// InsertPattern starts from initialSize sequential keys and inserts steps
// new keys at the positions chosen by sel, measuring each generated key.
func InsertPattern(
	ctx context.Context, initialSize, steps int, sel InsertSelector, m Measure,
) (LengthStats, error) {
	ordered, err := sequentialKeys(initialSize)
	if err != nil {
		return LengthStats{}, err
	}
	measures := make([]int, steps)
	for step := 0; step < steps; step++ {
		if err := checkCtx(ctx, step); err != nil {
			return LengthStats{}, err
		}
		at := clamp(sel(len(ordered), step), 0, len(ordered))
		k, err := keyAt(ordered, at)
		if err != nil {
			return LengthStats{}, errors.Wrapf(err, "step %d", step)
		}
		if ordered, err = insertKey(ordered, at, k); err != nil {
			return LengthStats{}, err
		}
		measures[step] = m(k)
	}
	return summarize(measures)
}

// MoveSelector picks the item to move out of a list of size keys and the
// position to reinsert it at. from is clamped to [0, size-1]; to refers to
// the list after removal and is clamped to [0, size-1].
type MoveSelector func(size, step int) (from, to int)

// UniformMove moves a random item to a different random position.
func UniformMove(rng *rand.Rand) MoveSelector {
	return func(size, _ int) (int, int) {
		from := rng.Intn(size)
		to := rng.Intn(size)
		if size > 1 && from == to {
			to = (to + 1) % size
		}
		return from, to
	}
}

// InwardMove alternates between moving the first item depth positions
// inward and moving the last item depth positions inward.
func InwardMove(depth int) MoveSelector {
	return func(size, step int) (int, int) {
		if step%2 == 0 {
			return 0, min(depth, size-1)
		}
		return size - 1, max(size-1-depth, 0)
	}
}

// EdgeToInnerMove is the InwardMove workload with a depth of four.
var EdgeToInnerMove = InwardMove(4)

// MovePattern starts from initialSize sequential keys and performs steps
// moves chosen by sel. Each move removes an item and generates a fresh key
// for its new position; the generated keys are measured.
func MovePattern(
	ctx context.Context, initialSize, steps int, sel MoveSelector, m Measure,
) (LengthStats, error) {
	ordered, err := sequentialKeys(initialSize)
	if err != nil {
		return LengthStats{}, err
	}
	if initialSize < 2 {
		return LengthStats{}, errors.Newf("moves need at least two keys, got %d", initialSize)
	}
	measures := make([]int, steps)
	for step := 0; step < steps; step++ {
		if err := checkCtx(ctx, step); err != nil {
			return LengthStats{}, err
		}
		from, to := sel(len(ordered), step)
		from = clamp(from, 0, len(ordered)-1)
		ordered = append(ordered[:from], ordered[from+1:]...)
		to = clamp(to, 0, len(ordered))
		k, err := keyAt(ordered, to)
		if err != nil {
			return LengthStats{}, errors.Wrapf(err, "step %d", step)
		}
		if ordered, err = insertKey(ordered, to, k); err != nil {
			return LengthStats{}, err
		}
		measures[step] = m(k)
	}
	return summarize(measures)
}

// SmallInwardMove returns the mean raw length of the keys generated by
// moving edge items three positions inward.
func SmallInwardMove(ctx context.Context, initialSize, steps int) (float64, error) {
	s, err := MovePattern(ctx, initialSize, steps, InwardMove(3), RawLength)
	if err != nil {
		return 0, err
	}
	return s.Mean, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
