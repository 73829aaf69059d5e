// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package growth

import (
	"context"
	"math/rand"
	"testing"

	"github.com/cockroachdb/fracindex/pkg/fracindex"
	"github.com/cockroachdb/fracindex/pkg/testutils/skip"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEdgeGrowthBaseline(t *testing.T) {
	ctx := context.Background()
	expected := []Checkpoint{{100, 2}, {1000, 3}, {4000, 3}, {4500, 4}}
	for name, step := range map[string]Step{"after": fracindex.After, "before": fracindex.Before} {
		t.Run(name, func(t *testing.T) {
			cps, err := EdgeGrowth(ctx, step, []int{100, 1000, 4000, 4500})
			require.NoError(t, err)
			if diff := cmp.Diff(expected, cps); diff != "" {
				t.Errorf("unexpected checkpoints (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckpointsKeepInputOrder(t *testing.T) {
	cps, err := EdgeGrowth(context.Background(), fracindex.After, []int{4500, 100})
	require.NoError(t, err)
	require.Equal(t, []Checkpoint{{4500, 4}, {100, 2}}, cps)

	_, err = EdgeGrowth(context.Background(), fracindex.After, nil)
	require.Error(t, err)
	_, err = RootAnchored(context.Background(), []int{0}, RawLength)
	require.Error(t, err)
}

func TestAdjacentPairAndRootAnchoredBaselines(t *testing.T) {
	skip.UnderShort(t)
	skip.UnderRace(t)
	ctx := context.Background()
	checkpoints := []int{300, 3000, 10000}

	testCases := []struct {
		name     string
		run      func(context.Context, []int, Measure) ([]Checkpoint, error)
		measure  Measure
		expected []Checkpoint
	}{
		{"adjacent raw", AdjacentPair, RawLength, []Checkpoint{{300, 47}, {3000, 432}, {10000, 1432}}},
		{"adjacent base64", AdjacentPair, Base64Length, []Checkpoint{{300, 64}, {3000, 576}, {10000, 1912}}},
		{"root raw", RootAnchored, RawLength, []Checkpoint{{300, 5}, {3000, 26}, {10000, 81}}},
		{"root base64", RootAnchored, Base64Length, []Checkpoint{{300, 8}, {3000, 36}, {10000, 108}}},
	}
	for _, c := range testCases {
		t.Run(c.name, func(t *testing.T) {
			cps, err := c.run(ctx, checkpoints, c.measure)
			require.NoError(t, err)
			if diff := cmp.Diff(c.expected, cps); diff != "" {
				t.Errorf("unexpected checkpoints (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShortAdjacentPair(t *testing.T) {
	cps, err := AdjacentPair(context.Background(), []int{300}, RawLength)
	require.NoError(t, err)
	require.Equal(t, []Checkpoint{{300, 47}}, cps)

	cps, err = RootAnchored(context.Background(), []int{300}, Base64Length)
	require.NoError(t, err)
	require.Equal(t, []Checkpoint{{300, 8}}, cps)
}

func TestSmallInwardMoveBaseline(t *testing.T) {
	mean, err := SmallInwardMove(context.Background(), 64, 240)
	require.NoError(t, err)
	require.InDelta(t, 10.125, mean, 1e-9)
}

func TestEdgeToInnerMoveBaseline(t *testing.T) {
	skip.UnderShort(t)
	s, err := MovePattern(context.Background(), 256, 4000, EdgeToInnerMove, RawLength)
	require.NoError(t, err)
	require.Equal(t, 4000, s.Count)
	require.Equal(t, 279544, s.Total)
	require.Equal(t, 227, s.P95)
	require.Equal(t, 252, s.Max)
	require.InDelta(t, 279544.0/4000, s.Mean, 1e-9)
}

func TestRandomPatternsStayOrdered(t *testing.T) {
	ctx := context.Background()
	// The patterns verify ordering after every insertion; these runs check
	// that no selector can produce an error and that the summaries are sane.
	for _, c := range []struct {
		name string
		run  func(rng *rand.Rand) (LengthStats, error)
	}{
		{"uniform insert", func(rng *rand.Rand) (LengthStats, error) {
			return InsertPattern(ctx, 64, 500, UniformInsert(rng), RawLength)
		}},
		{"edge biased insert", func(rng *rand.Rand) (LengthStats, error) {
			return InsertPattern(ctx, 64, 500, EdgeBiasedInsert(rng, 90), Base64Length)
		}},
		{"uniform move", func(rng *rand.Rand) (LengthStats, error) {
			return MovePattern(ctx, 32, 500, UniformMove(rng), SortableLength)
		}},
	} {
		t.Run(c.name, func(t *testing.T) {
			for seed := int64(0); seed < 3; seed++ {
				s, err := c.run(rand.New(rand.NewSource(seed)))
				require.NoError(t, err)
				require.Equal(t, 500, s.Count)
				require.LessOrEqual(t, s.P95, s.Max)
				require.Greater(t, s.Mean, 0.0)
				require.Equal(t, s.Total, int(s.Mean*500+0.5))
			}
		})
	}
}

func TestInwardMoveSelector(t *testing.T) {
	sel := InwardMove(4)
	from, to := sel(256, 0)
	require.Equal(t, 0, from)
	require.Equal(t, 4, to)
	from, to = sel(256, 1)
	require.Equal(t, 255, from)
	require.Equal(t, 251, to)
	from, to = sel(3, 1)
	require.Equal(t, 2, from)
	require.Equal(t, 0, to)
}

func TestSummarize(t *testing.T) {
	s, err := summarize([]int{5, 1, 4, 2, 3})
	require.NoError(t, err)
	require.Equal(t, LengthStats{Count: 5, Total: 15, Mean: 3, Median: 3, P95: 4, Max: 5}, s)

	_, err = summarize(nil)
	require.Error(t, err)
}

func TestPatternValidation(t *testing.T) {
	ctx := context.Background()
	_, err := MovePattern(ctx, 1, 10, EdgeToInnerMove, RawLength)
	require.Error(t, err)
	_, err = InsertPattern(ctx, 0, 10, UniformInsert(rand.New(rand.NewSource(1))), RawLength)
	require.Error(t, err)
}

func TestPatternsHonorCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := AdjacentPair(ctx, []int{10}, RawLength)
	require.ErrorIs(t, err, context.Canceled)
	_, err = MovePattern(ctx, 8, 10, EdgeToInnerMove, RawLength)
	require.ErrorIs(t, err, context.Canceled)
}
