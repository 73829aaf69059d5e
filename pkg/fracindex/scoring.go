// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package fracindex

import (
	"cmp"
	"math"

	"github.com/cockroachdb/errors"
)

// Thresholds for the adjacent-major heuristics.
const (
	// tightGapPressure is the distance from the terminator at which both
	// neighbors' leading minor bytes count as crowded. In a tight gap the
	// preference for staying on major 0 is skipped.
	tightGapPressure = 24
	// spreadPressureGain is the minimum gain in boundary pressure for the
	// spread variant of an adjacent candidate to beat the minimal one when
	// they are otherwise tied.
	spreadPressureGain = 32
)

func hasNonAdjacentMajorGap(l, r int64) bool {
	// r > l >= MinMajor, so r-1 cannot overflow.
	return l < r && l < r-1
}

// midpointMajor returns a major strictly between l and r. Requires
// l < r-1.
func midpointMajor(l, r int64) int64 {
	if (l < 0) == (r < 0) {
		return l + (r-l)/2
	}
	return (l + r) / 2
}

func boundaryPressure(minor []byte) int {
	return absInt(int(minor[0]) - int(Terminator))
}

func majorDistancePenalty(major int64) int64 {
	return min(int64(magnitude(major)), math.MaxInt32)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// estimateMinimalBetweenLength predicts the encoded length of the shortest
// key a later insert between l and r would produce.
func estimateMinimalBetweenLength(l, r point) (int, error) {
	switch {
	case hasNonAdjacentMajorGap(l.major, r.major):
		return encodedLength(midpointMajor(l.major, r.major), 1), nil

	case l.major < r.major:
		best := math.MaxInt
		if l.major != 0 {
			n, err := stepMinorSize(l.minor, up)
			if err != nil {
				return 0, err
			}
			best = min(best, encodedLength(l.major, n))
		} else {
			c, err := stepMinor(l.minor, up)
			if err != nil {
				return 0, err
			}
			if isEncodableMinorForMajor(0, c) {
				best = min(best, len(c))
			}
		}
		if r.major != 0 {
			n, err := stepMinorSize(r.minor, down)
			if err != nil {
				return 0, err
			}
			best = min(best, encodedLength(r.major, n))
		} else {
			c, err := stepMinor(r.minor, down)
			if err != nil {
				return 0, err
			}
			if isEncodableMinorForMajor(0, c) {
				best = min(best, len(c))
			}
		}
		if best == math.MaxInt {
			return 0, errors.Wrapf(ErrFormat,
				"no encodable key between majors %d and %d", l.major, r.major)
		}
		return best, nil

	default:
		n, err := minimalBetweenMinorSize(l.minor, r.minor)
		if err != nil {
			return 0, err
		}
		return encodedLength(l.major, n), nil
	}
}

// candidateProjectedNextLength is the worse of the two estimates for a
// later insert on either side of cand.
func candidateProjectedNextLength(l, r, cand point) (int, error) {
	nl, err := estimateMinimalBetweenLength(l, cand)
	if err != nil {
		return 0, err
	}
	nr, err := estimateMinimalBetweenLength(cand, r)
	if err != nil {
		return 0, err
	}
	return max(nl, nr), nil
}

// compareCandidateScores orders two candidates for a slot between l and r.
// A negative result means a is preferred.
func compareCandidateScores(l, r, a, b point) (int, error) {
	pa, err := candidateProjectedNextLength(l, r, a)
	if err != nil {
		return 0, err
	}
	pb, err := candidateProjectedNextLength(l, r, b)
	if err != nil {
		return 0, err
	}
	if c := cmp.Compare(pa, pb); c != 0 {
		return c, nil
	}
	la, lb := encodedLength(a.major, len(a.minor)), encodedLength(b.major, len(b.minor))
	if c := cmp.Compare(la, lb); c != 0 {
		return c, nil
	}
	if c := cmp.Compare(majorDistancePenalty(a.major), majorDistancePenalty(b.major)); c != 0 {
		return c, nil
	}
	return cmp.Compare(boundaryPressure(a.minor), boundaryPressure(b.minor)), nil
}
