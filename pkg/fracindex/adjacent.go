// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package fracindex

import "github.com/cockroachdb/errors"

// betweenAdjacentMajors handles bounds whose majors differ by exactly one.
// No major fits in between, so the result either extends the left bound
// upward on its major or the right bound downward on its major.
func betweenAdjacentMajors(l, r point, s Strategy) (Key, error) {
	lc, err := adjacentCandidate(l, r, l, up, s)
	if err != nil {
		return Key{}, err
	}
	rc, err := adjacentCandidate(l, r, r, down, s)
	if err != nil {
		return Key{}, err
	}

	lok := isEncodableMinorForMajor(l.major, lc)
	rok := isEncodableMinorForMajor(r.major, rc)
	var useLeft bool
	switch {
	case lok && rok:
		if useLeft, err = chooseAdjacentSide(l, r, lc, rc); err != nil {
			return Key{}, err
		}
	case lok:
		useLeft = true
	case rok:
		useLeft = false
	default:
		return Key{}, errors.Wrapf(ErrFormat,
			"no encodable key between majors %d and %d", l.major, r.major)
	}
	if useLeft {
		return encode(l.major, lc)
	}
	return encode(r.major, rc)
}

// adjacentCandidate returns the minor to use when extending anchor in dir.
// The result may not be encodable on anchor's major; callers check.
func adjacentCandidate(l, r, anchor point, dir direction, s Strategy) ([]byte, error) {
	minimal, err := stepMinor(anchor.minor, dir)
	if err != nil {
		return nil, err
	}
	if s == Minimal || !isEncodableMinorForMajor(anchor.major, minimal) {
		return minimal, nil
	}
	spread, err := splice(anchor.minor, 0, 0, dir, spreadSplice)
	if err != nil {
		return nil, err
	}
	if !isEncodableMinorForMajor(anchor.major, spread) {
		return minimal, nil
	}
	return selectAdjacentMinorVariant(l, r, anchor.major, minimal, spread)
}

func selectAdjacentMinorVariant(l, r point, major int64, minimal, spread []byte) ([]byte, error) {
	mp, err := candidateProjectedNextLength(l, r, point{major, minimal})
	if err != nil {
		return nil, err
	}
	sp, err := candidateProjectedNextLength(l, r, point{major, spread})
	if err != nil {
		return nil, err
	}
	if sp != mp {
		return pick(sp < mp, spread, minimal), nil
	}

	ml, sl := encodedLength(major, len(minimal)), encodedLength(major, len(spread))
	switch {
	case sl != ml:
		return pick(sl < ml, spread, minimal), nil
	case len(spread) != len(minimal):
		return pick(len(spread) < len(minimal), spread, minimal), nil
	case boundaryPressure(spread)-boundaryPressure(minimal) >= spreadPressureGain:
		return spread, nil
	default:
		return minimal, nil
	}
}

// chooseAdjacentSide returns whether the left candidate lc should be used
// over the right candidate rc.
func chooseAdjacentSide(l, r point, lc, rc []byte) (bool, error) {
	if (l.major == 0) != (r.major == 0) {
		zeroOnLeft := l.major == 0
		zero, nonZero, zeroCand, nonZeroCand := l.minor, r.minor, lc, rc
		if !zeroOnLeft {
			zero, nonZero, zeroCand, nonZeroCand = r.minor, l.minor, rc, lc
		}
		tight := boundaryPressure(zero) >= tightGapPressure &&
			boundaryPressure(nonZero) >= tightGapPressure
		if !tight &&
			len(zeroCand) <= len(nonZeroCand)+1 &&
			len(zero) <= len(nonZero)+2 {
			return zeroOnLeft, nil
		}
	}

	if a, b := encodedLength(l.major, len(lc)), encodedLength(r.major, len(rc)); a != b {
		return a < b, nil
	}
	if a, b := encodedLength(l.major, len(l.minor)), encodedLength(r.major, len(r.minor)); a != b {
		return a < b, nil
	}
	if len(lc) != len(rc) {
		return len(lc) < len(rc), nil
	}
	if a, b := boundaryPressure(l.minor), boundaryPressure(r.minor); a != b {
		return a < b, nil
	}
	cmp, err := compareCandidateScores(l, r, point{l.major, lc}, point{r.major, rc})
	if err != nil {
		return false, err
	}
	return cmp <= 0, nil
}
