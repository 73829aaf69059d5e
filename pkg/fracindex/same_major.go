// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package fracindex

// betweenSameMajor returns a minor strictly between l and r, which share a
// major. Requires l < r.
func betweenSameMajor(major int64, l, r []byte, s Strategy) ([]byte, error) {
	minimal, err := minimalBetweenMinor(l, r)
	if err != nil || s == Minimal || shouldFallbackToMinimal(l, r) {
		return minimal, err
	}
	spread, err := spreadBetweenMinor(major, l, r)
	if err != nil {
		return nil, err
	}
	// Strict: equal lengths keep the spread result.
	if s == Balanced && len(minimal) < len(spread) {
		return minimal, nil
	}
	return spread, nil
}

// shouldFallbackToMinimal reports the tight gaps right next to the default
// minor, where spreading cannot do better than a single step.
func shouldFallbackToMinimal(l, r []byte) bool {
	if len(l) == 1 && l[0] == Terminator {
		return len(r) > 0 && r[0] == Terminator+1
	}
	if len(r) == 1 && r[0] == Terminator {
		return len(l) > 0 && l[0] == Terminator-1
	}
	return false
}

// midpointBetween returns l[:i] followed by the midpoint of lb and rb and
// the terminator, or nil if there is no byte strictly between them.
func midpointBetween(l []byte, i, lb, rb int) []byte {
	if lb >= rb-1 {
		return nil
	}
	out := make([]byte, i+2)
	copy(out, l[:i])
	out[i] = byte(lb + (rb-lb)/2)
	out[i+1] = Terminator
	return out
}

// minimalBetweenMinor returns the shortest minor between l and r that a
// left-to-right scan can find.
func minimalBetweenMinor(l, r []byte) ([]byte, error) {
	shorter := min(len(l), len(r)) - 1
	for i := 0; i < shorter; i++ {
		lb, rb := int(l[i]), int(r[i])
		if m := midpointBetween(l, i, lb, rb); m != nil {
			return m, nil
		}
		if lb == rb-1 {
			return splice(l, i+1, i+1, up, minimalSplice)
		}
		if lb > rb {
			return nil, errInvalidBounds()
		}
	}
	return resolveLengthBoundary(l, r, shorter+1, minimalSplice)
}

// minimalBetweenMinorSize returns len(minimalBetweenMinor(l, r)).
func minimalBetweenMinorSize(l, r []byte) (int, error) {
	shorter := min(len(l), len(r)) - 1
	for i := 0; i < shorter; i++ {
		lb, rb := int(l[i]), int(r[i])
		switch {
		case lb < rb-1:
			return i + 2, nil
		case lb == rb-1:
			return spliceSize(l, i+1, up)
		case lb > rb:
			return 0, errInvalidBounds()
		}
	}
	split := shorter + 1
	switch {
	case len(l) < len(r):
		if r[split-1] < Terminator {
			return 0, errInvalidBounds()
		}
		return spliceSize(r, split, down)
	case len(l) > len(r):
		if l[split-1] >= Terminator {
			return 0, errInvalidBounds()
		}
		return spliceSize(l, split, up)
	default:
		return 0, errInvalidBounds()
	}
}

// resolveLengthBoundary handles minors that agree up to the end of the
// shorter one. The longer minor is walked past split toward the shorter.
func resolveLengthBoundary(l, r []byte, split int, strat spliceStrategy) ([]byte, error) {
	switch {
	case len(l) < len(r):
		if r[split-1] < Terminator {
			return nil, errInvalidBounds()
		}
		return splice(r, split, split, down, strat)
	case len(l) > len(r):
		if l[split-1] >= Terminator {
			return nil, errInvalidBounds()
		}
		return splice(l, split, split, up, strat)
	default:
		return nil, errInvalidBounds()
	}
}

// spreadBetweenMinor is like minimalBetweenMinor but, at the first pair of
// adjacent bytes, spreads into the tail of both neighbors and keeps the
// better of the two.
func spreadBetweenMinor(major int64, l, r []byte) ([]byte, error) {
	n := min(len(l), len(r))
	for i := 0; i < n; i++ {
		lb, rb := int(l[i]), int(r[i])
		if m := midpointBetween(l, i, lb, rb); m != nil {
			return m, nil
		}
		if lb == rb-1 {
			var lc, rc []byte
			var err error
			if i+1 < len(l) {
				if lc, err = splice(l, i+1, i+1, up, spreadSplice); err != nil {
					return nil, err
				}
			}
			if i+1 < len(r) {
				if rc, err = splice(r, i+1, i+1, down, spreadSplice); err != nil {
					return nil, err
				}
			}
			c, err := chooseSpreadCandidate(major, l, r, i, lc, rc)
			if err != nil {
				return nil, err
			}
			if c != nil {
				return c, nil
			}
		}
		if lb > rb {
			return nil, errInvalidBounds()
		}
	}
	return resolveLengthBoundary(l, r, n, spreadSplice)
}

// chooseSpreadCandidate picks between a candidate grown from the left
// bound (lc) and one grown from the right bound (rc). Either may be nil.
func chooseSpreadCandidate(major int64, l, r []byte, pivot int, lc, rc []byte) ([]byte, error) {
	if lc == nil {
		return rc, nil
	}
	if rc == nil {
		return lc, nil
	}
	if len(lc) != len(rc) {
		return pick(len(lc) < len(rc), lc, rc), nil
	}
	if lp, rp := candidatePressure(lc, pivot), candidatePressure(rc, pivot); lp != rp {
		return pick(lp < rp, lc, rc), nil
	}
	if lt, rt := len(l)-(pivot+1), len(r)-(pivot+1); lt != rt {
		return pick(lt < rt, lc, rc), nil
	}
	cmp, err := compareCandidateScores(
		point{major, l}, point{major, r}, point{major, lc}, point{major, rc})
	if err != nil {
		return nil, err
	}
	return pick(cmp <= 0, lc, rc), nil
}

// candidatePressure measures how far the byte after the pivot sits from the
// terminator. The terminator itself is never measured unless it is the only
// byte.
func candidatePressure(c []byte, pivot int) int {
	idx := min(max(pivot+1, 0), max(len(c)-2, 0))
	return absInt(int(c[idx]) - int(Terminator))
}

func pick(first bool, a, b []byte) []byte {
	if first {
		return a
	}
	return b
}
