// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package fracindex

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genMajor favors the tier boundaries, where most of the encoding logic
// lives, but still covers the full range.
func genMajor() gopter.Gen {
	return gen.OneGenOf(
		gen.Const(int64(0)),
		gen.Int64Range(-50, 50),
		gen.Int64Range(-5000, 5000),
		gen.Int64().Map(func(v int64) int64 {
			if v < MinMajor {
				return MinMajor
			}
			return v
		}),
	)
}

// genKey produces valid keys from an arbitrary major and random minor bytes.
func genKey() gopter.Gen {
	return gopter.CombineGens(genMajor(), gen.SliceOf(gen.UInt8())).Map(
		func(vals []interface{}) Key {
			major := vals[0].(int64)
			minor := append(append([]byte(nil), vals[1].([]uint8)...), Terminator)
			if major == 0 && len(minor) > 1 {
				minor[0] = compactMinByte + minor[0]%(compactMaxByte-compactMinByte+1)
			}
			k, err := Encode(major, minor)
			if err != nil {
				panic(err)
			}
			return k
		})
}

func genStrategy() gopter.Gen {
	return gen.OneConstOf(Balanced, Minimal, Spread)
}

func TestGeneratorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("encoding round trips", prop.ForAll(
		func(k Key) bool {
			dec, err := DecodeBytes(k.Bytes())
			if err != nil || !dec.Equal(k) || dec.Major() != k.Major() {
				return false
			}
			return encodedLength(k.Major(), len(k.Minor())) == k.Len()
		},
		genKey(),
	))

	properties.Property("text forms round trip", prop.ForAll(
		func(k Key) bool {
			h, err := DecodeHex(k.Hex())
			if err != nil || !h.Equal(k) {
				return false
			}
			s, err := DecodeSortableText(k.SortableText())
			if err != nil || !s.Equal(k) {
				return false
			}
			b, err := DecodeBase64(k.Base64(Base64URLRaw), Base64URLRaw)
			return err == nil && b.Equal(k)
		},
		genKey(),
	))

	properties.Property("before and after bracket the key", prop.ForAll(
		func(k Key) bool {
			b, err := Before(k)
			if err != nil || !b.Less(k) {
				return false
			}
			a, err := After(k)
			return err == nil && k.Less(a)
		},
		genKey(),
	))

	properties.Property("between lands strictly inside", prop.ForAll(
		func(a, b Key, s Strategy) bool {
			if a.Equal(b) {
				return true
			}
			lo, hi := a, b
			if hi.Less(lo) {
				lo, hi = hi, lo
			}
			m, err := BetweenWithStrategy(a, b, s)
			return err == nil && lo.Less(m) && m.Less(hi)
		},
		genKey(), genKey(), genStrategy(),
	))

	properties.Property("between ignores argument order", prop.ForAll(
		func(a, b Key, s Strategy) bool {
			ab, errAB := BetweenWithStrategy(a, b, s)
			ba, errBA := BetweenWithStrategy(b, a, s)
			if a.Equal(b) {
				return errAB != nil && errBA != nil
			}
			return errAB == nil && errBA == nil && ab.Equal(ba)
		},
		genKey(), genKey(), genStrategy(),
	))

	properties.Property("sortable text preserves order", prop.ForAll(
		func(a, b Key) bool {
			c := a.Compare(b)
			sa, sb := a.SortableText(), b.SortableText()
			switch {
			case c < 0:
				return sa < sb
			case c > 0:
				return sa > sb
			default:
				return sa == sb
			}
		},
		genKey(), genKey(),
	))

	properties.TestingRun(t)
}

// applyOp runs one generator call chosen by op against the sorted, distinct
// keys and returns the list with the new key in place. The bit 0x80 first
// removes a key, so that the following insert models a move.
func applyOp(keys []Key, op uint32) ([]Key, error) {
	if op&0x80 != 0 && len(keys) > 3 {
		i := int(op>>16) % len(keys)
		keys = append(keys[:i:i], keys[i+1:]...)
	}
	snapshot := make([][]byte, len(keys))
	for i := range keys {
		snapshot[i] = keys[i].Bytes()
	}

	var k Key
	var err error
	pos := 0
	switch kind := op % 5; kind {
	case 0:
		k, err = Before(keys[0])
	case 1:
		pos = len(keys)
		k, err = After(keys[len(keys)-1])
	default:
		i := int(op>>8) % (len(keys) - 1)
		pos = i + 1
		k, err = BetweenWithStrategy(keys[i], keys[i+1], Strategy(kind-2))
	}
	if err != nil {
		return nil, err
	}
	for i := range keys {
		if !bytes.Equal(snapshot[i], keys[i].Bytes()) {
			return nil, errors.AssertionFailedf("key %d changed from %x to %x", i, snapshot[i], keys[i].Bytes())
		}
	}
	if (pos > 0 && !keys[pos-1].Less(k)) || (pos < len(keys) && !k.Less(keys[pos])) {
		return nil, errors.AssertionFailedf("%s inserted out of order at %d", k, pos)
	}
	return append(keys[:pos:pos], append([]Key{k}, keys[pos:]...)...), nil
}

func TestGenerationLeavesInputsUntouched(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("inputs are unchanged across insert and move sequences", prop.ForAll(
		func(ops []uint32) bool {
			keys := []Key{Default(), MustAfter(Default())}
			for _, op := range ops {
				var err error
				if keys, err = applyOp(keys, op); err != nil {
					t.Log(err)
					return false
				}
			}
			return true
		},
		gen.SliceOfN(200, gen.UInt32()),
	))

	properties.TestingRun(t)
}
