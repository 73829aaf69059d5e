// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package fracindex

import (
	"bytes"
	"math"
	"sort"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestEncodeTierBoundaries(t *testing.T) {
	testCases := []struct {
		major int64
		tier  Tier
		len   int
	}{
		{MinMajor, NegativeLong, 10},
		{-4138, NegativeLong, 4},
		{-4137, NegativeMedium, 3},
		{-42, NegativeMedium, 3},
		{-41, NegativeShort, 2},
		{-1, NegativeShort, 2},
		{0, Compact, 1},
		{1, PositiveShort, 2},
		{41, PositiveShort, 2},
		{42, PositiveMedium, 3},
		{4137, PositiveMedium, 3},
		{4138, PositiveLong, 4},
		{1 << 16, PositiveLong, 5},
		{MaxMajor, PositiveLong, 10},
	}
	for _, c := range testCases {
		k, err := Encode(c.major, []byte{Terminator})
		if err != nil {
			t.Fatalf("%d: %v", c.major, err)
		}
		if k.Tier() != c.tier {
			t.Errorf("%d: expected tier %s, got %s", c.major, c.tier, k.Tier())
		}
		if k.Len() != c.len {
			t.Errorf("%d: expected length %d, got %d", c.major, c.len, k.Len())
		}
		if n := encodedLength(c.major, 1); n != k.Len() {
			t.Errorf("%d: encodedLength %d disagrees with encoding %x", c.major, n, k.Bytes())
		}
		dec, err := DecodeBytes(k.Bytes())
		require.NoError(t, err)
		require.Equal(t, c.major, dec.Major())
		require.True(t, dec.Equal(k))
	}
}

func TestEncodedOrderMatchesMajorOrder(t *testing.T) {
	var majors []int64
	for _, m := range []int64{0, 1, 41, 42, 255, 256, 4137, 4138, 65535, 65536, 1 << 40, MaxMajor} {
		majors = append(majors, m, -m)
		if m > 0 {
			majors = append(majors, m-1, 1-m)
		}
	}
	majors = append(majors, MinMajor)
	sort.Slice(majors, func(i, j int) bool { return majors[i] < majors[j] })

	var prev Key
	for i, m := range majors {
		k, err := Encode(m, []byte{Terminator})
		require.NoError(t, err)
		if i > 0 && majors[i-1] != m {
			require.True(t, prev.Less(k), "%d (%x) should sort before %d (%x)",
				majors[i-1], prev.Bytes(), m, k.Bytes())
		}
		prev = k
	}
}

func TestEncodeRejectsInvalidMinor(t *testing.T) {
	for _, c := range []struct {
		major int64
		minor []byte
	}{
		{0, nil},
		{0, []byte{}},
		{0, []byte{0x81}},
		{0, []byte{0x3f, 0x80}},
		{0, []byte{0xc0, 0x80}},
		{1, []byte{0x80, 0x7f}},
		{math.MinInt64, []byte{0x80}},
	} {
		_, err := Encode(c.major, c.minor)
		require.True(t, errors.Is(err, ErrFormat), "(%d, %x): %v", c.major, c.minor, err)
	}
	// Any terminated minor works on a non-zero major.
	k, err := Encode(-7, []byte{0x00, 0xff, 0x80})
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0xff, 0x80}, k.Minor())
}

func TestDecodeBytesRejects(t *testing.T) {
	for _, b := range [][]byte{
		nil,
		{},
		{0x00, 0x80},
		{0xff, 0x80},
		{0x01, 0x80},
		{0xe9, 0x80},
		{0x81, 0x7f},
		{0xc0},
		{0xf9, 0x00, 0x00, 0x10, 0x80},
	} {
		_, err := DecodeBytes(b)
		if err == nil {
			t.Errorf("expected %x to be rejected", b)
			continue
		}
		require.True(t, errors.Is(err, ErrFormat), "%x: %v", b, err)
	}
}

func TestDecodeBytesCopiesInput(t *testing.T) {
	b := []byte{0x81, 0x7f, 0x80}
	k, err := DecodeBytes(b)
	require.NoError(t, err)
	b[0] = 0x40
	require.Equal(t, []byte{0x81, 0x7f, 0x80}, k.Bytes())
}

func TestZeroKeyIsDefault(t *testing.T) {
	var z Key
	require.True(t, z.Equal(Default()))
	require.Equal(t, 0, z.Compare(MustDecodeHex("80")))
	require.Equal(t, int64(0), z.Major())
	require.Equal(t, []byte{Terminator}, z.Minor())
	require.Equal(t, Compact, z.Tier())
	require.Equal(t, 1, z.Len())
	require.Equal(t, "80", z.String())
}

func TestCompare(t *testing.T) {
	sorted := []string{"3f80", "7f80", "80", "817f80", "8180", "818080", "c080"}
	for i := range sorted {
		for j := range sorted {
			a, b := MustDecodeHex(sorted[i]), MustDecodeHex(sorted[j])
			expected := 0
			if i < j {
				expected = -1
			} else if i > j {
				expected = 1
			}
			require.Equal(t, expected, a.Compare(b), "%s vs %s", sorted[i], sorted[j])
			require.Equal(t, expected < 0, a.Less(b))
			require.Equal(t, bytes.Compare(a.Bytes(), b.Bytes()), a.Compare(b))
		}
	}
}

func TestMarshaling(t *testing.T) {
	k := MustDecodeHex("817f80")

	text, err := k.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "817f80", string(text))
	var fromText Key
	require.NoError(t, fromText.UnmarshalText([]byte("817F80")))
	require.True(t, k.Equal(fromText))

	bin, err := k.MarshalBinary()
	require.NoError(t, err)
	var fromBin Key
	require.NoError(t, fromBin.UnmarshalBinary(bin))
	require.True(t, k.Equal(fromBin))

	before := fromBin
	require.Error(t, fromBin.UnmarshalBinary([]byte{0x81}))
	require.True(t, before.Equal(fromBin), "failed unmarshal must leave the key unchanged")
	require.Error(t, fromText.UnmarshalText([]byte("zz")))
}

func TestTierString(t *testing.T) {
	require.Equal(t, "negative-long", NegativeLong.String())
	require.Equal(t, "compact", Compact.String())
	require.Equal(t, "positive-long", PositiveLong.String())
	require.Equal(t, "unknown", Tier(42).String())
	for tag := 0; tag < 256; tag++ {
		tier := tierOf(byte(tag))
		require.Equal(t, tag >= 0x40 && tag <= 0xbf, tier == Compact, "tag %x", tag)
		if tag > 0 {
			require.LessOrEqual(t, tierOf(byte(tag-1)), tier)
		}
	}
}
