/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package ident

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		raw  string
		tag  Tag
		num  int
		char rune
	}{
		{"1", Numeric, 1, 0},
		{"12", Numeric, 12, 0},
		{"A1", Appendix, 1, 'A'},
		{"IV", Roman, 4, 0},
		{"IX", Roman, 9, 0},
		{"S1", Supplementary, 1, 0},
		{"SA2", SupplementaryAppendix, 2, 'A'},
	}
	for _, c := range cases {
		id, err := Parse(c.raw)
		require.NoError(t, err, c.raw)
		require.Equal(t, c.tag, id.Tag, c.raw)
		require.Equal(t, c.num, id.Num, c.raw)
		require.Equal(t, c.char, id.Letter, c.raw)
		require.Equal(t, c.raw, id.String())
	}
}

func TestParseInvalid(t *testing.T) {
	for _, raw := range []string{"", "XL", "1A", "S", "Z"} {
		_, err := Parse(raw)
		require.Error(t, err, raw)
	}
}

func TestSupplementaryNotConflatedWithNumeric(t *testing.T) {
	one, err := Parse("1")
	require.NoError(t, err)
	s1, err := Parse("S1")
	require.NoError(t, err)

	require.NotEqual(t, one.Tag, s1.Tag)
	require.NotZero(t, Compare(one, s1))
}

func TestCompareOrdering(t *testing.T) {
	raws := []string{"S2", "IV", "A1", "2", "1", "SA1", "IX"}
	ids := make([]ID, len(raws))
	for i, r := range raws {
		id, err := Parse(r)
		require.NoError(t, err)
		ids[i] = id
	}
	sort.Slice(ids, func(i, j int) bool { return Compare(ids[i], ids[j]) < 0 })

	got := make([]string, len(ids))
	for i, id := range ids {
		got[i] = id.String()
	}
	require.Equal(t, []string{"1", "2", "A1", "IV", "IX", "S2", "SA1"}, got)
}
