// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package adapt

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dacapoday/ranges"
)

func TestFilter(t *testing.T) {
	r := Filter[int](ranges.Of(1, 2, 3, 4, 5, 6), isEven)
	require.Equal(t, []int{2, 4, 6}, ranges.Collect[int](r))
	require.Equal(t, []int{6, 4, 2}, backward[int](r))
	require.Equal(t, ranges.Category{Tier: ranges.TierBidirectional}, r.Category())
	require.Equal(t, 3, ranges.Count[int](r))

	r.PopLast()
	r.PopFirst()
	require.Equal(t, []int{4}, ranges.Collect[int](r))
}

func TestFilterSkipsOnConstruction(t *testing.T) {
	src := ranges.Of(1, 3, 4, 5, 7)
	r := Filter[int](src, isEven)
	require.Equal(t, []int{4}, src.Data())
	require.Equal(t, 4, r.First())

	require.True(t, Filter[int](ranges.Of(1, 3), isEven).Empty())
	require.True(t, Filter[int](ranges.Of[int](), isEven).Empty())
}

func TestFilterInfinite(t *testing.T) {
	r := Filter[int](ranges.Iota(1, 1), isEven)
	require.Equal(t, ranges.Category{Tier: ranges.TierBidirectional, Infinite: true}, r.Category())
	require.Equal(t, []int{2, 4, 6}, ranges.Collect[int](Take[int](r, 3)))
}

func TestFilterInput(t *testing.T) {
	r := Filter(input(1, 2, 3, 4), isEven)
	require.Equal(t, ranges.TierInput, r.Category().Tier)
	require.Equal(t, []int{2, 4}, ranges.Collect[int](r))
}

// Filters over the same source compare equal whatever their predicates.
func TestFilterEqualIgnoresPredicate(t *testing.T) {
	s := ranges.Of(2, 4)
	a := Filter[int](s, isEven)
	b := Filter[int](s.Save(), func(v int) bool { return v < 100 })
	require.True(t, a.Equal(b))
	require.True(t, ranges.Same[int](a, a.Save()))
}

func TestMap(t *testing.T) {
	r := Map[int, string](ranges.Of(1, 2, 3), strconv.Itoa)
	require.Equal(t, ranges.Category{Tier: ranges.TierRandomAccess, Length: true}, r.Category())
	require.Equal(t, []string{"1", "2", "3"}, ranges.Collect[string](r))
	require.Equal(t, "3", r.Last())
	require.Equal(t, "2", r.At(1))
	require.Equal(t, 3, r.Length())
	require.Equal(t, []string{"2", "3"}, ranges.Collect[string](r.Slice(1, 3)))
	require.Equal(t, []string{"3", "2", "1"}, backward[string](r))

	f := Map[int, int](fwd(1, 2), func(v int) int { return v * 10 })
	require.Equal(t, ranges.Category{Tier: ranges.TierForward}, f.Category())
	require.Equal(t, []int{10, 20}, ranges.Collect[int](f))

	inf := Map[int, int](ranges.Iota(0, 1), func(v int) int { return v * v })
	require.True(t, inf.Category().Infinite)
	require.Equal(t, 49, inf.At(7))
}

func TestMapEqualIgnoresFunction(t *testing.T) {
	s := ranges.Of(1, 2)
	a := Map[int, int](s, func(v int) int { return v })
	b := Map[int, int](s.Save(), func(v int) int { return -v })
	require.True(t, a.Equal(b))
	a.PopFirst()
	require.False(t, a.Equal(b))
}
