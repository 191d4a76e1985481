// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

//go:build debug

package adapt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dacapoday/ranges"
)

func TestPreconditions(t *testing.T) {
	require.PanicsWithValue(t, "Filter.At: range is not random-access", func() {
		Filter[int](ranges.Of(1, 2), isEven).At(0)
	})
	require.PanicsWithValue(t, "Take.Last: range is not bidirectional", func() {
		Take[int](fwd(1, 2, 3), 2).Last()
	})
	require.PanicsWithValue(t, "Take.Length: range is not length-reporting", func() {
		Take[int](fwd(1, 2, 3), 2).Length()
	})
	require.PanicsWithValue(t, "Take.Data: range is not an array", func() {
		Take[int](ranges.IotaN(0, 5, 1), 2).Data()
	})
	require.PanicsWithValue(t, "Indexed.Last: range is not bidirectional", func() {
		Indexed[int](ranges.Of(1, 2), fwd(0, 1)).Last()
	})
	require.PanicsWithValue(t, "Indexed.PopLast: range is not bidirectional", func() {
		Indexed[int](ranges.Of(1, 2), fwd(0, 1)).PopLast()
	})
	require.PanicsWithValue(t, "Indexed.At: range is not random-access", func() {
		Indexed[int](ranges.Of(1, 2), bid(0, 1)).At(0)
	})
	require.PanicsWithValue(t, "Indexed.Slice: range is not random-access", func() {
		Indexed[int](ranges.Of(1, 2), bid(0, 1)).Slice(0, 1)
	})
	require.PanicsWithValue(t, "Chain: infinite member", func() {
		Chain[int](ranges.Of(1), ranges.Iota(0, 1))
	})
	require.PanicsWithValue(t, "RoundRobin.Last: range is not bidirectional", func() {
		RoundRobin[int](ranges.Of(1)).Last()
	})
	require.PanicsWithValue(t, "Cycle.Last: range is not finite", func() {
		Cycle[int](ranges.Of(1)).(*CycleRange[int]).Last()
	})
	require.PanicsWithValue(t, "Stride: step must be positive", func() {
		Stride[int](ranges.Of(1), 0)
	})
	require.PanicsWithValue(t, "Back: range is not bidirectional", func() {
		Retro[int](fwd(1, 2))
	})
	require.PanicsWithValue(t, "Zip.First: range is empty", func() {
		Zip[int, int](ranges.Of(1), ranges.Of[int]()).First()
	})
}
