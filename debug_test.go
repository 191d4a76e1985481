// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

//go:build debug

package ranges

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreconditions(t *testing.T) {
	require.PanicsWithValue(t, "Slice.First: range is empty", func() { Of[int]().First() })
	require.PanicsWithValue(t, "Slice.At: index 2 out of range [0, 2)", func() { Of(1, 2).At(2) })
	require.Panics(t, func() { Of(1, 2).Slice(1, 3) })

	require.PanicsWithValue(t, "Save: range is not forward", func() {
		Save[int](Generate(func() (int, bool) { return 1, true }))
	})
	require.PanicsWithValue(t, "Sequence.Last: range is not finite", func() { Iota(0, 1).Last() })
	require.PanicsWithValue(t, "Back: range is not bidirectional", func() { Back[int](Iota(0, 1)) })
	require.PanicsWithValue(t, "Window: range is not length-reporting", func() {
		Window[int](Iota(0, 1), Abs(0), End)
	})
	require.PanicsWithValue(t, "Index.Resolve: index outside [0, length]", func() { FromEnd(5).Resolve(3) })
	require.Panics(t, func() { IotaN(0, 5, 0) })
	require.Panics(t, func() { Count[int](Repeat(1)) })
}
