//go:build debug

package assert

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssertPanics(t *testing.T) {
	require.True(t, Enabled)

	require.PanicsWithValue(t, "First: range is empty", func() { NotEmpty("First", true) })
	require.NotPanics(t, func() { NotEmpty("First", false) })

	require.PanicsWithValue(t, "Last: range is not bidirectional", func() {
		Supported("Last", false, "bidirectional")
	})

	require.PanicsWithValue(t, "At: index 3 out of range [0, 3)", func() { Index("At", 3, 3) })
	require.NotPanics(t, func() { Index("At", 2, 3) })

	require.Panics(t, func() { Bounds("Slice", 2, 1, 5) })
	require.Panics(t, func() { Bounds("Slice", 0, 6, 5) })
	require.NotPanics(t, func() { Bounds("Slice", 0, 100, -1) })
	require.NotPanics(t, func() { Bounds("Slice", 5, 5, 5) })
}
