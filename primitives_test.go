// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package ranges

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func counter(n int) *Generator[int] {
	i := -1
	return Generate(func() (int, bool) {
		i++
		return i, i < n
	})
}

func TestCount(t *testing.T) {
	require.Equal(t, 3, Count[int](Of(1, 2, 3)))
	require.Equal(t, 4, Count[int](&plainForward{[]int{1, 2, 3, 4}}))

	g := counter(5)
	require.Equal(t, 5, Count[int](g))
	require.True(t, g.Empty())
}

func TestPopFirstN(t *testing.T) {
	g := counter(3)
	require.Equal(t, 2, PopFirstN(g, 2))
	require.Equal(t, 2, g.First())
	require.Equal(t, 1, PopFirstN(g, 5))
	require.Equal(t, 0, PopFirstN(g, 5))

	r := IotaN(0, 10, 1)
	require.Equal(t, 3, PopLastN(r, 3))
	require.Equal(t, 6, r.Last())
}

func TestDrop(t *testing.T) {
	r := Of(1, 2, 3)
	require.Same(t, r, Drop(r, 0))
	require.Equal(t, []int{1, 2, 3}, r.Data())
	require.Equal(t, []int{2}, Drop(DropBack(r, 1), 1).Data())
}

func TestFork(t *testing.T) {
	r := Of(1, 2)
	f := Fork[int](r)
	f.PopFirst()
	require.Equal(t, 1, r.First())

	g := counter(2)
	require.Same(t, Input[int](g), Fork[int](g))
}

func TestAll(t *testing.T) {
	r := Of(1, 2, 3, 4)
	var got []int
	for v := range All[int](r) {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2}, got)
	require.Equal(t, []int{1, 2, 3, 4}, slices.Collect(All[int](r)), "All does not move a forward range")
	require.Equal(t, []int{4, 3, 2, 1}, slices.Collect(Backward[int](r)))
}

func TestEqual(t *testing.T) {
	require.True(t, Equal[int](Of(1, 2, 3), IotaN(1, 4, 1)))
	require.False(t, Equal[int](Of(1, 2), Of(1, 2, 3)))
	require.False(t, Equal[int](Of(1, 2, 3), Of(1, 2)))
	require.True(t, Equal[int](Of[int](), counter(0)))
	require.True(t, Equal[int](counter(3), Of(0, 1, 2)))
}

// Walking a range and reading it by index agree.
func TestPropertyIndexMatchesWalk(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := rapid.IntRange(-100, 100).Draw(t, "start")
		step := rapid.IntRange(1, 7).Draw(t, "step")
		n := rapid.IntRange(0, 50).Draw(t, "n")
		r := IotaN(start, start+n*step, step)

		if r.Length() != n {
			t.Fatalf("Length = %d, want %d", r.Length(), n)
		}
		i := 0
		for c := r.Save(); !c.Empty(); c.PopFirst() {
			if c.First() != r.At(i) {
				t.Fatalf("walk[%d] = %d, At = %d", i, c.First(), r.At(i))
			}
			i++
		}
	})
}

// Drop(r, k) followed by Count equals max(0, Count(r) - k).
func TestPropertyDropCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := rapid.SliceOf(rapid.Int()).Draw(t, "xs")
		k := rapid.IntRange(0, 2*len(xs)+1).Draw(t, "k")
		want := max(0, len(xs)-k)
		if got := Count[int](Drop(Of(xs...), k)); got != want {
			t.Fatalf("sized: Count = %d, want %d", got, want)
		}
		if got := Count[int](Drop(Input[int](&plainForward{xs}), k)); got != want {
			t.Fatalf("unsized: Count = %d, want %d", got, want)
		}
	})
}

// progression lists start, start+step, ... short of stop, computed in int.
func progression(start, stop, step int) []int {
	var out []int
	for v := start; (step > 0 && v < stop) || (step < 0 && v > stop); v += step {
		out = append(out, v)
	}
	return out
}

func TestIotaNNarrowBounds(t *testing.T) {
	require.Equal(t, 200, IotaN[int8](-100, 100, 1).Length())
	require.Equal(t, 255, IotaN[int8](-128, 127, 1).Length())
	require.Equal(t, []int8{127, -1}, Collect[int8](IotaN[int8](127, -128, -128)))
	require.Equal(t, 255, IotaN[uint8](0, 255, 1).Length())
	require.Equal(t, int8(99), IotaN[int8](-100, 100, 1).Last())
}

// IotaN over narrow integers lists the same values as the same walk in int.
func TestPropertyIotaNNarrow(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := rapid.Int8().Draw(t, "start")
		stop := rapid.Int8().Draw(t, "stop")
		step := rapid.Int8().Filter(func(v int8) bool { return v != 0 }).Draw(t, "step")
		want := progression(int(start), int(stop), int(step))

		r := IotaN(start, stop, step)
		if r.Length() != len(want) {
			t.Fatalf("int8 Length = %d, want %d", r.Length(), len(want))
		}
		for i, v := range want {
			if got := int(r.At(i)); got != v {
				t.Fatalf("int8 At(%d) = %d, want %d", i, got, v)
			}
		}
		if got := len(Collect[int8](r)); got != len(want) {
			t.Fatalf("int8 walked %d, want %d", got, len(want))
		}
	})
	rapid.Check(t, func(t *rapid.T) {
		start := rapid.Uint8().Draw(t, "start")
		stop := rapid.Uint8().Draw(t, "stop")
		step := rapid.Uint8Range(1, 255).Draw(t, "step")
		want := progression(int(start), int(stop), int(step))

		r := IotaN(start, stop, step)
		if r.Length() != len(want) {
			t.Fatalf("uint8 Length = %d, want %d", r.Length(), len(want))
		}
		for i, v := range want {
			if got := int(r.At(i)); got != v {
				t.Fatalf("uint8 At(%d) = %d, want %d", i, got, v)
			}
		}
	})
}
