// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package adapt

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dacapoday/ranges"
)

func drawInts(t *rapid.T, label string) []int {
	return rapid.SliceOfN(rapid.IntRange(-50, 50), 0, 40).Draw(t, label)
}

func TestPropertyTakeCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := drawInts(t, "xs")
		n := rapid.IntRange(0, 50).Draw(t, "n")
		want := min(n, len(xs))

		if got := ranges.Count[int](Take[int](ranges.Of(xs...), n)); got != want {
			t.Fatalf("sized: Count = %d, want %d", got, want)
		}
		if got := ranges.Count[int](Take[int](fwd(xs...), n)); got != want {
			t.Fatalf("forward: Count = %d, want %d", got, want)
		}
	})
}

func TestPropertyFilterSubsequence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := drawInts(t, "xs")
		m := rapid.IntRange(1, 5).Draw(t, "m")
		pred := func(v int) bool { return v%m == 0 }

		var want []int
		for _, v := range xs {
			if pred(v) {
				want = append(want, v)
			}
		}
		got := ranges.Collect[int](Filter[int](ranges.Of(xs...), pred))
		if !ranges.Equal[int](ranges.Of(got...), ranges.Of(want...)) {
			t.Fatalf("Filter = %v, want %v", got, want)
		}
		back := backward[int](Filter[int](ranges.Of(xs...), pred))
		if len(back) != len(want) {
			t.Fatalf("Filter from the back = %v, want reverse of %v", back, want)
		}
		for i := range back {
			if back[i] != want[len(want)-1-i] {
				t.Fatalf("Filter from the back = %v, want reverse of %v", back, want)
			}
		}
	})
}

func TestPropertyZipChainCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b := drawInts(t, "a"), drawInts(t, "b")

		if got := ranges.Count[Pair[int, int]](Zip[int, int](ranges.Of(a...), ranges.Of(b...))); got != min(len(a), len(b)) {
			t.Fatalf("Zip count = %d", got)
		}
		if got := ranges.Count[Pair[int, int]](Zip[int, int](fwd(a...), fwd(b...))); got != min(len(a), len(b)) {
			t.Fatalf("forward Zip count = %d", got)
		}
		if got := ranges.Count[int](Chain[int](ranges.Of(a...), ranges.Of(b...))); got != len(a)+len(b) {
			t.Fatalf("Chain count = %d", got)
		}
		if got := ranges.Count[int](Chain[int](fwd(a...), fwd(b...))); got != len(a)+len(b) {
			t.Fatalf("forward Chain count = %d", got)
		}
	})
}

func TestPropertyStride(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := drawInts(t, "xs")
		step := rapid.IntRange(1, 8).Draw(t, "step")
		s := Stride[int](ranges.Of(xs...), step)

		want := (len(xs) + step - 1) / step
		if got := ranges.Count[int](s); got != want {
			t.Fatalf("Count = %d, want %d", got, want)
		}
		for i := range want {
			if s.At(i) != xs[i*step] {
				t.Fatalf("At(%d) = %d, want %d", i, s.At(i), xs[i*step])
			}
		}
		fwdCount := ranges.Count[int](Stride[int](fwd(xs...), step))
		if fwdCount != want {
			t.Fatalf("forward Count = %d, want %d", fwdCount, want)
		}
	})
}

func TestPropertyRetroRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := drawInts(t, "xs")
		r := Retro[int](Retro[int](bid(xs...)))
		if !ranges.Equal[int](r, ranges.Of(xs...)) {
			t.Fatalf("Retro(Retro(%v)) = %v", xs, ranges.Collect[int](r))
		}
	})
}

func TestPropertyDropZero(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := ranges.Of(drawInts(t, "xs")...)
		saved := r.Save()
		if !ranges.Same[int](ranges.Drop(ranges.Drop(r, 0), 0), saved) {
			t.Fatal("Drop(Drop(r, 0), 0) moved r")
		}
	})
}
