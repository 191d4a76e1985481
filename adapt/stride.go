// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package adapt

import (
	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/assert"
)

// StrideRange yields every step-th element of its source, starting with the first.
type StrideRange[T any] struct {
	src  ranges.Input[T]
	step int
	cat  ranges.Category
}

// Stride returns the elements of r at positions 0, step, 2*step, ...
//
// A source with a back is trimmed once, here, so that its last element sits on
// a multiple of step: iterating from either end visits the same positions.
// Stride of a StrideRange multiplies the steps.
func Stride[T any](r ranges.Input[T], step int) *StrideRange[T] {
	assert.True("Stride", step >= 1, "step must be positive")
	if s, ok := r.(*StrideRange[T]); ok {
		r, step = s.src, s.step*step
	}
	cat := ranges.CategoryOf(r).Cap(ranges.TierRandomAccess)
	if cat.Tier >= ranges.TierBidirectional && !cat.Length && !(cat.Infinite && cat.Tier >= ranges.TierRandomAccess) {
		cat = cat.Cap(ranges.TierForward)
	}
	s := &StrideRange[T]{src: r, step: step, cat: cat}
	if cat.Back() {
		if n := r.(ranges.Lengther).Length(); n > 0 {
			ranges.PopLastN(ranges.Back(r), (n-1)%step)
		}
	}
	return s
}

var _ ranges.RandomAccess[int] = (*StrideRange[int])(nil)

func (s *StrideRange[T]) Category() ranges.Category {
	return s.cat
}

// Step returns the distance between yielded source positions.
func (s *StrideRange[T]) Step() int {
	return s.step
}

func (s *StrideRange[T]) Empty() bool {
	return s.src.Empty()
}

func (s *StrideRange[T]) First() T {
	assert.NotEmpty("Stride.First", s.Empty())
	return s.src.First()
}

// PopFirst advances the source by step, stopping early when it runs out.
func (s *StrideRange[T]) PopFirst() {
	assert.NotEmpty("Stride.PopFirst", s.Empty())
	ranges.PopFirstN(s.src, s.step)
}

func (s *StrideRange[T]) PopFirstN(n int) int {
	popped := ranges.PopFirstN(s.src, n*s.step)
	return (popped + s.step - 1) / s.step
}

func (s *StrideRange[T]) Save() ranges.Forward[T] {
	return &StrideRange[T]{src: ranges.Save(s.src), step: s.step, cat: s.cat}
}

func (s *StrideRange[T]) Last() T {
	assert.Supported("Stride.Last", s.cat.Back(), "bidirectional")
	assert.NotEmpty("Stride.Last", s.Empty())
	return ranges.Back(s.src).Last()
}

func (s *StrideRange[T]) PopLast() {
	assert.Supported("Stride.PopLast", s.cat.Back(), "bidirectional")
	assert.NotEmpty("Stride.PopLast", s.Empty())
	n := s.src.(ranges.Lengther).Length()
	ranges.PopLastN(ranges.Back(s.src), min(s.step, n))
}

func (s *StrideRange[T]) At(i int) T {
	assert.Supported("Stride.At", s.cat.Has(ranges.TierRandomAccess), "random-access")
	return ranges.Indexable(s.src).At(i * s.step)
}

func (s *StrideRange[T]) Slice(lo, hi int) ranges.RandomAccess[T] {
	assert.Supported("Stride.Slice", s.cat.Has(ranges.TierRandomAccess), "random-access")
	a, b := lo*s.step, lo*s.step
	if hi > lo {
		b = (hi-1)*s.step + 1
	}
	if n, ok := lengthOf(s.src); ok {
		a, b = min(a, n), min(b, n)
	}
	return Stride(ranges.Input[T](ranges.Indexable(s.src).Slice(a, b)), s.step)
}

// Length is ceil(source length / step).
func (s *StrideRange[T]) Length() int {
	n, ok := lengthOf(s.src)
	assert.Supported("Stride.Length", ok, "length-reporting")
	return (n + s.step - 1) / s.step
}

func (s *StrideRange[T]) Equal(other ranges.Input[T]) bool {
	o, ok := other.(*StrideRange[T])
	return ok && s.step == o.step && ranges.Same(s.src, o.src)
}
