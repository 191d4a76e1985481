// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package adapt

import (
	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/assert"
)

// FilterRange yields the elements of its source that satisfy a predicate.
type FilterRange[T any] struct {
	src  ranges.Input[T]
	pred func(T) bool
	cat  ranges.Category
}

// Filter returns a lazy view of the elements of r for which pred holds, in order.
//
// Non-matching elements are skipped on construction and after every pop, from
// the back as well when r supports it. Random access is lost because skipped
// elements shift positions; the result never reports a length. Filtering an
// infinite range where nothing matches never returns.
func Filter[T any](r ranges.Input[T], pred func(T) bool) *FilterRange[T] {
	sc := ranges.CategoryOf(r)
	f := &FilterRange[T]{
		src:  r,
		pred: pred,
		cat:  ranges.Category{Tier: min(sc.Tier, ranges.TierBidirectional), Infinite: sc.Infinite},
	}
	f.skipFront()
	if f.cat.Back() {
		f.skipBack()
	}
	return f
}

var _ ranges.RandomAccess[int] = (*FilterRange[int])(nil)

func (f *FilterRange[T]) skipFront() {
	for !f.src.Empty() && !f.pred(f.src.First()) {
		f.src.PopFirst()
	}
}

func (f *FilterRange[T]) skipBack() {
	back := ranges.Back(f.src)
	for !back.Empty() && !f.pred(back.Last()) {
		back.PopLast()
	}
}

func (f *FilterRange[T]) Category() ranges.Category {
	return f.cat
}

func (f *FilterRange[T]) Empty() bool {
	return f.src.Empty()
}

func (f *FilterRange[T]) First() T {
	assert.NotEmpty("Filter.First", f.Empty())
	return f.src.First()
}

func (f *FilterRange[T]) PopFirst() {
	assert.NotEmpty("Filter.PopFirst", f.Empty())
	f.src.PopFirst()
	f.skipFront()
}

func (f *FilterRange[T]) Save() ranges.Forward[T] {
	return &FilterRange[T]{src: ranges.Save(f.src), pred: f.pred, cat: f.cat}
}

func (f *FilterRange[T]) Last() T {
	assert.Supported("Filter.Last", f.cat.Back(), "bidirectional")
	assert.NotEmpty("Filter.Last", f.Empty())
	return ranges.Back(f.src).Last()
}

func (f *FilterRange[T]) PopLast() {
	assert.Supported("Filter.PopLast", f.cat.Back(), "bidirectional")
	assert.NotEmpty("Filter.PopLast", f.Empty())
	ranges.Back(f.src).PopLast()
	f.skipBack()
}

func (f *FilterRange[T]) At(int) T {
	unsupported("Filter.At", "random-access")
	var zero T
	return zero
}

func (f *FilterRange[T]) Slice(int, int) ranges.RandomAccess[T] {
	unsupported("Filter.Slice", "random-access")
	return nil
}

func (f *FilterRange[T]) Length() int {
	unsupported("Filter.Length", "length-reporting")
	return 0
}

// Equal compares only the sources. Two filters over the same source with
// different predicates compare equal: predicates have no identity to compare.
func (f *FilterRange[T]) Equal(other ranges.Input[T]) bool {
	o, ok := other.(*FilterRange[T])
	return ok && ranges.Same(f.src, o.src)
}
