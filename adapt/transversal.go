// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package adapt

import (
	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/assert"
)

// TransversalRange yields the first element of every non-empty inner range.
type TransversalRange[T any, R ranges.Input[T]] struct {
	rr  ranges.Input[R]
	cat ranges.Category
}

// FirstTransversal walks a range of ranges and yields the first element of each
// non-empty inner range, skipping empty ones from both ends.
// Inner ranges are only read, never advanced.
func FirstTransversal[T any, R ranges.Input[T]](rr ranges.Input[R]) *TransversalRange[T, R] {
	sc := ranges.CategoryOf(rr)
	t := &TransversalRange[T, R]{
		rr:  rr,
		cat: ranges.Category{Tier: min(sc.Tier, ranges.TierBidirectional), Infinite: sc.Infinite},
	}
	t.skipFront()
	if t.cat.Back() {
		t.skipBack()
	}
	return t
}

var _ ranges.RandomAccess[int] = (*TransversalRange[int, ranges.Input[int]])(nil)

func (t *TransversalRange[T, R]) skipFront() {
	for !t.rr.Empty() && t.rr.First().Empty() {
		t.rr.PopFirst()
	}
}

func (t *TransversalRange[T, R]) skipBack() {
	back := ranges.Back(t.rr)
	for !back.Empty() && back.Last().Empty() {
		back.PopLast()
	}
}

func (t *TransversalRange[T, R]) Category() ranges.Category {
	return t.cat
}

func (t *TransversalRange[T, R]) Empty() bool {
	return t.rr.Empty()
}

func (t *TransversalRange[T, R]) First() T {
	assert.NotEmpty("FirstTransversal.First", t.Empty())
	return t.rr.First().First()
}

func (t *TransversalRange[T, R]) PopFirst() {
	assert.NotEmpty("FirstTransversal.PopFirst", t.Empty())
	t.rr.PopFirst()
	t.skipFront()
}

func (t *TransversalRange[T, R]) Save() ranges.Forward[T] {
	return &TransversalRange[T, R]{rr: ranges.Save(t.rr), cat: t.cat}
}

func (t *TransversalRange[T, R]) Last() T {
	assert.Supported("FirstTransversal.Last", t.cat.Back(), "bidirectional")
	assert.NotEmpty("FirstTransversal.Last", t.Empty())
	return ranges.Back(t.rr).Last().First()
}

func (t *TransversalRange[T, R]) PopLast() {
	assert.Supported("FirstTransversal.PopLast", t.cat.Back(), "bidirectional")
	assert.NotEmpty("FirstTransversal.PopLast", t.Empty())
	ranges.Back(t.rr).PopLast()
	t.skipBack()
}

func (t *TransversalRange[T, R]) At(int) T {
	unsupported("FirstTransversal.At", "random-access")
	var zero T
	return zero
}

func (t *TransversalRange[T, R]) Slice(int, int) ranges.RandomAccess[T] {
	unsupported("FirstTransversal.Slice", "random-access")
	return nil
}

func (t *TransversalRange[T, R]) Length() int {
	unsupported("FirstTransversal.Length", "length-reporting")
	return 0
}
