// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package adapt

import (
	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/assert"
)

// TakeRange is the range of at most n first elements of its source.
type TakeRange[T any] struct {
	src ranges.Input[T]
	n   int
	cat ranges.Category

	// sized means n is the exact remaining length.
	sized bool
	// indexed means back access goes through At instead of the source back.
	indexed bool
	// trimmed means the source tail has been cut to n elements.
	trimmed bool
}

// Take returns a range over the first min(n, Count(r)) elements of r.
//
// When r reports a length, or is infinite, the length of the result is known at
// construction and the tier of r is kept, Array included. A Bidirectional
// source keeps its back only in that case.
// Take of a TakeRange takes the smaller count instead of nesting.
func Take[T any](r ranges.Input[T], n int) *TakeRange[T] {
	n = max(0, n)
	if t, ok := r.(*TakeRange[T]); ok {
		m := min(t.n, n)
		return &TakeRange[T]{
			src:     t.src,
			n:       m,
			cat:     t.cat,
			sized:   t.sized,
			indexed: t.indexed,
			trimmed: t.trimmed && m == t.n,
		}
	}

	sc := ranges.CategoryOf(r)
	t := &TakeRange[T]{src: r, n: n}
	switch {
	case sc.Length:
		t.n = min(n, r.(ranges.Lengther).Length())
		t.sized = true
		t.cat = ranges.Category{Tier: sc.Tier, Length: true}
	case sc.Infinite:
		t.sized = true
		t.cat = ranges.Category{Tier: sc.Tier, Length: true}
		if sc.Tier < ranges.TierRandomAccess {
			t.cat.Tier = min(sc.Tier, ranges.TierForward)
		} else {
			t.cat.Tier = ranges.TierRandomAccess
		}
	default:
		t.cat = ranges.Category{Tier: min(sc.Tier, ranges.TierForward)}
	}
	t.indexed = t.cat.Has(ranges.TierRandomAccess)
	return t
}

var _ ranges.Array[int] = (*TakeRange[int])(nil)

func (t *TakeRange[T]) Category() ranges.Category {
	return t.cat
}

// Source returns the wrapped range.
func (t *TakeRange[T]) Source() ranges.Input[T] {
	return t.src
}

func (t *TakeRange[T]) Empty() bool {
	if t.sized {
		return t.n == 0
	}
	return t.n == 0 || t.src.Empty()
}

func (t *TakeRange[T]) First() T {
	assert.NotEmpty("Take.First", t.Empty())
	return t.src.First()
}

func (t *TakeRange[T]) PopFirst() {
	assert.NotEmpty("Take.PopFirst", t.Empty())
	t.src.PopFirst()
	t.n--
}

func (t *TakeRange[T]) PopFirstN(n int) int {
	n = ranges.PopFirstN(t.src, min(n, t.n))
	t.n -= n
	return n
}

func (t *TakeRange[T]) Save() ranges.Forward[T] {
	c := *t
	c.src = ranges.Save(t.src)
	return &c
}

// trim cuts the source tail so that the source back is the take back.
func (t *TakeRange[T]) trim() ranges.Bidirectional[T] {
	back := ranges.Back(t.src)
	if !t.trimmed {
		ranges.PopLastN(back, t.src.(ranges.Lengther).Length()-t.n)
		t.trimmed = true
	}
	return back
}

func (t *TakeRange[T]) Last() T {
	assert.Supported("Take.Last", t.cat.Back(), "bidirectional")
	assert.NotEmpty("Take.Last", t.Empty())
	if t.indexed {
		return ranges.Indexable(t.src).At(t.n - 1)
	}
	return t.trim().Last()
}

func (t *TakeRange[T]) PopLast() {
	assert.Supported("Take.PopLast", t.cat.Back(), "bidirectional")
	assert.NotEmpty("Take.PopLast", t.Empty())
	if !t.indexed {
		t.trim().PopLast()
	}
	t.n--
}

func (t *TakeRange[T]) At(i int) T {
	assert.Supported("Take.At", t.indexed, "random-access")
	assert.Index("Take.At", i, t.n)
	return ranges.Indexable(t.src).At(i)
}

func (t *TakeRange[T]) Slice(lo, hi int) ranges.RandomAccess[T] {
	assert.Supported("Take.Slice", t.indexed, "random-access")
	assert.Bounds("Take.Slice", lo, hi, t.n)
	return ranges.Indexable(t.src).Slice(lo, hi)
}

// Data returns the taken prefix of the source data. It shares the source array.
func (t *TakeRange[T]) Data() []T {
	assert.Supported("Take.Data", t.cat.Tier == ranges.TierArray, "an array")
	return t.src.(ranges.Array[T]).Data()[:t.n]
}

func (t *TakeRange[T]) Length() int {
	assert.Supported("Take.Length", t.sized, "length-reporting")
	return t.n
}

// Equal reports whether other takes the same count from the same source.
func (t *TakeRange[T]) Equal(other ranges.Input[T]) bool {
	o, ok := other.(*TakeRange[T])
	return ok && t.n == o.n && ranges.Same(t.src, o.src)
}
