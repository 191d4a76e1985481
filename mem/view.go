// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package mem

import (
	"unsafe"

	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/assert"
)

// View is a RandomAccess cursor over a window of a Buffer.
//
// The storage is not contiguous, so View is not an Array.
type View[T any] struct {
	segments segments[T]
	lo, hi   int
}

var _ ranges.RandomAccess[int] = (*View[int])(nil)

func (v *View[T]) Category() ranges.Category {
	return ranges.Category{Tier: ranges.TierRandomAccess, Length: true}
}

func (v *View[T]) Empty() bool {
	return v.lo == v.hi
}

func (v *View[T]) First() T {
	assert.NotEmpty("View.First", v.Empty())
	return v.segments.at(v.lo)
}

func (v *View[T]) PopFirst() {
	assert.NotEmpty("View.PopFirst", v.Empty())
	v.lo++
}

// PopFirstN drops up to n elements from the front in O(1).
func (v *View[T]) PopFirstN(n int) int {
	n = max(0, min(n, v.hi-v.lo))
	v.lo += n
	return n
}

// PopLastN drops up to n elements from the back in O(1).
func (v *View[T]) PopLastN(n int) int {
	n = max(0, min(n, v.hi-v.lo))
	v.hi -= n
	return n
}

func (v *View[T]) Save() ranges.Forward[T] {
	c := *v
	return &c
}

func (v *View[T]) Last() T {
	assert.NotEmpty("View.Last", v.Empty())
	return v.segments.at(v.hi - 1)
}

func (v *View[T]) PopLast() {
	assert.NotEmpty("View.PopLast", v.Empty())
	v.hi--
}

func (v *View[T]) At(i int) T {
	assert.Index("View.At", i, v.hi-v.lo)
	return v.segments.at(v.lo + i)
}

func (v *View[T]) Slice(lo, hi int) ranges.RandomAccess[T] {
	assert.Bounds("View.Slice", lo, hi, v.hi-v.lo)
	return &View[T]{segments: v.segments, lo: v.lo + lo, hi: v.lo + hi}
}

func (v *View[T]) Length() int {
	return v.hi - v.lo
}

// Equal reports whether other views the same window of the same buffer.
func (v *View[T]) Equal(other ranges.Input[T]) bool {
	o, ok := other.(*View[T])
	if !ok {
		return false
	}
	return v.lo == o.lo && v.hi == o.hi &&
		unsafe.SliceData(v.segments) == unsafe.SliceData(o.segments)
}
