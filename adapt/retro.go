// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package adapt

import (
	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/assert"
)

// RetroRange iterates a Bidirectional range from the back.
type RetroRange[T any] struct {
	src ranges.Bidirectional[T]
	cat ranges.Category
}

// Retro returns r reversed. r must support back access.
// Indexing mirrors positions (i becomes Length()-1-i) and needs a length.
func Retro[T any](r ranges.Input[T]) *RetroRange[T] {
	cat := ranges.CategoryOf(r).Cap(ranges.TierRandomAccess)
	if !cat.Length {
		cat = cat.Cap(ranges.TierBidirectional)
	}
	return &RetroRange[T]{src: ranges.Back(r), cat: cat}
}

var _ ranges.RandomAccess[int] = (*RetroRange[int])(nil)

func (r *RetroRange[T]) Category() ranges.Category {
	return r.cat
}

// Source returns the range being reversed, so Retro(x).Source() is x again.
func (r *RetroRange[T]) Source() ranges.Bidirectional[T] {
	return r.src
}

func (r *RetroRange[T]) Empty() bool {
	return r.src.Empty()
}

func (r *RetroRange[T]) First() T {
	assert.NotEmpty("Retro.First", r.Empty())
	return r.src.Last()
}

func (r *RetroRange[T]) PopFirst() {
	assert.NotEmpty("Retro.PopFirst", r.Empty())
	r.src.PopLast()
}

func (r *RetroRange[T]) PopFirstN(n int) int {
	return ranges.PopLastN(r.src, n)
}

func (r *RetroRange[T]) PopLastN(n int) int {
	return ranges.PopFirstN(r.src, n)
}

func (r *RetroRange[T]) Save() ranges.Forward[T] {
	return &RetroRange[T]{src: ranges.Back(ranges.Input[T](r.src.Save())), cat: r.cat}
}

func (r *RetroRange[T]) Last() T {
	assert.NotEmpty("Retro.Last", r.Empty())
	return r.src.First()
}

func (r *RetroRange[T]) PopLast() {
	assert.NotEmpty("Retro.PopLast", r.Empty())
	r.src.PopFirst()
}

func (r *RetroRange[T]) At(i int) T {
	assert.Supported("Retro.At", r.cat.Has(ranges.TierRandomAccess), "random-access")
	return ranges.Indexable[T](r.src).At(r.Length() - 1 - i)
}

func (r *RetroRange[T]) Slice(lo, hi int) ranges.RandomAccess[T] {
	assert.Supported("Retro.Slice", r.cat.Has(ranges.TierRandomAccess), "random-access")
	n := r.Length()
	return Retro(ranges.Input[T](ranges.Indexable[T](r.src).Slice(n-hi, n-lo)))
}

func (r *RetroRange[T]) Length() int {
	n, ok := ranges.LengthOf[T](r.src)
	assert.Supported("Retro.Length", ok, "length-reporting")
	return n
}

func (r *RetroRange[T]) Equal(other ranges.Input[T]) bool {
	o, ok := other.(*RetroRange[T])
	return ok && ranges.Same[T](r.src, o.src)
}
