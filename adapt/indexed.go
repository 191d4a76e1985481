// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package adapt

import (
	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/assert"
)

// IndexedRange reads a random access range at positions drawn from another range.
type IndexedRange[T any] struct {
	values  ranges.RandomAccess[T]
	indices ranges.Input[int]
	cat     ranges.Category
}

// Indexed returns values[i] for each i of indices.
// The category is the category of indices, whatever the tier of values.
func Indexed[T any](values ranges.Input[T], indices ranges.Input[int]) *IndexedRange[T] {
	return &IndexedRange[T]{
		values:  ranges.Indexable(values),
		indices: indices,
		cat:     ranges.CategoryOf(indices).Cap(ranges.TierRandomAccess),
	}
}

var _ ranges.RandomAccess[int] = (*IndexedRange[int])(nil)

func (x *IndexedRange[T]) Category() ranges.Category {
	return x.cat
}

// Index returns the position in values of the current element.
func (x *IndexedRange[T]) Index() int {
	assert.NotEmpty("Indexed.Index", x.Empty())
	return x.indices.First()
}

func (x *IndexedRange[T]) Empty() bool {
	return x.indices.Empty()
}

func (x *IndexedRange[T]) First() T {
	assert.NotEmpty("Indexed.First", x.Empty())
	return x.values.At(x.indices.First())
}

func (x *IndexedRange[T]) PopFirst() {
	assert.NotEmpty("Indexed.PopFirst", x.Empty())
	x.indices.PopFirst()
}

func (x *IndexedRange[T]) PopFirstN(n int) int {
	return ranges.PopFirstN(x.indices, n)
}

// Save copies the position in indices; values is only read and stays shared.
func (x *IndexedRange[T]) Save() ranges.Forward[T] {
	return &IndexedRange[T]{values: x.values, indices: ranges.Save(x.indices), cat: x.cat}
}

func (x *IndexedRange[T]) Last() T {
	assert.Supported("Indexed.Last", x.cat.Back(), "bidirectional")
	assert.NotEmpty("Indexed.Last", x.Empty())
	return x.values.At(ranges.Back(x.indices).Last())
}

func (x *IndexedRange[T]) PopLast() {
	assert.Supported("Indexed.PopLast", x.cat.Back(), "bidirectional")
	assert.NotEmpty("Indexed.PopLast", x.Empty())
	ranges.Back(x.indices).PopLast()
}

func (x *IndexedRange[T]) At(i int) T {
	assert.Supported("Indexed.At", x.cat.Has(ranges.TierRandomAccess), "random-access")
	return x.values.At(ranges.Indexable(x.indices).At(i))
}

func (x *IndexedRange[T]) Slice(lo, hi int) ranges.RandomAccess[T] {
	assert.Supported("Indexed.Slice", x.cat.Has(ranges.TierRandomAccess), "random-access")
	return Indexed(ranges.Input[T](x.values), ranges.Input[int](ranges.Indexable(x.indices).Slice(lo, hi)))
}

func (x *IndexedRange[T]) Length() int {
	n, ok := lengthOf(x.indices)
	assert.Supported("Indexed.Length", ok, "length-reporting")
	return n
}

func (x *IndexedRange[T]) Equal(other ranges.Input[T]) bool {
	o, ok := other.(*IndexedRange[T])
	return ok && ranges.Same[T](x.values, o.values) && ranges.Same(x.indices, o.indices)
}
