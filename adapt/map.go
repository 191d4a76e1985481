// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package adapt

import (
	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/assert"
)

// MapRange applies a function to each element of its source on access.
type MapRange[T, U any] struct {
	src ranges.Input[T]
	fn  func(T) U
	cat ranges.Category
}

// Map returns a lazy view of fn applied to every element of r.
// Results are not stored: fn runs again on every access, so it should be cheap
// and free of side effects. The category is the category of r, without
// contiguous storage.
func Map[T, U any](r ranges.Input[T], fn func(T) U) *MapRange[T, U] {
	return &MapRange[T, U]{
		src: r,
		fn:  fn,
		cat: ranges.CategoryOf(r).Cap(ranges.TierRandomAccess),
	}
}

var _ ranges.RandomAccess[string] = (*MapRange[int, string])(nil)

func (m *MapRange[T, U]) Category() ranges.Category {
	return m.cat
}

func (m *MapRange[T, U]) Empty() bool {
	return m.src.Empty()
}

func (m *MapRange[T, U]) First() U {
	assert.NotEmpty("Map.First", m.Empty())
	return m.fn(m.src.First())
}

func (m *MapRange[T, U]) PopFirst() {
	assert.NotEmpty("Map.PopFirst", m.Empty())
	m.src.PopFirst()
}

func (m *MapRange[T, U]) PopFirstN(n int) int {
	return ranges.PopFirstN(m.src, n)
}

func (m *MapRange[T, U]) Save() ranges.Forward[U] {
	return &MapRange[T, U]{src: ranges.Save(m.src), fn: m.fn, cat: m.cat}
}

func (m *MapRange[T, U]) Last() U {
	assert.Supported("Map.Last", m.cat.Back(), "bidirectional")
	assert.NotEmpty("Map.Last", m.Empty())
	return m.fn(ranges.Back(m.src).Last())
}

func (m *MapRange[T, U]) PopLast() {
	assert.Supported("Map.PopLast", m.cat.Back(), "bidirectional")
	assert.NotEmpty("Map.PopLast", m.Empty())
	ranges.Back(m.src).PopLast()
}

func (m *MapRange[T, U]) At(i int) U {
	return m.fn(ranges.Indexable(m.src).At(i))
}

func (m *MapRange[T, U]) Slice(lo, hi int) ranges.RandomAccess[U] {
	return Map(ranges.Input[T](ranges.Indexable(m.src).Slice(lo, hi)), m.fn)
}

func (m *MapRange[T, U]) Length() int {
	n, ok := lengthOf(m.src)
	assert.Supported("Map.Length", ok, "length-reporting")
	return n
}

// Equal compares only the sources; the function is ignored.
func (m *MapRange[T, U]) Equal(other ranges.Input[U]) bool {
	o, ok := other.(*MapRange[T, U])
	return ok && ranges.Same(m.src, o.src)
}
