// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package ranges

import (
	"unsafe"

	"github.com/dacapoday/ranges/internal/assert"
)

// Slice is an Array cursor over a Go slice.
//
// Slice does not own its elements. Saved copies view the same backing array and
// iterate independently; the caller must not reslice or grow the array while a
// cursor iterates it.
type Slice[T any] struct {
	data []T
}

// Of returns an Array cursor over s.
func Of[T any](s ...T) *Slice[T] {
	return &Slice[T]{data: s}
}

var _ Array[int] = (*Slice[int])(nil)

func (s *Slice[T]) Category() Category {
	return Category{Tier: TierArray, Length: true}
}

func (s *Slice[T]) Empty() bool {
	return len(s.data) == 0
}

func (s *Slice[T]) First() T {
	assert.NotEmpty("Slice.First", s.Empty())
	return s.data[0]
}

func (s *Slice[T]) PopFirst() {
	assert.NotEmpty("Slice.PopFirst", s.Empty())
	s.data = s.data[1:]
}

// PopFirstN drops up to n elements from the front in O(1).
func (s *Slice[T]) PopFirstN(n int) int {
	n = max(0, min(n, len(s.data)))
	s.data = s.data[n:]
	return n
}

// PopLastN drops up to n elements from the back in O(1).
func (s *Slice[T]) PopLastN(n int) int {
	n = max(0, min(n, len(s.data)))
	s.data = s.data[:len(s.data)-n]
	return n
}

func (s *Slice[T]) Save() Forward[T] {
	return &Slice[T]{data: s.data}
}

func (s *Slice[T]) Last() T {
	assert.NotEmpty("Slice.Last", s.Empty())
	return s.data[len(s.data)-1]
}

func (s *Slice[T]) PopLast() {
	assert.NotEmpty("Slice.PopLast", s.Empty())
	s.data = s.data[:len(s.data)-1]
}

func (s *Slice[T]) At(i int) T {
	assert.Index("Slice.At", i, len(s.data))
	return s.data[i]
}

func (s *Slice[T]) Slice(lo, hi int) RandomAccess[T] {
	assert.Bounds("Slice.Slice", lo, hi, len(s.data))
	return &Slice[T]{data: s.data[lo:hi:hi]}
}

func (s *Slice[T]) Data() []T {
	return s.data
}

func (s *Slice[T]) Length() int {
	return len(s.data)
}

// Equal reports whether other views exactly the same window of the same array.
func (s *Slice[T]) Equal(other Input[T]) bool {
	o, ok := other.(*Slice[T])
	if !ok {
		return false
	}
	return len(s.data) == len(o.data) &&
		unsafe.SliceData(s.data) == unsafe.SliceData(o.data)
}
