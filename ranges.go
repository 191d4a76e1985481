// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package ranges defines lazy range cursors and the capability hierarchy that
// classifies what a cursor supports.
//
// A range is a small cursor value. The tiers build on each other:
//
//	Input < Forward < Bidirectional < RandomAccess < Array
//
// Usage:
//
//	for r := ranges.Of(data...); !r.Empty(); r.PopFirst() {
//	    v := r.First()
//	    // process v
//	}
//
// Adaptors (package adapt) implement the whole method set of RandomAccess and
// report the tier they actually support through Category. Calling an operation
// above the reported tier, or First/Last/PopFirst/PopLast on an empty range, is a
// precondition violation: it panics when built with -tags debug and is undefined
// otherwise.
package ranges

// Input is a one-pass cursor.
type Input[T any] interface {
	// Empty reports whether no elements remain.
	// It has no side effects and may be called any number of times.
	Empty() bool

	// First returns the current element.
	// Behavior is undefined if Empty() returns true.
	First() T

	// PopFirst advances past the current element.
	// Behavior is undefined if Empty() returns true.
	PopFirst()
}

// Forward is a cursor whose position can be saved.
type Forward[T any] interface {
	Input[T]

	// Save returns an independent copy at the current position.
	// Copies may share backing storage but never share position.
	Save() Forward[T]
}

// Bidirectional is a Forward cursor that can also be consumed from the back.
type Bidirectional[T any] interface {
	Forward[T]

	// Last returns the last element.
	// Behavior is undefined if Empty() returns true.
	Last() T

	// PopLast drops the last element.
	// Behavior is undefined if Empty() returns true.
	PopLast()
}

// RandomAccess is a Bidirectional cursor with indexing and slicing.
// Infinite random access ranges index and slice but have no back.
type RandomAccess[T any] interface {
	Bidirectional[T]

	// At returns the element i positions after the front.
	At(i int) T

	// Slice returns a cursor over the elements [lo, hi) counted from the front.
	Slice(lo, hi int) RandomAccess[T]
}

// Array is a RandomAccess cursor over contiguous addressable storage.
type Array[T any] interface {
	RandomAccess[T]

	// Data returns the remaining elements. Writes through it are visible to
	// every cursor aliasing the same storage.
	Data() []T

	Length() int
}

// Lengther reports the number of remaining elements in O(1).
type Lengther interface {
	Length() int
}

// Categorized reports the capability of a cursor.
// It takes precedence over method-set probing in CategoryOf.
type Categorized interface {
	Category() Category
}

// Skipper advances in O(1). PopFirstN advances past up to n elements
// and returns how many were dropped.
type Skipper interface {
	PopFirstN(n int) int
}

// Equaler compares the cursor structurally with another cursor.
type Equaler[T any] interface {
	Equal(other Input[T]) bool
}
