// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package ranges

import (
	"iter"

	"github.com/dacapoday/ranges/internal/assert"
)

// Cursor is the part of Input that does not depend on the element type.
type Cursor interface {
	Empty() bool
	PopFirst()
}

// BackCursor is the part of Bidirectional that does not depend on the element type.
type BackCursor interface {
	Empty() bool
	PopLast()
}

// PopFirstN drops up to n elements from the front and returns how many were
// dropped. It stops early, without error, when r runs out.
func PopFirstN(r Cursor, n int) int {
	if s, ok := r.(Skipper); ok {
		return s.PopFirstN(n)
	}
	i := 0
	for ; i < n && !r.Empty(); i++ {
		r.PopFirst()
	}
	return i
}

// PopLastN drops up to n elements from the back and returns how many were dropped.
func PopLastN(r BackCursor, n int) int {
	if s, ok := r.(interface{ PopLastN(int) int }); ok {
		return s.PopLastN(n)
	}
	i := 0
	for ; i < n && !r.Empty(); i++ {
		r.PopLast()
	}
	return i
}

// Drop advances r past up to n elements and returns r.
// Drop(r, 0) returns r unchanged.
func Drop[R Cursor](r R, n int) R {
	PopFirstN(r, n)
	return r
}

// DropBack drops up to n elements from the back of r and returns r.
func DropBack[R BackCursor](r R, n int) R {
	PopLastN(r, n)
	return r
}

// Fork returns an independent copy of a Forward range, or r itself when r is
// only an Input range and cannot be copied.
func Fork[T any](r Input[T]) Input[T] {
	if CategoryOf(r).Has(TierForward) {
		return Save(r)
	}
	return r
}

// Count returns the number of elements of a finite range.
// It uses Length when reported and otherwise walks a copy of r.
// Input ranges are consumed.
func Count[T any](r Input[T]) int {
	if n, ok := LengthOf(r); ok {
		return n
	}
	assert.True("Count", !CategoryOf(r).Infinite, "infinite range")
	n := 0
	for r = Fork(r); !r.Empty(); r.PopFirst() {
		n++
	}
	return n
}

// Collect returns the elements of a finite range as a slice.
// Forward ranges are not moved; Input ranges are consumed.
func Collect[T any](r Input[T]) []T {
	assert.True("Collect", !CategoryOf(r).Infinite, "infinite range")
	var s []T
	if n, ok := LengthOf(r); ok {
		s = make([]T, 0, n)
	}
	if a, ok := r.(Array[T]); ok && CategoryOf(r).Tier == TierArray {
		return append(s, a.Data()...)
	}
	for r = Fork(r); !r.Empty(); r.PopFirst() {
		s = append(s, r.First())
	}
	return s
}

// All returns an iterator over the elements of r.
// Each iteration starts from a copy of r when r is a Forward range.
func All[T any](r Input[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := Fork(r); !c.Empty(); c.PopFirst() {
			if !yield(c.First()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of r from the back.
func Backward[T any](r Input[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := Back[T](Save(r)); !c.Empty(); c.PopLast() {
			if !yield(c.Last()) {
				return
			}
		}
	}
}

// Equal reports whether a and b yield the same elements in the same order.
// Forward ranges are not moved.
func Equal[T comparable](a, b Input[T]) bool {
	if la, ok := LengthOf(a); ok {
		if lb, ok := LengthOf(b); ok && la != lb {
			return false
		}
	}
	for a, b = Fork(a), Fork(b); !a.Empty(); a.PopFirst() {
		if b.Empty() || a.First() != b.First() {
			return false
		}
		b.PopFirst()
	}
	return b.Empty()
}
