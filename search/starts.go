// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"slices"

	"github.com/dacapoday/ranges"
)

// startsWith compares the front of r with prefix without moving r.
func startsWith[T comparable](r ranges.Input[T], prefix []T) bool {
	if data, ok := arrayData(r); ok {
		return len(data) >= len(prefix) && slices.Equal(data[:len(prefix)], prefix)
	}
	if n, ok := ranges.LengthOf(r); ok && n < len(prefix) {
		return false
	}
	c := ranges.Save(r)
	for _, e := range prefix {
		if c.Empty() || c.First() != e {
			return false
		}
		c.PopFirst()
	}
	return true
}

// StartsWith reports whether r begins with the elements of prefix.
// Array ranges are compared in bulk, others element by element.
func StartsWith[T comparable](r, prefix ranges.Input[T]) bool {
	if p, ok := arrayData(prefix); ok {
		return startsWith(r, p)
	}
	a, b := ranges.Fork(r), ranges.Fork(prefix)
	for ; !b.Empty(); b.PopFirst() {
		if a.Empty() || a.First() != b.First() {
			return false
		}
		a.PopFirst()
	}
	return true
}

// StartsWithAdvance advances r past prefix if r begins with it.
func StartsWithAdvance[T comparable](r ranges.Input[T], prefix []T) bool {
	if !startsWith(r, prefix) {
		return false
	}
	ranges.PopFirstN(r, len(prefix))
	return true
}

// EndsWith reports whether r ends with the elements of suffix.
// Both ranges need back access unless both are Array ranges.
func EndsWith[T comparable](r, suffix ranges.Input[T]) bool {
	if s, ok := arrayData(suffix); ok {
		if data, ok := arrayData(r); ok {
			return len(data) >= len(s) && slices.Equal(data[len(data)-len(s):], s)
		}
	}
	if n, ok := ranges.LengthOf(r); ok {
		if m, ok := ranges.LengthOf(suffix); ok && n < m {
			return false
		}
	}
	a, b := ranges.Back[T](ranges.Save(r)), ranges.Back[T](ranges.Save(suffix))
	for ; !b.Empty(); b.PopLast() {
		if a.Empty() || a.Last() != b.Last() {
			return false
		}
		a.PopLast()
	}
	return true
}

// Contains reports whether needle occurs in r.
func Contains[T comparable](r, needle ranges.Input[T]) bool {
	return FindAdvanceRange[T](ranges.Save(r), ranges.Collect(needle), nil)
}
