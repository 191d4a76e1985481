// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package adapt provides lazy adaptors over ranges.
//
// Every adaptor takes ownership of the cursors passed to it; Save a cursor
// first to keep using it independently. An adaptor's category is computed from
// its inputs: it never advertises more than the weakest input allows after the
// adaptor's own restriction. Each adaptor type carries the full RandomAccess
// method set, and operations above the reported category are precondition
// violations.
package adapt

import (
	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/assert"
)

// Pair is the element type of Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns Pair{a, b}.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// lengthOf returns the length of r, or false if it is unknown or infinite.
func lengthOf[T any](r ranges.Input[T]) (int, bool) {
	return ranges.LengthOf(r)
}

// truncate cuts r to its first n elements from the back.
// r must support back access or be random access.
func truncate[T any](r ranges.Input[T], n int) ranges.Input[T] {
	c := ranges.CategoryOf(r)
	if c.Has(ranges.TierRandomAccess) {
		if l, ok := lengthOf(r); ok && l <= n {
			return r
		}
		return ranges.Indexable(r).Slice(0, n)
	}
	l, ok := lengthOf(r)
	assert.Supported("truncate", ok, "length-reporting")
	if l > n {
		ranges.PopLastN(ranges.Back(r), l-n)
	}
	return r
}

func unsupported(method, capability string) {
	assert.Supported(method, false, capability)
}
