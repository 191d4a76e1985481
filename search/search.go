// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package search implements scanning algorithms over ranges.
//
// Functions named ...Advance move the range they are given. The others leave a
// Forward range where it is. Nothing here fails: "not found" is an empty range,
// or an index equal to the number of elements searched.
package search

import "github.com/dacapoday/ranges"

// arrayData returns the contiguous elements of r if r is an Array range.
func arrayData[T any](r ranges.Input[T]) ([]T, bool) {
	if ranges.CategoryOf(r).Tier != ranges.TierArray {
		return nil, false
	}
	return r.(ranges.Array[T]).Data(), true
}

// appendN appends the first n elements of r to dst and advances r past them.
func appendN[T any](dst []T, r ranges.Input[T], n int) []T {
	if data, ok := arrayData(r); ok {
		n = min(n, len(data))
		dst = append(dst, data[:n]...)
		ranges.PopFirstN(r, n)
		return dst
	}
	for ; n > 0 && !r.Empty(); n-- {
		dst = append(dst, r.First())
		r.PopFirst()
	}
	return dst
}

// appendAll appends the rest of r to dst and consumes r.
func appendAll[T any](dst []T, r ranges.Input[T]) []T {
	if data, ok := arrayData(r); ok {
		dst = append(dst, data...)
		ranges.PopFirstN(r, len(data))
		return dst
	}
	for ; !r.Empty(); r.PopFirst() {
		dst = append(dst, r.First())
	}
	return dst
}

func addIndex(index *int, n int) {
	if index != nil {
		*index += n
	}
}
