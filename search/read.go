// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/adapt"
)

// ReadUntilAdvance returns the elements of r before the first occurrence of stop
// and leaves r at stop. When stop is absent the whole of r is returned and r is
// left empty. The result shares the source of r.
func ReadUntilAdvance[T comparable](r ranges.Input[T], stop []T, index *int) *adapt.TakeRange[T] {
	start := ranges.Save(r)
	n := 0
	FindAdvanceRange(r, stop, &n)
	addIndex(index, n)
	return adapt.Take[T](start, n)
}

// ReadUntil is ReadUntilAdvance on a copy of r.
func ReadUntil[T comparable](r ranges.Input[T], stop []T) *adapt.TakeRange[T] {
	return ReadUntilAdvance(ranges.Input[T](ranges.Save(r)), stop, nil)
}
