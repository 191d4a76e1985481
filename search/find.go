// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"slices"

	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/assert"
)

// FindAdvance advances r to the first element equal to v and reports whether
// one was found. If index is not nil, the number of skipped elements is added to it.
// When v is absent r is left empty.
func FindAdvance[T comparable](r ranges.Input[T], v T, index *int) bool {
	if data, ok := arrayData(r); ok {
		i := slices.Index(data, v)
		if i < 0 {
			i = len(data)
		}
		addIndex(index, ranges.PopFirstN(r, i))
		return !r.Empty()
	}
	return FindAdvanceFunc(r, func(e T) bool { return e == v }, index)
}

// FindAdvanceFunc advances r to the first element satisfying pred.
func FindAdvanceFunc[T any](r ranges.Input[T], pred func(T) bool, index *int) bool {
	if data, ok := arrayData(r); ok {
		i := slices.IndexFunc(data, pred)
		if i < 0 {
			i = len(data)
		}
		addIndex(index, ranges.PopFirstN(r, i))
		return !r.Empty()
	}
	n := 0
	for !r.Empty() && !pred(r.First()) {
		r.PopFirst()
		n++
	}
	addIndex(index, n)
	return !r.Empty()
}

// FindAdvanceRange advances r to the start of the first occurrence of needle.
// r must be a Forward range. An empty needle is found immediately.
func FindAdvanceRange[T comparable](r ranges.Input[T], needle []T, index *int) bool {
	if len(needle) == 0 {
		return true
	}
	n := 0
	defer func() { addIndex(index, n) }()
	for {
		k := 0
		if !FindAdvance(r, needle[0], &k) {
			n += k
			return false
		}
		n += k
		if startsWith(r, needle) {
			return true
		}
		r.PopFirst()
		n++
	}
}

// FindAdvanceAny advances r to the first position where any candidate starts.
//
// All candidates are matched at once: a candidate is dropped the moment one of
// its elements mismatches. At the first position where some candidate matches
// completely, the winner is the lowest-numbered matching candidate; its number
// is stored in *which. When nothing matches, r is left empty and *which is
// len(candidates). An empty candidate matches anywhere.
func FindAdvanceAny[T comparable](r ranges.Input[T], candidates [][]T, index *int, which *int) bool {
	alive := make([]int, 0, len(candidates))
	n := 0
	for {
		if w := matchAny(r, candidates, alive); w < len(candidates) {
			addIndex(index, n)
			if which != nil {
				*which = w
			}
			return true
		}
		if r.Empty() {
			addIndex(index, n)
			if which != nil {
				*which = len(candidates)
			}
			return false
		}
		r.PopFirst()
		n++
	}
}

// matchAny returns the lowest-numbered candidate that r starts with, or
// len(candidates). alive is scratch space.
func matchAny[T comparable](r ranges.Input[T], candidates [][]T, alive []int) int {
	best := len(candidates)
	alive = alive[:0]
	for i := range candidates {
		alive = append(alive, i)
	}
	c := ranges.Save(r)
	for k := 0; len(alive) > 0; k++ {
		next := alive[:0]
		for _, i := range alive {
			switch cand := candidates[i]; {
			case i > best:
			case len(cand) == k:
				best = i
			case c.Empty() || c.First() != cand[k]:
			default:
				next = append(next, i)
			}
		}
		alive = next
		if len(alive) > 0 {
			c.PopFirst()
		}
	}
	return best
}

// Find returns a copy of r advanced to the first element equal to v.
func Find[T comparable](r ranges.Input[T], v T) ranges.Input[T] {
	c := ranges.Fork(r)
	FindAdvance(c, v, nil)
	return c
}

// IndexOf returns the position of the first element equal to v, or the number
// of elements in r if there is none.
func IndexOf[T comparable](r ranges.Input[T], v T) int {
	n := 0
	FindAdvance(ranges.Fork(r), v, &n)
	return n
}

// Count returns the number of elements equal to v.
func Count[T comparable](r ranges.Input[T], v T) int {
	return CountFunc(r, func(e T) bool { return e == v })
}

// CountFunc returns the number of elements satisfying pred.
func CountFunc[T any](r ranges.Input[T], pred func(T) bool) int {
	if data, ok := arrayData(r); ok {
		n := 0
		for _, e := range data {
			if pred(e) {
				n++
			}
		}
		return n
	}
	n := 0
	for c := ranges.Fork(r); !c.Empty(); c.PopFirst() {
		if pred(c.First()) {
			n++
		}
	}
	return n
}

// CountRange returns the number of non-overlapping occurrences of needle.
func CountRange[T comparable](r ranges.Input[T], needle []T) int {
	assert.True("CountRange", len(needle) > 0, "empty needle")
	n := 0
	for c := ranges.Fork(r); FindAdvanceRange(c, needle, nil); n++ {
		ranges.PopFirstN(c, len(needle))
	}
	return n
}
