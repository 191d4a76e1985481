// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// Package mem provides an in-memory segmented buffer that hands out range cursors.
package mem

import (
	"sort"

	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/assert"
)

const segmentSize = 32 * 1024

// Buffer is a growable sequence stored in fixed-size segments.
// Growing never moves elements that are already stored.
//
// Buffer requires no initialization:
//
//	var b Buffer[int]
//	b.Append(1, 2, 3)
//
// Buffer is not safe for concurrent use.
type Buffer[T any] struct {
	segments segments[T]
	size     int // elements per segment, segmentSize when zero
}

// NewBuffer returns a Buffer whose segments hold n elements each.
func NewBuffer[T any](n int) *Buffer[T] {
	assert.True("NewBuffer", n > 0, "segment size must be positive")
	return &Buffer[T]{size: n}
}

func (b *Buffer[T]) segmentLen() int {
	if b.size > 0 {
		return b.size
	}
	return segmentSize
}

// Len returns the number of stored elements.
func (b *Buffer[T]) Len() int {
	return b.segments.len()
}

// Append adds vs at the end, filling the last segment before allocating a new one.
func (b *Buffer[T]) Append(vs ...T) {
	for len(vs) > 0 {
		if l := len(b.segments); l > 0 {
			last := &b.segments[l-1]
			if room := cap(last.seg) - len(last.seg); room > 0 {
				c := min(room, len(vs))
				last.seg = append(last.seg, vs[:c]...)
				last.off += c
				vs = vs[c:]
				continue
			}
		}
		b.grow()
	}
}

func (b *Buffer[T]) grow() {
	b.segments = append(b.segments, segment[T]{
		seg: make([]T, 0, b.segmentLen()),
		off: b.Len(),
	})
}

// At returns the element at i.
func (b *Buffer[T]) At(i int) T {
	assert.Index("Buffer.At", i, b.Len())
	return b.segments.at(i)
}

// Set replaces the element at i. Views observe the change.
func (b *Buffer[T]) Set(i int, v T) {
	assert.Index("Buffer.Set", i, b.Len())
	idx := b.segments.seek(i)
	b.segments[idx].seg[i-b.segments.start(idx)] = v
}

// Truncate changes the length of the buffer.
//
// A shorter length discards the tail. A longer one appends zero values.
// Views taken before a Truncate that shortens the buffer are invalidated.
func (b *Buffer[T]) Truncate(n int) {
	assert.True("Buffer.Truncate", n >= 0, "negative length")
	if bias := n - b.Len(); bias > 0 {
		b.Append(make([]T, bias)...)
		return
	}
	b.segments.truncate(n)
}

// Reset empties the buffer and releases its segments.
func (b *Buffer[T]) Reset() {
	b.segments = nil
}

// View returns a RandomAccess cursor over the current contents.
// Later appends are not visible through it.
func (b *Buffer[T]) View() *View[T] {
	return &View[T]{segments: b.segments, hi: b.Len()}
}

// Flatten copies the contents into one contiguous Array cursor.
func (b *Buffer[T]) Flatten() *ranges.Slice[T] {
	data := make([]T, 0, b.Len())
	for i := range b.segments {
		data = append(data, b.segments[i].seg...)
	}
	return ranges.Of(data...)
}

type segments[T any] []segment[T]

type segment[T any] struct {
	seg []T // elements, with spare capacity in the last segment only
	off int // cumulative offset of the segment's end
}

func (s segments[T]) len() int {
	l := len(s)
	if l == 0 {
		return 0
	}
	return s[l-1].off
}

// seek returns the segment holding element i.
func (s segments[T]) seek(i int) int {
	return sort.Search(len(s), func(idx int) bool {
		return s[idx].off > i
	})
}

func (s segments[T]) start(idx int) int {
	if idx == 0 {
		return 0
	}
	return s[idx-1].off
}

func (s segments[T]) at(i int) T {
	idx := s.seek(i)
	return s[idx].seg[i-s.start(idx)]
}

func (s *segments[T]) truncate(n int) {
	if n == 0 {
		*s = nil
		return
	}
	idx := s.seek(n - 1)
	seg := &(*s)[idx]
	seg.seg = seg.seg[:n-s.start(idx)]
	seg.off = n
	*s = (*s)[:idx+1]
}
