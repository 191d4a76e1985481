// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package adapt

import (
	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/assert"
)

// Cycle repeats r endlessly.
//
// A random access source with a length is cycled by index modulo its length and
// the result is an infinite RandomAccess range (*CycleRange). Any other Forward
// source is restarted from a saved copy each time it runs out and the result
// is an infinite Forward range (*ReseekCycle). An infinite r already cycles and
// is only saved.
// Cycling an empty range gives an empty range.
func Cycle[T any](r ranges.Input[T]) ranges.Forward[T] {
	c := ranges.CategoryOf(r)
	switch {
	case c.Infinite:
		return ranges.Save(r)
	case c.Has(ranges.TierRandomAccess) && c.Length:
		return CycleIndexed(ranges.Indexable(r))
	default:
		return CycleReseek(r)
	}
}

// CycleRange cycles a random access range by index.
type CycleRange[T any] struct {
	src ranges.RandomAccess[T]
	n   int
	i   int
}

// CycleIndexed cycles r by index modulo its length. r is never moved.
func CycleIndexed[T any](r ranges.RandomAccess[T]) *CycleRange[T] {
	n, ok := ranges.LengthOf[T](r)
	assert.Supported("CycleIndexed", ok, "length-reporting")
	return &CycleRange[T]{src: r, n: n}
}

var _ ranges.RandomAccess[int] = (*CycleRange[int])(nil)

func (c *CycleRange[T]) Category() ranges.Category {
	if c.n == 0 {
		return ranges.Category{Tier: ranges.TierRandomAccess, Length: true}
	}
	return ranges.Category{Tier: ranges.TierRandomAccess, Infinite: true}
}

func (c *CycleRange[T]) Empty() bool {
	return c.n == 0
}

func (c *CycleRange[T]) First() T {
	assert.NotEmpty("Cycle.First", c.Empty())
	return c.src.At(c.i)
}

func (c *CycleRange[T]) PopFirst() {
	assert.NotEmpty("Cycle.PopFirst", c.Empty())
	c.i++
	if c.i == c.n {
		c.i = 0
	}
}

func (c *CycleRange[T]) PopFirstN(n int) int {
	if c.n == 0 || n <= 0 {
		return 0
	}
	c.i = (c.i + n%c.n) % c.n
	return n
}

func (c *CycleRange[T]) Save() ranges.Forward[T] {
	d := *c
	return &d
}

func (c *CycleRange[T]) Last() T {
	unsupported("Cycle.Last", "finite")
	var zero T
	return zero
}

func (c *CycleRange[T]) PopLast() {
	unsupported("Cycle.PopLast", "finite")
}

func (c *CycleRange[T]) At(i int) T {
	assert.NotEmpty("Cycle.At", c.Empty())
	return c.src.At((c.i + i%c.n) % c.n)
}

// Slice assembles the window from whole and partial turns of the source.
func (c *CycleRange[T]) Slice(lo, hi int) ranges.RandomAccess[T] {
	assert.Bounds("Cycle.Slice", lo, hi, -1)
	if c.n == 0 || lo == hi {
		return c.src.Slice(0, 0)
	}
	var parts []ranges.Input[T]
	start, count := (c.i+lo%c.n)%c.n, hi-lo
	for count > 0 {
		end := min(c.n, start+count)
		parts = append(parts, c.src.Slice(start, end))
		count -= end - start
		start = 0
	}
	if len(parts) == 1 {
		return parts[0].(ranges.RandomAccess[T])
	}
	return Chain(parts...)
}

func (c *CycleRange[T]) Length() int {
	assert.Supported("Cycle.Length", c.n == 0, "finite")
	return 0
}

func (c *CycleRange[T]) Equal(other ranges.Input[T]) bool {
	o, ok := other.(*CycleRange[T])
	return ok && c.i == o.i && ranges.Same[T](c.src, o.src)
}

// ReseekCycle cycles a Forward range by restarting it from a saved copy.
type ReseekCycle[T any] struct {
	orig ranges.Forward[T]
	cur  ranges.Forward[T]
}

// CycleReseek cycles a Forward range in O(1) per element without indexing.
func CycleReseek[T any](r ranges.Input[T]) *ReseekCycle[T] {
	orig := ranges.Save(r)
	return &ReseekCycle[T]{orig: orig, cur: orig.Save()}
}

var _ ranges.RandomAccess[int] = (*ReseekCycle[int])(nil)

func (c *ReseekCycle[T]) Category() ranges.Category {
	if c.orig.Empty() {
		return ranges.Category{Tier: ranges.TierForward, Length: true}
	}
	return ranges.Category{Tier: ranges.TierForward, Infinite: true}
}

func (c *ReseekCycle[T]) Empty() bool {
	return c.cur.Empty()
}

func (c *ReseekCycle[T]) First() T {
	assert.NotEmpty("Cycle.First", c.Empty())
	return c.cur.First()
}

func (c *ReseekCycle[T]) PopFirst() {
	assert.NotEmpty("Cycle.PopFirst", c.Empty())
	c.cur.PopFirst()
	if c.cur.Empty() {
		c.cur = c.orig.Save()
	}
}

// Save shares the pristine copy, which is never advanced.
func (c *ReseekCycle[T]) Save() ranges.Forward[T] {
	return &ReseekCycle[T]{orig: c.orig, cur: c.cur.Save()}
}

func (c *ReseekCycle[T]) Last() T {
	unsupported("Cycle.Last", "finite")
	var zero T
	return zero
}

func (c *ReseekCycle[T]) PopLast() {
	unsupported("Cycle.PopLast", "finite")
}

func (c *ReseekCycle[T]) At(int) T {
	unsupported("Cycle.At", "random-access")
	var zero T
	return zero
}

func (c *ReseekCycle[T]) Slice(int, int) ranges.RandomAccess[T] {
	unsupported("Cycle.Slice", "random-access")
	return nil
}

func (c *ReseekCycle[T]) Length() int {
	assert.Supported("Cycle.Length", c.orig.Empty(), "finite")
	return 0
}
