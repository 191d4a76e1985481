// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package adapt

import (
	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/assert"
)

// ChainRange concatenates finite ranges.
//
// rs holds the members not yet exhausted: rs[0] and rs[len(rs)-1] are never
// empty, members in between may be.
type ChainRange[T any] struct {
	rs  []ranges.Input[T]
	cat ranges.Category
}

// Chain returns the concatenation of rs. Every member must be finite.
//
// The tier is the weakest member tier. Random access additionally requires every
// member to report a length, so that an absolute index can be mapped to its member;
// without lengths the chain is at most Bidirectional. The length is the sum.
func Chain[T any](rs ...ranges.Input[T]) *ChainRange[T] {
	c := &ChainRange[T]{rs: append([]ranges.Input[T](nil), rs...)}
	c.cat = ranges.Category{Tier: ranges.TierRandomAccess, Length: true}
	for _, r := range rs {
		rc := ranges.CategoryOf(r)
		assert.True("Chain", !rc.Infinite, "infinite member")
		c.cat.Tier = min(c.cat.Tier, rc.Tier)
		c.cat.Length = c.cat.Length && rc.Length
	}
	if c.cat.Tier >= ranges.TierRandomAccess && !c.cat.Length {
		c.cat.Tier = ranges.TierBidirectional
	}
	c.normalize()
	return c
}

var _ ranges.RandomAccess[int] = (*ChainRange[int])(nil)

func (c *ChainRange[T]) normalize() {
	for len(c.rs) > 0 && c.rs[0].Empty() {
		c.rs = c.rs[1:]
	}
	for len(c.rs) > 0 && c.rs[len(c.rs)-1].Empty() {
		c.rs = c.rs[:len(c.rs)-1]
	}
}

func (c *ChainRange[T]) Category() ranges.Category {
	return c.cat
}

func (c *ChainRange[T]) Empty() bool {
	return len(c.rs) == 0
}

func (c *ChainRange[T]) First() T {
	assert.NotEmpty("Chain.First", c.Empty())
	return c.rs[0].First()
}

func (c *ChainRange[T]) PopFirst() {
	assert.NotEmpty("Chain.PopFirst", c.Empty())
	c.rs[0].PopFirst()
	c.normalize()
}

func (c *ChainRange[T]) PopFirstN(n int) int {
	popped := 0
	for popped < n && len(c.rs) > 0 {
		popped += ranges.PopFirstN(c.rs[0], n-popped)
		c.normalize()
	}
	return popped
}

func (c *ChainRange[T]) Save() ranges.Forward[T] {
	rs := make([]ranges.Input[T], len(c.rs))
	for i, r := range c.rs {
		rs[i] = ranges.Save(r)
	}
	return &ChainRange[T]{rs: rs, cat: c.cat}
}

func (c *ChainRange[T]) Last() T {
	assert.Supported("Chain.Last", c.cat.Back(), "bidirectional")
	assert.NotEmpty("Chain.Last", c.Empty())
	return ranges.Back(c.rs[len(c.rs)-1]).Last()
}

func (c *ChainRange[T]) PopLast() {
	assert.Supported("Chain.PopLast", c.cat.Back(), "bidirectional")
	assert.NotEmpty("Chain.PopLast", c.Empty())
	ranges.Back(c.rs[len(c.rs)-1]).PopLast()
	c.normalize()
}

// At finds the member owning absolute index i.
func (c *ChainRange[T]) At(i int) T {
	assert.Supported("Chain.At", c.cat.Has(ranges.TierRandomAccess), "random-access")
	assert.Index("Chain.At", i, c.Length())
	for _, r := range c.rs {
		n := r.(ranges.Lengther).Length()
		if i < n {
			return ranges.Indexable(r).At(i)
		}
		i -= n
	}
	panic("unreachable")
}

// Slice splits the window [lo, hi) across member boundaries.
func (c *ChainRange[T]) Slice(lo, hi int) ranges.RandomAccess[T] {
	assert.Supported("Chain.Slice", c.cat.Has(ranges.TierRandomAccess), "random-access")
	assert.Bounds("Chain.Slice", lo, hi, c.Length())
	var parts []ranges.Input[T]
	for _, r := range c.rs {
		n := r.(ranges.Lengther).Length()
		a, b := min(max(lo, 0), n), min(max(hi, 0), n)
		if a < b {
			parts = append(parts, ranges.Indexable(r).Slice(a, b))
		}
		lo, hi = lo-n, hi-n
		if hi <= 0 {
			break
		}
	}
	return Chain(parts...)
}

func (c *ChainRange[T]) Length() int {
	assert.Supported("Chain.Length", c.cat.Length, "length-reporting")
	n := 0
	for _, r := range c.rs {
		n += r.(ranges.Lengther).Length()
	}
	return n
}

func (c *ChainRange[T]) Equal(other ranges.Input[T]) bool {
	o, ok := other.(*ChainRange[T])
	if !ok || len(o.rs) != len(c.rs) {
		return false
	}
	for i := range c.rs {
		if !ranges.Same(c.rs[i], o.rs[i]) {
			return false
		}
	}
	return true
}
