// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package adapt

import (
	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/assert"
)

// RoundRobinRange interleaves finite ranges one element at a time.
type RoundRobinRange[T any] struct {
	rs     []ranges.Input[T]
	rounds []int
	cur    int
	cat    ranges.Category
}

// RoundRobin interleaves rs: first elements of each member in order, then second
// elements, and so on. Exhausted members are skipped for good.
//
// Each member keeps a round counter that grows with every element it yields; the
// next element comes from the non-empty member with the lowest counter, the
// earliest member winning ties. The result is at most Forward.
func RoundRobin[T any](rs ...ranges.Input[T]) *RoundRobinRange[T] {
	rr := &RoundRobinRange[T]{
		rs:     append([]ranges.Input[T](nil), rs...),
		rounds: make([]int, len(rs)),
		cat:    ranges.Category{Tier: ranges.TierForward, Length: true},
	}
	for _, r := range rs {
		c := ranges.CategoryOf(r)
		assert.True("RoundRobin", !c.Infinite, "infinite member")
		rr.cat.Tier = min(rr.cat.Tier, c.Tier)
		rr.cat.Length = rr.cat.Length && c.Length
	}
	rr.cur = rr.next()
	return rr
}

var _ ranges.RandomAccess[int] = (*RoundRobinRange[int])(nil)

// next picks the member to pull from, or -1 when all are exhausted.
func (rr *RoundRobinRange[T]) next() int {
	pick := -1
	for i, r := range rr.rs {
		if r.Empty() {
			continue
		}
		if pick < 0 || rr.rounds[i] < rr.rounds[pick] {
			pick = i
		}
	}
	return pick
}

func (rr *RoundRobinRange[T]) Category() ranges.Category {
	return rr.cat
}

// Member returns the position in the argument list of the member that
// yields the current element.
func (rr *RoundRobinRange[T]) Member() int {
	return rr.cur
}

func (rr *RoundRobinRange[T]) Empty() bool {
	return rr.cur < 0
}

func (rr *RoundRobinRange[T]) First() T {
	assert.NotEmpty("RoundRobin.First", rr.Empty())
	return rr.rs[rr.cur].First()
}

func (rr *RoundRobinRange[T]) PopFirst() {
	assert.NotEmpty("RoundRobin.PopFirst", rr.Empty())
	rr.rs[rr.cur].PopFirst()
	rr.rounds[rr.cur]++
	rr.cur = rr.next()
}

func (rr *RoundRobinRange[T]) Save() ranges.Forward[T] {
	rs := make([]ranges.Input[T], len(rr.rs))
	for i, r := range rr.rs {
		rs[i] = ranges.Save(r)
	}
	return &RoundRobinRange[T]{
		rs:     rs,
		rounds: append([]int(nil), rr.rounds...),
		cur:    rr.cur,
		cat:    rr.cat,
	}
}

func (rr *RoundRobinRange[T]) Last() T {
	unsupported("RoundRobin.Last", "bidirectional")
	var zero T
	return zero
}

func (rr *RoundRobinRange[T]) PopLast() {
	unsupported("RoundRobin.PopLast", "bidirectional")
}

func (rr *RoundRobinRange[T]) At(int) T {
	unsupported("RoundRobin.At", "random-access")
	var zero T
	return zero
}

func (rr *RoundRobinRange[T]) Slice(int, int) ranges.RandomAccess[T] {
	unsupported("RoundRobin.Slice", "random-access")
	return nil
}

// Length is the sum of the member lengths.
func (rr *RoundRobinRange[T]) Length() int {
	assert.Supported("RoundRobin.Length", rr.cat.Length, "length-reporting")
	n := 0
	for _, r := range rr.rs {
		n += r.(ranges.Lengther).Length()
	}
	return n
}
