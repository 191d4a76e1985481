// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package adapt

import (
	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/assert"
)

// zipCategory derives the category of ranges consumed in lockstep.
//
// Back access needs every member trimmed to the common length, so it requires a
// length for the result and random access on every infinite member.
func zipCategory(cs ...ranges.Category) ranges.Category {
	m := ranges.Meet(cs...).Cap(ranges.TierRandomAccess)
	if m.Tier < ranges.TierBidirectional {
		return m
	}
	if m.Infinite {
		if m.Tier < ranges.TierRandomAccess {
			m = m.Cap(ranges.TierForward)
		}
		return m
	}
	if !m.Length {
		return m.Cap(ranges.TierForward)
	}
	for _, c := range cs {
		if c.Infinite && c.Tier < ranges.TierRandomAccess {
			return m.Cap(ranges.TierForward)
		}
	}
	return m
}

// minLength returns the smallest length among finite members.
func minLength(ns ...int) int {
	m := -1
	for _, n := range ns {
		if n >= 0 && (m < 0 || n < m) {
			m = n
		}
	}
	return max(m, 0)
}

// memberLength returns the length of a member, or -1 when it is infinite.
func memberLength[T any](r ranges.Input[T]) int {
	if n, ok := lengthOf(r); ok {
		return n
	}
	return -1
}

// ZipRange walks two ranges in lockstep, yielding pairs.
type ZipRange[A, B any] struct {
	a   ranges.Input[A]
	b   ranges.Input[B]
	cat ranges.Category
}

// Zip returns a range of pairs of the elements of a and b.
//
// The result is empty as soon as either member is empty, so its length is the
// shorter length. An infinite member does not need a length: zipping a finite
// range that reports one with an infinite range reports the finite length. The
// tier is the weaker tier, and the result is finite if either member is finite. When back access is supported, the longer member is
// trimmed once, here, so that both backs line up.
func Zip[A, B any](a ranges.Input[A], b ranges.Input[B]) *ZipRange[A, B] {
	z := &ZipRange[A, B]{a: a, b: b, cat: zipCategory(ranges.CategoryOf(a), ranges.CategoryOf(b))}
	if z.cat.Back() {
		n := minLength(memberLength(a), memberLength(b))
		z.a, z.b = truncate(a, n), truncate(b, n)
	}
	return z
}

var _ ranges.RandomAccess[Pair[int, string]] = (*ZipRange[int, string])(nil)

func (z *ZipRange[A, B]) Category() ranges.Category {
	return z.cat
}

func (z *ZipRange[A, B]) Empty() bool {
	return z.a.Empty() || z.b.Empty()
}

func (z *ZipRange[A, B]) First() Pair[A, B] {
	assert.NotEmpty("Zip.First", z.Empty())
	return Pair[A, B]{z.a.First(), z.b.First()}
}

func (z *ZipRange[A, B]) PopFirst() {
	assert.NotEmpty("Zip.PopFirst", z.Empty())
	z.a.PopFirst()
	z.b.PopFirst()
}

func (z *ZipRange[A, B]) PopFirstN(n int) int {
	n = ranges.PopFirstN(z.a, n)
	return ranges.PopFirstN(z.b, n)
}

func (z *ZipRange[A, B]) Save() ranges.Forward[Pair[A, B]] {
	return &ZipRange[A, B]{a: ranges.Save(z.a), b: ranges.Save(z.b), cat: z.cat}
}

func (z *ZipRange[A, B]) Last() Pair[A, B] {
	assert.Supported("Zip.Last", z.cat.Back(), "bidirectional")
	assert.NotEmpty("Zip.Last", z.Empty())
	return Pair[A, B]{ranges.Back(z.a).Last(), ranges.Back(z.b).Last()}
}

func (z *ZipRange[A, B]) PopLast() {
	assert.Supported("Zip.PopLast", z.cat.Back(), "bidirectional")
	assert.NotEmpty("Zip.PopLast", z.Empty())
	ranges.Back(z.a).PopLast()
	ranges.Back(z.b).PopLast()
}

func (z *ZipRange[A, B]) At(i int) Pair[A, B] {
	assert.Supported("Zip.At", z.cat.Has(ranges.TierRandomAccess), "random-access")
	return Pair[A, B]{ranges.Indexable(z.a).At(i), ranges.Indexable(z.b).At(i)}
}

// Slice slices both members and zips the slices again.
func (z *ZipRange[A, B]) Slice(lo, hi int) ranges.RandomAccess[Pair[A, B]] {
	assert.Supported("Zip.Slice", z.cat.Has(ranges.TierRandomAccess), "random-access")
	a := ranges.Input[A](ranges.Indexable(z.a).Slice(lo, hi))
	b := ranges.Input[B](ranges.Indexable(z.b).Slice(lo, hi))
	return Zip(a, b)
}

func (z *ZipRange[A, B]) Length() int {
	assert.Supported("Zip.Length", z.cat.Length, "length-reporting")
	return minLength(memberLength(z.a), memberLength(z.b))
}

func (z *ZipRange[A, B]) Equal(other ranges.Input[Pair[A, B]]) bool {
	o, ok := other.(*ZipRange[A, B])
	return ok && ranges.Same(z.a, o.a) && ranges.Same(z.b, o.b)
}

// ZipNRange walks any number of same-typed ranges in lockstep.
type ZipNRange[T any] struct {
	rs  []ranges.Input[T]
	cat ranges.Category
}

// ZipN is Zip over n ranges of the same element type. Each element is a fresh
// slice holding one element of every member, in member order.
func ZipN[T any](rs ...ranges.Input[T]) *ZipNRange[T] {
	cs := make([]ranges.Category, len(rs))
	ns := make([]int, len(rs))
	for i, r := range rs {
		cs[i] = ranges.CategoryOf(r)
		ns[i] = memberLength(r)
	}
	z := &ZipNRange[T]{rs: append([]ranges.Input[T](nil), rs...), cat: zipCategory(cs...)}
	if len(rs) == 0 {
		z.cat = ranges.Category{Tier: ranges.TierRandomAccess, Length: true}
	}
	if z.cat.Back() {
		n := minLength(ns...)
		for i, r := range z.rs {
			z.rs[i] = truncate(r, n)
		}
	}
	return z
}

var _ ranges.RandomAccess[[]int] = (*ZipNRange[int])(nil)

func (z *ZipNRange[T]) Category() ranges.Category {
	return z.cat
}

func (z *ZipNRange[T]) Empty() bool {
	if len(z.rs) == 0 {
		return true
	}
	for _, r := range z.rs {
		if r.Empty() {
			return true
		}
	}
	return false
}

func (z *ZipNRange[T]) First() []T {
	assert.NotEmpty("ZipN.First", z.Empty())
	t := make([]T, len(z.rs))
	for i, r := range z.rs {
		t[i] = r.First()
	}
	return t
}

func (z *ZipNRange[T]) PopFirst() {
	assert.NotEmpty("ZipN.PopFirst", z.Empty())
	for _, r := range z.rs {
		r.PopFirst()
	}
}

func (z *ZipNRange[T]) Save() ranges.Forward[[]T] {
	rs := make([]ranges.Input[T], len(z.rs))
	for i, r := range z.rs {
		rs[i] = ranges.Save(r)
	}
	return &ZipNRange[T]{rs: rs, cat: z.cat}
}

func (z *ZipNRange[T]) Last() []T {
	assert.Supported("ZipN.Last", z.cat.Back(), "bidirectional")
	assert.NotEmpty("ZipN.Last", z.Empty())
	t := make([]T, len(z.rs))
	for i, r := range z.rs {
		t[i] = ranges.Back(r).Last()
	}
	return t
}

func (z *ZipNRange[T]) PopLast() {
	assert.Supported("ZipN.PopLast", z.cat.Back(), "bidirectional")
	assert.NotEmpty("ZipN.PopLast", z.Empty())
	for _, r := range z.rs {
		ranges.Back(r).PopLast()
	}
}

func (z *ZipNRange[T]) At(i int) []T {
	assert.Supported("ZipN.At", z.cat.Has(ranges.TierRandomAccess), "random-access")
	t := make([]T, len(z.rs))
	for j, r := range z.rs {
		t[j] = ranges.Indexable(r).At(i)
	}
	return t
}

func (z *ZipNRange[T]) Slice(lo, hi int) ranges.RandomAccess[[]T] {
	assert.Supported("ZipN.Slice", z.cat.Has(ranges.TierRandomAccess), "random-access")
	rs := make([]ranges.Input[T], len(z.rs))
	for i, r := range z.rs {
		rs[i] = ranges.Indexable(r).Slice(lo, hi)
	}
	return ZipN(rs...)
}

func (z *ZipNRange[T]) Length() int {
	assert.Supported("ZipN.Length", z.cat.Length, "length-reporting")
	ns := make([]int, len(z.rs))
	for i, r := range z.rs {
		ns[i] = memberLength(r)
	}
	return minLength(ns...)
}

func (z *ZipNRange[T]) Equal(other ranges.Input[[]T]) bool {
	o, ok := other.(*ZipNRange[T])
	if !ok || len(o.rs) != len(z.rs) {
		return false
	}
	for i := range z.rs {
		if !ranges.Same(z.rs[i], o.rs[i]) {
			return false
		}
	}
	return true
}

// Unzip projects component i out of a range of ZipN tuples.
// The result keeps the category of r.
func Unzip[T any](i int, r ranges.Input[[]T]) *MapRange[[]T, T] {
	return Map(r, func(t []T) T { return t[i] })
}

// UnzipFirst projects the first component out of a range of pairs.
func UnzipFirst[A, B any](r ranges.Input[Pair[A, B]]) *MapRange[Pair[A, B], A] {
	return Map(r, func(p Pair[A, B]) A { return p.First })
}

// UnzipSecond projects the second component out of a range of pairs.
func UnzipSecond[A, B any](r ranges.Input[Pair[A, B]]) *MapRange[Pair[A, B], B] {
	return Map(r, func(p Pair[A, B]) B { return p.Second })
}
