// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package ranges

import (
	"github.com/ccoveille/go-safecast/v2"
	"golang.org/x/exp/constraints"

	"github.com/dacapoday/ranges/internal/assert"
)

// Sequence is an arithmetic progression. It is RandomAccess whether finite or not.
type Sequence[N constraints.Integer] struct {
	front    N
	step     N
	n        int
	infinite bool
}

// Iota returns the infinite progression start, start+step, start+2*step, ...
func Iota[N constraints.Integer](start, step N) *Sequence[N] {
	return &Sequence[N]{front: start, step: step, infinite: true}
}

// IotaN returns the progression from start up to, but excluding, stop.
// step must not be zero; a negative step counts down.
func IotaN[N constraints.Integer](start, stop, step N) *Sequence[N] {
	assert.True("IotaN", step != 0, "zero step")
	var span uint64
	if step > 0 && stop > start {
		span = (wide(stop)-wide(start)-1)/wide(step) + 1
	} else if step < 0 && stop < start {
		span = (wide(start)-wide(stop)-1)/-wide(step) + 1
	}
	n, err := safecast.Convert[int](span)
	assert.True("IotaN", err == nil, "length overflows int")
	return &Sequence[N]{front: start, step: step, n: n}
}

// wide sign-extends x to 64 bits. Differences of widened values are exact
// modulo 2^64, so the distance between two N values never overflows.
func wide[N constraints.Integer](x N) uint64 {
	var zero N
	if zero-1 < zero {
		return uint64(int64(x))
	}
	return uint64(x)
}

var _ RandomAccess[int] = (*Sequence[int])(nil)

func (s *Sequence[N]) Category() Category {
	return Category{Tier: TierRandomAccess, Infinite: s.infinite, Length: !s.infinite}
}

func (s *Sequence[N]) Empty() bool {
	return !s.infinite && s.n == 0
}

func (s *Sequence[N]) First() N {
	assert.NotEmpty("Sequence.First", s.Empty())
	return s.front
}

func (s *Sequence[N]) PopFirst() {
	assert.NotEmpty("Sequence.PopFirst", s.Empty())
	s.front += s.step
	if !s.infinite {
		s.n--
	}
}

func (s *Sequence[N]) PopFirstN(n int) int {
	if !s.infinite {
		n = min(n, s.n)
		s.n -= max(0, n)
	}
	n = max(0, n)
	s.front += N(n) * s.step
	return n
}

func (s *Sequence[N]) Save() Forward[N] {
	c := *s
	return &c
}

func (s *Sequence[N]) Last() N {
	assert.Supported("Sequence.Last", !s.infinite, "finite")
	assert.NotEmpty("Sequence.Last", s.Empty())
	return s.front + N(s.n-1)*s.step
}

func (s *Sequence[N]) PopLast() {
	assert.Supported("Sequence.PopLast", !s.infinite, "finite")
	assert.NotEmpty("Sequence.PopLast", s.Empty())
	s.n--
}

func (s *Sequence[N]) At(i int) N {
	if !s.infinite {
		assert.Index("Sequence.At", i, s.n)
	}
	return s.front + N(i)*s.step
}

func (s *Sequence[N]) Slice(lo, hi int) RandomAccess[N] {
	n := -1
	if !s.infinite {
		n = s.n
	}
	assert.Bounds("Sequence.Slice", lo, hi, n)
	return &Sequence[N]{front: s.front + N(lo)*s.step, step: s.step, n: hi - lo}
}

func (s *Sequence[N]) Length() int {
	assert.Supported("Sequence.Length", !s.infinite, "finite")
	return s.n
}

func (s *Sequence[N]) Equal(other Input[N]) bool {
	o, ok := other.(*Sequence[N])
	return ok && *s == *o
}
