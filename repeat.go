// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package ranges

import "github.com/dacapoday/ranges/internal/assert"

// Repetition yields the same value forever.
type Repetition[T any] struct {
	value T
}

// Repeat returns an infinite RandomAccess range of v.
func Repeat[T any](v T) *Repetition[T] {
	return &Repetition[T]{value: v}
}

var _ RandomAccess[int] = (*Repetition[int])(nil)

func (r *Repetition[T]) Category() Category {
	return Category{Tier: TierRandomAccess, Infinite: true}
}

func (r *Repetition[T]) Empty() bool         { return false }
func (r *Repetition[T]) First() T            { return r.value }
func (r *Repetition[T]) PopFirst()           {}
func (r *Repetition[T]) PopFirstN(n int) int { return max(0, n) }
func (r *Repetition[T]) Save() Forward[T]    { return &Repetition[T]{value: r.value} }
func (r *Repetition[T]) At(int) T            { return r.value }

func (r *Repetition[T]) Last() T {
	assert.Supported("Repetition.Last", false, "finite")
	return r.value
}

func (r *Repetition[T]) PopLast() {
	assert.Supported("Repetition.PopLast", false, "finite")
}

// Slice returns hi-lo copies of the value.
func (r *Repetition[T]) Slice(lo, hi int) RandomAccess[T] {
	assert.Bounds("Repetition.Slice", lo, hi, -1)
	data := make([]T, hi-lo)
	for i := range data {
		data[i] = r.value
	}
	return Of(data...)
}
