// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package ranges

import "github.com/dacapoday/ranges/internal/assert"

// Generator is a one-pass Input range backed by a function.
type Generator[T any] struct {
	next  func() (T, bool)
	value T
	ok    bool
}

// Generate returns an Input range yielding values from next until it reports false.
// The first value is pulled immediately.
func Generate[T any](next func() (T, bool)) *Generator[T] {
	g := &Generator[T]{next: next}
	g.value, g.ok = next()
	return g
}

var _ Input[int] = (*Generator[int])(nil)

func (g *Generator[T]) Category() Category {
	return Category{Tier: TierInput}
}

func (g *Generator[T]) Empty() bool {
	return !g.ok
}

func (g *Generator[T]) First() T {
	assert.NotEmpty("Generator.First", g.Empty())
	return g.value
}

func (g *Generator[T]) PopFirst() {
	assert.NotEmpty("Generator.PopFirst", g.Empty())
	g.value, g.ok = g.next()
}
