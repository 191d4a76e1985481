// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package adapt

import (
	"github.com/dacapoday/ranges"
)

// forward is a slice cursor limited to the Forward tier, without a length.
type forward[T any] struct{ s []T }

func fwd[T any](s ...T) *forward[T] { return &forward[T]{s} }

func (f *forward[T]) Category() ranges.Category { return ranges.Category{Tier: ranges.TierForward} }
func (f *forward[T]) Empty() bool               { return len(f.s) == 0 }
func (f *forward[T]) First() T                  { return f.s[0] }
func (f *forward[T]) PopFirst()                 { f.s = f.s[1:] }
func (f *forward[T]) Save() ranges.Forward[T]   { return &forward[T]{f.s} }

// bidi is a slice cursor limited to the Bidirectional tier, with a length.
type bidi[T any] struct{ s []T }

func bid[T any](s ...T) *bidi[T] { return &bidi[T]{s} }

func (b *bidi[T]) Category() ranges.Category {
	return ranges.Category{Tier: ranges.TierBidirectional, Length: true}
}
func (b *bidi[T]) Empty() bool             { return len(b.s) == 0 }
func (b *bidi[T]) First() T                { return b.s[0] }
func (b *bidi[T]) PopFirst()               { b.s = b.s[1:] }
func (b *bidi[T]) Save() ranges.Forward[T] { return &bidi[T]{b.s} }
func (b *bidi[T]) Last() T                 { return b.s[len(b.s)-1] }
func (b *bidi[T]) PopLast()                { b.s = b.s[:len(b.s)-1] }
func (b *bidi[T]) Length() int             { return len(b.s) }

// input is a one-pass cursor over a slice.
func input[T any](s ...T) ranges.Input[T] {
	return ranges.Generate(func() (T, bool) {
		var zero T
		if len(s) == 0 {
			return zero, false
		}
		v := s[0]
		s = s[1:]
		return v, true
	})
}

// backward collects r from the back.
func backward[T any](r ranges.Input[T]) []T {
	var out []T
	for v := range ranges.Backward(r) {
		out = append(out, v)
	}
	return out
}

func isEven(v int) bool { return v%2 == 0 }
