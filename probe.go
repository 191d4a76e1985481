// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package ranges

import (
	"reflect"

	"github.com/dacapoday/ranges/internal/assert"
)

// CategoryOf returns the capability of r.
//
// Cursors implementing Categorized report their own category. Other cursors are
// classified by the largest interface they satisfy and are assumed finite.
func CategoryOf[T any](r Input[T]) Category {
	if c, ok := r.(Categorized); ok {
		return c.Category()
	}
	var c Category
	switch r.(type) {
	case Array[T]:
		c.Tier = TierArray
	case RandomAccess[T]:
		c.Tier = TierRandomAccess
	case Bidirectional[T]:
		c.Tier = TierBidirectional
	case Forward[T]:
		c.Tier = TierForward
	default:
		c.Tier = TierInput
	}
	if _, ok := r.(Lengther); ok {
		c.Length = true
	}
	return c
}

// LengthOf returns the remaining length of r when it is known in O(1).
func LengthOf[T any](r Input[T]) (int, bool) {
	if !CategoryOf(r).Length {
		return 0, false
	}
	return r.(Lengther).Length(), true
}

// HasLength reports whether r reports its length.
func HasLength[T any](r Input[T]) bool {
	return CategoryOf(r).Length
}

// Save returns an independent copy of r.
// r must be at least a Forward range.
func Save[T any](r Input[T]) Forward[T] {
	f, ok := r.(Forward[T])
	assert.Supported("Save", ok && CategoryOf(r).Has(TierForward), "forward")
	return f.Save()
}

// Back returns r as a Bidirectional range.
// r must support Last and PopLast.
func Back[T any](r Input[T]) Bidirectional[T] {
	b, ok := r.(Bidirectional[T])
	assert.Supported("Back", ok && CategoryOf(r).Back(), "bidirectional")
	return b
}

// Indexable returns r as a RandomAccess range.
func Indexable[T any](r Input[T]) RandomAccess[T] {
	ra, ok := r.(RandomAccess[T])
	assert.Supported("Indexable", ok && CategoryOf(r).Has(TierRandomAccess), "random-access")
	return ra
}

// Same reports whether a and b are structurally the same cursor.
//
// Cursors implementing Equaler decide for themselves. Others compare equal only
// when they are the identical comparable value.
func Same[T any](a, b Input[T]) bool {
	if e, ok := a.(Equaler[T]); ok {
		return e.Equal(b)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
