// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package ranges

import (
	"fmt"

	"github.com/dacapoday/ranges/internal/assert"
)

type indexKind uint8

const (
	absolute indexKind = iota
	fromEnd
	fraction
)

// Index is a position that may be relative to the length of the range it is
// applied to. Resolve it against the length at the moment of use; never keep a
// resolved value across an operation that changes the length.
type Index struct {
	kind     indexKind
	num, den int
}

// End is the position one past the last element.
var End = FromEnd(0)

// Abs is the absolute offset i from the front.
func Abs(i int) Index {
	return Index{kind: absolute, num: i}
}

// FromEnd is the offset i before End.
func FromEnd(i int) Index {
	return Index{kind: fromEnd, num: i}
}

// Frac is the offset length*num/den, rounded down.
func Frac(num, den int) Index {
	assert.True("Frac", den > 0, "non-positive denominator")
	return Index{kind: fraction, num: num, den: den}
}

// Resolve returns the absolute offset for a range of the given length.
func (x Index) Resolve(length int) int {
	var i int
	switch x.kind {
	case fromEnd:
		i = length - x.num
	case fraction:
		i = length * x.num / x.den
	default:
		i = x.num
	}
	assert.True("Index.Resolve", i >= 0 && i <= length, "index outside [0, length]")
	return i
}

func (x Index) String() string {
	switch x.kind {
	case fromEnd:
		if x.num == 0 {
			return "$"
		}
		return fmt.Sprintf("$-%d", x.num)
	case fraction:
		return fmt.Sprintf("$*%d/%d", x.num, x.den)
	default:
		return fmt.Sprint(x.num)
	}
}

// Window returns the elements of r between lo and hi. Both indices are
// resolved once, against the current length of r.
func Window[T any](r RandomAccess[T], lo, hi Index) RandomAccess[T] {
	n, ok := LengthOf[T](r)
	assert.Supported("Window", ok, "length-reporting")
	return r.Slice(lo.Resolve(n), hi.Resolve(n))
}

// AtIndex returns the element of r at position i resolved against the current length.
func AtIndex[T any](r RandomAccess[T], i Index) T {
	n, ok := LengthOf[T](r)
	assert.Supported("AtIndex", ok, "length-reporting")
	return r.At(i.Resolve(n))
}
