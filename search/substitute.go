// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/adapt"
	"github.com/dacapoday/ranges/internal/assert"
)

// Table is a sequence of (key, replacement) pairs. It must be a Forward range:
// it is searched once per entry.
type Table[T any] = ranges.Input[adapt.Pair[[]T, []T]]

// Substitute appends r to dst with every start...end delimited entry replaced.
//
// Entries are located with the recursive block scanner, so nested delimiters stay
// part of the key: with "{" and "}", "{a{b}c}" has the key "a{b}c". Each key is
// looked up in table; the first pair with an equal key gives the replacement and
// keys without one are replaced by fallback. An entry that is never closed is
// copied through verbatim along with the rest of r. r is consumed.
func Substitute[T comparable](dst []T, r ranges.Input[T], start, end []T, table Table[T], fallback []T) []T {
	assert.True("Substitute", len(start) > 0 && len(end) > 0, "empty delimiter")
	block := Block[T]{Open: start, Close: end}
	for {
		text := ranges.Save(r)
		n := 0
		found := FindAdvanceRange(r, start, &n)
		dst = appendN[T](dst, text, n)
		if !found {
			return dst
		}

		entry := ranges.Save(r)
		ranges.PopFirstN(r, len(start))
		counter, consumed := 1, 0
		body := ReadRecursiveBlockAdvance(r, &counter, &consumed, block)
		if counter != 0 {
			return appendAll[T](dst, entry)
		}
		key := adapt.Take[T](body, consumed-len(end))
		dst = append(dst, lookup(table, key, fallback)...)
	}
}

// lookup returns the replacement for key, or fallback.
func lookup[T comparable](table Table[T], key ranges.Input[T], fallback []T) []T {
	hits := adapt.Filter(ranges.Input[adapt.Pair[[]T, []T]](ranges.Save(table)), func(p adapt.Pair[[]T, []T]) bool {
		return ranges.Equal(ranges.Input[T](ranges.Of(p.First...)), key)
	})
	if hits.Empty() {
		return fallback
	}
	return hits.First().Second
}

// StringSubstitute is Substitute over strings.
//
//	StringSubstitute("Hi {name}!", "{", "}", table, "?") // "Hi World!" when table maps name to World
func StringSubstitute(s, start, end string, table []adapt.Pair[string, string], fallback string) string {
	pairs := adapt.Map(ranges.Input[adapt.Pair[string, string]](ranges.Of(table...)),
		func(p adapt.Pair[string, string]) adapt.Pair[[]byte, []byte] {
			return adapt.MakePair([]byte(p.First), []byte(p.Second))
		})
	out := Substitute(make([]byte, 0, len(s)), ranges.Input[byte](ranges.Of([]byte(s)...)),
		[]byte(start), []byte(end), Table[byte](pairs), []byte(fallback))
	return string(out)
}
