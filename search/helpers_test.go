// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package search

import "github.com/dacapoday/ranges"

// forward is a byte cursor limited to the Forward tier.
type forward struct{ s []byte }

func (f *forward) Category() ranges.Category  { return ranges.Category{Tier: ranges.TierForward} }
func (f *forward) Empty() bool                { return len(f.s) == 0 }
func (f *forward) First() byte                { return f.s[0] }
func (f *forward) PopFirst()                  { f.s = f.s[1:] }
func (f *forward) Save() ranges.Forward[byte] { return &forward{f.s} }

func str(s string) *ranges.Slice[byte] { return ranges.Of([]byte(s)...) }

// cursors returns s as an Array cursor and as a Forward-only cursor.
func cursors(s string) map[string]ranges.Input[byte] {
	return map[string]ranges.Input[byte]{
		"array":   str(s),
		"forward": &forward{[]byte(s)},
	}
}

func rest(r ranges.Input[byte]) string {
	return string(ranges.Collect(r))
}
