// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package ranges

import "strings"

// Tier is the capability level of a cursor.
type Tier uint8

const (
	TierInput Tier = iota
	TierForward
	TierBidirectional
	TierRandomAccess
	TierArray
)

var tierNames = [...]string{"input", "forward", "bidirectional", "random-access", "array"}

func (t Tier) String() string {
	if int(t) < len(tierNames) {
		return tierNames[t]
	}
	return "invalid"
}

// Category classifies a cursor along the tier and finiteness axes.
//
// Length reports whether Length() is meaningful. Finiteness is independent of
// the tier: an Input range may be infinite, and a RandomAccess range such as an
// arithmetic progression need not be finite.
type Category struct {
	Tier     Tier
	Infinite bool
	Length   bool
}

// Has reports whether the category supports at least tier t.
func (c Category) Has(t Tier) bool {
	return c.Tier >= t
}

// Back reports whether Last and PopLast are supported.
func (c Category) Back() bool {
	return c.Tier >= TierBidirectional && !c.Infinite
}

// Cap lowers the tier to at most t.
func (c Category) Cap(t Tier) Category {
	c.Tier = min(c.Tier, t)
	return c
}

func (c Category) String() string {
	var b strings.Builder
	b.WriteString(c.Tier.String())
	if c.Infinite {
		b.WriteString(",infinite")
	} else {
		b.WriteString(",finite")
	}
	if c.Length {
		b.WriteString(",length")
	}
	return b.String()
}

// Meet combines the categories of cursors consumed in lockstep.
//
// The tier is the weakest tier. The result is finite as soon as one member is
// finite. Length is reported when at least one member is finite and every finite
// member reports a length; infinite members never bound the length.
func Meet(cs ...Category) Category {
	if len(cs) == 0 {
		return Category{Tier: TierArray, Infinite: true}
	}
	meet := Category{Tier: TierArray, Infinite: true, Length: true}
	for _, c := range cs {
		meet.Tier = min(meet.Tier, c.Tier)
		if !c.Infinite {
			meet.Infinite = false
			if !c.Length {
				meet.Length = false
			}
		}
	}
	if meet.Infinite {
		meet.Length = false
	}
	return meet
}
