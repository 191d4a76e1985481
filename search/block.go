// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"fmt"

	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/adapt"
	"github.com/dacapoday/ranges/internal/assert"
)

// Delims is a pair of opening and closing tokens.
type Delims[T comparable] struct {
	Open, Close []T
}

// Block describes a balanced-bracket scan.
//
// Comments are flat: their content is skipped up to the first closing token.
// RecursiveComments nest, like /* /* */ */, and are skipped by a nested scan.
// Brackets inside either kind of comment are not counted.
type Block[T comparable] struct {
	Open, Close       []T
	Stop              []T
	Comments          []Delims[T]
	RecursiveComments []Delims[T]
}

// Validate reports empty delimiters. Stop may be empty, meaning no stop token.
func (b Block[T]) Validate() error {
	if len(b.Open) == 0 {
		return fmt.Errorf("open bracket: %w", ranges.ErrEmptyDelimiter)
	}
	if len(b.Close) == 0 {
		return fmt.Errorf("close bracket: %w", ranges.ErrEmptyDelimiter)
	}
	for i, d := range b.Comments {
		if len(d.Open) == 0 || len(d.Close) == 0 {
			return fmt.Errorf("comment %d: %w", i, ranges.ErrEmptyDelimiter)
		}
	}
	for i, d := range b.RecursiveComments {
		if len(d.Open) == 0 || len(d.Close) == 0 {
			return fmt.Errorf("recursive comment %d: %w", i, ranges.ErrEmptyDelimiter)
		}
	}
	return nil
}

type scanState uint8

const (
	scanning scanState = iota
	inFlatComment
	inRecursiveComment
	done
)

// ReadRecursiveBlockAdvance consumes r up to the bracket that balances the block.
//
// Every Open token increments *counter and every Close token decrements it; the
// scan ends right after the Close that brings *counter to 0. Callers usually start
// with *counter at 1, just past an opening bracket. A Stop token seen while
// *counter is back at its starting value also ends the scan, with *counter
// unchanged. Close is matched before Open, so identical tokens only close.
//
// The consumed elements, closing token included, are returned as a range over the
// input and the count is added to *index when index is not nil. If the
// input runs out first, the whole remainder is consumed and *counter stays above
// 0: check the counter, not the result, to detect an unterminated block.
// That check needs a start at depth 1 or more. Started at 0, outside any block,
// input that never opens a block is consumed whole and leaves *counter at 0,
// the same as a block closed by the last token; such callers also check that
// the result ends with Close.
func ReadRecursiveBlockAdvance[T comparable](r ranges.Input[T], counter, index *int, b Block[T]) *adapt.TakeRange[T] {
	assert.True("ReadRecursiveBlockAdvance", len(b.Open) > 0 && len(b.Close) > 0, "empty bracket")
	start := ranges.Save(r)
	n := scanBlock(r, counter, b)
	addIndex(index, n)
	return adapt.Take[T](start, n)
}

func scanBlock[T comparable](r ranges.Input[T], counter *int, b Block[T]) (n int) {
	base := *counter
	state := scanning
	var comment Delims[T]
	for state != done {
		switch state {
		case scanning:
			if r.Empty() {
				state = done
				continue
			}
			if d, ok := advanceDelims(r, b.Comments); ok {
				n += len(d.Open)
				comment, state = d, inFlatComment
				continue
			}
			if d, ok := advanceDelims(r, b.RecursiveComments); ok {
				n += len(d.Open)
				comment, state = d, inRecursiveComment
				continue
			}
			if StartsWithAdvance(r, b.Close) {
				n += len(b.Close)
				*counter--
				if *counter == 0 {
					state = done
				}
				continue
			}
			if StartsWithAdvance(r, b.Open) {
				n += len(b.Open)
				*counter++
				continue
			}
			if *counter == base && len(b.Stop) > 0 && StartsWithAdvance(r, b.Stop) {
				n += len(b.Stop)
				state = done
				continue
			}
			r.PopFirst()
			n++
		case inFlatComment:
			if FindAdvanceRange(r, comment.Close, &n) {
				n += ranges.PopFirstN(r, len(comment.Close))
			}
			state = scanning
		case inRecursiveComment:
			nested := 1
			n += scanBlock(r, &nested, Block[T]{Open: comment.Open, Close: comment.Close})
			state = scanning
		}
	}
	return n
}

// advanceDelims advances r past the first opening token of ds that r starts with.
func advanceDelims[T comparable](r ranges.Input[T], ds []Delims[T]) (Delims[T], bool) {
	for _, d := range ds {
		if StartsWithAdvance(r, d.Open) {
			return d, true
		}
	}
	return Delims[T]{}, false
}
