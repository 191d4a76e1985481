// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ccoveille/go-safecast/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/internal/logging"
	"github.com/dacapoday/ranges/search"
)

// parseDelims parses "OPEN CLOSE" pairs.
func parseDelims(specs []string) ([]search.Delims[byte], error) {
	ds := make([]search.Delims[byte], 0, len(specs))
	for _, s := range specs {
		f := strings.Fields(s)
		if len(f) != 2 {
			return nil, fmt.Errorf("comment %q: want \"OPEN CLOSE\"", s)
		}
		ds = append(ds, search.Delims[byte]{Open: []byte(f[0]), Close: []byte(f[1])})
	}
	return ds, nil
}

func newBlockCommand() *cobra.Command {
	var (
		openTok, closeTok, stopTok string
		comments, nested           []string
		depth                      uint
	)
	cmd := &cobra.Command{
		Use:   "block [file]",
		Short: "Print input up to the bracket that closes the current block",
		Long: "Input is taken to start inside a block nested --depth levels deep. " +
			"The block is printed through its closing bracket.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			counter, err := safecast.Convert[int](depth)
			if err != nil {
				return fmt.Errorf("depth: %w", err)
			}
			b := search.Block[byte]{Open: []byte(openTok), Close: []byte(closeTok), Stop: []byte(stopTok)}
			if b.Comments, err = parseDelims(comments); err != nil {
				return err
			}
			if b.RecursiveComments, err = parseDelims(nested); err != nil {
				return err
			}
			if err := b.Validate(); err != nil {
				return err
			}

			buf, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			start, consumed := counter, 0
			block := ranges.Collect[byte](search.ReadRecursiveBlockAdvance(ranges.Input[byte](buf.View()), &counter, &consumed, b))
			if _, err := cmd.OutOrStdout().Write(block); err != nil {
				return err
			}
			stopped := counter == start && len(b.Stop) > 0 && bytes.HasSuffix(block, b.Stop)

			logging.Info().
				Str("consumed", humanize.Bytes(uint64(consumed))).
				Str("remaining", humanize.Bytes(uint64(buf.Len()-consumed))).
				Int("depth", counter).
				Bool("stopped", stopped).
				Msg("scanned block")
			if counter > 0 && !stopped {
				logging.Warn().Int("open", counter).Msg("input ended inside the block")
				return fmt.Errorf("%w: %d open", ranges.ErrUnterminated, counter)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&openTok, "open", "(", "opening bracket")
	cmd.Flags().StringVar(&closeTok, "close", ")", "closing bracket")
	cmd.Flags().StringVar(&stopTok, "stop", "", "token that ends the block at its own depth")
	cmd.Flags().StringArrayVar(&comments, "comment", nil, "flat comment delimiters as \"OPEN CLOSE\"")
	cmd.Flags().StringArrayVar(&nested, "nested-comment", nil, "nesting comment delimiters as \"OPEN CLOSE\"")
	cmd.Flags().UintVarP(&depth, "depth", "d", 1, "number of blocks open at the start of input")
	return cmd
}
