// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/adapt"
	"github.com/dacapoday/ranges/internal/logging"
	"github.com/dacapoday/ranges/search"
)

// table is the YAML document read by the subst command.
//
//	start: "{"
//	end: "}"
//	fallback: "?"
//	entries:
//	  name: World
type table struct {
	Start    string            `yaml:"start"`
	End      string            `yaml:"end"`
	Fallback string            `yaml:"fallback"`
	Entries  map[string]string `yaml:"entries"`
}

func loadTable(path string) (*table, error) {
	t := &table{Start: "{", End: "}"}
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return t, nil
}

// pairs returns the entries as a range of byte pairs, ordered by key.
func (t *table) pairs() ranges.Forward[adapt.Pair[[]byte, []byte]] {
	keys := slices.Sorted(maps.Keys(t.Entries))
	return adapt.Map(ranges.Input[string](ranges.Of(keys...)), func(k string) adapt.Pair[[]byte, []byte] {
		return adapt.MakePair([]byte(k), []byte(t.Entries[k]))
	})
}

func newSubstCommand() *cobra.Command {
	var (
		path     string
		fallback string
	)
	cmd := &cobra.Command{
		Use:   "subst [file]",
		Short: "Replace delimited entries with values from a YAML table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTable(path)
			if err != nil {
				return err
			}
			if len(t.Entries) == 0 {
				logging.Warn().Str("table", path).Msg("table has no entries")
			}
			if cmd.Flags().Changed("fallback") {
				t.Fallback = fallback
			}
			if err := (search.Block[byte]{Open: []byte(t.Start), Close: []byte(t.End)}).Validate(); err != nil {
				return fmt.Errorf("table %s: %w", path, err)
			}

			buf, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out := search.Substitute(make([]byte, 0, buf.Len()), ranges.Input[byte](buf.View()),
				[]byte(t.Start), []byte(t.End), search.Table[byte](t.pairs()), []byte(t.Fallback))

			logging.Info().
				Int("entries", len(t.Entries)).
				Str("in", humanize.Bytes(uint64(buf.Len()))).
				Str("out", humanize.Bytes(uint64(len(out)))).
				Msg("substituted")
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&path, "table", "t", "", "YAML table with start, end, fallback and entries")
	cmd.Flags().StringVar(&fallback, "fallback", "", "replacement for keys missing from the table")
	return cmd
}
