// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dacapoday/ranges/internal/logging"
	"github.com/dacapoday/ranges/mem"
)

func newRootCommand(programName string) *cobra.Command {
	var level string
	cmd := &cobra.Command{
		Use:           programName,
		Short:         "Substitute and scan delimited text",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return logging.Configure(cmd.ErrOrStderr(), level)
		},
	}
	cmd.PersistentFlags().StringVar(&level, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.AddCommand(newSubstCommand(), newBlockCommand())
	return cmd
}

// readInput loads the named file, or stdin when args is empty, into a buffer.
func readInput(cmd *cobra.Command, args []string) (*mem.Buffer[byte], error) {
	var r io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, name = f, args[0]
	}

	var buf mem.Buffer[byte]
	n, err := mem.ReadFrom(&buf, r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	log := logging.With().Str("input", name).Logger()
	log.Debug().Str("size", humanize.Bytes(uint64(n))).Msg("read input")
	return &buf, nil
}
