// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

// rsub scans text with lazy ranges.
//
// Usage:
//
//	rsub subst -t table.yaml [file]     # replace {key} entries from a table
//	rsub block [--open (] [--close )] [file]  # print the rest of a bracket block
//
// Input is read from stdin when no file is given.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/dacapoday/ranges/internal/logging"
)

func main() {
	if err := newRootCommand("rsub").Execute(); err != nil {
		report(os.Stderr, err)
		os.Exit(1)
	}
}

// report logs err. Failures before the logger is configured, such as bad flags,
// are printed to w instead.
func report(w io.Writer, err error) {
	if logging.Logger.GetLevel() == zerolog.Disabled {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	logging.Err(err).Msg("rsub failed")
}
