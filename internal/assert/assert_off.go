// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

//go:build !debug

package assert

// Enabled reports whether precondition checks are compiled in.
const Enabled = false

// NotEmpty is a no-op in production.
// Enable with -tags debug for runtime checks.
func NotEmpty(string, bool) {}

// Supported is a no-op in production.
func Supported(string, bool, string) {}

// Index is a no-op in production.
func Index(string, int, int) {}

// Bounds is a no-op in production.
func Bounds(string, int, int, int) {}

// True is a no-op in production.
func True(string, bool, string) {}
