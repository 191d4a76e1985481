// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

//go:build debug

// Package assert checks range preconditions.
// Checks panic only when built with -tags debug; otherwise every function is a no-op
// and a violated precondition is undefined behavior.
package assert

import "fmt"

// Enabled reports whether precondition checks are compiled in.
const Enabled = true

// NotEmpty panics if the range is empty.
func NotEmpty(method string, empty bool) {
	if empty {
		panic(fmt.Sprintf("%s: range is empty", method))
	}
}

// Supported panics if the operation is above the advertised capability.
func Supported(method string, ok bool, capability string) {
	if !ok {
		panic(fmt.Sprintf("%s: range is not %s", method, capability))
	}
}

// Index panics if i is outside [0, n).
func Index(method string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("%s: index %d out of range [0, %d)", method, i, n))
	}
}

// Bounds panics if [lo, hi) is not a window of [0, n].
// A negative n means the length is unbounded.
func Bounds(method string, lo, hi, n int) {
	if lo < 0 || hi < lo || (n >= 0 && hi > n) {
		panic(fmt.Sprintf("%s: slice [%d:%d] out of range [0, %d]", method, lo, hi, n))
	}
}

// True panics with msg if ok is false.
func True(method string, ok bool, msg string) {
	if !ok {
		panic(fmt.Sprintf("%s: %s", method, msg))
	}
}
