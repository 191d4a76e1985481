// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package ranges_test

import (
	"fmt"

	"github.com/dacapoday/ranges"
)

func Example() {
	r := ranges.IotaN(0, 10, 3)
	fmt.Println(ranges.CategoryOf[int](r))

	// Save gives an independent cursor.
	s := r.Save()
	r.PopFirst()
	fmt.Println(r.First(), s.First())

	for v := range ranges.All[int](r) {
		fmt.Print(v, ";")
	}
	fmt.Println()

	// Output:
	// random-access,finite,length
	// 3 0
	// 3;6;9;
}

func ExampleWindow() {
	r := ranges.Of("a", "b", "c", "d", "e", "f")
	fmt.Println(ranges.Collect[string](ranges.Window[string](r, ranges.Frac(1, 2), ranges.FromEnd(1))))
	fmt.Println(ranges.AtIndex[string](r, ranges.FromEnd(1)))

	// Output:
	// [d e]
	// f
}

func ExampleGenerate() {
	a, b := 0, 1
	fib := ranges.Generate(func() (int, bool) {
		v := a
		a, b = b, a+b
		return v, v < 50
	})
	fmt.Println(ranges.Collect[int](fib))

	// Output:
	// [0 1 1 2 3 5 8 13 21 34]
}
