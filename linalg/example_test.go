// SPDX-License-Identifier: MIT

package linalg_test

import (
	"fmt"

	"github.com/katalvlaran/econlab/linalg"
)

// ExampleSolve solves a 2×2 system in closed form.
func ExampleSolve() {
	m := linalg.Matrix{{1, 2}, {3, 4}}
	x, err := linalg.Solve(m, linalg.Vector{1, 0})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.2f %.2f\n", x[0], x[1])
	// Output: -2.00 1.50
}
