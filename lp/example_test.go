// Package lp_test - runnable, deterministic example with a stable Output block.
package lp_test

import (
	"fmt"

	"github.com/katalvlaran/dietlp/lp"
)

// ExampleSolve minimizes a two-variable objective over a mix of row shapes.
func ExampleSolve() {
	m := lp.Model{
		Obj: []float64{2, 3},
		Constraints: []lp.Constraint{
			lp.AtLeast([]float64{1, 1}, 10), // x + y ≥ 10
			lp.AtMost([]float64{1, 0}, 8),   // x ≤ 8
		},
	}

	sol, err := lp.Solve(m)
	if err != nil {
		fmt.Println("solve failed:", err)

		return
	}

	fmt.Printf("objective: %.0f\n", sol.Obj)
	fmt.Printf("x: %.0f, y: %.0f\n", sol.X[0], sol.X[1])
	// Output:
	// objective: 22
	// x: 8, y: 2
}
