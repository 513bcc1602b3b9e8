// Package core_test provides a runnable example for the Problem contract.
package core_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/core"
)

// countdown is a tiny problem: from n, the only move is n-1; 0 is the goal.
type countdown struct {
	core.Defaults[int, string]
	core.SingleGoal[int]

	from int
}

func (c countdown) Initial() int { return c.from }

func (c countdown) Successors(s int) core.Successors[int, string] {
	return func(yield func(string, int) bool) {
		yield("dec", s-1)
	}
}

// ExampleExpand walks three expansions deep and reconstructs the path.
func ExampleExpand() {
	var p core.Problem[int, string] = countdown{from: 3}

	n := core.Root(p)
	for !p.GoalTest(n.State) {
		for child := range core.Expand(p, n) {
			n = child
		}
	}

	fmt.Println("states:", n.States())
	fmt.Println("depth:", n.Depth, "cost:", n.PathCost)
	// Output:
	// states: [3 2 1 0]
	// depth: 3 cost: 3
}
