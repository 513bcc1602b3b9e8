// Package search_test provides runnable examples for the strategy drivers.
// Each example is runnable via "go test -run Example", showing both code
// and expected output.
package search_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/mapgraph"
	"github.com/katalvlaran/statespace/problems"
	"github.com/katalvlaran/statespace/search"
)

// exampleMap is the 4-vertex demo map: two routes from A to D, one short in
// steps (via B, cost 11) and one cheap in weight (via C, cost 7).
func exampleMap() *mapgraph.Graph {
	g := mapgraph.New()
	g.AddEdge("A", "B", 5)
	g.AddEdge("A", "C", 3)
	g.AddEdge("B", "D", 6)
	g.AddEdge("C", "D", 4)

	return g
}

// ExampleBreadthFirstGraph finds a fewest-steps route, ignoring weights.
func ExampleBreadthFirstGraph() {
	p, _ := problems.NewRoute(exampleMap(), "A", "D")

	goal, err := search.BreadthFirstGraph[string, string](p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("route:", goal.States(), "steps:", goal.Depth)
	// Output: route: [A B D] steps: 2
}

// ExampleUniformCost finds the cheapest route by accumulated edge weight.
func ExampleUniformCost() {
	p, _ := problems.NewRoute(exampleMap(), "A", "D")

	goal, err := search.UniformCost[string, string](p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("route: %v cost: %.0f\n", goal.States(), goal.PathCost)
	// Output: route: [A C D] cost: 7
}

// ExampleDepthLimited shows the tri-state outcome: the goal sits at depth
// 2, so limit 1 cuts off while limit 2 succeeds.
func ExampleDepthLimited() {
	p, _ := problems.NewRoute(exampleMap(), "A", "D")

	_, out, _ := search.DepthLimited[string, string](p, 1)
	fmt.Println("limit 1:", out)

	goal, out, _ := search.DepthLimited[string, string](p, 2)
	fmt.Println("limit 2:", out, goal.States())
	// Output:
	// limit 1: Cutoff
	// limit 2: Goal [A B D]
}

// ExampleIterativeDeepening searches the unbounded integer line; rounds
// keep deepening until the goal depth is reachable.
func ExampleIterativeDeepening() {
	var p core.Problem[int, int] = problems.NewSlope(0, 4)

	goal, err := search.IterativeDeepening(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("state:", goal.State, "depth:", goal.Depth)
	// Output: state: 4 depth: 4
}

// ExampleHillClimb climbs the slope's value function to its peak.
func ExampleHillClimb() {
	var p core.Problem[int, int] = problems.NewSlope(10, 3)

	top, err := search.HillClimb(p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("local optimum:", top.State)
	// Output: local optimum: 3
}
