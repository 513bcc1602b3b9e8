// Package statespace is a generic, reusable framework for state-space
// search: describe a problem once (a start state, a lazy successor rule,
// a goal test) and explore it with interchangeable strategies.
//
// 🚀 What is statespace?
//
//	A small, pure-Go library that brings together:
//		• Problem contract: Initial, lazy Successors, GoalTest, StepCost, Value
//		• Search-tree Nodes: parent-linked, immutable, path reconstruction
//		• Uninformed search: depth-first, breadth-first, depth-limited,
//		  iterative deepening
//		• Informed search: best-first, A*, uniform-cost
//		• Local search: hill climbing
//		• Pluggable fringes: LIFO, FIFO, min-priority
//
// ✨ Why choose statespace?
//
//   - One contract, many strategies - write the problem once, swap algorithms
//   - Lazy successor streams - infinite state spaces are first-class
//   - Explicit outcomes - "no solution" and "cutoff vs fail" are values, not panics
//   - Extensible - functional options, expansion hooks, context cancellation
//
// Everything is organized under five subpackages:
//
//	core/     - Problem contract, Node, Expand, Path
//	fringe/   - LIFO / FIFO / priority containers of pending nodes
//	search/   - every strategy, from tree search to hill climbing
//	mapgraph/ - weighted coordinate graph for the route-finding example
//	problems/ - ready-made example problems (route, words, slope)
//
// Quick example, breadth-first route finding:
//
//	g := mapgraph.New()
//	g.AddEdge("A", "B", 5)
//	g.AddEdge("A", "C", 3)
//	g.AddEdge("B", "D", 6)
//	g.AddEdge("C", "D", 4)
//	p, _ := problems.NewRoute(g, "A", "D")
//	goal, err := search.BreadthFirstGraph[string, string](p)
//	if err != nil {
//	    // errors.Is(err, search.ErrNoSolution) means the space holds no goal
//	}
//	fmt.Println(goal.States()) // [A B D]
//
// See cmd/statespace for a runnable demo CLI.
package statespace
