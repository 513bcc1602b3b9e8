// Package problems supplies ready-made example problems for the statespace
// strategies; they double as the fixtures the package tests search over.
//
//   - Route: route finding over a mapgraph.Graph. Step costs are edge
//     weights; EuclideanHeuristic makes it an A* showcase.
//   - Words: word building by prepending alphabet letters, bounded by a
//     maximum length. A uniform-cost space with a large branching factor.
//   - Slope: a peaked value function on the unbounded integer line, for hill
//     climbing and iterative deepening.
//
// All three embed core.Defaults and core.SingleGoal and override only what
// they need, which is exactly the pattern to copy for a new problem.
package problems
