// Package mapgraph provides the small undirected weighted graph backing the
// example route-finding problem: adjacency with float64 weights plus
// optional 2D coordinates for straight-line heuristics.
//
// # What
//
//   - New / AddVertex / AddEdge(u, v, w): build from an edge list; every edge
//     is inserted in both directions.
//   - Neighbors(v): lazy (neighbor, weight) stream in sorted order.
//   - Weight(u, v): edge weight, +Inf when u and v are not directly connected.
//   - SetLocation / Location / HasLocation: vertex coordinates; Location
//     panics for a vertex without one (caller misconfiguration is fatal).
//   - Point.Dist: Euclidean distance.
//
// # Why
//
//   - The search core never touches this package; it exists so the problems
//     package and the demos have a realistic weighted space to search.
//   - Sorted neighbor order makes every traversal over the graph
//     reproducible run to run.
//
// Build the graph fully before sharing it; it is read-only afterwards and
// deliberately carries no locks.
package mapgraph
