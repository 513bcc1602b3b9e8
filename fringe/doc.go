// Package fringe implements the ordered containers of pending nodes that
// statespace strategies plug into the generic tree/graph search drivers.
//
// # What
//
//   - Fringe[T]: Len / Push / Extend / Pop over a strategy-defined order.
//   - NewLIFO: stack order, most recently pushed first (depth-first search).
//   - NewFIFO: queue order, earliest pushed first (breadth-first search).
//   - NewPriority(score): min-first binary heap (best-first, A*, uniform cost).
//
// # Determinism
//
// The priority fringe breaks score ties by insertion order, so two runs over
// the same problem pop nodes in the same sequence. LIFO and FIFO are
// trivially deterministic.
//
// # Decrease-key
//
// NewPriority scores items once, at insertion. There is no decrease-key:
// a caller that finds a better score for a pending item pushes a duplicate
// and lets the stale entry surface later (the lazy strategy used by the
// search drivers, which skip already-closed states on pop).
//
// # Complexity (n = pending items)
//
//   - LIFO/FIFO: O(1) amortized Push and Pop.
//   - Priority:  O(log n) Push and Pop, O(k log n) Extend of k items.
package fringe
