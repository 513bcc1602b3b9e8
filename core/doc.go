// Package core defines the two building blocks every statespace strategy
// shares: the Problem contract describing WHAT to search, and the Node type
// recording HOW a state was reached.
//
// # What
//
//   - Problem[S, A]: a pure, immutable capability set
//   - Initial() - the start state
//   - Successors(s) - lazy (action, state) stream of directly reachable states
//   - GoalTest(s) - goal predicate
//   - StepCost(acc, from, a, to) - incremental path-cost rule
//   - Value(s) - optional optimization value for local search
//   - Node[S, A]: search-tree point with State, Parent link, Action, PathCost,
//     Depth and an optional Value snapshot.
//   - Root(p): the single root node of a search invocation.
//   - Expand(p, n): lazy child-node stream in successor order.
//   - (*Node).Path(): parent-chain walk, node first, root last.
//   - (*Node).States(): solution states in travel order, root first.
//
// # Why
//
//   - Strategies (tree, graph, depth-limited, best-first, local) depend only
//     on this contract, never on a concrete state space.
//   - Laziness lets a strategy take a bounded prefix of an unbounded successor
//     stream: iterative deepening and local search run on infinite spaces.
//   - Nodes are immutable after creation and parents are shared read-only, so
//     overlapping path prefixes retained by fringes or results are safe.
//
// # Defaults
//
// Embed Defaults for unit step costs (acc+1) and an undefined Value, and
// SingleGoal for an equality goal test against one designated goal state.
// Redeclare any method on the concrete problem to override.
//
// # Value snapshot caveat
//
// Expand records the optimization value of the PARENT's state on every child;
// only the root carries the value of its own state. This mirrors the
// historical behavior of the expansion rule and is kept for compatibility.
// Hill climbing therefore re-evaluates candidate states directly instead of
// trusting Node.Value; see package search for the consequence.
//
// # Invariants
//
//   - Depth(child) = Depth(parent) + 1; the root has Depth 0, cost 0, no parent.
//   - Parent chains are acyclic and terminate at exactly one root.
//   - len(n.Path()) == n.Depth + 1.
//   - Expansion is deterministic for deterministic problems.
//
// # Complexity
//
//   - Root: O(1) plus one Value call.
//   - Expand: O(1) per consumed child plus one StepCost call each.
//   - Path/States: O(Depth).
package core
