// Package search implements interchangeable state-space search strategies
// over the core.Problem contract: uninformed (depth-first, breadth-first,
// depth-limited, iterative deepening), informed (best-first, A*, uniform
// cost), and local (hill climbing).
//
// # What
//
//   - TreeSearch(p, fringe): the generic driver; pop, goal-test, expand,
//     extend. No duplicate detection.
//   - GraphSearch(p, fringe): same loop plus a closed set of popped states;
//     each state is expanded at most once.
//   - DepthFirstTree / BreadthFirstTree / DepthFirstGraph / BreadthFirstGraph:
//     the LIFO and FIFO instantiations.
//   - DepthLimited(p, limit): recursive depth-first with a hard ceiling and a
//     tri-state Outcome (Goal, Cutoff, Fail).
//   - IterativeDeepening(p): DepthLimited at limit 1, 2, 3, ... until Goal or
//     Fail.
//   - BestFirstTree / BestFirstGraph(p, eval): priority fringe minimizing eval.
//   - AStar / AStarTree(p, h): best-first with eval = h(n) + PathCost.
//   - UniformCost(p): A* with a zero heuristic.
//   - HillClimb(p): steepest ascent to a local optimum of the problem's Value.
//
// Every strategy returns the goal (or local-optimum) node; reconstruct the
// solution with (*core.Node).Path or States. "No solution" is the explicit
// sentinel ErrNoSolution, never a panic or a nil result with nil error.
//
// # Optimality fine print
//
// GraphSearch closes a state on its FIRST pop and never reconsiders cheaper
// late arrivals, and the priority fringe has no decrease-key: duplicates are
// pushed and stale entries discarded against the closed set. The pair is
// cost-optimal exactly when pop order is non-decreasing in true path cost,
// which uniform-cost search guarantees unconditionally and A* guarantees
// under a consistent heuristic. Breadth-first variants are optimal only for
// uniform step costs, and depth-first variants not at all. This mirrors the
// classic formulation; it is intentionally NOT upgraded to full
// decrease-key/Dijkstra semantics.
//
// # Hill climbing and the value snapshot
//
// core.Expand records the value of the parent's state on every child, which
// would make all siblings of one expansion tie. HillClimb therefore ranks
// candidates by calling Value on each successor state directly, leaving the
// recorded Node.Value untouched for callers that rely on the historical
// expansion rule.
//
// # Termination
//
// TreeSearch on a cyclic space, and IterativeDeepening on an infinite space
// without a goal, legitimately never terminate. The caller-side bounds are
// WithContext (cancellation is checked once per expansion),
// WithMaxExpansions (ErrExpansionBudget), and, for IterativeDeepening,
// WithMaxDepth (ErrDepthBudget).
//
// # Options
//
//   - DefaultOptions(): background context, no-op hook, no budgets.
//   - WithContext(ctx):       cancellation and deadlines.
//   - WithOnExpand(fn):       observation hook per expansion.
//   - WithMaxExpansions(n):   expansion budget (0 = unlimited).
//   - WithMaxDepth(d):        deepening cap for IterativeDeepening only.
//
// # Errors
//
//   - ErrNilProblem / ErrNilFringe / ErrNilEval for invalid input.
//   - ErrNoSolution when the reachable space holds no goal.
//   - ErrOptionViolation for invalid options (negative budgets or limits).
//   - ErrExpansionBudget / ErrDepthBudget when caller-set bounds trip.
//   - ErrNoValue / ErrNoSuccessors from HillClimb.
//   - The context error on cancellation.
//
// # Complexity (b = branching factor, d = goal depth, m = max depth)
//
//   - Breadth-first: O(b^d) time and memory.
//   - Depth-first tree: O(b^m) time, O(b*m) fringe memory.
//   - DepthLimited: O(b^limit) time, O(limit) recursion depth.
//   - IterativeDeepening: O(b^d) time total (the geometric rounds sum), O(d) memory.
//   - A*/uniform-cost: O((V+E) log V) on finite graphs with the heap fringe.
package search
