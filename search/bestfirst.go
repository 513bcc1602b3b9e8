package search

import (
	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/fringe"
)

// Eval scores a search node for best-first ordering; lower is better.
// It must be pure: the fringe evaluates it once per insertion.
type Eval[S comparable, A any] func(n *core.Node[S, A]) float64

// Heuristic estimates the remaining cost from n's state to the nearest
// goal. A* is optimal when the heuristic is admissible (never overestimates
// the true remaining cost); the graph variant additionally requires
// consistency for the close-on-first-pop rule to be safe (see GraphSearch).
type Heuristic[S comparable, A any] func(n *core.Node[S, A]) float64

// BestFirstTree runs TreeSearch with a priority fringe that always pops the
// node minimizing eval.
func BestFirstTree[S comparable, A any](
	p core.Problem[S, A],
	eval Eval[S, A],
	opts ...Option,
) (*core.Node[S, A], error) {
	if eval == nil {
		return nil, ErrNilEval
	}

	return TreeSearch(p, fringe.NewPriority[*core.Node[S, A]](eval), opts...)
}

// BestFirstGraph runs GraphSearch with a priority fringe that always pops
// the node minimizing eval. Cost-optimality holds only when eval makes pop
// order non-decreasing in true path cost; see GraphSearch.
func BestFirstGraph[S comparable, A any](
	p core.Problem[S, A],
	eval Eval[S, A],
	opts ...Option,
) (*core.Node[S, A], error) {
	if eval == nil {
		return nil, ErrNilEval
	}

	return GraphSearch(p, fringe.NewPriority[*core.Node[S, A]](eval), opts...)
}

// AStar runs best-first graph search with eval(n) = h(n) + n.PathCost.
// With an admissible, consistent heuristic the returned node's PathCost is
// the minimum cost of any initial-to-goal path.
func AStar[S comparable, A any](
	p core.Problem[S, A],
	h Heuristic[S, A],
	opts ...Option,
) (*core.Node[S, A], error) {
	if h == nil {
		return nil, ErrNilEval
	}

	return BestFirstGraph(p, func(n *core.Node[S, A]) float64 { return h(n) + n.PathCost }, opts...)
}

// AStarTree is the tree-search variant of AStar: no closed set, so
// admissibility alone (without consistency) suffices for optimality, at the
// price of re-expanding states reached along multiple paths.
func AStarTree[S comparable, A any](
	p core.Problem[S, A],
	h Heuristic[S, A],
	opts ...Option,
) (*core.Node[S, A], error) {
	if h == nil {
		return nil, ErrNilEval
	}

	return BestFirstTree(p, func(n *core.Node[S, A]) float64 { return h(n) + n.PathCost }, opts...)
}

// UniformCost is AStar with a zero heuristic: nodes pop in non-decreasing
// PathCost order, so the first goal popped is a cheapest one.
func UniformCost[S comparable, A any](p core.Problem[S, A], opts ...Option) (*core.Node[S, A], error) {
	return BestFirstGraph(p, func(n *core.Node[S, A]) float64 { return n.PathCost }, opts...)
}
