package search

import (
	"fmt"

	"github.com/katalvlaran/statespace/core"
)

// limitWalker encapsulates the mutable state of one depth-limited descent.
type limitWalker[S comparable, A any] struct {
	problem  core.Problem[S, A]
	opts     Options
	limit    int
	expanded int
}

// DepthLimited explores depth-first from the initial state, never descending
// below limit tree edges, and reports a tri-state Outcome:
//
//   - Goal:   a goal node was found (returned alongside).
//   - Cutoff: the limit was hit on at least one branch, so a goal may still
//     exist deeper.
//   - Fail:   the reachable subtree within the limit holds no goal at all.
//
// At each node the rule is: goal test first; then Cutoff when the node sits
// exactly at the limit; otherwise combine the children's results, where any
// Goal wins immediately (remaining siblings are never generated, which is
// why successor streams must be lazy) and Cutoff beats Fail.
//
// limit must be non-negative; a negative limit surfaces as
// ErrOptionViolation. The Outcome is meaningful only when err is nil.
func DepthLimited[S comparable, A any](
	p core.Problem[S, A],
	limit int,
	opts ...Option,
) (*core.Node[S, A], Outcome, error) {
	// 1) Validate inputs.
	if p == nil {
		return nil, Fail, ErrNilProblem
	}
	if limit < 0 {
		return nil, Fail, fmt.Errorf("%w: depth limit cannot be negative (%d)", ErrOptionViolation, limit)
	}

	// 2) Build options.
	o, err := buildOptions(opts)
	if err != nil {
		return nil, Fail, err
	}

	// 3) Recurse from the root.
	w := &limitWalker[S, A]{problem: p, opts: o, limit: limit}

	return w.descend(core.Root(p))
}

// descend applies the recursive depth-limited rule at n.
func (w *limitWalker[S, A]) descend(n *core.Node[S, A]) (*core.Node[S, A], Outcome, error) {
	// cancellation check (once per node)
	select {
	case <-w.opts.Ctx.Done():
		return nil, Fail, w.opts.Ctx.Err()
	default:
	}

	if w.problem.GoalTest(n.State) {
		return n, Goal, nil
	}
	if n.Depth == w.limit {
		return nil, Cutoff, nil
	}

	if w.opts.MaxExpansions > 0 && w.expanded >= w.opts.MaxExpansions {
		return nil, Fail, fmt.Errorf("%w: stopped after %d expansions", ErrExpansionBudget, w.expanded)
	}
	w.expanded++
	w.opts.OnExpand(n.Depth, n.PathCost)

	cut := false
	for child := range core.Expand(w.problem, n) {
		g, out, err := w.descend(child)
		if err != nil {
			return nil, Fail, err
		}
		if out == Goal {
			// short-circuits the remaining siblings
			return g, Goal, nil
		}
		if out == Cutoff {
			cut = true
		}
	}
	if cut {
		return nil, Cutoff, nil
	}

	return nil, Fail, nil
}

// IterativeDeepening calls DepthLimited with limit 1, 2, 3, ... until a
// round reports Goal (the node is returned) or Fail (ErrNoSolution: deeper
// rounds cannot succeed either). Rounds reporting Cutoff deepen by one.
//
// On an infinite state space with no goal the deepening never ends by
// itself; that is accepted behavior, not a bug. Bound it with WithMaxDepth
// (ErrDepthBudget once the cap is reached while still cut off),
// WithContext, or WithMaxExpansions (the expansion budget applies per
// round, not across rounds).
func IterativeDeepening[S comparable, A any](p core.Problem[S, A], opts ...Option) (*core.Node[S, A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	for limit := 1; ; limit++ {
		n, out, err := DepthLimited(p, limit, opts...)
		if err != nil {
			return nil, err
		}
		switch out {
		case Goal:
			return n, nil
		case Fail:
			return nil, ErrNoSolution
		}
		// Cutoff: deepen, unless the cap says otherwise.
		if o.MaxDepth > 0 && limit >= o.MaxDepth {
			return nil, fmt.Errorf("%w: still cut off at depth %d", ErrDepthBudget, o.MaxDepth)
		}
	}
}
