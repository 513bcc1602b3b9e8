// Package search implements the statespace strategy drivers: generic tree
// and graph search over a pluggable fringe, plus their depth-first and
// breadth-first instantiations. See doc.go for the package overview.
package search

import (
	"fmt"

	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/fringe"
)

// walker encapsulates the mutable state of one tree/graph search run.
type walker[S comparable, A any] struct {
	problem  core.Problem[S, A]
	fr       fringe.Fringe[*core.Node[S, A]]
	opts     Options
	closed   map[S]struct{} // nil for tree search
	expanded int
}

// TreeSearch runs the generic strategy driver of statespace: pop the next
// node in fringe order, test it for the goal, otherwise expand it and insert
// all children back into the fringe.
//
// TreeSearch never deduplicates revisited states, so a state may be expanded
// once per distinct path reaching it. That keeps the driver simple and
// correct on tree-shaped or small spaces, but it can run forever on cyclic
// state graphs; bound it with WithContext or WithMaxExpansions if needed.
//
// Returns ErrNilProblem or ErrNilFringe for invalid input,
// ErrOptionViolation for bad options, ErrNoSolution when the fringe empties
// without a goal, ErrExpansionBudget when the budget runs out, or the
// context error on cancellation.
func TreeSearch[S comparable, A any](
	p core.Problem[S, A],
	fr fringe.Fringe[*core.Node[S, A]],
	opts ...Option,
) (*core.Node[S, A], error) {
	// 1) Validate inputs.
	if p == nil {
		return nil, ErrNilProblem
	}
	if fr == nil {
		return nil, ErrNilFringe
	}

	// 2) Build options and catch any invalid ones immediately.
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// 3) Run the shared loop without a closed set.
	w := &walker[S, A]{problem: p, fr: fr, opts: o}

	return w.run()
}

// GraphSearch runs the same loop as TreeSearch but keeps a closed set of
// already-popped states: a popped node whose state is closed is discarded
// without re-expansion, so each state is expanded at most once and the
// search makes progress on cyclic state spaces.
//
// A state is closed on its first pop regardless of path cost; a cheaper path
// to an already-closed state is never reconsidered. GraphSearch is therefore
// cost-optimal only when the fringe pops nodes in non-decreasing cost order,
// as uniform-cost and A* with a consistent heuristic do. With arbitrary
// orderings it still decides reachability, just not optimality.
func GraphSearch[S comparable, A any](
	p core.Problem[S, A],
	fr fringe.Fringe[*core.Node[S, A]],
	opts ...Option,
) (*core.Node[S, A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if fr == nil {
		return nil, ErrNilFringe
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	w := &walker[S, A]{problem: p, fr: fr, opts: o, closed: make(map[S]struct{})}

	return w.run()
}

// run seeds the fringe with the root and loops until a goal, an empty
// fringe, cancellation, or an exhausted expansion budget.
func (w *walker[S, A]) run() (*core.Node[S, A], error) {
	w.fr.Push(core.Root(w.problem))

	for w.fr.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		n, _ := w.fr.Pop()

		// Deduplicate on first pop (graph search only).
		if w.closed != nil {
			if _, seen := w.closed[n.State]; seen {
				continue
			}
			w.closed[n.State] = struct{}{}
		}

		if w.problem.GoalTest(n.State) {
			return n, nil
		}

		if err := w.expand(n); err != nil {
			return nil, err
		}
	}

	return nil, ErrNoSolution
}

// expand charges the budget, fires the hook, and inserts all children of n
// into the fringe in successor order.
func (w *walker[S, A]) expand(n *core.Node[S, A]) error {
	if w.opts.MaxExpansions > 0 && w.expanded >= w.opts.MaxExpansions {
		return fmt.Errorf("%w: stopped after %d expansions", ErrExpansionBudget, w.expanded)
	}
	w.expanded++
	w.opts.OnExpand(n.Depth, n.PathCost)
	w.fr.Extend(core.Expand(w.problem, n))

	return nil
}
