package search

import (
	"fmt"

	"github.com/katalvlaran/statespace/core"
)

// HillClimb performs steepest-ascent local search: starting at the initial
// state, it repeatedly ranks the successors of the current node by the
// problem's Value and moves to the best one, but only while that move is a
// strict improvement. A tie or a decrease halts at the CURRENT node, which
// is returned as the local optimum. The returned node is a point, not a
// goal: its parent chain records how the climb got there, but HillClimb
// never goal-tests.
//
// Candidate states are ranked by p.Value applied to each successor state
// directly. Node.Value as recorded by core.Expand snapshots the parent's
// state and would make every sibling tie; see the package documentation for
// this deliberate deviation.
//
// Ties between equally valued successors resolve to the first one yielded,
// keeping the climb deterministic for deterministic problems.
//
// Errors: ErrNilProblem for a nil problem, ErrNoValue when the problem
// defines no value for a state being ranked, ErrNoSuccessors when the
// current state has no successors to rank, ErrExpansionBudget or the
// context error when the caller-set bounds trip.
func HillClimb[S comparable, A any](p core.Problem[S, A], opts ...Option) (*core.Node[S, A], error) {
	// 1) Validate inputs and options.
	if p == nil {
		return nil, ErrNilProblem
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2) Seed the climb at the root; the start state must carry a value.
	cur := core.Root(p)
	curVal, ok := p.Value(cur.State)
	if !ok {
		return nil, fmt.Errorf("%w: at the initial state", ErrNoValue)
	}

	// 3) Climb while the best neighbor strictly improves.
	expanded := 0
	for {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		if o.MaxExpansions > 0 && expanded >= o.MaxExpansions {
			return nil, fmt.Errorf("%w: stopped after %d expansions", ErrExpansionBudget, expanded)
		}
		expanded++
		o.OnExpand(cur.Depth, cur.PathCost)

		// argmax over the successors of cur
		var best *core.Node[S, A]
		var bestVal float64
		for child := range core.Expand(p, cur) {
			v, ok := p.Value(child.State)
			if !ok {
				return nil, fmt.Errorf("%w: at a successor of depth %d", ErrNoValue, cur.Depth)
			}
			if best == nil || v > bestVal {
				best, bestVal = child, v
			}
		}
		if best == nil {
			return nil, fmt.Errorf("%w: at depth %d", ErrNoSuccessors, cur.Depth)
		}

		// "<=" means stop: halt at the current node, not the neighbor.
		if bestVal <= curVal {
			return cur, nil
		}
		cur, curVal = best, bestVal
	}
}
