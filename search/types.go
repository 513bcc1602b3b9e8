// Package search provides tunable options, sentinel errors, and the
// depth-limited Outcome type shared by every strategy in this package.
package search

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned when a nil Problem is passed to a strategy.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilFringe is returned when a nil fringe is passed to a driver.
	ErrNilFringe = errors.New("search: fringe is nil")

	// ErrNilEval is returned when a best-first strategy receives a nil
	// evaluation function or heuristic.
	ErrNilEval = errors.New("search: evaluation function is nil")

	// ErrNoSolution is returned when a strategy exhausts the reachable state
	// space without finding a goal. It is the explicit "no result" value,
	// distinct from any execution failure.
	ErrNoSolution = errors.New("search: no solution found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionBudget is returned when a strategy would exceed the node
	// expansion budget set with WithMaxExpansions.
	ErrExpansionBudget = errors.New("search: expansion budget exhausted")

	// ErrDepthBudget is returned by IterativeDeepening when the depth cap set
	// with WithMaxDepth is reached while the result is still a cutoff.
	ErrDepthBudget = errors.New("search: depth budget exhausted")

	// ErrNoValue is returned by HillClimb when the problem defines no
	// optimization value for a state it must rank.
	ErrNoValue = errors.New("search: problem defines no optimization value")

	// ErrNoSuccessors is returned by HillClimb when the current state has no
	// successors to rank.
	ErrNoSuccessors = errors.New("search: state has no successors")
)

// Outcome is the tri-state result of a depth-limited search.
//
// The distinction between Fail and Cutoff is load-bearing: iterative
// deepening retries at a greater depth on Cutoff and stops permanently on
// Fail. It is a tagged value, not an error, because neither branch is a
// failure of execution.
type Outcome uint8

const (
	// Fail means the entire reachable subtree within the limit was exhausted
	// with no goal and no cutoff: no goal exists at any depth.
	Fail Outcome = iota

	// Cutoff means the depth limit was reached along at least one branch, so
	// an unexplored region may still contain a goal.
	Cutoff

	// Goal means a goal node was found.
	Goal
)

// String returns the outcome name for diagnostics.
func (o Outcome) String() string {
	switch o {
	case Fail:
		return "Fail"
	case Cutoff:
		return "Cutoff"
	case Goal:
		return "Goal"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Option configures strategy behavior via functional arguments.
// An invalid Option (e.g. a negative budget) is recorded internally and
// surfaced as ErrOptionViolation when the strategy is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing strategy execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	// It is the caller-side bound for searches that may never terminate
	// (cyclic spaces under tree search, endless iterative deepening).
	Ctx context.Context

	// OnExpand is called immediately before a node is expanded, with the
	// node's depth and accumulated path cost.
	OnExpand func(depth int, pathCost float64)

	// MaxExpansions, if > 0, aborts the search with ErrExpansionBudget once
	// that many nodes have been expanded. 0 disables the budget.
	MaxExpansions int

	// MaxDepth, if > 0, caps the deepening limit of IterativeDeepening;
	// reaching the cap while still cut off yields ErrDepthBudget.
	// 0 means unbounded deepening. Ignored by every other strategy.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no-op hook, no expansion budget, unbounded deepening.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(int, float64) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback invoked before each node expansion.
func WithOnExpand(fn func(depth int, pathCost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions aborts the search after n node expansions.
//
//	n > 0:  budget of n expansions
//	n == 0: explicit no budget
//	n < 0:  invalid option, surfaces as ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithMaxDepth caps IterativeDeepening's deepening limit.
//
//	d > 0:  deepen no further than depth d
//	d == 0: explicit unbounded deepening
//	d < 0:  invalid option, surfaces as ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// buildOptions folds opts over the defaults and reports the first recorded
// option violation, if any.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
