// Package core defines the Problem contract and the search-tree Node type
// shared by every search strategy in statespace.
//
// This file declares Problem, the embeddable capability defaults
// (Defaults, SingleGoal), and the successor-sequence aliases.
package core

// Successors is a lazy, restartable stream of (action, resulting state)
// pairs, shaped like iter.Seq2[A, S]. Strategies consume it incrementally
// and may stop after any prefix, so implementations must generate pairs on
// demand rather than materialize the whole set; the state space behind it
// may be unbounded.
type Successors[S comparable, A any] func(yield func(A, S) bool)

// Problem is the contract every search target implements.
//
// S is the state type and must be comparable so that deduplicating strategies
// can key a visited-set on it. A is the action type.
//
// A Problem is a configuration object: it is never mutated after construction,
// and all five capabilities must be pure. Embed Defaults to inherit unit step
// costs and an undefined optimization value, and SingleGoal to inherit an
// equality goal test against a designated goal state; redeclare any method on
// the concrete problem to override.
type Problem[S comparable, A any] interface {
	// Initial returns the start state. Called once per search invocation.
	Initial() S

	// Successors enumerates the states directly reachable from s, paired
	// with the action producing them. The returned sequence must be lazy:
	// depth-limited search and early goal detection stop consuming it after
	// a prefix.
	Successors(s S) Successors[S, A]

	// GoalTest reports whether s satisfies the search goal.
	GoalTest(s S) bool

	// StepCost computes the new accumulated path cost when stepping from
	// `from` to `to` via action a, given the cost accumulated so far.
	// Must be pure and side-effect free.
	StepCost(acc float64, from S, a A, to S) float64

	// Value returns the optimization value of s for local search.
	// The second result is false when the problem defines no value.
	Value(s S) (float64, bool)
}

// Defaults supplies the default StepCost and Value capabilities.
// Embed it in a problem and redeclare either method to override.
type Defaults[S comparable, A any] struct{}

// StepCost implements unit-cost search: each step costs the accumulated
// cost plus one, regardless of the states and action involved.
func (Defaults[S, A]) StepCost(acc float64, _ S, _ A, _ S) float64 { return acc + 1 }

// Value reports that the problem defines no optimization value.
func (Defaults[S, A]) Value(S) (float64, bool) { return 0, false }

// SingleGoal supplies the default goal test: equality against one
// designated goal state. Problems with multiple or implicit goals
// declare their own GoalTest instead of embedding it.
type SingleGoal[S comparable] struct {
	// Goal is the designated goal state.
	Goal S
}

// GoalTest reports whether s equals the designated goal state.
func (g SingleGoal[S]) GoalTest(s S) bool { return s == g.Goal }
