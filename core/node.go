package core

import "iter"

// Node is a point in the search tree built over a Problem's state space.
//
// The search tree is distinct from the state graph: a state reached along
// different paths yields distinct Nodes unless a strategy deduplicates them.
// Each Node holds a shared, read-only reference to its parent, forming a tree
// rooted at the problem's initial state; following Parent links from any Node
// terminates at exactly one root, even when the underlying state graph has
// cycles. Nodes are never mutated after creation.
type Node[S comparable, A any] struct {
	// State is the problem state at this node.
	State S

	// Parent is the node this one was expanded from; nil only for the root.
	// Many children may share one parent.
	Parent *Node[S, A]

	// Action is the action that produced State from the parent's state.
	// Meaningful only when Parent is non-nil.
	Action A

	// PathCost is the accumulated cost from the root to this node.
	// Non-decreasing from root to descendant under well-formed cost rules.
	PathCost float64

	// Depth is the distance from the root in tree edges (root = 0).
	Depth int

	// Value is the optimization value recorded at creation time, valid only
	// when HasValue is true. Expand records the value of the PARENT's state
	// here, not this node's own state; the root records its own. See the
	// package documentation for the rationale.
	Value float64

	// HasValue reports whether Value is defined for this node.
	HasValue bool
}

// Root builds the root Node for p: the initial state at depth 0 with zero
// cost, no parent, and the initial state's own optimization value.
func Root[S comparable, A any](p Problem[S, A]) *Node[S, A] {
	s := p.Initial()
	v, ok := p.Value(s)

	return &Node[S, A]{State: s, PathCost: 0, Depth: 0, Value: v, HasValue: ok}
}

// Expand lazily produces a child Node for every (action, state) pair yielded
// by p.Successors(n.State), in the same order. Consumers may stop after any
// prefix; the underlying successor stream is only advanced on demand.
//
// Each child carries cost p.StepCost(n.PathCost, n.State, action, state),
// depth n.Depth+1, and the optimization value of n.State, the parent state.
// Expansion is deterministic for deterministic problems: expanding the same
// node twice yields structurally identical child sequences.
func Expand[S comparable, A any](p Problem[S, A], n *Node[S, A]) iter.Seq[*Node[S, A]] {
	return func(yield func(*Node[S, A]) bool) {
		// Parent-state value, shared by every child of this expansion.
		v, ok := p.Value(n.State)
		for a, s := range p.Successors(n.State) {
			child := &Node[S, A]{
				State:    s,
				Parent:   n,
				Action:   a,
				PathCost: p.StepCost(n.PathCost, n.State, a, s),
				Depth:    n.Depth + 1,
				Value:    v,
				HasValue: ok,
			}
			if !yield(child) {
				return
			}
		}
	}
}

// IsRoot reports whether n is the root of its search tree.
func (n *Node[S, A]) IsRoot() bool { return n.Parent == nil }

// Path returns the chain of nodes from n back to the root, n first and the
// root last. Its length is always n.Depth+1.
func (n *Node[S, A]) Path() []*Node[S, A] {
	path := make([]*Node[S, A], 0, n.Depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur)
	}

	return path
}

// States returns the states along the path from the ROOT to n, in travel
// order. It is the reverse of Path projected onto states, convenient for
// reporting a found solution.
func (n *Node[S, A]) States() []S {
	states := make([]S, n.Depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		states[cur.Depth] = cur.State
	}

	return states
}
