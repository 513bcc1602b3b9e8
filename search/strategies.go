package search

import (
	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/fringe"
)

// DepthFirstTree runs TreeSearch with a stack-ordered fringe: the most
// recently generated node is expanded first. Among the children of one
// expansion, the last-yielded successor is explored first.
func DepthFirstTree[S comparable, A any](p core.Problem[S, A], opts ...Option) (*core.Node[S, A], error) {
	return TreeSearch(p, fringe.NewLIFO[*core.Node[S, A]](), opts...)
}

// BreadthFirstTree runs TreeSearch with a queue-ordered fringe: nodes are
// expanded in generation order, so the returned goal node has minimal Depth
// among all reachable goals.
func BreadthFirstTree[S comparable, A any](p core.Problem[S, A], opts ...Option) (*core.Node[S, A], error) {
	return TreeSearch(p, fringe.NewFIFO[*core.Node[S, A]](), opts...)
}

// DepthFirstGraph runs GraphSearch with a stack-ordered fringe. The closed
// set makes it terminate on finite cyclic state spaces.
func DepthFirstGraph[S comparable, A any](p core.Problem[S, A], opts ...Option) (*core.Node[S, A], error) {
	return GraphSearch(p, fringe.NewLIFO[*core.Node[S, A]](), opts...)
}

// BreadthFirstGraph runs GraphSearch with a queue-ordered fringe, returning
// a shallowest goal node while expanding each state at most once.
func BreadthFirstGraph[S comparable, A any](p core.Problem[S, A], opts ...Option) (*core.Node[S, A], error) {
	return GraphSearch(p, fringe.NewFIFO[*core.Node[S, A]](), opts...)
}
