package problems

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/mapgraph"
)

// Sentinel errors for problem construction.
var (
	// ErrVertexNotFound indicates a route endpoint absent from the graph.
	ErrVertexNotFound = errors.New("problems: vertex not found in graph")

	// ErrEmptyAlphabet indicates a word problem with no letters to build from.
	ErrEmptyAlphabet = errors.New("problems: alphabet is empty")

	// ErrBadMaxLen indicates a word-length bound shorter than the goal word.
	ErrBadMaxLen = errors.New("problems: max length must cover the goal word")
)

// Route is the graph route-finding problem: states are vertex IDs of a
// mapgraph.Graph, an action is the vertex stepped to, and the step cost is
// the traversed edge weight. The goal is one designated target vertex.
type Route struct {
	core.Defaults[string, string]
	core.SingleGoal[string]

	g     *mapgraph.Graph
	start string
}

// NewRoute builds a route-finding problem from start to goal on g.
// Both endpoints must already exist in the graph.
func NewRoute(g *mapgraph.Graph, start, goal string) (*Route, error) {
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %q", ErrVertexNotFound, start)
	}
	if !g.HasVertex(goal) {
		return nil, fmt.Errorf("%w: goal %q", ErrVertexNotFound, goal)
	}

	return &Route{SingleGoal: core.SingleGoal[string]{Goal: goal}, g: g, start: start}, nil
}

// Initial returns the start vertex.
func (r *Route) Initial() string { return r.start }

// Successors yields each neighbor of s as both the action taken and the
// state reached, in the graph's sorted neighbor order.
func (r *Route) Successors(s string) core.Successors[string, string] {
	return func(yield func(string, string) bool) {
		for nbr := range r.g.Neighbors(s) {
			if !yield(nbr, nbr) {
				return
			}
		}
	}
}

// StepCost adds the traversed edge's weight; stepping between unconnected
// vertices costs +Inf (see mapgraph.Weight).
func (r *Route) StepCost(acc float64, from string, _ string, to string) float64 {
	return acc + r.g.Weight(from, to)
}

// EuclideanHeuristic returns the straight-line-distance heuristic to goal
// for use with search.AStar. Every vertex the search can reach must carry a
// coordinate; mapgraph.Location panics otherwise (fatal misconfiguration).
//
// Straight-line distance is admissible whenever edge weights are at least
// the geometric distances between their endpoints, and consistent for the
// same reason, so AStar's graph-search optimality applies.
func EuclideanHeuristic(g *mapgraph.Graph, goal string) func(n *core.Node[string, string]) float64 {
	target := g.Location(goal)

	return func(n *core.Node[string, string]) float64 {
		return g.Location(n.State).Dist(target)
	}
}
