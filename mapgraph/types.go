// Package mapgraph defines sentinel errors and the Point type for the
// undirected weighted graph used by the example route-finding problem.
package mapgraph

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyVertexID indicates an empty string was used as a vertex ID.
	ErrEmptyVertexID = errors.New("mapgraph: vertex ID is empty")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("mapgraph: self-loops not allowed")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("mapgraph: edge weight must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a missing vertex.
	ErrVertexNotFound = errors.New("mapgraph: vertex not found")
)

// Point is a 2D coordinate attached to a vertex, used by straight-line
// distance heuristics.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}
