package mapgraph

import (
	"fmt"
	"iter"
	"math"
	"sort"
)

// Graph is an undirected weighted adjacency structure with optional vertex
// coordinates. It is built once from an edge list and then only read, so no
// locking is provided; build it fully before sharing.
type Graph struct {
	adj  map[string]map[string]float64 // vertex -> neighbor -> weight
	locs map[string]Point              // vertex -> coordinate
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		adj:  make(map[string]map[string]float64),
		locs: make(map[string]Point),
	}
}

// AddVertex ensures a vertex with the given ID exists.
// Returns ErrEmptyVertexID for an empty ID.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]float64)
	}

	return nil
}

// AddEdge inserts the undirected edge u-v with weight w, creating either
// endpoint as needed. The edge is recorded in both directions. A repeated
// edge overwrites the previous weight.
// Returns ErrEmptyVertexID, ErrSelfLoop, or ErrNegativeWeight on bad input.
func (g *Graph) AddEdge(u, v string, w float64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return fmt.Errorf("%w: %q", ErrSelfLoop, u)
	}
	if w < 0 {
		return fmt.Errorf("%w: %s-%s weight=%v", ErrNegativeWeight, u, v, w)
	}
	if err := g.AddVertex(u); err != nil {
		return err
	}
	if err := g.AddVertex(v); err != nil {
		return err
	}
	g.adj[u][v] = w
	g.adj[v][u] = w

	return nil
}

// HasVertex reports whether id exists in the graph.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// Vertices returns all vertex IDs in sorted order.
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors lazily yields the neighbors of v with their edge weights, in
// sorted neighbor order so traversal results are reproducible. An unknown
// vertex yields nothing.
func (g *Graph) Neighbors(v string) iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		edges := g.adj[v]
		ids := make([]string, 0, len(edges))
		for id := range edges {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			if !yield(id, edges[id]) {
				return
			}
		}
	}
}

// Weight returns the weight of the edge u-v, or +Inf when the two vertices
// are not directly connected. An unreachable neighbor is thereby never the
// cheapest choice in downstream cost comparisons.
func (g *Graph) Weight(u, v string) float64 {
	if w, ok := g.adj[u][v]; ok {
		return w
	}

	return math.Inf(1)
}

// SetLocation records the coordinate of a vertex, creating it if missing.
func (g *Graph) SetLocation(id string, x, y float64) error {
	if err := g.AddVertex(id); err != nil {
		return err
	}
	g.locs[id] = Point{X: x, Y: y}

	return nil
}

// Location returns the recorded coordinate of id.
//
// A vertex without a coordinate is a fatal misconfiguration of the problem
// setup, not a recoverable condition: Location panics rather than returning
// an error, so heuristics stay plain float64 functions.
func (g *Graph) Location(id string) Point {
	p, ok := g.locs[id]
	if !ok {
		panic(fmt.Sprintf("mapgraph: no location recorded for vertex %q", id))
	}

	return p
}

// HasLocation reports whether id has a recorded coordinate.
func (g *Graph) HasLocation(id string) bool {
	_, ok := g.locs[id]

	return ok
}
