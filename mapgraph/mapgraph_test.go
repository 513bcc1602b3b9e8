package mapgraph_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/mapgraph"
)

func TestAddEdge_Validation(t *testing.T) {
	g := mapgraph.New()

	assert.ErrorIs(t, g.AddEdge("", "B", 1), mapgraph.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "", 1), mapgraph.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "A", 1), mapgraph.ErrSelfLoop)
	assert.ErrorIs(t, g.AddEdge("A", "B", -2), mapgraph.ErrNegativeWeight)
	assert.ErrorIs(t, g.AddVertex(""), mapgraph.ErrEmptyVertexID)
}

func TestAddEdge_Undirected(t *testing.T) {
	g := mapgraph.New()
	require.NoError(t, g.AddEdge("A", "B", 5))

	assert.Equal(t, 5.0, g.Weight("A", "B"))
	assert.Equal(t, 5.0, g.Weight("B", "A"), "edges are inserted in both directions")
	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
}

func TestWeight_UnconnectedIsInf(t *testing.T) {
	g := mapgraph.New()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	assert.True(t, math.IsInf(g.Weight("A", "C"), 1))
	assert.True(t, math.IsInf(g.Weight("A", "missing"), 1))
}

func TestNeighbors_SortedAndLazy(t *testing.T) {
	g := mapgraph.New()
	require.NoError(t, g.AddEdge("M", "C", 1))
	require.NoError(t, g.AddEdge("M", "A", 2))
	require.NoError(t, g.AddEdge("M", "B", 3))

	var order []string
	for id := range g.Neighbors("M") {
		order = append(order, id)
	}
	assert.Equal(t, []string{"A", "B", "C"}, order)

	// Prefix consumption must be possible.
	for range g.Neighbors("M") {
		break
	}

	// Unknown vertex yields nothing.
	count := 0
	for range g.Neighbors("missing") {
		count++
	}
	assert.Zero(t, count)
}

func TestVertices_Sorted(t *testing.T) {
	g := mapgraph.New()
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddVertex("A"))

	if got, want := g.Vertices(), []string{"A", "B", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Vertices = %v; want %v", got, want)
	}
}

func TestLocation_RoundTripAndPanic(t *testing.T) {
	g := mapgraph.New()
	require.NoError(t, g.SetLocation("A", 3, 4))

	assert.True(t, g.HasLocation("A"))
	assert.Equal(t, mapgraph.Point{X: 3, Y: 4}, g.Location("A"))
	assert.Equal(t, 5.0, g.Location("A").Dist(mapgraph.Point{}))

	assert.False(t, g.HasLocation("B"))
	assert.Panics(t, func() { g.Location("B") }, "a missing coordinate is a fatal misconfiguration")
}

func TestAddEdge_OverwritesWeight(t *testing.T) {
	g := mapgraph.New()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("A", "B", 2))

	assert.Equal(t, 2.0, g.Weight("A", "B"))
	assert.Equal(t, 2.0, g.Weight("B", "A"))
}
