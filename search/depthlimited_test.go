package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/problems"
	"github.com/katalvlaran/statespace/search"
)

func TestDepthLimited_Validation(t *testing.T) {
	var p core.Problem[string, string] = diamond("d")

	_, _, err := search.DepthLimited[string, string](nil, 3)
	assert.ErrorIs(t, err, search.ErrNilProblem)

	_, _, err = search.DepthLimited(p, -1)
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, _, err = search.DepthLimited(p, 3, search.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

// TestDepthLimited_TriState walks the goal-at-depth-2 diamond through all
// three outcomes: Cutoff below the goal, Goal at and beyond it, and Fail
// once the whole space fits under the limit with no goal in it.
func TestDepthLimited_TriState(t *testing.T) {
	var p core.Problem[string, string] = diamond("d")

	_, out, err := search.DepthLimited(p, 1)
	require.NoError(t, err)
	assert.Equal(t, search.Cutoff, out)

	goal, out, err := search.DepthLimited(p, 2)
	require.NoError(t, err)
	assert.Equal(t, search.Goal, out)
	require.NotNil(t, goal)
	assert.Equal(t, "d", goal.State)
	assert.LessOrEqual(t, goal.Depth, 2)

	goal, out, err = search.DepthLimited(p, 10)
	require.NoError(t, err)
	assert.Equal(t, search.Goal, out)
	assert.Equal(t, "d", goal.State)

	// No goal anywhere: the whole reachable subtree fits under limit 10.
	var q core.Problem[string, string] = diamond("missing")
	_, out, err = search.DepthLimited(q, 10)
	require.NoError(t, err)
	assert.Equal(t, search.Fail, out)
}

func TestDepthLimited_GoalAtRootAndAtLimit(t *testing.T) {
	// Goal at the root: found even with limit 0.
	var p core.Problem[string, string] = diamond("a")
	goal, out, err := search.DepthLimited(p, 0)
	require.NoError(t, err)
	assert.Equal(t, search.Goal, out)
	assert.True(t, goal.IsRoot())

	// Goal exactly at the limit: the goal test precedes the cutoff check.
	p = diamond("d")
	goal, out, err = search.DepthLimited(p, 2)
	require.NoError(t, err)
	assert.Equal(t, search.Goal, out)
	assert.Equal(t, 2, goal.Depth)
}

// TestDepthLimited_ShortCircuit checks that a Goal child stops sibling
// generation: the successor stream of the parent is not consumed further.
func TestDepthLimited_ShortCircuit(t *testing.T) {
	generated := 0
	p := counting{
		mapped: mapped{
			SingleGoal: core.SingleGoal[string]{Goal: "hit"},
			start:      "a",
			edges: map[string][]string{
				"a": {"hit", "x", "y", "z"},
			},
		},
		generated: &generated,
	}
	var prob core.Problem[string, string] = p

	goal, out, err := search.DepthLimited(prob, 5)
	require.NoError(t, err)
	assert.Equal(t, search.Goal, out)
	assert.Equal(t, "hit", goal.State)
	assert.Equal(t, 1, generated, "siblings after the goal child must never be generated")
}

func TestDepthLimited_Cancellation(t *testing.T) {
	var p core.Problem[int, int] = endless{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := search.DepthLimited(p, 100, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIterativeDeepening_MatchesBreadthFirst(t *testing.T) {
	var p core.Problem[string, string] = diamond("d")

	idsGoal, err := search.IterativeDeepening(p)
	require.NoError(t, err)
	bfsGoal, err := search.BreadthFirstGraph(p)
	require.NoError(t, err)

	assert.Equal(t, bfsGoal.State, idsGoal.State)
	assert.Equal(t, bfsGoal.Depth, idsGoal.Depth, "uniform costs: IDS depth equals BFS depth")
}

func TestIterativeDeepening_FailStopsDeepening(t *testing.T) {
	var p core.Problem[string, string] = diamond("missing")

	_, err := search.IterativeDeepening(p)
	assert.ErrorIs(t, err, search.ErrNoSolution)
}

// TestIterativeDeepening_InfiniteSpace runs IDS over the unbounded integer
// line of the slope problem; every round below the goal distance reports
// Cutoff and the deepening continues until the goal depth.
func TestIterativeDeepening_InfiniteSpace(t *testing.T) {
	var p core.Problem[int, int] = problems.NewSlope(0, 4)

	goal, err := search.IterativeDeepening(p)
	require.NoError(t, err)
	assert.Equal(t, 4, goal.State)
	assert.Equal(t, 4, goal.Depth)
}

func TestIterativeDeepening_DepthBudget(t *testing.T) {
	var p core.Problem[int, int] = endless{}

	_, err := search.IterativeDeepening(p, search.WithMaxDepth(5))
	assert.ErrorIs(t, err, search.ErrDepthBudget)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "Fail", search.Fail.String())
	assert.Equal(t, "Cutoff", search.Cutoff.String())
	assert.Equal(t, "Goal", search.Goal.String())
}
