// Package search_test holds the shared problem fixtures for the strategy
// tests: a finite adjacency-map space (acyclic or cyclic as the test
// wishes), an endless chain, and a successor-counting space.
package search_test

import "github.com/katalvlaran/statespace/core"

// mapped is a finite unit-cost problem over an explicit adjacency map.
// Successor order follows the slice order, so traversals are deterministic.
type mapped struct {
	core.Defaults[string, string]
	core.SingleGoal[string]

	start string
	edges map[string][]string
}

func (m mapped) Initial() string { return m.start }

func (m mapped) Successors(s string) core.Successors[string, string] {
	return func(yield func(string, string) bool) {
		for _, next := range m.edges[s] {
			if !yield(next, next) {
				return
			}
		}
	}
}

// diamond is the acyclic fixture a->{b,c}, b->d, c->d with goal goal.
func diamond(goal string) mapped {
	return mapped{
		SingleGoal: core.SingleGoal[string]{Goal: goal},
		start:      "a",
		edges: map[string][]string{
			"a": {"b", "c"},
			"b": {"d"},
			"c": {"d"},
		},
	}
}

// ring is the cyclic fixture a->b->c->a with goal goal.
func ring(goal string) mapped {
	return mapped{
		SingleGoal: core.SingleGoal[string]{Goal: goal},
		start:      "a",
		edges: map[string][]string{
			"a": {"b"},
			"b": {"c"},
			"c": {"a"},
		},
	}
}

// endless is an infinite unit-cost chain 0 -> 1 -> 2 -> ... with no goal.
type endless struct {
	core.Defaults[int, int]
}

func (endless) Initial() int { return 0 }

func (endless) GoalTest(int) bool { return false }

func (endless) Successors(s int) core.Successors[int, int] {
	return func(yield func(int, int) bool) {
		yield(1, s+1)
	}
}

// counting wraps mapped and counts every successor pair actually produced,
// making short-circuiting observable.
type counting struct {
	mapped

	generated *int
}

func (c counting) Successors(s string) core.Successors[string, string] {
	return func(yield func(string, string) bool) {
		for _, next := range c.edges[s] {
			*c.generated++
			if !yield(next, next) {
				return
			}
		}
	}
}
