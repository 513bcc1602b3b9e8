package problems

import "github.com/katalvlaran/statespace/core"

// Slope is a one-dimensional optimization problem over the integer line:
// every state has exactly two successors (one step left, one step right),
// so the state space is unbounded in both directions, and the value
// function is a single peak. It exercises hill climbing and, with the peak
// as the goal, iterative deepening over an infinite space.
type Slope struct {
	core.Defaults[int, int]
	core.SingleGoal[int]

	start int
	peak  int
}

// NewSlope builds a slope problem starting at start whose value peaks (and
// whose goal sits) at peak.
func NewSlope(start, peak int) *Slope {
	return &Slope{SingleGoal: core.SingleGoal[int]{Goal: peak}, start: start, peak: peak}
}

// Initial returns the start position.
func (s *Slope) Initial() int { return s.start }

// Successors yields the two unit moves; the action is the direction taken.
func (s *Slope) Successors(pos int) core.Successors[int, int] {
	return func(yield func(int, int) bool) {
		if !yield(-1, pos-1) {
			return
		}
		yield(+1, pos+1)
	}
}

// Value is the negated squared distance to the peak: maximal (zero) exactly
// at the peak, strictly decreasing away from it.
func (s *Slope) Value(pos int) (float64, bool) {
	d := float64(pos - s.peak)

	return -d * d, true
}
