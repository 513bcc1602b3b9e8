package problems

import (
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/statespace/core"
)

// Words is the word-building problem: states are strings grown by
// PREPENDING one alphabet letter per step, starting from the empty string.
// The action is the letter prepended. A maximum length keeps breadth-first
// exploration finite; states at the bound yield no successors.
type Words struct {
	core.Defaults[string, string]
	core.SingleGoal[string]

	alphabet []string
	maxLen   int
}

// NewWords builds a word problem for the given goal word, drawing letters
// from alphabet (one letter per rune) and never growing states beyond
// maxLen runes. maxLen must cover the goal word.
func NewWords(goal, alphabet string, maxLen int) (*Words, error) {
	if alphabet == "" {
		return nil, ErrEmptyAlphabet
	}
	if maxLen < utf8.RuneCountInString(goal) {
		return nil, fmt.Errorf("%w: maxLen=%d, goal needs %d", ErrBadMaxLen, maxLen, utf8.RuneCountInString(goal))
	}
	letters := make([]string, 0, utf8.RuneCountInString(alphabet))
	for _, r := range alphabet {
		letters = append(letters, string(r))
	}

	return &Words{SingleGoal: core.SingleGoal[string]{Goal: goal}, alphabet: letters, maxLen: maxLen}, nil
}

// Initial returns the empty string.
func (w *Words) Initial() string { return "" }

// Successors lazily yields one extension per alphabet letter, each formed
// by prepending the letter to s. States at the length bound are terminal.
func (w *Words) Successors(s string) core.Successors[string, string] {
	return func(yield func(string, string) bool) {
		if utf8.RuneCountInString(s) >= w.maxLen {
			return
		}
		for _, letter := range w.alphabet {
			if !yield(letter, letter+s) {
				return
			}
		}
	}
}
