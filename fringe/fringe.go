// Package fringe provides the ordered containers of pending search nodes
// behind statespace's pluggable strategies.
//
// This file declares the Fringe interface and the LIFO and FIFO orderings;
// the priority ordering lives in priority.go.
package fringe

import "iter"

// Fringe is an ordered container of pending items. "Next" depends on the
// ordering strategy: most recently pushed (LIFO), earliest pushed (FIFO),
// or minimum score (priority).
//
// Fringes are not safe for concurrent use; each search invocation owns its
// fringe exclusively.
type Fringe[T any] interface {
	// Len returns the number of pending items.
	Len() int

	// Push inserts a single item at its strategy-defined position.
	Push(item T)

	// Extend bulk-inserts every item of the stream in yield order,
	// preserving the strategy's ordering rules.
	Extend(items iter.Seq[T])

	// Pop removes and returns the next item. The second result is false
	// when the fringe is empty.
	Pop() (T, bool)
}

// lifo is a stack: Pop returns the most recently pushed item.
type lifo[T any] struct {
	items []T
}

// NewLIFO returns an empty stack-ordered fringe (depth-first order).
func NewLIFO[T any]() Fringe[T] { return &lifo[T]{} }

func (s *lifo[T]) Len() int { return len(s.items) }

func (s *lifo[T]) Push(item T) { s.items = append(s.items, item) }

func (s *lifo[T]) Extend(items iter.Seq[T]) {
	for item := range items {
		s.items = append(s.items, item)
	}
}

func (s *lifo[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	item := s.items[n-1]
	s.items[n-1] = zero // release for GC
	s.items = s.items[:n-1]

	return item, true
}

// fifo is a queue: Pop returns the earliest pushed item.
type fifo[T any] struct {
	items []T
}

// NewFIFO returns an empty queue-ordered fringe (breadth-first order).
func NewFIFO[T any]() Fringe[T] { return &fifo[T]{} }

func (q *fifo[T]) Len() int { return len(q.items) }

func (q *fifo[T]) Push(item T) { q.items = append(q.items, item) }

func (q *fifo[T]) Extend(items iter.Seq[T]) {
	for item := range items {
		q.items = append(q.items, item)
	}
}

func (q *fifo[T]) Pop() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]

	return item, true
}
