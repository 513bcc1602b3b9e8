package fringe

import (
	"container/heap"
	"iter"
)

// entry pairs an item with its score and an insertion sequence number.
// The sequence number breaks score ties in insertion order, keeping pop
// order fully deterministic.
type entry[T any] struct {
	item  T
	score float64
	seq   uint64
}

// entryHeap is a min-heap of entries ordered by (score, seq) ascending.
type entryHeap[T any] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// priority pops the item minimizing score(item). Scores are computed once,
// at insertion time; callers re-push an item to reflect a changed score
// (lazy decrease-key, stale entries are simply popped later).
type priority[T any] struct {
	h     entryHeap[T]
	score func(T) float64
	seq   uint64
}

// NewPriority returns an empty min-first fringe ordered by score.
// score must be pure; it is evaluated once per insertion.
func NewPriority[T any](score func(T) float64) Fringe[T] {
	return &priority[T]{score: score}
}

func (p *priority[T]) Len() int { return p.h.Len() }

func (p *priority[T]) Push(item T) {
	heap.Push(&p.h, entry[T]{item: item, score: p.score(item), seq: p.seq})
	p.seq++
}

func (p *priority[T]) Extend(items iter.Seq[T]) {
	for item := range items {
		p.Push(item)
	}
}

func (p *priority[T]) Pop() (T, bool) {
	var zero T
	if p.h.Len() == 0 {
		return zero, false
	}
	e := heap.Pop(&p.h).(entry[T])

	return e.item, true
}
