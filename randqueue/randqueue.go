// Package randqueue provides a generic randomized queue: Dequeue and Sample
// pick an item uniformly at random among those currently stored.
//
// Items live in a compact slice. Dequeue swaps the chosen item with the last
// one and truncates, so every operation is amortized O(1). The backing slice
// doubles when full and halves when a quarter full.
//
// Randomness comes from a Source. *math/rand.Rand satisfies it, so tests can
// pass a seeded generator for reproducible orderings.
//
// A Queue is not safe for concurrent use.
package randqueue

import (
	"errors"
	"iter"
	"math/rand"
	"slices"
)

// ErrEmpty indicates a dequeue or sample on an empty queue.
var ErrEmpty = errors.New("randqueue: queue is empty")

// defaultSeed seeds the generator used when New receives a nil Source.
const defaultSeed int64 = 1

// Source yields uniform integers in [0, n). n is always > 0.
type Source interface {
	Intn(n int) int
}

// Queue is a randomized queue of T.
type Queue[T any] struct {
	items []T
	src   Source
}

// New returns an empty queue drawing from src. A nil src selects a
// deterministic generator seeded with a fixed value.
func New[T any](src Source) *Queue[T] {
	if src == nil {
		src = rand.New(rand.NewSource(defaultSeed))
	}

	return &Queue[T]{
		items: make([]T, 0, 1),
		src:   src,
	}
}

// Len returns the number of stored items.
func (q *Queue[T]) Len() int { return len(q.items) }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return len(q.items) == 0 }

// Enqueue adds v.
func (q *Queue[T]) Enqueue(v T) {
	q.items = append(q.items, v)
}

// Dequeue removes and returns a uniformly random item.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	n := len(q.items)
	if n == 0 {
		return zero, ErrEmpty
	}

	i := q.src.Intn(n)
	v := q.items[i]
	q.items[i] = q.items[n-1]
	q.items[n-1] = zero
	q.items = q.items[:n-1]

	// Halve the backing array at quarter occupancy.
	if c := cap(q.items); c > 1 && len(q.items) <= c/4 {
		shrunk := make([]T, len(q.items), c/2)
		copy(shrunk, q.items)
		q.items = shrunk
	}

	return v, nil
}

// Sample returns a uniformly random item without removing it.
func (q *Queue[T]) Sample() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return q.items[q.src.Intn(len(q.items))], nil
}

// All yields every stored item exactly once in random order. The order is
// drawn when iteration starts and is independent of other iterators; the
// queue itself is left untouched.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		rest := slices.Clone(q.items)
		for n := len(rest); n > 0; n-- {
			i := q.src.Intn(n)
			if !yield(rest[i]) {
				return
			}
			rest[i] = rest[n-1]
		}
	}
}
