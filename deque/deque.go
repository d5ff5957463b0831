// Package deque provides a generic double-ended queue backed by a growable
// ring buffer.
//
// Push and pop at either end run in amortized O(1); the buffer doubles when
// full and halves when a quarter full, so memory stays proportional to Len.
// Removing from an empty deque returns ErrEmpty.
//
// A Deque is not safe for concurrent use.
package deque

import (
	"errors"
	"iter"
)

// ErrEmpty indicates a removal or peek on an empty deque.
var ErrEmpty = errors.New("deque: deque is empty")

const minCapacity = 8

// Deque is a double-ended queue of T. The zero value is ready to use.
type Deque[T any] struct {
	buf   []T
	head  int // index of the front element
	count int
}

// New returns an empty deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// Len returns the number of stored items.
func (d *Deque[T]) Len() int { return d.count }

// IsEmpty reports whether the deque holds no items.
func (d *Deque[T]) IsEmpty() bool { return d.count == 0 }

// PushFront inserts v at the front.
func (d *Deque[T]) PushFront(v T) {
	d.grow()
	d.head = d.wrap(d.head - 1)
	d.buf[d.head] = v
	d.count++
}

// PushBack appends v at the back.
func (d *Deque[T]) PushBack(v T) {
	d.grow()
	d.buf[d.wrap(d.head+d.count)] = v
	d.count++
}

// PopFront removes and returns the front item.
func (d *Deque[T]) PopFront() (T, error) {
	var zero T
	if d.count == 0 {
		return zero, ErrEmpty
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = d.wrap(d.head + 1)
	d.count--
	d.shrink()

	return v, nil
}

// PopBack removes and returns the back item.
func (d *Deque[T]) PopBack() (T, error) {
	var zero T
	if d.count == 0 {
		return zero, ErrEmpty
	}
	i := d.wrap(d.head + d.count - 1)
	v := d.buf[i]
	d.buf[i] = zero
	d.count--
	d.shrink()

	return v, nil
}

// PeekFront returns the front item without removing it.
func (d *Deque[T]) PeekFront() (T, error) {
	if d.count == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return d.buf[d.head], nil
}

// PeekBack returns the back item without removing it.
func (d *Deque[T]) PeekBack() (T, error) {
	if d.count == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return d.buf[d.wrap(d.head+d.count-1)], nil
}

// All yields the items front to back. The deque must not be mutated while
// iterating.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.count; i++ {
			if !yield(d.buf[d.wrap(d.head+i)]) {
				return
			}
		}
	}
}

func (d *Deque[T]) wrap(i int) int {
	n := len(d.buf)
	i %= n
	if i < 0 {
		i += n
	}

	return i
}

func (d *Deque[T]) grow() {
	if d.count < len(d.buf) {
		return
	}
	capacity := 2 * len(d.buf)
	if capacity < minCapacity {
		capacity = minCapacity
	}
	d.resize(capacity)
}

func (d *Deque[T]) shrink() {
	if len(d.buf) > minCapacity && d.count <= len(d.buf)/4 {
		d.resize(len(d.buf) / 2)
	}
}

// resize copies the items into a fresh buffer starting at index 0.
func (d *Deque[T]) resize(capacity int) {
	buf := make([]T, capacity)
	for i := 0; i < d.count; i++ {
		buf[i] = d.buf[d.wrap(d.head+i)]
	}
	d.buf = buf
	d.head = 0
}
