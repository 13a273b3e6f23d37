// File: queue/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Version-stamped snapshot iterator. A cooperative, lock-free invariant
// check: the iterator captures the queue's version at creation and
// refuses to advance once the version diverges. It is not a concurrency
// primitive.

package queue

import "github.com/WildGenie/ModernUO/api"

// cursorEnded marks a finished traversal; -1 is the not-started state.
const cursorEnded = -2

// Iterator traverses a queue's live elements in dequeue order. It
// borrows the queue and must not outlive it. After Next returns false,
// Err distinguishes the normal end of traversal from invalidation by a
// structural mutation.
type Iterator[T any] struct {
	q       *PooledQueue[T]
	version uint32
	cursor  int
	current T
	err     error
}

// Iter creates an iterator positioned before the first element.
func (q *PooledQueue[T]) Iter() Iterator[T] {
	return Iterator[T]{q: q, version: q.version, cursor: -1}
}

// Next advances to the next element, returning true while one is
// available. From the ended state it stays false idempotently. If the
// queue was structurally modified since the iterator was created, Next
// returns false and Err reports ErrConcurrentModification.
func (it *Iterator[T]) Next() bool {
	var zero T
	if it.err != nil {
		return false
	}
	if it.version != it.q.version {
		it.err = api.ErrConcurrentModification
		it.current = zero
		return false
	}
	if it.cursor == cursorEnded {
		return false
	}
	it.cursor++
	if it.cursor >= it.q.size {
		it.cursor = cursorEnded
		it.current = zero
		return false
	}
	// Physical index by compare-and-subtract; no modulo on the hot path.
	idx := it.q.head + it.cursor
	if idx >= len(it.q.buf) {
		idx -= len(it.q.buf)
	}
	it.current = it.q.buf[idx]
	return true
}

// Value returns the element the iterator is positioned on. Reading it
// before the first Next or after the traversal ended yields the zero
// value and records ErrInvalidOperation in Err.
func (it *Iterator[T]) Value() T {
	if it.cursor < 0 {
		if it.err == nil {
			it.err = api.ErrInvalidOperation
		}
		var zero T
		return zero
	}
	return it.current
}

// Err reports why the last Next returned false — nil at the normal end
// of traversal, ErrConcurrentModification when the queue changed
// underneath the iterator — or ErrInvalidOperation when Value was read
// outside a positioned state.
func (it *Iterator[T]) Err() error { return it.err }

// Reset rewinds to the not-started state. Like Next it refuses to
// operate over a structurally modified queue.
func (it *Iterator[T]) Reset() error {
	if it.version != it.q.version {
		it.err = api.ErrConcurrentModification
		return it.err
	}
	var zero T
	it.cursor = -1
	it.current = zero
	it.err = nil
	return nil
}
