// File: queue/pooled_queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring-buffer core: circular head/tail arithmetic, amortized growth
// through the pool, slot zeroing on removal so reused pooled storage
// never pins stale references.

package queue

import (
	"math"
	"math/rand/v2"

	"github.com/WildGenie/ModernUO/api"
	"github.com/WildGenie/ModernUO/pool"
)

// PooledQueue is a FIFO ring buffer whose storage is rented from a
// slice pool. The zero value is not usable; construct with New or
// NewWithPool and Dispose exactly once when done.
//
// Invariant: live elements occupy buf[head:head+size] when contiguous,
// or buf[head:] followed by buf[:tail] when wrapped. head == tail means
// empty or full, disambiguated by size.
type PooledQueue[T any] struct {
	buf     []T
	head    int
	tail    int
	size    int
	version uint32
	pool    api.SlicePool[T]
}

var _ api.Queue[any] = (*PooledQueue[any])(nil)

// New creates a queue backed by the process-wide shared pool for T.
// A zero capacity keeps the empty sentinel and touches no pool.
func New[T any](capacity int) (PooledQueue[T], error) {
	return NewWithPool[T](capacity, pool.Default[T]())
}

// NewWithPool creates a queue backed by an explicit pool handle. Pass a
// pool.SingleThreadPool for goroutine-confined owners. A nil pool falls
// back to the shared default.
func NewWithPool[T any](capacity int, p api.SlicePool[T]) (PooledQueue[T], error) {
	if capacity < 0 {
		return PooledQueue[T]{}, api.NewError(api.ErrCodeInvalidArgument, "queue: negative capacity").
			WithContext("capacity", capacity)
	}
	if p == nil {
		p = pool.Default[T]()
	}
	q := PooledQueue[T]{pool: p}
	if capacity > 0 {
		q.buf = p.Rent(capacity)
	}
	return q, nil
}

// Len returns the number of live elements.
func (q *PooledQueue[T]) Len() int { return q.size }

// Cap returns the current storage capacity.
func (q *PooledQueue[T]) Cap() int { return len(q.buf) }

// Enqueue appends item, growing storage through the pool when full.
// Amortized O(1).
func (q *PooledQueue[T]) Enqueue(item T) {
	if q.size == len(q.buf) {
		q.grow(q.size + 1)
	}
	q.buf[q.tail] = item
	q.tail++
	if q.tail == len(q.buf) {
		q.tail = 0
	}
	q.size++
	q.version++
}

// Dequeue removes and returns the oldest element. The vacated slot is
// zeroed so the pooled buffer does not pin the element past its logical
// lifetime. Returns ErrEmptyCollection when the queue is empty.
func (q *PooledQueue[T]) Dequeue() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, api.ErrEmptyCollection
	}
	item := q.buf[q.head]
	q.buf[q.head] = zero
	q.head++
	if q.head == len(q.buf) {
		q.head = 0
	}
	q.size--
	q.version++
	return item, nil
}

// TryDequeue is the non-failing twin of Dequeue: false on empty.
func (q *PooledQueue[T]) TryDequeue() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	item, _ := q.Dequeue()
	return item, true
}

// Peek returns the oldest element without removing it.
func (q *PooledQueue[T]) Peek() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, api.ErrEmptyCollection
	}
	return q.buf[q.head], nil
}

// TryPeek is the non-failing twin of Peek: false on empty.
func (q *PooledQueue[T]) TryPeek() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.head], true
}

// PeekRandom returns a uniformly chosen live element without mutating
// the queue.
func (q *PooledQueue[T]) PeekRandom() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, api.ErrEmptyCollection
	}
	idx := q.head + rand.IntN(q.size)
	if idx >= len(q.buf) {
		idx -= len(q.buf)
	}
	return q.buf[idx], nil
}

// ContainsFunc reports whether any live element satisfies eq, scanning
// the least-recently-enqueued segment first.
func (q *PooledQueue[T]) ContainsFunc(eq func(T) bool) bool {
	if q.size == 0 {
		return false
	}
	if q.head+q.size <= len(q.buf) {
		for _, v := range q.buf[q.head : q.head+q.size] {
			if eq(v) {
				return true
			}
		}
		return false
	}
	for _, v := range q.buf[q.head:] {
		if eq(v) {
			return true
		}
	}
	for _, v := range q.buf[:q.tail] {
		if eq(v) {
			return true
		}
	}
	return false
}

// Contains reports whether the queue holds an element equal to item.
func Contains[T comparable](q *PooledQueue[T], item T) bool {
	return q.ContainsFunc(func(v T) bool { return v == item })
}

// CopyTo copies all live elements into dst starting at offset, in
// dequeue order. Fails without mutating when dst lacks room.
func (q *PooledQueue[T]) CopyTo(dst []T, offset int) error {
	if offset < 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "queue: negative offset").
			WithContext("offset", offset)
	}
	if len(dst)-offset < q.size {
		return api.NewError(api.ErrCodeInvalidArgument, "queue: destination too small").
			WithContext("need", q.size).
			WithContext("have", len(dst)-offset)
	}
	q.copyOrdered(dst[offset:])
	return nil
}

// ToSlice returns the live elements in dequeue order as a fresh slice.
func (q *PooledQueue[T]) ToSlice() []T {
	out := make([]T, q.size)
	q.copyOrdered(out)
	return out
}

// ToPooledSlice is ToSlice with the result rented from p (nil means the
// shared default). Returning the slice to p is the caller's job.
func (q *PooledQueue[T]) ToPooledSlice(p api.SlicePool[T]) []T {
	if p == nil {
		p = pool.Default[T]()
	}
	out := p.Rent(q.size)[:q.size]
	q.copyOrdered(out)
	return out
}

// copyOrdered writes the live elements into dst in FIFO order, handling
// the wrap split. dst must hold at least size elements.
func (q *PooledQueue[T]) copyOrdered(dst []T) {
	if q.size == 0 {
		return
	}
	if q.head+q.size <= len(q.buf) {
		copy(dst, q.buf[q.head:q.head+q.size])
		return
	}
	n := copy(dst, q.buf[q.head:])
	copy(dst[n:], q.buf[:q.tail])
}

// EnsureCapacity grows storage to hold at least minCapacity elements
// and returns the resulting capacity. No-op when already large enough.
func (q *PooledQueue[T]) EnsureCapacity(minCapacity int) (int, error) {
	if minCapacity < 0 {
		return 0, api.NewError(api.ErrCodeInvalidArgument, "queue: negative capacity").
			WithContext("capacity", minCapacity)
	}
	if len(q.buf) < minCapacity {
		q.grow(minCapacity)
	}
	return len(q.buf), nil
}

// Clear logically empties the queue, zeroing every live slot over both
// wrap segments. Storage is kept, not returned to the pool.
func (q *PooledQueue[T]) Clear() {
	if q.size > 0 {
		if q.head+q.size <= len(q.buf) {
			clear(q.buf[q.head : q.head+q.size])
		} else {
			clear(q.buf[q.head:])
			clear(q.buf[:q.tail])
		}
	}
	q.head, q.tail, q.size = 0, 0, 0
	q.version++
}

// Dispose clears the queue and returns its storage to the originating
// pool, resetting to the empty sentinel. A second Dispose is a no-op;
// any operation needing storage afterwards panics.
func (q *PooledQueue[T]) Dispose() {
	q.Clear()
	if len(q.buf) > 0 && q.pool != nil {
		q.pool.Return(q.buf)
	}
	q.buf = nil
	q.pool = nil
}

// grow adopts a larger buffer from the pool, preserving FIFO order
// across the wrap split, and hands the old buffer back zeroed. The
// empty sentinel is never pool-sourced and never returned.
func (q *PooledQueue[T]) grow(minCapacity int) {
	if q.pool == nil {
		panic("queue: use after Dispose")
	}
	next := q.pool.Rent(growCapacity(len(q.buf), minCapacity))
	q.copyOrdered(next)
	if len(q.buf) > 0 {
		clear(q.buf)
		q.pool.Return(q.buf)
	}
	q.buf = next
	q.head = 0
	if q.size == len(next) {
		q.tail = 0
	} else {
		q.tail = q.size
	}
	q.version++
}

// growCapacity doubles with a minimum absolute step of 4, clamps at the
// maximum int on overflow, and falls back to the exact request when the
// amortized step still falls short.
func growCapacity(current, requested int) int {
	next := current + current
	if next < current {
		next = math.MaxInt
	}
	if step := current + 4; step > next {
		next = step
	}
	if next < requested {
		next = requested
	}
	return next
}
