// File: api/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Minimal FIFO queue contract implemented by the pooled ring queue.

package api

// Queue is a single-owner FIFO contract.
type Queue[T any] interface {
	// Enqueue appends an item, growing storage as needed.
	Enqueue(item T)
	// TryDequeue removes the oldest item, false if empty.
	TryDequeue() (T, bool)
	// Len returns current number of items.
	Len() int
	// Cap returns current storage capacity.
	Cap() int
}
