// Package queue
// Author: momentics <momentics@gmail.com>
//
// Pool-backed single-owner FIFO ring queue for allocation-free hot
// paths (per-tick packet buffering and similar). Backing storage is
// rented from a pool.SlicePool and handed back on Dispose; iteration
// uses a version-stamped snapshot iterator that detects structural
// mutation without locking.
//
// A PooledQueue is exclusively owned by its creator. It performs no
// internal synchronization and must not be mutated, or mutated while
// iterated, from more than one goroutine. The owner must arrange for
// Dispose to run exactly once on every exit path, typically via defer,
// or the rented storage leaks from its pool.
package queue
