// Package pool
// Author: momentics <momentics@gmail.com>
//
// Slice pooling layer for the collection types. Implements size-class
// based rent/return of backing storage in two flavors: a concurrency-safe
// shared pool for instances spread across goroutines and a cheaper
// single-thread pool for goroutine-confined owners. A []byte-specialized
// pool built on gobwas/pool serves byte-payload queues.
// See shared.go, singlethread.go, bytes.go for implementation details.
package pool
