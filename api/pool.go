// File: api/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Defines the abstract slice pooling API: rent/return of reusable
// backing storage for collections on allocation-free hot paths.

package api

// SlicePool hands out reusable backing slices so hot paths avoid
// allocating fresh arrays per use.
type SlicePool[T any] interface {
	// Rent returns a slice of length at least minCapacity.
	// Contents are not guaranteed to be zeroed. Panics on negative
	// minCapacity; callers validate user input before renting.
	Rent(minCapacity int) []T

	// Return relinquishes buf back to the pool. The caller must clear
	// reference-bearing contents first and must not touch buf afterwards.
	Return(buf []T)

	// Stats exposes rent/return accounting for observability.
	Stats() PoolStats
}

// PoolStats aggregates slice allocation/reuse counters.
type PoolStats struct {
	TotalRents   int64
	TotalReturns int64
	TotalAllocs  int64
	InUse        int64
}
