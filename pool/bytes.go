// File: pool/bytes.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// []byte-specialized slice pool backed by gobwas/pool size-class
// buckets. Byte queues are the dominant case in per-tick network
// buffering, so they get the tuned ecosystem allocator instead of the
// generic channel pool.

package pool

import (
	"sync/atomic"

	"github.com/gobwas/pool/pbytes"

	"github.com/WildGenie/ModernUO/api"
)

// BytesPool adapts a pbytes.Pool to the SlicePool[byte] contract.
// Safe for concurrent use.
type BytesPool struct {
	p       *pbytes.Pool
	rents   atomic.Int64
	returns atomic.Int64
}

// NewBytes creates a byte pool retaining buffers between min and max
// bytes; rents outside that range fall through to plain allocation.
func NewBytes(min, max int) *BytesPool {
	return &BytesPool{p: pbytes.New(min, max)}
}

// Rent returns a byte slice of length exactly minCapacity (capacity may
// be a larger bucket size).
func (b *BytesPool) Rent(minCapacity int) []byte {
	if minCapacity < 0 {
		panic("pool: negative rent capacity")
	}
	b.rents.Add(1)
	return b.p.GetLen(minCapacity)
}

// Return relinquishes buf to the underlying bucket pool.
func (b *BytesPool) Return(buf []byte) {
	b.returns.Add(1)
	b.p.Put(buf)
}

// Stats reports rent/return accounting. TotalAllocs is not tracked; the
// underlying bucket pool does not expose allocation counts.
func (b *BytesPool) Stats() api.PoolStats {
	rents := b.rents.Load()
	returns := b.returns.Load()
	return api.PoolStats{
		TotalRents:   rents,
		TotalReturns: returns,
		InUse:        rents - returns,
	}
}

var _ api.SlicePool[byte] = (*BytesPool)(nil)
