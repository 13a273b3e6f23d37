// File: pool/shared.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Concurrency-safe shared slice pool. One buffered free-list channel per
// power-of-two size class; counters are plain atomics padded away from
// the immutable configuration to avoid false sharing.

package pool

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/WildGenie/ModernUO/api"
)

// SharedPool is a size-classed slice pool safe for concurrent rent and
// return from many goroutines. It confers no safety on the collections
// built on top of it; only the pool traffic itself is synchronized.
type SharedPool[T any] struct {
	classes []chan []T
	cfg     config

	_ cpu.CacheLinePad

	rents   atomic.Int64
	returns atomic.Int64
	allocs  atomic.Int64
}

// NewShared creates a shared pool. The zero Option set retains up to 256
// free buffers per class and buffers up to 1M slots.
func NewShared[T any](opts ...Option) *SharedPool[T] {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	p := &SharedPool[T]{
		classes: make([]chan []T, classCount(cfg.maxRetainedCapacity)),
		cfg:     cfg,
	}
	for i := range p.classes {
		p.classes[i] = make(chan []T, cfg.maxPerClass)
	}
	return p
}

// Rent returns a slice of length at least minCapacity. Lengths are
// rounded up to the next size class so returned buffers can re-enter
// their class free list.
func (p *SharedPool[T]) Rent(minCapacity int) []T {
	if minCapacity < 0 {
		panic("pool: negative rent capacity")
	}
	p.rents.Add(1)
	class := classFor(minCapacity)
	if class >= len(p.classes) {
		// Above the retention range: exact-size one-shot allocation.
		p.allocs.Add(1)
		return make([]T, minCapacity)
	}
	select {
	case buf := <-p.classes[class]:
		return buf
	default:
		p.allocs.Add(1)
		return make([]T, capacityFor(class))
	}
}

// Return relinquishes buf. Buffers that were resliced are restored to
// their full capacity; anything not matching a class capacity exactly is
// dropped rather than retained.
func (p *SharedPool[T]) Return(buf []T) {
	if cap(buf) == 0 {
		return
	}
	p.returns.Add(1)
	buf = buf[:cap(buf)]
	class := classFor(len(buf))
	if class >= len(p.classes) || capacityFor(class) != len(buf) {
		return
	}
	select {
	case p.classes[class] <- buf:
	default:
	}
}

// Stats reports cumulative rent/return accounting.
func (p *SharedPool[T]) Stats() api.PoolStats {
	rents := p.rents.Load()
	returns := p.returns.Load()
	return api.PoolStats{
		TotalRents:   rents,
		TotalReturns: returns,
		TotalAllocs:  p.allocs.Load(),
		InUse:        rents - returns,
	}
}

var _ api.SlicePool[any] = (*SharedPool[any])(nil)
