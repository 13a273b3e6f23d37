// File: pool/singlethread.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single-thread slice pool: plain per-class stacks, no synchronization.
// For collections confined to one goroutine; cheaper than SharedPool
// because rent and return touch no atomics or channels.

package pool

import "github.com/WildGenie/ModernUO/api"

// SingleThreadPool is a size-classed slice pool without any internal
// synchronization. It must be confined to a single goroutine.
type SingleThreadPool[T any] struct {
	classes [][][]T
	cfg     config
	stats   api.PoolStats
}

// NewSingleThread creates a goroutine-confined pool.
func NewSingleThread[T any](opts ...Option) *SingleThreadPool[T] {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &SingleThreadPool[T]{
		classes: make([][][]T, classCount(cfg.maxRetainedCapacity)),
		cfg:     cfg,
	}
}

// Rent returns a slice of length at least minCapacity, reusing the most
// recently returned buffer of the class when one is available.
func (p *SingleThreadPool[T]) Rent(minCapacity int) []T {
	if minCapacity < 0 {
		panic("pool: negative rent capacity")
	}
	p.stats.TotalRents++
	p.stats.InUse++
	class := classFor(minCapacity)
	if class >= len(p.classes) {
		p.stats.TotalAllocs++
		return make([]T, minCapacity)
	}
	if free := p.classes[class]; len(free) > 0 {
		buf := free[len(free)-1]
		free[len(free)-1] = nil
		p.classes[class] = free[:len(free)-1]
		return buf
	}
	p.stats.TotalAllocs++
	return make([]T, capacityFor(class))
}

// Return relinquishes buf, retaining it when it matches a class capacity
// and the class stack has room.
func (p *SingleThreadPool[T]) Return(buf []T) {
	if cap(buf) == 0 {
		return
	}
	p.stats.TotalReturns++
	p.stats.InUse--
	buf = buf[:cap(buf)]
	class := classFor(len(buf))
	if class >= len(p.classes) || capacityFor(class) != len(buf) {
		return
	}
	if len(p.classes[class]) >= p.cfg.maxPerClass {
		return
	}
	p.classes[class] = append(p.classes[class], buf)
}

// Stats reports cumulative rent/return accounting.
func (p *SingleThreadPool[T]) Stats() api.PoolStats {
	return p.stats
}

var _ api.SlicePool[any] = (*SingleThreadPool[any])(nil)
