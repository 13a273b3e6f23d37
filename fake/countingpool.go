// File: fake/countingpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fake

import (
	"fmt"

	"github.com/WildGenie/ModernUO/api"
	"github.com/WildGenie/ModernUO/pool"
)

// CountingPool wraps a SlicePool and tracks every rent and return so
// tests can assert that disposal runs exactly once. Returning a buffer
// that is not currently outstanding panics immediately, catching double
// returns at the call site. Not safe for concurrent use.
type CountingPool[T any] struct {
	Inner   api.SlicePool[T]
	Rents   int
	Returns int

	outstanding map[*T]int // keyed by the buffer's base pointer
}

// NewCountingPool wraps inner; nil wraps a fresh shared pool.
func NewCountingPool[T any](inner api.SlicePool[T]) *CountingPool[T] {
	if inner == nil {
		inner = pool.NewShared[T]()
	}
	return &CountingPool[T]{
		Inner:       inner,
		outstanding: make(map[*T]int),
	}
}

// Rent delegates to the inner pool and records the buffer as outstanding.
func (p *CountingPool[T]) Rent(minCapacity int) []T {
	buf := p.Inner.Rent(minCapacity)
	p.Rents++
	if len(buf) > 0 {
		p.outstanding[&buf[0]]++
	}
	return buf
}

// Return records the buffer as settled and delegates to the inner pool.
// Panics if buf was never rented or was already returned.
func (p *CountingPool[T]) Return(buf []T) {
	p.Returns++
	if cap(buf) == 0 {
		return
	}
	buf = buf[:cap(buf)]
	key := &buf[0]
	if p.outstanding[key] == 0 {
		panic(fmt.Sprintf("fake: return of buffer %p that is not outstanding (double return?)", key))
	}
	p.outstanding[key]--
	p.Inner.Return(buf)
}

// Outstanding reports how many rented buffers have not been returned.
func (p *CountingPool[T]) Outstanding() int {
	n := 0
	for _, c := range p.outstanding {
		n += c
	}
	return n
}

// Stats delegates to the inner pool.
func (p *CountingPool[T]) Stats() api.PoolStats {
	return p.Inner.Stats()
}

var _ api.SlicePool[any] = (*CountingPool[any])(nil)
