// File: pool/shared_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"math"
	"runtime"
	"sync"
	"testing"
)

func TestClassMath(t *testing.T) {
	cases := []struct {
		min, class, cap int
	}{
		{0, 0, 4},
		{1, 0, 4},
		{4, 0, 4},
		{5, 1, 8},
		{8, 1, 8},
		{9, 2, 16},
		{1024, 8, 1024},
		{1025, 9, 2048},
	}
	for _, tc := range cases {
		if got := classFor(tc.min); got != tc.class {
			t.Errorf("classFor(%d) = %d, want %d", tc.min, got, tc.class)
		}
		if got := capacityFor(tc.class); got != tc.cap {
			t.Errorf("capacityFor(%d) = %d, want %d", tc.class, got, tc.cap)
		}
	}
}

func TestClassMathMaxIntBoundary(t *testing.T) {
	// Must terminate promptly and report a class past every retention
	// range; no power-of-two class capacity can cover MaxInt.
	if got := classFor(math.MaxInt); got != maxClass+1 {
		t.Fatalf("classFor(MaxInt) = %d, want %d", got, maxClass+1)
	}
	if got := capacityFor(maxClass); got <= 0 {
		t.Fatalf("capacityFor(maxClass) overflowed: %d", got)
	}
	if got := classCount(math.MaxInt); got != maxClass+1 {
		t.Fatalf("classCount(MaxInt) = %d, want %d", got, maxClass+1)
	}
	// The uncoverable class sits outside any class table, so Rent takes
	// the exact-allocation branch instead of indexing a free list.
	if classFor(math.MaxInt) < classCount(math.MaxInt) {
		t.Fatal("MaxInt rent would index the class table")
	}
}

func TestSharedPoolMaxRetainedCapacityBoundary(t *testing.T) {
	// Construction with the largest retention cap must not hang or
	// overflow a class capacity.
	p := NewShared[byte](WithMaxRetainedCapacity(math.MaxInt))
	buf := p.Rent(64)
	if len(buf) < 64 {
		t.Fatalf("Rent(64) length = %d", len(buf))
	}
	p.Return(buf)
}

func TestSharedPoolRentLength(t *testing.T) {
	p := NewShared[int]()
	for _, n := range []int{0, 1, 4, 5, 100} {
		buf := p.Rent(n)
		if len(buf) < n {
			t.Errorf("Rent(%d) returned length %d", n, len(buf))
		}
		p.Return(buf)
	}
}

func TestSharedPoolReuse(t *testing.T) {
	p := NewShared[int]()
	b1 := p.Rent(128)
	p.Return(b1)
	b2 := p.Rent(100) // same class as 128
	if &b1[0] != &b2[0] {
		t.Error("expected the returned buffer to be reused")
	}
}

func TestSharedPoolRestoresReslicedBuffers(t *testing.T) {
	p := NewShared[int]()
	b1 := p.Rent(8)
	p.Return(b1[:3]) // resliced returns must still be retained
	b2 := p.Rent(8)
	if len(b2) != 8 {
		t.Fatalf("reused buffer has length %d, want 8", len(b2))
	}
	if &b1[0] != &b2[0] {
		t.Error("resliced return was not retained")
	}
}

func TestSharedPoolBeyondRetention(t *testing.T) {
	p := NewShared[int](WithMaxRetainedCapacity(64))
	buf := p.Rent(1000)
	if len(buf) != 1000 {
		t.Fatalf("beyond-retention rent length = %d, want exact 1000", len(buf))
	}
	p.Return(buf)
	again := p.Rent(1000)
	if len(again) >= 1000 && &again[0] == &buf[0] {
		t.Error("beyond-retention buffer was retained")
	}
}

func TestSharedPoolStats(t *testing.T) {
	p := NewShared[string]()
	a := p.Rent(4)
	b := p.Rent(4)
	p.Return(a)

	s := p.Stats()
	if s.TotalRents != 2 || s.TotalReturns != 1 || s.InUse != 1 {
		t.Fatalf("stats = %+v, want rents 2 returns 1 inUse 1", s)
	}
	if s.TotalAllocs != 2 {
		t.Fatalf("allocs = %d, want 2", s.TotalAllocs)
	}
	p.Return(b)
}

func TestSharedPoolConcurrent(t *testing.T) {
	p := NewShared[int]()
	const workers, rounds = 8, 2000
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				buf := p.Rent(16 + i%64)
				if len(buf) < 16 {
					t.Error("short rent under concurrency")
					return
				}
				buf[0] = i
				p.Return(buf)
				if i%256 == 0 {
					runtime.Gosched()
				}
			}
		}()
	}
	wg.Wait()
	s := p.Stats()
	if s.InUse != 0 {
		t.Fatalf("InUse = %d after balanced traffic", s.InUse)
	}
}

func TestSharedPoolNegativeRentPanics(t *testing.T) {
	p := NewShared[int]()
	defer func() {
		if recover() == nil {
			t.Fatal("Rent(-1) did not panic")
		}
	}()
	p.Rent(-1)
}
