// File: pool/options.go
// Package pool defines functional options for pool construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

// Option customizes pool initialization.
type Option func(*config)

type config struct {
	maxPerClass         int
	maxRetainedCapacity int
}

func defaultConfig() config {
	return config{
		maxPerClass:         256,
		maxRetainedCapacity: 1 << 20,
	}
}

// WithMaxPerClass caps how many free buffers each size class retains.
// Returns beyond the cap are dropped for the garbage collector.
func WithMaxPerClass(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxPerClass = n
		}
	}
}

// WithMaxRetainedCapacity caps the largest buffer (in slots) the pool
// will keep. Larger rents are served by plain allocation and never
// re-enter the pool.
func WithMaxRetainedCapacity(n int) Option {
	return func(c *config) {
		if n >= minClassCapacity {
			c.maxRetainedCapacity = n
		}
	}
}
