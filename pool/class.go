// File: pool/class.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Size-class arithmetic shared by the pool flavors. Classes are powers
// of two starting at minClassCapacity; buffers whose length does not
// match a class capacity exactly are never retained.

package pool

import "math/bits"

// minClassCapacity is the smallest slice length a pool hands out.
const minClassCapacity = 4 // 1 << 2

// maxClass is the largest class whose capacity still fits in an int:
// capacityFor(maxClass) == 1 << (bits.UintSize - 2).
const maxClass = bits.UintSize - 4

// capacityFor returns the slice length of a size class.
func capacityFor(class int) int {
	return minClassCapacity << class
}

// classFor returns the smallest class whose capacity covers minCapacity.
// Capacities no power-of-two int can cover report maxClass+1, past any
// retention range, so rents fall through to exact allocation.
func classFor(minCapacity int) int {
	class := 0
	c := minClassCapacity
	for c < minCapacity {
		if class == maxClass {
			return maxClass + 1
		}
		c <<= 1
		class++
	}
	return class
}

// classCount returns how many classes are needed to retain buffers up to
// maxRetainedCapacity slots, bounded by the representable classes.
func classCount(maxRetainedCapacity int) int {
	n := classFor(maxRetainedCapacity) + 1
	if n > maxClass+1 {
		n = maxClass + 1
	}
	return n
}
