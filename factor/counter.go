// SPDX-License-Identifier: MIT
// File: counter.go
// Role: iterative mixed-radix odometer replacing recursive enumeration.
// Determinism:
//   - Tuples are produced in canonical order: the LAST digit varies fastest,
//     the first slowest. Offset() equals the row-major fold of Digits().

package factor

import "fmt"

// Counter enumerates every tuple of a mixed-radix space.
//
// Usage:
//
//	c := NewCounter([]int{2, 3})
//	for c.Next() {
//		use(c.Digits(), c.Offset())
//	}
//
// An empty radix list describes a single empty tuple; any zero radix makes
// the space empty.
type Counter struct {
	radices []int
	digits  []int
	offset  int
	size    int
	started bool
}

// NewCounter creates a Counter positioned before the first tuple.
func NewCounter(radices []int) *Counter {
	size := 1
	for _, r := range radices {
		if r <= 0 {
			size = 0
			break
		}
		size *= r
	}
	rs := make([]int, len(radices))
	copy(rs, radices)

	return &Counter{
		radices: rs,
		digits:  make([]int, len(radices)),
		size:    size,
	}
}

// Len returns the number of tuples in the space.
func (c *Counter) Len() int { return c.size }

// Next advances to the next tuple, reporting false once the space is exhausted.
func (c *Counter) Next() bool {
	if !c.started {
		c.started = true
		return c.offset < c.size
	}
	if c.offset >= c.size {
		return false
	}
	c.offset++
	// Increment with carry, last digit fastest.
	for i := len(c.digits) - 1; i >= 0; i-- {
		c.digits[i]++
		if c.digits[i] < c.radices[i] {
			break
		}
		c.digits[i] = 0
	}

	return c.offset < c.size
}

// Digits returns the current tuple. The slice is owned by the Counter and is
// overwritten by Next; copy it to retain.
func (c *Counter) Digits() []int { return c.digits }

// Offset returns the row-major offset of the current tuple.
func (c *Counter) Offset() int { return c.offset }

// Seek positions the counter so that the following Next yields the tuple at offset.
func (c *Counter) Seek(offset int) error {
	if offset < 0 || offset > c.size {
		return fmt.Errorf("counter: %w: offset %d not in [0,%d]", ErrIndexOutOfRange, offset, c.size)
	}
	c.offset = offset
	c.started = false
	if c.size == 0 {
		return nil
	}
	rem := offset
	for i := len(c.digits) - 1; i >= 0; i-- {
		c.digits[i] = rem % c.radices[i]
		rem /= c.radices[i]
	}

	return nil
}

// Reset rewinds to before the first tuple.
func (c *Counter) Reset() {
	_ = c.Seek(0)
}
