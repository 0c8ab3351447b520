// SPDX-License-Identifier: MIT

package factor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/factor"
)

// collect drains c into copies of its tuples.
func collect(c *factor.Counter) [][]int {
	var out [][]int
	for c.Next() {
		d := make([]int, len(c.Digits()))
		copy(d, c.Digits())
		out = append(out, d)
	}

	return out
}

// TestCounter_CanonicalOrder verifies last digit fastest and offsets in step.
func TestCounter_CanonicalOrder(t *testing.T) {
	c := factor.NewCounter([]int{2, 3})
	assert.Equal(t, 6, c.Len())

	var offsets []int
	var tuples [][]int
	for c.Next() {
		offsets = append(offsets, c.Offset())
		tuples = append(tuples, append([]int(nil), c.Digits()...))
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, offsets)
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, tuples)
	assert.False(t, c.Next(), "stays exhausted")
}

// TestCounter_EmptyAndZero covers the empty tuple space and a zero radix.
func TestCounter_EmptyAndZero(t *testing.T) {
	c := factor.NewCounter(nil)
	assert.Equal(t, [][]int{{}}, collect(c))

	z := factor.NewCounter([]int{2, 0, 3})
	assert.Equal(t, 0, z.Len())
	assert.Empty(t, collect(z))
	require.NoError(t, z.Seek(0))
}

// TestCounter_Seek resumes from an arbitrary offset.
func TestCounter_Seek(t *testing.T) {
	c := factor.NewCounter([]int{3, 2, 2})
	require.NoError(t, c.Seek(5))
	got := collect(c)
	require.Len(t, got, 7)
	assert.Equal(t, []int{1, 0, 1}, got[0])
	assert.Equal(t, []int{2, 1, 1}, got[6])

	assert.ErrorIs(t, c.Seek(13), factor.ErrIndexOutOfRange)
	assert.ErrorIs(t, c.Seek(-1), factor.ErrIndexOutOfRange)

	c.Reset()
	assert.Len(t, collect(c), 12)
}
