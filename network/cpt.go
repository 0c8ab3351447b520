// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbayes/factor"
)

// checkCPT verifies Σ_child f(child, parents) = 1 for every parent configuration.
// The child is the first scope variable, so in canonical order each parent
// configuration p occupies offsets p, p+stride, ..., with stride = Size()/|child|.
func checkCPT(f *factor.Factor, eps float64) error {
	table := f.Table()
	childSize := f.Scope()[0].DomainSize()
	if childSize == 0 {
		return nil
	}
	stride := len(table) / childSize
	for p := 0; p < stride; p++ {
		sum := 0.0
		for c := 0; c < childSize; c++ {
			sum += table[c*stride+p]
		}
		if math.Abs(sum-1) > eps {
			return fmt.Errorf("%w: %s parent configuration %d sums to %g", ErrNotNormalized, f, p, sum)
		}
	}

	return nil
}
