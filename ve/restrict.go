// SPDX-License-Identifier: MIT

package ve

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/factor"
)

// Restrict returns a new factor list in which every factor mentioning an
// evidence variable is replaced, in place, by its restriction to the observed
// value. Factors without evidence variables are carried over unchanged and
// the input slice is not modified.
//
// The result mentions no evidence variable, so restricting it again by the
// same evidence returns an identical list.
func Restrict(factors []*factor.Factor, evidence Evidence) ([]*factor.Factor, error) {
	ev, err := evidence.normalize()
	if err != nil {
		return nil, err
	}
	out := append([]*factor.Factor(nil), factors...)
	for _, o := range ev {
		for i, f := range out {
			if !f.Contains(o.Var) {
				continue
			}
			g, err := factor.Restrict(f, o.Var, o.Index)
			if err != nil {
				return nil, fmt.Errorf("ve: restrict %s by %s: %w", f, o, err)
			}
			out[i] = g
		}
	}

	return out, nil
}
