// SPDX-License-Identifier: MIT
// File: eliminate.go
// Role: sum-product elimination of one variable.
// Concurrency:
//   - The enumeration of the new factor's entries may be split across workers
//     (errgroup). Each worker owns its Binding and Counter and writes a
//     disjoint range of the result table, so inputs are only read.
// Determinism:
//   - Each entry is accumulated by one worker in the same order as the
//     sequential path, so results are bit-identical for any worker count.

package ve

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvbayes/factor"
)

// cancelCheckMask sets how often (in enumerated tuples) workers poll ctx.
const cancelCheckMask = 1<<12 - 1

// Eliminate sums z out of the factors that mention it.
//
// With F_z the factors whose scope contains z, it builds g over the first-seen
// union of F_z's scopes minus z, where
//
//	g(x) = Σ_{z} Π_{f ∈ F_z} f(x, z)
//
// and returns the working list with F_z removed and g appended (other factors
// keep their relative order), together with g. When no factor mentions z the
// list is returned unchanged and g is nil.
func Eliminate(ctx context.Context, factors []*factor.Factor, z *factor.Variable, opts ...Option) ([]*factor.Factor, *factor.Factor, error) {
	return eliminate(ctx, factors, z, buildOptions(opts))
}

func eliminate(ctx context.Context, factors []*factor.Factor, z *factor.Variable, o options) ([]*factor.Factor, *factor.Factor, error) {
	if z == nil {
		return nil, nil, factor.ErrNilVariable
	}

	// 1. Split the working list.
	var fz, rest []*factor.Factor
	for _, f := range factors {
		if f.Contains(z) {
			fz = append(fz, f)
		} else {
			rest = append(rest, f)
		}
	}
	if len(fz) == 0 {
		return append([]*factor.Factor(nil), factors...), nil, nil
	}

	// 2. Target scope from the current F_z.
	scope := factor.UnionScope(fz, z)
	g, err := factor.New("g_"+z.Name(), scope...)
	if err != nil {
		return nil, nil, err
	}

	// 3. Enumerate (scope..., z) with z fastest, so the entries that sum into
	//    g's offset k are exactly the product-space offsets [k*|z|, (k+1)*|z|).
	full := make([]*factor.Variable, 0, len(scope)+1)
	full = append(full, scope...)
	full = append(full, z)
	radices := make([]int, len(full))
	for i, v := range full {
		radices[i] = v.DomainSize()
	}
	table := make([]float64, g.Size())
	if err = sumProduct(ctx, table, fz, full, radices, o); err != nil {
		return nil, nil, err
	}
	if err = g.SetTable(table); err != nil {
		return nil, nil, fmt.Errorf("ve: eliminate %s: %w", z.Name(), err)
	}

	return append(rest, g), g, nil
}

// sumProduct fills table, sequentially or split into contiguous ranges of g's entries.
func sumProduct(ctx context.Context, table []float64, fz []*factor.Factor, full []*factor.Variable, radices []int, o options) error {
	n := len(table)
	zs := radices[len(radices)-1]
	workers := o.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 || n*zs < o.parallelThreshold {
		return accumulate(ctx, table, fz, full, radices, 0, n)
	}

	chunk := (n + workers - 1) / workers
	eg, egCtx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunk {
		start, end := start, min(start+chunk, n)
		eg.Go(func() error {
			return accumulate(egCtx, table, fz, full, radices, start, end)
		})
	}

	return eg.Wait()
}

// accumulate adds Π f over every z value into table[start:end].
func accumulate(ctx context.Context, table []float64, fz []*factor.Factor, full []*factor.Variable, radices []int, start, end int) error {
	zs := radices[len(radices)-1]
	if zs == 0 {
		return nil
	}
	b := factor.NewBinding()
	c := factor.NewCounter(radices)
	if err := c.Seek(start * zs); err != nil {
		return err
	}
	limit := end * zs
	for c.Next() && c.Offset() < limit {
		if c.Offset()&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		b.BindDigits(full, c.Digits())
		p := 1.0
		for _, f := range fz {
			p *= f.ValueAt(b)
		}
		table[c.Offset()/zs] += p
	}

	return nil
}
