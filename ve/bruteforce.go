// SPDX-License-Identifier: MIT

package ve

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/network"
)

// BruteForce computes P(query | evidence) by enumerating every joint
// assignment of the network's variables, skipping those inconsistent with the
// evidence, and summing the product of all factors per query value.
//
// It is exponential in the number of variables and exists as a ground truth
// for small networks. Unlike Query, observing the query variable itself is
// allowed and yields a point mass.
func BruteForce(ctx context.Context, net *network.BayesNet, query *factor.Variable, evidence Evidence) ([]float64, error) {
	if net == nil {
		return nil, network.ErrNilNetwork
	}
	if query == nil {
		return nil, ErrNilQuery
	}
	if !net.Contains(query) {
		return nil, fmt.Errorf("%w: query %s", ErrUnknownVariable, query.Name())
	}
	ev, err := evidence.normalize()
	if err != nil {
		return nil, err
	}
	for _, o := range ev {
		if !net.Contains(o.Var) {
			return nil, fmt.Errorf("%w: evidence %s", ErrUnknownVariable, o.Var.Name())
		}
	}

	vars := net.Variables()
	factors := net.Factors()
	radices := make([]int, len(vars))
	for i, v := range vars {
		radices[i] = v.DomainSize()
	}

	dist := make([]float64, query.DomainSize())
	b := factor.NewBinding()
	c := factor.NewCounter(radices)
	for c.Next() {
		if c.Offset()&cancelCheckMask == 0 {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
		}
		b.BindDigits(vars, c.Digits())
		if !consistent(b, ev) {
			continue
		}
		p := 1.0
		for _, f := range factors {
			p *= f.ValueAt(b)
		}
		dist[b.Index(query)] += p
	}

	sum := 0.0
	for _, p := range dist {
		sum += p
	}
	if err = normalize(dist, sum); err != nil {
		return nil, err
	}

	return dist, nil
}

func consistent(b *factor.Binding, ev Evidence) bool {
	for _, o := range ev {
		if b.Index(o.Var) != o.Index {
			return false
		}
	}

	return true
}
