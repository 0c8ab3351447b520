// SPDX-License-Identifier: MIT

package models

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/network"
)

// builder collects variables and CPTs; the first error sticks and is
// reported by build.
type builder struct {
	vars    []*factor.Variable
	factors []*factor.Factor
	err     error
}

// variable declares a variable with the given domain.
func (b *builder) variable(name string, domain ...any) *factor.Variable {
	if b.err != nil {
		return nil
	}
	vals, err := factor.Values(domain...)
	if err != nil {
		b.err = fmt.Errorf("models: variable %s: %w", name, err)
		return nil
	}
	v, err := factor.NewVariable(name, vals...)
	if err != nil {
		b.err = fmt.Errorf("models: variable %s: %w", name, err)
		return nil
	}
	b.vars = append(b.vars, v)

	return v
}

// cpt declares P(child | parents) with table in canonical order over
// (child, parents...), child varying slowest.
func (b *builder) cpt(table []float64, child *factor.Variable, parents ...*factor.Variable) {
	if b.err != nil {
		return
	}
	name := "P(" + child.Name() + ")"
	if len(parents) > 0 {
		ps := make([]string, len(parents))
		for i, p := range parents {
			ps[i] = p.Name()
		}
		name = fmt.Sprintf("P(%s|%s)", child.Name(), strings.Join(ps, ","))
	}
	scope := append([]*factor.Variable{child}, parents...)
	f, err := factor.New(name, scope...)
	if err == nil {
		err = f.SetTable(table)
	}
	if err != nil {
		b.err = fmt.Errorf("models: %s: %w", name, err)
		return
	}
	b.factors = append(b.factors, f)
}

// build validates the collected network as a normalised DAG of CPTs.
func (b *builder) build(name string) (*network.BayesNet, error) {
	if b.err != nil {
		return nil, b.err
	}

	return network.New(name, b.vars, b.factors, network.WithCPTCheck(0))
}
