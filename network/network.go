// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvbayes/factor"
)

// DefaultCPTEps is the tolerance used by WithCPTCheck when eps <= 0.
const DefaultCPTEps = 1e-9

// Option configures validation performed by New.
type Option func(*options)

type options struct {
	structure bool    // derive and validate the parent DAG
	cptCheck  bool    // verify every CPT column sums to 1
	cptEps    float64 // tolerance for cptCheck
}

// WithStructureCheck reads each factor as a CPT whose first scope variable is
// the child and the rest its parents. New then requires exactly one CPT per
// variable and an acyclic parent graph, and enables Parents and TopologicalOrder.
func WithStructureCheck() Option {
	return func(o *options) { o.structure = true }
}

// WithCPTCheck implies WithStructureCheck and additionally requires every CPT
// to sum to 1 (within eps) over its child for each parent configuration.
func WithCPTCheck(eps float64) Option {
	return func(o *options) {
		o.structure = true
		o.cptCheck = true
		if eps <= 0 {
			eps = DefaultCPTEps
		}
		o.cptEps = eps
	}
}

// BayesNet is an immutable aggregate of variables and factors.
// Validation runs once in New; a *BayesNet that exists is consistent.
// Safe for concurrent use.
type BayesNet struct {
	name      string
	variables []*factor.Variable
	factors   []*factor.Factor
	member    map[*factor.Variable]struct{}
	dag       *dag // nil unless WithStructureCheck
}

// New validates and assembles a network.
//
// Stages:
//  1. no nil entries (ErrNilEntry), no repeated variables (ErrDuplicateVariable);
//  2. every scope variable is listed (*ScopeError wrapping ErrInvalidScope);
//  3. optional structure: one CPT per variable, acyclic (ErrMissingCPT,
//     ErrDuplicateCPT, ErrCyclicNetwork);
//  4. optional CPT normalisation (ErrNotNormalized).
func New(name string, vars []*factor.Variable, factors []*factor.Factor, opts ...Option) (*BayesNet, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1: variables.
	member := make(map[*factor.Variable]struct{}, len(vars))
	for i, v := range vars {
		if v == nil {
			return nil, fmt.Errorf("network %q: variable %d: %w", name, i, ErrNilEntry)
		}
		if _, dup := member[v]; dup {
			return nil, fmt.Errorf("network %q: %w: %s", name, ErrDuplicateVariable, v.Name())
		}
		member[v] = struct{}{}
	}

	// Stage 2: scopes.
	for i, f := range factors {
		if f == nil {
			return nil, fmt.Errorf("network %q: factor %d: %w", name, i, ErrNilEntry)
		}
		for _, v := range f.Scope() {
			if _, ok := member[v]; !ok {
				return nil, &ScopeError{Network: name, Factor: f.String(), Variable: v.Name()}
			}
		}
	}

	bn := &BayesNet{
		name:      name,
		variables: append([]*factor.Variable(nil), vars...),
		factors:   append([]*factor.Factor(nil), factors...),
		member:    member,
	}

	// Stage 3: structure.
	if o.structure {
		d, err := buildDAG(bn.variables, bn.factors)
		if err != nil {
			return nil, fmt.Errorf("network %q: %w", name, err)
		}
		bn.dag = d
	}

	// Stage 4: CPT columns.
	if o.cptCheck {
		for _, f := range bn.factors {
			if err := checkCPT(f, o.cptEps); err != nil {
				return nil, fmt.Errorf("network %q: %w", name, err)
			}
		}
	}

	return bn, nil
}

// Name returns the network name.
func (bn *BayesNet) Name() string { return bn.name }

// Variables returns a copy of the variable list.
func (bn *BayesNet) Variables() []*factor.Variable {
	return append([]*factor.Variable(nil), bn.variables...)
}

// Factors returns a copy of the factor list; inference works on such copies
// and never alters the network.
func (bn *BayesNet) Factors() []*factor.Factor {
	return append([]*factor.Factor(nil), bn.factors...)
}

// Contains reports whether v belongs to the network.
func (bn *BayesNet) Contains(v *factor.Variable) bool {
	_, ok := bn.member[v]
	return ok
}

// Variable returns the first variable named name.
func (bn *BayesNet) Variable(name string) (*factor.Variable, bool) {
	for _, v := range bn.variables {
		if v.Name() == name {
			return v, true
		}
	}

	return nil, false
}

// Factor returns the first factor named name.
func (bn *BayesNet) Factor(name string) (*factor.Factor, bool) {
	for _, f := range bn.factors {
		if f.Name() == name {
			return f, true
		}
	}

	return nil, false
}

// Parents returns v's parents in CPT scope order.
// Errors: ErrNoStructure.
func (bn *BayesNet) Parents(v *factor.Variable) ([]*factor.Variable, error) {
	if bn.dag == nil {
		return nil, ErrNoStructure
	}

	return append([]*factor.Variable(nil), bn.dag.parents[v]...), nil
}

// CPT returns the factor headed by v.
// Errors: ErrNoStructure.
func (bn *BayesNet) CPT(v *factor.Variable) (*factor.Factor, error) {
	if bn.dag == nil {
		return nil, ErrNoStructure
	}

	return bn.dag.cpt[v], nil
}

// TopologicalOrder returns the variables with every parent before its children.
// Errors: ErrNoStructure.
func (bn *BayesNet) TopologicalOrder() ([]*factor.Variable, error) {
	if bn.dag == nil {
		return nil, ErrNoStructure
	}

	return append([]*factor.Variable(nil), bn.dag.order...), nil
}

// String renders "name: vars=[A, B] factors=[P(A)(A), ...]".
func (bn *BayesNet) String() string {
	vs := make([]string, len(bn.variables))
	for i, v := range bn.variables {
		vs[i] = v.Name()
	}
	fs := make([]string, len(bn.factors))
	for i, f := range bn.factors {
		fs[i] = f.String()
	}

	return fmt.Sprintf("%s: vars=[%s] factors=[%s]", bn.name, strings.Join(vs, ", "), strings.Join(fs, ", "))
}
