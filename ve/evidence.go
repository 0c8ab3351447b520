// SPDX-License-Identifier: MIT

package ve

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvbayes/factor"
)

// Observation fixes Var at domain position Index.
type Observation struct {
	Var   *factor.Variable
	Index int
}

// Value returns the observed domain value.
func (o Observation) Value() factor.Value {
	val, _ := o.Var.ValueAt(o.Index)
	return val
}

// String renders "Var=value".
func (o Observation) String() string {
	return fmt.Sprintf("%s=%s", o.Var.Name(), o.Value())
}

// Evidence is an ordered set of observations. It is read-only during inference.
type Evidence []Observation

// Observe builds an Observation from a domain value.
func Observe(v *factor.Variable, value factor.Value) (Observation, error) {
	if v == nil {
		return Observation{}, factor.ErrNilVariable
	}
	i, err := v.ValueIndex(value)
	if err != nil {
		return Observation{}, err
	}

	return Observation{Var: v, Index: i}, nil
}

// FromVariables snapshots each variable's evidence slot (see Variable.SetEvidence).
func FromVariables(vars ...*factor.Variable) (Evidence, error) {
	ev := make(Evidence, 0, len(vars))
	for _, v := range vars {
		if v == nil {
			return nil, factor.ErrNilVariable
		}
		i := v.EvidenceIndex()
		if i >= v.DomainSize() {
			return nil, fmt.Errorf("variable %q: %w: evidence on empty domain", v.Name(), factor.ErrIndexOutOfRange)
		}
		ev = append(ev, Observation{Var: v, Index: i})
	}

	return ev, nil
}

// Variables lists the observed variables in order.
func (e Evidence) Variables() []*factor.Variable {
	out := make([]*factor.Variable, len(e))
	for i, o := range e {
		out[i] = o.Var
	}

	return out
}

// String renders "A=1, B=x".
func (e Evidence) String() string {
	parts := make([]string, len(e))
	for i, o := range e {
		parts[i] = o.String()
	}

	return strings.Join(parts, ", ")
}

// normalize validates positions, drops exact repeats and rejects conflicts.
func (e Evidence) normalize() (Evidence, error) {
	seen := make(map[*factor.Variable]int, len(e))
	out := make(Evidence, 0, len(e))
	for _, o := range e {
		if o.Var == nil {
			return nil, factor.ErrNilVariable
		}
		if o.Index < 0 || o.Index >= o.Var.DomainSize() {
			return nil, fmt.Errorf("evidence %s: %w: %d", o.Var.Name(), factor.ErrIndexOutOfRange, o.Index)
		}
		if prev, ok := seen[o.Var]; ok {
			if prev != o.Index {
				return nil, fmt.Errorf("%w: %s observed at positions %d and %d", ErrConflictingEvidence, o.Var.Name(), prev, o.Index)
			}
			continue
		}
		seen[o.Var] = o.Index
		out = append(out, o)
	}

	return out, nil
}
