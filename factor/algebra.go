// SPDX-License-Identifier: MIT
// File: algebra.go
// Role: factor algebra producing fresh factors; inputs are never mutated.
// Determinism:
//   - Result scopes are built in first-seen order over the inputs' scopes.
//   - Tables are filled by a Counter in canonical order.

package factor

import "fmt"

// Restrict returns the factor obtained by fixing v at domain position index,
// with v removed from the scope. Restricting the only variable yields a
// constant factor.
// Errors: ErrNilVariable, ErrNotInScope, ErrIndexOutOfRange.
func Restrict(f *Factor, v *Variable, index int) (*Factor, error) {
	if v == nil {
		return nil, ErrNilVariable
	}
	pos := f.position(v)
	if pos < 0 {
		return nil, fmt.Errorf("factor %q: %w: %s", f.name, ErrNotInScope, v.name)
	}
	if index < 0 || index >= f.radices[pos] {
		return nil, fmt.Errorf("factor %q: %w: %s=%d", f.name, ErrIndexOutOfRange, v.name, index)
	}
	val, _ := v.ValueAt(index)

	scope := make([]*Variable, 0, len(f.scope)-1)
	scope = append(scope, f.scope[:pos]...)
	scope = append(scope, f.scope[pos+1:]...)
	g, err := New(fmt.Sprintf("%s[%s=%s]", f.name, v.name, val), scope...)
	if err != nil {
		return nil, err
	}

	b := NewBinding()
	b.bind(v, index)
	c := NewCounter(g.radices)
	for c.Next() {
		b.BindDigits(g.scope, c.Digits())
		g.values[c.Offset()] = f.ValueAt(b)
	}

	return g, nil
}

// UnionScope returns the first-seen union of the factors' scopes, skipping
// every variable listed in exclude.
func UnionScope(fs []*Factor, exclude ...*Variable) []*Variable {
	skip := make(map[*Variable]struct{}, len(exclude))
	for _, v := range exclude {
		skip[v] = struct{}{}
	}
	var out []*Variable
	for _, f := range fs {
		for _, v := range f.scope {
			if _, ok := skip[v]; ok {
				continue
			}
			skip[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}

// Product returns the pointwise product of fs over the union of their scopes.
// With no inputs it returns the constant factor 1.
func Product(name string, fs ...*Factor) (*Factor, error) {
	g, err := New(name, UnionScope(fs)...)
	if err != nil {
		return nil, err
	}
	b := NewBinding()
	c := NewCounter(g.radices)
	for c.Next() {
		b.BindDigits(g.scope, c.Digits())
		p := 1.0
		for _, f := range fs {
			p *= f.ValueAt(b)
		}
		g.values[c.Offset()] = p
	}

	return g, nil
}

// SumOut returns Σ_v f, a factor over f's scope without v.
// Errors: ErrNilVariable, ErrNotInScope.
func (f *Factor) SumOut(v *Variable) (*Factor, error) {
	if v == nil {
		return nil, ErrNilVariable
	}
	pos := f.position(v)
	if pos < 0 {
		return nil, fmt.Errorf("factor %q: %w: %s", f.name, ErrNotInScope, v.name)
	}
	g, err := New(fmt.Sprintf("sum_%s(%s)", v.name, f.name), UnionScope([]*Factor{f}, v)...)
	if err != nil {
		return nil, err
	}
	b := NewBinding()
	c := NewCounter(g.radices)
	for c.Next() {
		b.BindDigits(g.scope, c.Digits())
		sum := 0.0
		for i := 0; i < f.radices[pos]; i++ {
			b.bind(v, i)
			sum += f.ValueAt(b)
		}
		g.values[c.Offset()] = sum
	}

	return g, nil
}

// Sum returns the total of all table entries.
func (f *Factor) Sum() float64 {
	s := 0.0
	for _, x := range f.values {
		s += x
	}

	return s
}

// Normalize returns a copy of f scaled so its entries sum to 1.
// Errors: ErrZeroSum, ErrNaNInf when the sum overflows.
func (f *Factor) Normalize() (*Factor, error) {
	s := f.Sum()
	if s == 0 {
		return nil, fmt.Errorf("factor %q: %w", f.name, ErrZeroSum)
	}
	if err := checkFinite(s); err != nil {
		return nil, fmt.Errorf("factor %q: %w", f.name, err)
	}
	g, err := New(f.name, f.scope...)
	if err != nil {
		return nil, err
	}
	for i, x := range f.values {
		g.values[i] = x / s
	}

	return g, nil
}
