// SPDX-License-Identifier: MIT

package factor

import "fmt"

// Binding is an assignment context: a mapping from Variable to the domain
// position it currently takes. Factor reads and writes that address the
// table "at the current assignment" take a Binding, so concurrent enumeration
// branches each own one and never observe each other's assignments.
//
// A variable that was never bound sits at position 0, which is always a valid
// position for a non-empty domain.
//
// A Binding is not safe for concurrent use; share by Clone.
type Binding struct {
	idx map[*Variable]int
}

// NewBinding returns an empty Binding.
func NewBinding() *Binding {
	return &Binding{idx: make(map[*Variable]int)}
}

// Set binds v to value.
// Errors: ErrNilVariable, ErrValueNotInDomain.
func (b *Binding) Set(v *Variable, value Value) error {
	if v == nil {
		return ErrNilVariable
	}
	i, err := v.ValueIndex(value)
	if err != nil {
		return err
	}
	b.idx[v] = i

	return nil
}

// Get returns the value v is bound to, or the zero Value for an empty domain.
func (b *Binding) Get(v *Variable) Value {
	val, err := v.ValueAt(b.Index(v))
	if err != nil {
		return Value{}
	}

	return val
}

// SetIndex binds v to domain position i without a value lookup.
// Errors: ErrNilVariable, ErrIndexOutOfRange.
func (b *Binding) SetIndex(v *Variable, i int) error {
	if v == nil {
		return ErrNilVariable
	}
	if n := v.DomainSize(); i < 0 || i >= n {
		return fmt.Errorf("variable %q: %w: %d not in [0,%d)", v.name, ErrIndexOutOfRange, i, n)
	}
	b.idx[v] = i

	return nil
}

// Index returns the position v is bound to (0 when unbound).
func (b *Binding) Index(v *Variable) int {
	return b.idx[v]
}

// Unset removes v from the binding; it reads as position 0 again.
func (b *Binding) Unset(v *Variable) {
	delete(b.idx, v)
}

// Len reports how many variables are explicitly bound.
func (b *Binding) Len() int { return len(b.idx) }

// Clone returns an independent copy.
func (b *Binding) Clone() *Binding {
	c := &Binding{idx: make(map[*Variable]int, len(b.idx))}
	for v, i := range b.idx {
		c.idx[v] = i
	}

	return c
}

// bind is the unchecked fast path used by enumeration loops whose positions
// come from a Counter over the same domains.
func (b *Binding) bind(v *Variable, i int) {
	b.idx[v] = i
}

// BindDigits binds scope[k] to digits[k] for every k, unchecked.
// Callers pass digits produced by a Counter over the scope's domain sizes.
func (b *Binding) BindDigits(scope []*Variable, digits []int) {
	for k, v := range scope {
		b.idx[v] = digits[k]
	}
}
