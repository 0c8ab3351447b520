// SPDX-License-Identifier: MIT
// File: variable.go
// Role: discrete random variable with an ordered domain and an evidence slot.
// Concurrency:
//   - mu guards domain, index, evidence and frozen; reads take RLock.
//   - Assignments used while enumerating factor tables are NOT stored here;
//     see Binding.
// Determinism:
//   - Domain order is the positional encoding used by every Factor.

package factor

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

// nextVariableID is the process-wide counter behind Variable.ID.
var nextVariableID uint64

// Variable is a named discrete random variable.
//
// Identity is the pointer (and the equivalent ID()); the name is for display only,
// so two variables may share a name without being confused.
type Variable struct {
	mu sync.RWMutex

	id       uint64
	name     string
	domain   []Value       // ordered, unique
	index    map[Value]int // value → position in domain
	evidence int           // observed value, as a position in domain
	frozen   bool          // set once a Factor has sized a table against domain
}

// NewVariable creates a Variable with an optional initial domain.
// Errors: ErrInvalidValue, ErrDuplicateValue.
func NewVariable(name string, domain ...Value) (*Variable, error) {
	v := &Variable{
		id:    atomic.AddUint64(&nextVariableID, 1),
		name:  name,
		index: make(map[Value]int, len(domain)),
	}
	if err := v.AddDomainValues(domain...); err != nil {
		return nil, err
	}

	return v, nil
}

// MustVariable builds a Variable from Go literals (see ValueOf) and panics on error.
// Intended for fixtures and hand-written networks.
func MustVariable(name string, domain ...any) *Variable {
	v, err := NewVariable(name, MustValues(domain...)...)
	if err != nil {
		panic(err)
	}

	return v
}

// ID returns the unique, process-wide identifier of v.
func (v *Variable) ID() uint64 { return v.id }

// Name returns the display name.
func (v *Variable) Name() string { return v.name }

// AddDomainValues appends values to the domain in order.
// The call is atomic: on error nothing is appended.
// Errors: ErrDomainFrozen once a Factor references v; ErrInvalidValue; ErrDuplicateValue.
func (v *Variable) AddDomainValues(values ...Value) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.frozen && len(values) > 0 {
		return fmt.Errorf("variable %q: %w", v.name, ErrDomainFrozen)
	}
	// Validate the whole batch before touching state.
	seen := make(map[Value]struct{}, len(values))
	for _, val := range values {
		if !val.IsValid() {
			return fmt.Errorf("variable %q: %w", v.name, ErrInvalidValue)
		}
		_, dup := seen[val]
		if _, exists := v.index[val]; exists || dup {
			return fmt.Errorf("variable %q: %w: %s", v.name, ErrDuplicateValue, val)
		}
		seen[val] = struct{}{}
	}
	for _, val := range values {
		v.index[val] = len(v.domain)
		v.domain = append(v.domain, val)
	}

	return nil
}

// ValueIndex returns the position of value in the domain.
func (v *Variable) ValueIndex(value Value) (int, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	i, ok := v.index[value]
	if !ok {
		return 0, fmt.Errorf("variable %q: %w: %s", v.name, ErrValueNotInDomain, value)
	}

	return i, nil
}

// Lookup finds the first domain value whose String() equals text.
// It lets textual front-ends (flags, YAML) address typed domains.
func (v *Variable) Lookup(text string) (Value, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	for _, val := range v.domain {
		if val.String() == text {
			return val, nil
		}
	}

	return Value{}, fmt.Errorf("variable %q: %w: %q", v.name, ErrValueNotInDomain, text)
}

// DomainSize returns the number of domain values.
func (v *Variable) DomainSize() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return len(v.domain)
}

// Domain returns a copy of the domain; mutating it does not affect v.
func (v *Variable) Domain() []Value {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]Value, len(v.domain))
	copy(out, v.domain)

	return out
}

// ValueAt returns the domain value at position i.
func (v *Variable) ValueAt(i int) (Value, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if i < 0 || i >= len(v.domain) {
		return Value{}, fmt.Errorf("variable %q: %w: %d", v.name, ErrIndexOutOfRange, i)
	}

	return v.domain[i], nil
}

// SetEvidence records value as the observed value of v.
func (v *Variable) SetEvidence(value Value) error {
	i, err := v.ValueIndex(value)
	if err != nil {
		return err
	}
	v.mu.Lock()
	v.evidence = i
	v.mu.Unlock()

	return nil
}

// Evidence returns the observed value (the first domain value until SetEvidence is called).
// The zero Value is returned for an empty domain.
func (v *Variable) Evidence() Value {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.evidence >= len(v.domain) {
		return Value{}
	}

	return v.domain[v.evidence]
}

// EvidenceIndex returns the observed value as a domain position.
func (v *Variable) EvidenceIndex() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.evidence
}

// Frozen reports whether a Factor has sized a table against v's domain.
func (v *Variable) Frozen() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.frozen
}

// freeze fixes the domain and returns its size at that moment.
func (v *Variable) freeze() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.frozen = true

	return len(v.domain)
}

// String renders "Name, Dom = [a, b]".
func (v *Variable) String() string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	parts := make([]string, len(v.domain))
	for i, val := range v.domain {
		parts[i] = val.String()
	}

	return fmt.Sprintf("%s, Dom = [%s]", v.name, strings.Join(parts, ", "))
}
