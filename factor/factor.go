// SPDX-License-Identifier: MIT

// Package factor - flat factor tables over discrete variables.
//
// Purpose:
//   - Store a function of an ordered scope as a flat []float64 indexed by the
//     row-major (mixed-radix) fold idx = idx*|Vi| + pos(xi), the only formula
//     used by every read and write path.
//   - Keep public accessors error-returning; no panics on user input.
//   - Enforce a numeric policy: entries are finite.
//
// Complexity quicksheet:
//   - New: O(Π|Vi|) zero-init; Value/AddValues per row: O(k); ValueAt/AddValueAt: O(k).

package factor

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Row is one table entry: a value per scope variable (in scope order) and the number.
type Row struct {
	Assignment []Value
	Value      float64
}

// RowOf builds a Row from cells laid out as "value per scope variable, then the number",
// e.g. RowOf(1, "a", "heavy", 0.25). The last cell must be numeric.
func RowOf(cells ...any) (Row, error) {
	if len(cells) == 0 {
		return Row{}, fmt.Errorf("%w: empty row", ErrArity)
	}
	last := cells[len(cells)-1]
	num, err := ValueOf(last)
	if err != nil {
		return Row{}, err
	}
	x, ok := num.Float()
	if !ok {
		return Row{}, fmt.Errorf("%w: trailing cell %v is not a number", ErrUnsupportedValue, last)
	}
	assignment, err := Values(cells[:len(cells)-1]...)
	if err != nil {
		return Row{}, err
	}

	return Row{Assignment: assignment, Value: x}, nil
}

// MustRow is RowOf for literals known to be valid; it panics otherwise.
func MustRow(cells ...any) Row {
	r, err := RowOf(cells...)
	if err != nil {
		panic(err)
	}

	return r
}

// Factor maps every assignment of its scope to a real number.
//
//   - scope is ordered and fixed at construction; order defines indexing.
//   - radices caches each scope variable's domain size; domains are frozen
//     by New, so the cache can never go stale.
//   - values has length Π radices (1 for the constant factor with empty scope).
//
// A Factor is safe for concurrent reads. Writers (AddValues, SetTable,
// AddValueAt) must not run concurrently with anything else on the same Factor.
type Factor struct {
	name    string
	scope   []*Variable
	radices []int
	values  []float64
}

// New creates a zero-filled Factor over scope.
// Errors: ErrInvalidScope for nil or repeated variables.
func New(name string, scope ...*Variable) (*Factor, error) {
	seen := make(map[*Variable]struct{}, len(scope))
	for i, v := range scope {
		if v == nil {
			return nil, fmt.Errorf("factor %q: %w: position %d is nil", name, ErrInvalidScope, i)
		}
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("factor %q: %w: %s repeated", name, ErrInvalidScope, v.name)
		}
		seen[v] = struct{}{}
	}

	f := &Factor{
		name:    name,
		scope:   make([]*Variable, len(scope)),
		radices: make([]int, len(scope)),
	}
	copy(f.scope, scope)
	size := 1
	for i, v := range scope {
		f.radices[i] = v.freeze()
		size *= f.radices[i]
	}
	f.values = make([]float64, size)

	return f, nil
}

// Name returns the factor name.
func (f *Factor) Name() string { return f.name }

// Scope returns a copy of the ordered scope.
func (f *Factor) Scope() []*Variable {
	out := make([]*Variable, len(f.scope))
	copy(out, f.scope)

	return out
}

// Arity returns the number of scope variables.
func (f *Factor) Arity() int { return len(f.scope) }

// Contains reports whether v is in the scope.
func (f *Factor) Contains(v *Variable) bool {
	return f.position(v) >= 0
}

// position returns v's index in the scope, or -1.
func (f *Factor) position(v *Variable) int {
	for i, s := range f.scope {
		if s == v {
			return i
		}
	}

	return -1
}

// Size returns the table length.
func (f *Factor) Size() int { return len(f.values) }

// Table returns a copy of the flat table in canonical order.
func (f *Factor) Table() []float64 {
	out := make([]float64, len(f.values))
	copy(out, f.values)

	return out
}

// SetTable overwrites the whole table; values are given in canonical order
// (first scope variable slowest).
// Errors: ErrTableSize, ErrNaNInf.
func (f *Factor) SetTable(values []float64) error {
	if len(values) != len(f.values) {
		return fmt.Errorf("factor %q: %w: got %d, want %d", f.name, ErrTableSize, len(values), len(f.values))
	}
	for i, x := range values {
		if err := checkFinite(x); err != nil {
			return fmt.Errorf("factor %q: entry %d: %w", f.name, i, err)
		}
	}
	copy(f.values, values)

	return nil
}

// Offset computes the table offset of an assignment given as one value per
// scope variable. Errors: ErrArity, ErrValueNotInDomain.
func (f *Factor) Offset(values ...Value) (int, error) {
	if len(values) != len(f.scope) {
		return 0, fmt.Errorf("factor %q: %w: got %d values for %d variables", f.name, ErrArity, len(values), len(f.scope))
	}
	idx := 0
	for i, v := range f.scope {
		pos, err := v.ValueIndex(values[i])
		if err != nil {
			return 0, fmt.Errorf("factor %q: %w", f.name, err)
		}
		idx = idx*f.radices[i] + pos
	}

	return idx, nil
}

// OffsetAt computes the table offset of the scope's positions in b.
func (f *Factor) OffsetAt(b *Binding) int {
	idx := 0
	for i, v := range f.scope {
		idx = idx*f.radices[i] + b.idx[v]
	}

	return idx
}

// AddValues writes each row's number at the offset of its assignment.
// Rows may come in any order and need not cover the table; uncovered entries keep their value.
// The call is atomic: on error the table is unchanged.
// Errors: ErrArity, ErrValueNotInDomain, ErrNaNInf.
func (f *Factor) AddValues(rows ...Row) error {
	offsets := make([]int, len(rows))
	for r, row := range rows {
		off, err := f.Offset(row.Assignment...)
		if err != nil {
			return fmt.Errorf("row %d: %w", r, err)
		}
		if err = checkFinite(row.Value); err != nil {
			return fmt.Errorf("factor %q: row %d: %w", f.name, r, err)
		}
		offsets[r] = off
	}
	for r, off := range offsets {
		f.values[off] = rows[r].Value
	}

	return nil
}

// AddValueAt writes x at the entry addressed by b's assignment of the scope.
func (f *Factor) AddValueAt(b *Binding, x float64) error {
	if err := checkFinite(x); err != nil {
		return fmt.Errorf("factor %q: %w", f.name, err)
	}
	f.values[f.OffsetAt(b)] = x

	return nil
}

// Value returns the entry for an assignment given as one value per scope variable.
// For a constant factor, Value() returns its single entry.
// Errors: ErrArity, ErrValueNotInDomain.
func (f *Factor) Value(values ...Value) (float64, error) {
	off, err := f.Offset(values...)
	if err != nil {
		return 0, err
	}

	return f.values[off], nil
}

// ValueAt returns the entry addressed by b's assignment of the scope.
func (f *Factor) ValueAt(b *Binding) float64 {
	return f.values[f.OffsetAt(b)]
}

// Rows enumerates every assignment in canonical order with its entry.
func (f *Factor) Rows() []Row {
	domains := make([][]Value, len(f.scope))
	for i, v := range f.scope {
		domains[i] = v.Domain()
	}
	out := make([]Row, 0, len(f.values))
	c := NewCounter(f.radices)
	for c.Next() {
		assignment := make([]Value, len(f.scope))
		for i, d := range c.Digits() {
			assignment[i] = domains[i][d]
		}
		out = append(out, Row{Assignment: assignment, Value: f.values[c.Offset()]})
	}

	return out
}

// Format writes the table, one assignment per line, in canonical order:
//
//	[A = 1, B = a] = 0.25
func (f *Factor) Format(w io.Writer) error {
	var sb strings.Builder
	for _, row := range f.Rows() {
		sb.WriteString("[")
		for i, val := range row.Assignment {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s = %s", f.scope[i].name, val)
		}
		fmt.Fprintf(&sb, "] = %g\n", row.Value)
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// String renders "name(A, B, C)".
func (f *Factor) String() string {
	names := make([]string, len(f.scope))
	for i, v := range f.scope {
		names[i] = v.name
	}

	return fmt.Sprintf("%s(%s)", f.name, strings.Join(names, ", "))
}

// checkFinite enforces the numeric policy.
func checkFinite(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrNaNInf
	}

	return nil
}
