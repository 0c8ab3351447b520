// SPDX-License-Identifier: MIT
// Package factor: sentinel error set.
// Every message is prefixed with "factor: ..." so it can be grepped in logs.
// Callers match with errors.Is; context is attached with fmt.Errorf("...: %w", ErrX).

package factor

import "errors"

var (
	// ErrValueNotInDomain is returned when a value is absent from a variable's domain.
	ErrValueNotInDomain = errors.New("factor: value not in domain")

	// ErrInvalidValue indicates the zero Value (no kind) was supplied where a real value is required.
	ErrInvalidValue = errors.New("factor: invalid value")

	// ErrUnsupportedValue is returned by ValueOf for Go types with no Value representation.
	ErrUnsupportedValue = errors.New("factor: unsupported value type")

	// ErrDuplicateValue indicates a domain already contains the value being added.
	ErrDuplicateValue = errors.New("factor: duplicate domain value")

	// ErrDomainFrozen indicates a domain was extended after a Factor sized its table against it.
	ErrDomainFrozen = errors.New("factor: domain frozen by a factor")

	// ErrIndexOutOfRange indicates a domain position outside [0, DomainSize).
	ErrIndexOutOfRange = errors.New("factor: index out of range")

	// ErrNilVariable indicates a nil *Variable was passed.
	ErrNilVariable = errors.New("factor: variable is nil")

	// ErrInvalidScope indicates a scope that is unusable: nil or repeated variables,
	// or (at network level) a variable that is not part of the network.
	ErrInvalidScope = errors.New("factor: invalid scope")

	// ErrNotInScope indicates an operation named a variable the factor does not depend on.
	ErrNotInScope = errors.New("factor: variable not in scope")

	// ErrArity indicates a row or lookup carried the wrong number of values for the scope.
	ErrArity = errors.New("factor: arity mismatch")

	// ErrTableSize indicates SetTable received a slice whose length differs from Size().
	ErrTableSize = errors.New("factor: table size mismatch")

	// ErrNaNInf signals a NaN or ±Inf entry; factor tables hold finite numbers only.
	ErrNaNInf = errors.New("factor: NaN or Inf encountered")

	// ErrZeroSum indicates Normalize was asked to scale a table whose entries sum to 0.
	ErrZeroSum = errors.New("factor: table sums to zero")
)
