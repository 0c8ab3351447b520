// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvbayes/factor"
)

var (
	// ErrInvalidScope aliases factor.ErrInvalidScope so errors.Is matches either name.
	ErrInvalidScope = factor.ErrInvalidScope

	// ErrNilNetwork is returned when a nil *BayesNet reaches an operation.
	ErrNilNetwork = errors.New("network: network is nil")

	// ErrNilEntry indicates a nil variable or factor in the constructor lists.
	ErrNilEntry = errors.New("network: nil variable or factor")

	// ErrDuplicateVariable indicates the same *Variable listed twice.
	ErrDuplicateVariable = errors.New("network: duplicate variable")

	// ErrNoStructure is returned by structural accessors on a network built
	// without WithStructureCheck.
	ErrNoStructure = errors.New("network: no parent structure (build WithStructureCheck)")

	// ErrMissingCPT indicates a variable with no factor headed by it.
	ErrMissingCPT = errors.New("network: variable has no CPT")

	// ErrDuplicateCPT indicates two factors headed by the same variable.
	ErrDuplicateCPT = errors.New("network: variable has more than one CPT")

	// ErrCyclicNetwork indicates the parent relation contains a directed cycle.
	ErrCyclicNetwork = errors.New("network: parent graph has a cycle")

	// ErrNotNormalized indicates a CPT column that does not sum to 1.
	ErrNotNormalized = errors.New("network: CPT not normalized")
)

// ScopeError identifies the factor and variable behind an ErrInvalidScope
// raised while building a network.
type ScopeError struct {
	Network  string
	Factor   string
	Variable string
}

// Error implements error.
func (e *ScopeError) Error() string {
	return fmt.Sprintf("network %q: factor %s references variable %s not in the network",
		e.Network, e.Factor, e.Variable)
}

// Unwrap lets errors.Is(err, ErrInvalidScope) match.
func (e *ScopeError) Unwrap() error { return ErrInvalidScope }
