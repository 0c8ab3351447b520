// SPDX-License-Identifier: MIT

// Package network assembles variables and factors into a Bayesian network.
//
// New validates the network once, at construction, and never hands out an
// inconsistent value: every variable appearing in a factor scope must be in
// the variable list, otherwise a *ScopeError (matching ErrInvalidScope) is
// returned.
//
// With WithStructureCheck each factor is read as a CPT P(child | parents)
// whose first scope variable is the child. The parent graph must then be a
// DAG with exactly one CPT per variable; Parents, CPT and TopologicalOrder
// become available. WithCPTCheck additionally verifies normalisation.
//
// Factors returns a copy of the factor list, so inference can replace
// entries freely without touching the network.
//
// Errors:
//
//   - ErrInvalidScope       factor references a variable outside the network
//   - ErrNilEntry           nil variable or factor
//   - ErrDuplicateVariable  variable listed twice
//   - ErrMissingCPT         (structure) variable with no CPT
//   - ErrDuplicateCPT       (structure) two CPTs for one variable
//   - ErrCyclicNetwork      (structure) directed cycle
//   - ErrNotNormalized      (CPT check) column does not sum to 1
//   - ErrNoStructure        structural accessor on an unstructured network
package network
