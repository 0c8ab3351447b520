// SPDX-License-Identifier: MIT

// Package factor provides the data model of discrete probabilistic inference:
// domain values, random variables, assignment contexts and factor tables.
//
// What:
//
//   - Value: a closed variant (Number, Text, Token) used as a domain entry.
//   - Variable: a named variable with an ordered domain and an evidence slot.
//   - Binding: an assignment context mapping variables to domain positions.
//     Every "read/write at the current assignment" goes through a Binding,
//     so no assignment state lives on shared Variables.
//   - Counter: an iterative mixed-radix odometer for exhaustive enumeration.
//   - Factor: a function of an ordered scope stored as a flat table.
//   - Restrict, Product, SumOut: factor algebra producing fresh factors.
//
// Indexing:
//
// For scope [V1..Vk] and assignment (x1..xk) the table offset is the row-major fold
//
//	idx = 0; for i := 1..k: idx = idx*|Vi| + pos(xi in Vi)
//
// The first scope variable varies slowest; this is also the canonical
// enumeration order of Rows, Format and Counter.
//
// Lifecycle:
//
// Domains may be extended until a Factor is built over the variable; from then
// on the domain is frozen (ErrDomainFrozen), because table sizes are fixed at
// construction.
//
// Errors:
//
//	ErrValueNotInDomain  value absent from a domain
//	ErrInvalidScope      nil or repeated scope variable
//	ErrNotInScope        operation names a variable outside the scope
//	ErrArity             wrong number of values for the scope
//	ErrDuplicateValue    domain already contains the value
//	ErrDomainFrozen      domain extended after a Factor referenced it
//	ErrIndexOutOfRange   domain position outside [0, size)
//	ErrNaNInf            non-finite table entry
//
// Complexity:
//
//   - New, Rows, Restrict, SumOut: O(table size).
//   - Product: O(|result table| · #inputs · k).
//   - Value, ValueAt, AddValueAt: O(k) for scope size k.
package factor
