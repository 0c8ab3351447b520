// SPDX-License-Identifier: MIT

package ve

import "errors"

var (
	// ErrNilQuery is returned when the query variable is nil.
	ErrNilQuery = errors.New("ve: query variable is nil")

	// ErrUnknownVariable indicates a query or evidence variable outside the network.
	ErrUnknownVariable = errors.New("ve: variable not in network")

	// ErrConflictingEvidence indicates one variable observed at two different values.
	ErrConflictingEvidence = errors.New("ve: conflicting evidence")

	// ErrInvalidOrdering indicates the ordering function returned an unknown,
	// repeated or query variable, or left a variable out.
	ErrInvalidOrdering = errors.New("ve: invalid elimination ordering")

	// ErrInconsistentEliminationResult indicates that after elimination the
	// remaining factors do not range over exactly the query variable (for
	// example the query is also an evidence variable).
	ErrInconsistentEliminationResult = errors.New("ve: remaining factors are not over exactly the query variable")

	// ErrZeroEvidenceProbability indicates the evidence has probability zero
	// under the model, so the posterior is undefined.
	ErrZeroEvidenceProbability = errors.New("ve: evidence has zero probability")

	// ErrNonFinite indicates the unnormalised distribution overflowed or became NaN.
	ErrNonFinite = errors.New("ve: non-finite distribution")
)
