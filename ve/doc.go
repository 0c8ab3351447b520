// SPDX-License-Identifier: MIT

// Package ve implements exact inference by Variable Elimination over a
// network.BayesNet.
//
// What:
//
//   - Restrict:   replace every factor mentioning an evidence variable by its
//     restriction to the observed value.
//   - Eliminate:  sum one variable out of the factors mentioning it
//     (sum-product), producing one replacement factor.
//   - Engine.Query: restrict → order (ordering.Func, MinFill by default) →
//     eliminate in order → multiply the remaining factors → normalise.
//   - VE:         single-call form reading evidence from Variable.SetEvidence.
//   - BruteForce: joint enumeration, a ground truth for small networks.
//
// Concurrency:
//
// No inference step mutates a Variable or an input Factor. Reads at an
// assignment go through a factor.Binding owned by the caller, so an
// elimination step can be split across WithWorkers goroutines, each with its
// own Binding and disjoint output range. Results do not depend on the worker
// count.
//
// Observability:
//
// WithLogger installs a zap logger (debug-level events per query and per
// eliminated variable, correlated by Result.ID); WithMetrics installs
// prometheus collectors from NewMetrics.
//
// Errors:
//
//   - ErrZeroEvidenceProbability        the evidence is impossible under the model
//   - ErrInconsistentEliminationResult  remaining factors are not over exactly the query
//   - ErrInvalidOrdering                ordering missed, repeated or added variables
//   - ErrUnknownVariable                query/evidence variable outside the network
//   - ErrConflictingEvidence            a variable observed at two values
//   - ErrNonFinite                      overflow or NaN in the unnormalised posterior
//   - context errors                    cancellation during elimination
//
// Complexity:
//
// Each elimination costs O(|z| · Π|g scope| · |F_z| · k); the ordering bounds
// the largest intermediate scope (Result.InducedWidth).
package ve
