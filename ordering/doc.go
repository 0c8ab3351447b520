// SPDX-License-Identifier: MIT

// Package ordering computes elimination orders for variable elimination.
//
// An ordering is any Func with the contract
//
//	order, err := fn(factors, query)
//
// returning every variable of the factors' scopes except query, once each.
// The order affects only the size of intermediate tables, never the result.
//
// Strategies:
//
//   - MinFill:   greedy, smallest fill-set size first (the reference strategy).
//   - MinWeight: greedy, smallest induced table (Π domain sizes) first.
//   - Given:     caller-provided order, completed in first-seen order.
//
// Both greedy strategies scan candidates in first-seen order (scanning the
// factor scopes left to right) and keep the earliest on ties, so results are
// deterministic. After choosing v, every working scope that contains v is
// replaced by one synthetic scope equal to v's fill set.
//
// InducedWidth reports the largest intermediate scope an order produces.
package ordering
