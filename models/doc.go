// SPDX-License-Identifier: MIT

// Package models is a small catalog of well-known Bayesian networks used by
// the bnet CLI and by the inference tests.
//
// Each constructor builds fresh variables, so networks from separate calls
// share nothing and may be queried concurrently.
package models
