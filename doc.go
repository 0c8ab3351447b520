// SPDX-License-Identifier: MIT

// Package lvbayes answers probabilistic queries on discrete Bayesian networks
// by exact Variable Elimination.
//
// The module is organised as:
//
//	factor/    Value, Variable, Binding, Counter, Factor and factor algebra
//	network/   BayesNet: validated variables and CPTs, optional DAG checks
//	ordering/  elimination orders: MinFill, MinWeight, Given, InducedWidth
//	ve/        Restrict, Eliminate, Engine.Query, VE, BruteForce, metrics
//	models/    built-in networks: chain, sprinkler, alarm, asia-lite
//	config/    YAML run files for the CLI
//	cmd/bnet/  command-line front end
//
// Quick example (chain A → B → C, evidence A=1):
//
//	bn, _ := models.Chain()
//	a, _ := bn.Variable("A")
//	c, _ := bn.Variable("C")
//	obs, _ := ve.Observe(a, factor.Int(1))
//	res, _ := ve.New().Query(ctx, bn, c, ve.Evidence{obs})
//	fmt.Println(res) // P(C) = [0: 0.42, 1: 0.58]
//
// Variables are identified by pointer, never by name. Assignments are carried
// by an explicit factor.Binding, so inference never mutates shared state and
// independent queries may run concurrently on the same network.
package lvbayes
