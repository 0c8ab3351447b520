// SPDX-License-Identifier: MIT

package ordering

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvbayes/factor"
)

// ErrUnknownStrategy is returned by ByName for an unregistered strategy name.
var ErrUnknownStrategy = errors.New("ordering: unknown strategy")

// Func computes an elimination order: every variable appearing in the factors'
// scopes except query, each exactly once.
type Func func(factors []*factor.Factor, query *factor.Variable) ([]*factor.Variable, error)

// Strategy names accepted by ByName.
const (
	NameMinFill   = "min-fill"
	NameMinWeight = "min-weight"
)

// ByName resolves a strategy name.
func ByName(name string) (Func, error) {
	switch name {
	case NameMinFill, "":
		return MinFill, nil
	case NameMinWeight:
		return MinWeight, nil
	default:
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownStrategy, name, Names())
	}
}

// Names lists the registered strategy names, sorted.
func Names() []string {
	names := []string{NameMinFill, NameMinWeight}
	sort.Strings(names)

	return names
}

// MinFill is the greedy heuristic: repeatedly eliminate the variable whose
// fill set (union of the scopes mentioning it, minus itself) is smallest,
// breaking ties by first-seen position. It never fails.
//
// Complexity: O(n² · Σ|scope|).
func MinFill(factors []*factor.Factor, query *factor.Variable) ([]*factor.Variable, error) {
	return greedy(factors, query, func(fill []*factor.Variable) float64 {
		return float64(len(fill))
	}), nil
}

// MinWeight is the greedy heuristic minimising the table size of the induced
// factor, Π|V| over the fill set, instead of its variable count. Ties break
// by first-seen position.
func MinWeight(factors []*factor.Factor, query *factor.Variable) ([]*factor.Variable, error) {
	return greedy(factors, query, func(fill []*factor.Variable) float64 {
		w := 1.0
		for _, v := range fill {
			w *= float64(v.DomainSize())
		}
		return w
	}), nil
}

// Given returns a Func that follows order for the variables it lists and then
// appends every remaining variable in first-seen order. Listed variables that
// do not occur in the factors, the query, and repeats are skipped.
func Given(order ...*factor.Variable) Func {
	fixed := append([]*factor.Variable(nil), order...)

	return func(factors []*factor.Factor, query *factor.Variable) ([]*factor.Variable, error) {
		present := candidates(scopesOf(factors), query)
		in := make(map[*factor.Variable]bool, len(present))
		for _, v := range present {
			in[v] = true
		}
		out := make([]*factor.Variable, 0, len(present))
		for _, v := range fixed {
			if in[v] {
				out = append(out, v)
				in[v] = false
			}
		}
		for _, v := range present {
			if in[v] {
				out = append(out, v)
			}
		}

		return out, nil
	}
}

// InducedWidth simulates eliminating order over the factors' scopes and
// returns the size of the largest intermediate scope created.
func InducedWidth(factors []*factor.Factor, order []*factor.Variable) int {
	scopes := scopesOf(factors)
	width := 0
	for _, v := range order {
		fill := fillSet(scopes, v)
		if len(fill) > width {
			width = len(fill)
		}
		scopes = replace(scopes, v, fill)
	}

	return width
}

// greedy drives both heuristics; cost ranks a candidate's fill set.
func greedy(factors []*factor.Factor, query *factor.Variable, cost func([]*factor.Variable) float64) []*factor.Variable {
	// 1. Working scope collection and first-seen candidate list.
	scopes := scopesOf(factors)
	remaining := candidates(scopes, query)
	order := make([]*factor.Variable, 0, len(remaining))

	for len(remaining) > 0 {
		// 2. Cheapest candidate; strict < keeps the earliest on ties.
		best, bestCost := -1, math.Inf(1)
		var bestFill []*factor.Variable
		for i, v := range remaining {
			fill := fillSet(scopes, v)
			if c := cost(fill); best < 0 || c < bestCost {
				best, bestCost, bestFill = i, c, fill
			}
		}
		// 3. Emit and collapse the scopes that mention it.
		v := remaining[best]
		order = append(order, v)
		scopes = replace(scopes, v, bestFill)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return order
}

// scopesOf copies every factor scope.
func scopesOf(factors []*factor.Factor) [][]*factor.Variable {
	scopes := make([][]*factor.Variable, len(factors))
	for i, f := range factors {
		scopes[i] = f.Scope()
	}

	return scopes
}

// candidates lists scope variables in first-seen order, skipping query.
func candidates(scopes [][]*factor.Variable, query *factor.Variable) []*factor.Variable {
	seen := make(map[*factor.Variable]struct{})
	var out []*factor.Variable
	for _, s := range scopes {
		for _, v := range s {
			if _, ok := seen[v]; ok || v == query {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}

// fillSet is the first-seen union of the scopes containing v, minus v.
func fillSet(scopes [][]*factor.Variable, v *factor.Variable) []*factor.Variable {
	seen := map[*factor.Variable]struct{}{v: {}}
	var fill []*factor.Variable
	for _, s := range scopes {
		if !contains(s, v) {
			continue
		}
		for _, u := range s {
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			fill = append(fill, u)
		}
	}

	return fill
}

// replace keeps the scopes without v and appends fill in place of the rest.
func replace(scopes [][]*factor.Variable, v *factor.Variable, fill []*factor.Variable) [][]*factor.Variable {
	out := make([][]*factor.Variable, 0, len(scopes)+1)
	for _, s := range scopes {
		if !contains(s, v) {
			out = append(out, s)
		}
	}

	return append(out, fill)
}

func contains(s []*factor.Variable, v *factor.Variable) bool {
	for _, u := range s {
		if u == v {
			return true
		}
	}

	return false
}
