// SPDX-License-Identifier: MIT
// File: dag.go
// Role: parent graph of a network read from CPT scopes, cycle check and
// topological order.
//
// TopologicalOrder is the reversed DFS post-order over parent→child edges;
// a Gray→Gray edge is a back-edge and reports ErrCyclicNetwork.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)

package network

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/factor"
)

// visitation states
const (
	white = iota // not visited yet
	gray         // on the DFS stack
	black        // finished
)

// dag holds the structure derived from CPT scopes.
type dag struct {
	cpt      map[*factor.Variable]*factor.Factor
	parents  map[*factor.Variable][]*factor.Variable
	children map[*factor.Variable][]*factor.Variable
	order    []*factor.Variable
}

// buildDAG reads each factor as P(child | parents...) with the child first.
func buildDAG(vars []*factor.Variable, factors []*factor.Factor) (*dag, error) {
	d := &dag{
		cpt:      make(map[*factor.Variable]*factor.Factor, len(vars)),
		parents:  make(map[*factor.Variable][]*factor.Variable, len(vars)),
		children: make(map[*factor.Variable][]*factor.Variable, len(vars)),
	}

	// 1. One CPT per child.
	for _, f := range factors {
		scope := f.Scope()
		if len(scope) == 0 {
			return nil, fmt.Errorf("%w: constant factor %s cannot be a CPT", ErrInvalidScope, f)
		}
		child := scope[0]
		if prev, dup := d.cpt[child]; dup {
			return nil, fmt.Errorf("%w: %s has %s and %s", ErrDuplicateCPT, child.Name(), prev, f)
		}
		d.cpt[child] = f
		d.parents[child] = scope[1:]
		for _, p := range scope[1:] {
			d.children[p] = append(d.children[p], child)
		}
	}
	for _, v := range vars {
		if _, ok := d.cpt[v]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingCPT, v.Name())
		}
	}

	// 2. DFS from every unvisited variable, in list order.
	s := &topoSorter{
		children: d.children,
		state:    make(map[*factor.Variable]int, len(vars)),
		order:    make([]*factor.Variable, 0, len(vars)),
	}
	for _, v := range vars {
		if s.state[v] == white {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// 3. Reverse post-order.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}
	d.order = s.order

	return d, nil
}

// topoSorter carries DFS state for buildDAG.
type topoSorter struct {
	children map[*factor.Variable][]*factor.Variable
	state    map[*factor.Variable]int
	order    []*factor.Variable // post-order
}

// visit explores v's descendants, detecting back-edges.
func (t *topoSorter) visit(v *factor.Variable) error {
	switch t.state[v] {
	case gray:
		return fmt.Errorf("%w: through %s", ErrCyclicNetwork, v.Name())
	case black:
		return nil
	}
	t.state[v] = gray
	for _, c := range t.children[v] {
		if err := t.visit(c); err != nil {
			return err
		}
	}
	t.state[v] = black
	t.order = append(t.order, v)

	return nil
}
