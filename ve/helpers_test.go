// SPDX-License-Identifier: MIT

package ve_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/models"
	"github.com/katalvlaran/lvbayes/network"
	"github.com/katalvlaran/lvbayes/ve"
)

// approx compares distributions up to floating-point noise.
var approx = cmpopts.EquateApprox(0, 1e-9)

// build returns a catalog model.
func build(t testing.TB, name string) *network.BayesNet {
	t.Helper()
	bn, err := models.Build(name)
	require.NoError(t, err)

	return bn
}

// variable looks a variable up by name.
func variable(t testing.TB, bn *network.BayesNet, name string) *factor.Variable {
	t.Helper()
	v, ok := bn.Variable(name)
	require.True(t, ok, "variable %s", name)

	return v
}

// observe builds evidence from "Var", "value" text pairs.
func observe(t testing.TB, bn *network.BayesNet, pairs ...string) ve.Evidence {
	t.Helper()
	require.Zero(t, len(pairs)%2)
	var ev ve.Evidence
	for i := 0; i < len(pairs); i += 2 {
		v := variable(t, bn, pairs[i])
		val, err := v.Lookup(pairs[i+1])
		require.NoError(t, err)
		o, err := ve.Observe(v, val)
		require.NoError(t, err)
		ev = append(ev, o)
	}

	return ev
}

// requireDist asserts want ≈ got with a readable diff.
func requireDist(t testing.TB, want, got []float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("distribution mismatch (-want +got):\n%s", diff)
	}
}
