// SPDX-License-Identifier: MIT

package ve_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/network"
	"github.com/katalvlaran/lvbayes/ordering"
	"github.com/katalvlaran/lvbayes/ve"
)

// TestQuery_ChainScenario pins A → B → C with A=1 observed:
// P(B|A=1) = [0.3, 0.7], so P(C=0) = 0.3·0.7 + 0.7·0.3 = 0.42.
func TestQuery_ChainScenario(t *testing.T) {
	bn := build(t, "chain")
	c := variable(t, bn, "C")

	res, err := ve.New().Query(context.Background(), bn, c, observe(t, bn, "A", "1"))
	require.NoError(t, err)

	requireDist(t, []float64{0.42, 0.58}, res.Distribution)
	assert.InDelta(t, 0.4, res.Likelihood, 1e-12, "P(A=1)")
	assert.Equal(t, []string{"B"}, orderNames(res.Order))
	assert.Equal(t, 1, res.InducedWidth)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "P(C) = [0: 0.42, 1: 0.58]", res.String())

	p, err := res.Probability(factor.Int(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.58, p, 1e-12)
	_, err = res.Probability(factor.Int(7))
	assert.ErrorIs(t, err, factor.ErrValueNotInDomain)

	best, bp := res.MostLikely()
	assert.Equal(t, factor.Int(1), best)
	assert.InDelta(t, 0.58, bp, 1e-12)
}

// TestQuery_ChainPriors checks marginals without evidence.
func TestQuery_ChainPriors(t *testing.T) {
	bn := build(t, "chain")
	e := ve.New()
	for name, want := range map[string][]float64{
		"A": {0.6, 0.4},
		"B": {0.66, 0.34},
		"C": {0.564, 0.436},
	} {
		res, err := e.Query(context.Background(), bn, variable(t, bn, name), nil)
		require.NoError(t, err, name)
		requireDist(t, want, res.Distribution)
		assert.InDelta(t, 1.0, res.Likelihood, 1e-12, "CPTs multiply to a joint")
	}
}

// TestQuery_Alarm reproduces the textbook posterior P(Burglary | John, Mary).
func TestQuery_Alarm(t *testing.T) {
	bn := build(t, "alarm")
	res, err := ve.New().Query(context.Background(), bn, variable(t, bn, "Burglary"),
		observe(t, bn, "JohnCalls", "true", "MaryCalls", "true"))
	require.NoError(t, err)

	assert.InDelta(t, 0.284172, res.Distribution[0], 1e-6)
	assert.InDelta(t, 0.002084, res.Likelihood, 1e-6)
}

// TestQuery_Normalization checks every catalog posterior sums to 1.
func TestQuery_Normalization(t *testing.T) {
	for _, tc := range []struct {
		model, query string
		evidence     []string
	}{
		{"chain", "B", []string{"C", "1"}},
		{"sprinkler", "Rain", []string{"WetGrass", "true"}},
		{"sprinkler", "Cloudy", []string{"Sprinkler", "false", "WetGrass", "true"}},
		{"alarm", "Earthquake", []string{"MaryCalls", "true"}},
		{"asia-lite", "Tuberculosis", []string{"XRay", "yes", "Asia", "yes"}},
	} {
		t.Run(tc.model+"/"+tc.query, func(t *testing.T) {
			bn := build(t, tc.model)
			res, err := ve.New().Query(context.Background(), bn, variable(t, bn, tc.query), observe(t, bn, tc.evidence...))
			require.NoError(t, err)
			sum := 0.0
			for _, p := range res.Distribution {
				assert.GreaterOrEqual(t, p, 0.0)
				sum += p
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
		})
	}
}

// TestQuery_OrderingStrategiesAgree runs each named strategy and a fixed order.
func TestQuery_OrderingStrategiesAgree(t *testing.T) {
	bn := build(t, "asia-lite")
	q := variable(t, bn, "LungCancer")
	ev := observe(t, bn, "XRay", "yes")

	ref, err := ve.BruteForce(context.Background(), bn, q, ev)
	require.NoError(t, err)

	fns := []ordering.Func{ordering.MinFill, ordering.MinWeight,
		ordering.Given(variable(t, bn, "XRay"), variable(t, bn, "Either"))}
	for i, fn := range fns {
		res, err := ve.New(ve.WithOrdering(fn)).Query(context.Background(), bn, q, ev)
		require.NoError(t, err, "strategy %d", i)
		requireDist(t, ref, res.Distribution)
	}
}

// TestQuery_ZeroEvidence rejects evidence the model rules out.
func TestQuery_ZeroEvidence(t *testing.T) {
	bn := build(t, "sprinkler")
	ev := observe(t, bn, "Sprinkler", "false", "Rain", "false", "WetGrass", "true")

	_, err := ve.New().Query(context.Background(), bn, variable(t, bn, "Cloudy"), ev)
	assert.ErrorIs(t, err, ve.ErrZeroEvidenceProbability)

	_, err = ve.BruteForce(context.Background(), bn, variable(t, bn, "Cloudy"), ev)
	assert.ErrorIs(t, err, ve.ErrZeroEvidenceProbability)
}

// TestQuery_QueryObserved leaves nothing over the query after restriction.
func TestQuery_QueryObserved(t *testing.T) {
	bn := build(t, "chain")
	c := variable(t, bn, "C")

	_, err := ve.New().Query(context.Background(), bn, c, observe(t, bn, "C", "0"))
	assert.ErrorIs(t, err, ve.ErrInconsistentEliminationResult)

	dist, err := ve.BruteForce(context.Background(), bn, c, observe(t, bn, "C", "0"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, dist, "point mass")
}

// TestQuery_InvalidOrdering covers each way an ordering can be wrong.
func TestQuery_InvalidOrdering(t *testing.T) {
	bn := build(t, "chain")
	a, b, c := variable(t, bn, "A"), variable(t, bn, "B"), variable(t, bn, "C")
	stranger := factor.MustVariable("Z", 0, 1)

	fixed := func(vs ...*factor.Variable) ordering.Func {
		return func([]*factor.Factor, *factor.Variable) ([]*factor.Variable, error) { return vs, nil }
	}
	for name, fn := range map[string]ordering.Func{
		"missing":   fixed(a),
		"duplicate": fixed(a, a, b),
		"query":     fixed(a, b, c),
		"unknown":   fixed(a, b, stranger),
		"nil":       fixed(a, nil, b),
		"failing": func([]*factor.Factor, *factor.Variable) ([]*factor.Variable, error) {
			return nil, errors.New("no order")
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ve.New(ve.WithOrdering(fn)).Query(context.Background(), bn, c, nil)
			assert.ErrorIs(t, err, ve.ErrInvalidOrdering)
		})
	}
}

// TestQuery_InputErrors checks argument validation.
func TestQuery_InputErrors(t *testing.T) {
	bn := build(t, "chain")
	a, c := variable(t, bn, "A"), variable(t, bn, "C")
	other := variable(t, build(t, "chain"), "A")
	ctx := context.Background()
	e := ve.New()

	_, err := e.Query(ctx, nil, c, nil)
	assert.ErrorIs(t, err, network.ErrNilNetwork)
	_, err = e.Query(ctx, bn, nil, nil)
	assert.ErrorIs(t, err, ve.ErrNilQuery)
	_, err = e.Query(ctx, bn, other, nil)
	assert.ErrorIs(t, err, ve.ErrUnknownVariable)
	_, err = e.Query(ctx, bn, c, ve.Evidence{{Var: other, Index: 0}})
	assert.ErrorIs(t, err, ve.ErrUnknownVariable)
	_, err = e.Query(ctx, bn, c, ve.Evidence{{Var: a, Index: 0}, {Var: a, Index: 1}})
	assert.ErrorIs(t, err, ve.ErrConflictingEvidence)
	_, err = e.Query(ctx, bn, c, ve.Evidence{{Var: a, Index: 2}})
	assert.ErrorIs(t, err, factor.ErrIndexOutOfRange)

	res, err := e.Query(ctx, bn, c, ve.Evidence{{Var: a, Index: 1}, {Var: a, Index: 1}})
	require.NoError(t, err, "repeated identical observations collapse")
	requireDist(t, []float64{0.42, 0.58}, res.Distribution)
}

// TestQuery_Canceled stops before any elimination work.
func TestQuery_Canceled(t *testing.T) {
	bn := build(t, "alarm")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ve.New().Query(ctx, bn, variable(t, bn, "Burglary"), nil)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = ve.BruteForce(ctx, bn, variable(t, bn, "Burglary"), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestQuery_ParallelMatchesSequential forces every step through the worker split.
func TestQuery_ParallelMatchesSequential(t *testing.T) {
	for _, name := range []string{"sprinkler", "alarm", "asia-lite"} {
		t.Run(name, func(t *testing.T) {
			bn := build(t, name)
			vars := bn.Variables()
			q := vars[0]
			ev := ve.Evidence{{Var: vars[len(vars)-1], Index: 0}}

			seq, err := ve.New().Query(context.Background(), bn, q, ev)
			require.NoError(t, err)
			par, err := ve.New(ve.WithWorkers(4), ve.WithParallelThreshold(1)).Query(context.Background(), bn, q, ev)
			require.NoError(t, err)

			assert.Equal(t, seq.Distribution, par.Distribution, "bit-identical")
			assert.Equal(t, seq.Likelihood, par.Likelihood)
		})
	}
}

// TestQuery_ConcurrentQueries shares one engine and network across goroutines.
func TestQuery_ConcurrentQueries(t *testing.T) {
	bn := build(t, "alarm")
	q := variable(t, bn, "Burglary")
	ev := observe(t, bn, "JohnCalls", "true", "MaryCalls", "true")
	e := ve.New(ve.WithWorkers(2), ve.WithParallelThreshold(1))

	want, err := e.Query(context.Background(), bn, q, ev)
	require.NoError(t, err)

	errs := make(chan error, 8)
	dists := make(chan []float64, 8)
	for i := 0; i < 8; i++ {
		go func() {
			res, err := e.Query(context.Background(), bn, q, ev)
			if err != nil {
				errs <- err
				return
			}
			dists <- res.Distribution
		}()
	}
	for i := 0; i < 8; i++ {
		select {
		case err := <-errs:
			t.Fatal(err)
		case d := <-dists:
			assert.Equal(t, want.Distribution, d)
		}
	}
}

// TestQuery_Logging checks debug events share the result's query ID.
func TestQuery_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	bn := build(t, "chain")

	res, err := ve.New(ve.WithLogger(zap.New(core))).Query(context.Background(), bn, variable(t, bn, "C"), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("ve query start").Len())
	assert.Equal(t, len(res.Order), logs.FilterMessage("ve eliminated").Len())
	assert.Equal(t, 1, logs.FilterMessage("ve query done").Len())
	for _, entry := range logs.All() {
		assert.Equal(t, res.ID, entry.ContextMap()["query_id"], entry.Message)
	}

	// zaptest routes through t.Log; failures are logged too.
	_, err = ve.New(ve.WithLogger(zaptest.NewLogger(t))).Query(context.Background(), bn, nil, nil)
	assert.ErrorIs(t, err, ve.ErrNilQuery)
}

// TestVE_ReadsEvidenceSlots checks the single-call form.
func TestVE_ReadsEvidenceSlots(t *testing.T) {
	bn := build(t, "chain")
	a, c := variable(t, bn, "A"), variable(t, bn, "C")
	require.NoError(t, a.SetEvidence(factor.Int(1)))

	dist, err := ve.VE(bn, c, []*factor.Variable{a}, nil)
	require.NoError(t, err)
	requireDist(t, []float64{0.42, 0.58}, dist)

	dist, err = ve.VE(bn, c, []*factor.Variable{a}, ordering.MinWeight)
	require.NoError(t, err)
	requireDist(t, []float64{0.42, 0.58}, dist)

	_, err = ve.VE(bn, c, []*factor.Variable{nil}, nil)
	assert.ErrorIs(t, err, factor.ErrNilVariable)
}

func orderNames(vs []*factor.Variable) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Name()
	}

	return out
}
