// SPDX-License-Identifier: MIT

package ve

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/network"
	"github.com/katalvlaran/lvbayes/ordering"
)

// Result is the posterior of one query.
type Result struct {
	// ID correlates the result with log lines.
	ID string

	// Query is the variable whose posterior was computed.
	Query *factor.Variable

	// Distribution[i] = P(Query = Query.Domain()[i] | evidence); sums to 1.
	Distribution []float64

	// Likelihood is the normalising constant. For a network made of CPTs it
	// equals P(evidence).
	Likelihood float64

	// Order is the elimination order that was followed.
	Order []*factor.Variable

	// InducedWidth is the largest scope of a factor built by elimination.
	InducedWidth int

	// MaxTableSize is the largest table built by elimination.
	MaxTableSize int
}

// Probability returns P(Query = value | evidence).
func (r *Result) Probability(value factor.Value) (float64, error) {
	i, err := r.Query.ValueIndex(value)
	if err != nil {
		return 0, err
	}

	return r.Distribution[i], nil
}

// MostLikely returns the most probable query value; ties keep the first.
func (r *Result) MostLikely() (factor.Value, float64) {
	best := 0
	for i, p := range r.Distribution {
		if p > r.Distribution[best] {
			best = i
		}
	}
	val, _ := r.Query.ValueAt(best)

	return val, r.Distribution[best]
}

// String renders "P(Q) = [q0: 0.3, q1: 0.7]".
func (r *Result) String() string {
	dom := r.Query.Domain()
	parts := make([]string, len(r.Distribution))
	for i, p := range r.Distribution {
		parts[i] = fmt.Sprintf("%s: %.6g", dom[i], p)
	}

	return fmt.Sprintf("P(%s) = [%s]", r.Query.Name(), strings.Join(parts, ", "))
}

// Engine runs variable elimination queries. It holds configuration only and
// is safe for concurrent use; every query works on its own factor copies.
type Engine struct {
	opts options
}

// New creates an Engine (min-fill ordering, sequential, no-op logger by default).
func New(opts ...Option) *Engine {
	return &Engine{opts: buildOptions(opts)}
}

// Query computes P(query | evidence) on net.
//
// Pipeline:
//  1. copy the network's factors;
//  2. restrict them by the evidence;
//  3. compute and validate the elimination order over the restricted factors;
//  4. eliminate each variable in order;
//  5. check the remaining factors range over exactly {query}, multiply them
//     for each query value and normalise.
func (e *Engine) Query(ctx context.Context, net *network.BayesNet, query *factor.Variable, evidence Evidence) (res *Result, err error) {
	started := time.Now()
	id := uuid.NewString()
	log := e.opts.logger.With(zap.String("query_id", id))
	defer func() {
		e.opts.metrics.observeQuery(err, time.Since(started))
		if err != nil {
			log.Debug("ve query failed", zap.Error(err))
		}
	}()

	// 0. Inputs.
	if net == nil {
		return nil, network.ErrNilNetwork
	}
	if query == nil {
		return nil, ErrNilQuery
	}
	if !net.Contains(query) {
		return nil, fmt.Errorf("%w: query %s", ErrUnknownVariable, query.Name())
	}
	ev, err := evidence.normalize()
	if err != nil {
		return nil, err
	}
	for _, o := range ev {
		if !net.Contains(o.Var) {
			return nil, fmt.Errorf("%w: evidence %s", ErrUnknownVariable, o.Var.Name())
		}
	}
	log.Debug("ve query start",
		zap.String("network", net.Name()),
		zap.String("query", query.Name()),
		zap.Stringer("evidence", ev),
		zap.Int("workers", e.opts.workers))

	// 1-2. Copy and restrict.
	working, err := Restrict(net.Factors(), ev)
	if err != nil {
		return nil, err
	}

	// 3. Order.
	order, err := e.opts.order(working, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOrdering, err)
	}
	if err = validateOrder(working, query, order); err != nil {
		return nil, err
	}
	log.Debug("ve order", zap.Strings("order", names(order)))

	// 4. Eliminate left to right against the current working list.
	res = &Result{ID: id, Query: query, Order: order}
	for _, z := range order {
		var g *factor.Factor
		fanIn := countMentions(working, z)
		working, g, err = eliminate(ctx, working, z, e.opts)
		if err != nil {
			return nil, fmt.Errorf("ve: eliminate %s: %w", z.Name(), err)
		}
		if g == nil {
			continue
		}
		res.InducedWidth = max(res.InducedWidth, g.Arity())
		res.MaxTableSize = max(res.MaxTableSize, g.Size())
		e.opts.metrics.observeElimination(g.Size())
		log.Debug("ve eliminated",
			zap.String("var", z.Name()),
			zap.Int("fan_in", fanIn),
			zap.Stringer("factor", g),
			zap.Int("table_size", g.Size()),
			zap.Int("remaining", len(working)))
	}

	// 5. Product per query value, then normalise.
	if rem := factor.UnionScope(working); len(rem) != 1 || rem[0] != query {
		return nil, fmt.Errorf("%w: remaining scope [%s]", ErrInconsistentEliminationResult, strings.Join(names(rem), ", "))
	}
	dist, sum := posterior(working, query)
	if err = normalize(dist, sum); err != nil {
		return nil, err
	}
	res.Distribution = dist
	res.Likelihood = sum
	log.Debug("ve query done",
		zap.Float64s("distribution", dist),
		zap.Float64("likelihood", sum),
		zap.Duration("elapsed", time.Since(started)))

	return res, nil
}

// VE is the single-call form: evidenceVars must carry their observed values
// (Variable.SetEvidence) and order may be nil for MinFill. It returns
// P(query = domain[i] | evidence) for every i.
func VE(net *network.BayesNet, query *factor.Variable, evidenceVars []*factor.Variable, order ordering.Func) ([]float64, error) {
	ev, err := FromVariables(evidenceVars...)
	if err != nil {
		return nil, err
	}
	res, err := New(WithOrdering(order)).Query(context.Background(), net, query, ev)
	if err != nil {
		return nil, err
	}

	return res.Distribution, nil
}

// posterior multiplies the remaining factors at each query value.
func posterior(factors []*factor.Factor, query *factor.Variable) ([]float64, float64) {
	n := query.DomainSize()
	dist := make([]float64, n)
	sum := 0.0
	b := factor.NewBinding()
	for i := 0; i < n; i++ {
		_ = b.SetIndex(query, i) // i < DomainSize by construction
		p := 1.0
		for _, f := range factors {
			p *= f.ValueAt(b)
		}
		dist[i] = p
		sum += p
	}

	return dist, sum
}

// normalize divides dist by sum in place.
func normalize(dist []float64, sum float64) error {
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return fmt.Errorf("%w: sum %g", ErrNonFinite, sum)
	}
	if sum == 0 {
		return ErrZeroEvidenceProbability
	}
	for i := range dist {
		dist[i] /= sum
	}

	return nil
}

// validateOrder requires order to list every scope variable except query exactly once.
func validateOrder(factors []*factor.Factor, query *factor.Variable, order []*factor.Variable) error {
	candidates := factor.UnionScope(factors, query)
	want := make(map[*factor.Variable]bool, len(candidates))
	for _, v := range candidates {
		want[v] = false
	}
	for _, v := range order {
		if v == nil {
			return fmt.Errorf("%w: nil variable", ErrInvalidOrdering)
		}
		if v == query {
			return fmt.Errorf("%w: contains the query %s", ErrInvalidOrdering, v.Name())
		}
		done, ok := want[v]
		if !ok {
			return fmt.Errorf("%w: %s is not in any restricted factor", ErrInvalidOrdering, v.Name())
		}
		if done {
			return fmt.Errorf("%w: %s listed twice", ErrInvalidOrdering, v.Name())
		}
		want[v] = true
	}
	for _, v := range candidates {
		if !want[v] {
			return fmt.Errorf("%w: %s missing", ErrInvalidOrdering, v.Name())
		}
	}

	return nil
}

func countMentions(factors []*factor.Factor, v *factor.Variable) int {
	n := 0
	for _, f := range factors {
		if f.Contains(v) {
			n++
		}
	}

	return n
}

func names(vs []*factor.Variable) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Name()
	}

	return out
}
