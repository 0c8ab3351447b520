// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/config"
	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/models"
	"github.com/katalvlaran/lvbayes/network"
	"github.com/katalvlaran/lvbayes/ordering"
	"github.com/katalvlaran/lvbayes/ve"
)

// verifyTolerance bounds the per-entry difference accepted by --verify.
const verifyTolerance = 1e-9

// ErrVerifyFailed is returned when --verify finds a mismatch against enumeration.
var ErrVerifyFailed = errors.New("bnet: elimination disagrees with brute force")

func (a *app) newQueryCmd() *cobra.Command {
	var (
		req      config.Run
		evidence []string
	)
	cmd := &cobra.Command{
		Use:   "query <model> <query>",
		Short: "Compute P(query | evidence) by variable elimination",
		Example: `  bnet query chain C -e A=1
  bnet query alarm Burglary -e JohnCalls=true -e MaryCalls=true --verify`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Model, req.Query = args[0], args[1]
			ev, err := parseEvidenceFlags(evidence)
			if err != nil {
				return err
			}
			req.Evidence = ev
			if err := req.Validate(); err != nil {
				return err
			}
			return a.runQuery(cmd.Context(), cmd.OutOrStdout(), &req)
		},
	}
	cmd.Flags().StringArrayVarP(&evidence, "evidence", "e", nil, "Observation Var=value (repeatable)")
	cmd.Flags().StringVar(&req.Ordering, "ordering", config.DefaultOrdering, "Ordering heuristic: "+strings.Join(ordering.Names(), ", "))
	cmd.Flags().StringSliceVar(&req.Order, "order", nil, "Fixed elimination order (comma separated variable names)")
	cmd.Flags().IntVar(&req.Workers, "workers", config.DefaultWorkers, "Goroutines per elimination step (0 = one per CPU)")
	cmd.Flags().DurationVar(&req.Timeout, "timeout", 0, "Abort the query after this long (0 = no limit)")
	cmd.Flags().BoolVar(&req.Verify, "verify", false, "Cross-check against brute-force enumeration")

	return cmd
}

func (a *app) newRunCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the query described by a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := config.Load(path)
			if err != nil {
				return err
			}
			a.logger.Debug("loaded run configuration", zap.String("path", path), zap.String("model", req.Model))
			return a.runQuery(cmd.Context(), cmd.OutOrStdout(), req)
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "run.yaml", "Run configuration file")

	return cmd
}

func (a *app) newOrderCmd() *cobra.Command {
	var (
		strategy string
		evidence []string
	)
	cmd := &cobra.Command{
		Use:   "order <model> <query>",
		Short: "Print the elimination order and its induced width",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bn, q, err := resolve(args[0], args[1])
			if err != nil {
				return err
			}
			names, err := parseEvidenceFlags(evidence)
			if err != nil {
				return err
			}
			ev, err := observations(bn, names)
			if err != nil {
				return err
			}
			fn, err := ordering.ByName(strategy)
			if err != nil {
				return err
			}
			working, err := ve.Restrict(bn.Factors(), ev)
			if err != nil {
				return err
			}
			order, err := fn(working, q)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "order: %s\n", joinNames(order))
			fmt.Fprintf(out, "induced width: %d\n", ordering.InducedWidth(working, order))
			return nil
		},
	}
	cmd.Flags().StringVar(&strategy, "ordering", config.DefaultOrdering, "Ordering heuristic: "+strings.Join(ordering.Names(), ", "))
	cmd.Flags().StringArrayVarP(&evidence, "evidence", "e", nil, "Observation Var=value (repeatable)")

	return cmd
}

// runQuery executes req and prints the posterior.
func (a *app) runQuery(ctx context.Context, out io.Writer, req *config.Run) error {
	bn, q, err := resolve(req.Model, req.Query)
	if err != nil {
		return err
	}
	ev, err := observations(bn, req.Evidence)
	if err != nil {
		return err
	}
	order, err := orderingFor(bn, req)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	engine := ve.New(
		ve.WithOrdering(order),
		ve.WithWorkers(req.Workers),
		ve.WithLogger(a.logger),
		ve.WithMetrics(a.metrics),
	)
	started := time.Now()
	res, err := engine.Query(ctx, bn, q, ev)
	if err != nil {
		return err
	}
	a.logger.Info("query answered",
		zap.String("query_id", res.ID),
		zap.String("model", req.Model),
		zap.Duration("elapsed", time.Since(started)))

	fmt.Fprintln(out, res)
	if len(ev) > 0 {
		fmt.Fprintf(out, "evidence: %s\n", ev)
		fmt.Fprintf(out, "P(evidence) = %.6g\n", res.Likelihood)
	}
	fmt.Fprintf(out, "order: %s\n", joinNames(res.Order))
	fmt.Fprintf(out, "induced width: %d, largest table: %d\n", res.InducedWidth, res.MaxTableSize)

	if !req.Verify {
		return nil
	}
	want, err := ve.BruteForce(ctx, bn, q, ev)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	worst := 0.0
	for i := range want {
		worst = math.Max(worst, math.Abs(want[i]-res.Distribution[i]))
	}
	if worst > verifyTolerance {
		return fmt.Errorf("%w: max abs diff %g", ErrVerifyFailed, worst)
	}
	fmt.Fprintf(out, "verified against brute force (max abs diff %.3g)\n", worst)

	return nil
}

// resolve builds the model and finds the query variable.
func resolve(model, query string) (*network.BayesNet, *factor.Variable, error) {
	bn, err := models.Build(model)
	if err != nil {
		return nil, nil, err
	}
	q, ok := bn.Variable(query)
	if !ok {
		return nil, nil, fmt.Errorf("model %s has no variable %q", model, query)
	}

	return bn, q, nil
}

// observations turns name → value text pairs into Evidence, in name order.
func observations(bn *network.BayesNet, pairs map[string]string) (ve.Evidence, error) {
	names := make([]string, 0, len(pairs))
	for name := range pairs {
		names = append(names, name)
	}
	sort.Strings(names)

	ev := make(ve.Evidence, 0, len(names))
	for _, name := range names {
		v, ok := bn.Variable(name)
		if !ok {
			return nil, fmt.Errorf("evidence: network %s has no variable %q", bn.Name(), name)
		}
		val, err := v.Lookup(pairs[name])
		if err != nil {
			return nil, fmt.Errorf("evidence: %w (domain %v)", err, v.Domain())
		}
		o, err := ve.Observe(v, val)
		if err != nil {
			return nil, err
		}
		ev = append(ev, o)
	}

	return ev, nil
}

// orderingFor picks a fixed order when req.Order is set, else the named heuristic.
func orderingFor(bn *network.BayesNet, req *config.Run) (ordering.Func, error) {
	if len(req.Order) == 0 {
		return ordering.ByName(req.Ordering)
	}
	vars := make([]*factor.Variable, len(req.Order))
	for i, name := range req.Order {
		v, ok := bn.Variable(name)
		if !ok {
			return nil, fmt.Errorf("order: network %s has no variable %q", bn.Name(), name)
		}
		vars[i] = v
	}

	return ordering.Given(vars...), nil
}

// parseEvidenceFlags splits repeated Var=value flags; a variable given twice
// must repeat the same value.
func parseEvidenceFlags(flags []string) (map[string]string, error) {
	out := make(map[string]string, len(flags))
	for _, f := range flags {
		name, value, ok := strings.Cut(f, "=")
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if !ok || name == "" || value == "" {
			return nil, fmt.Errorf("evidence %q: want Var=value", f)
		}
		if prev, dup := out[name]; dup && prev != value {
			return nil, fmt.Errorf("%w: %s=%s and %s=%s", ve.ErrConflictingEvidence, name, prev, name, value)
		}
		out[name] = value
	}

	return out, nil
}

func joinNames(vs []*factor.Variable) string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Name()
	}

	return strings.Join(names, ", ")
}
