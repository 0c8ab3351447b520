// SPDX-License-Identifier: MIT

// Command bnet runs exact inference on the built-in Bayesian networks.
//
//	bnet list
//	bnet show alarm
//	bnet order asia-lite LungCancer --ordering min-weight
//	bnet query alarm Burglary -e JohnCalls=true -e MaryCalls=true --verify
//	bnet run -c run.yaml
package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvbayes/ve"
)

// app carries the state shared by subcommands.
type app struct {
	verbose     bool
	showMetrics bool

	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *ve.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:           "bnet",
		Short:         "Exact inference on discrete Bayesian networks",
		Long:          "bnet answers posterior queries P(query | evidence) on a catalog of\nBayesian networks using variable elimination.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			a.registry = prometheus.NewRegistry()
			a.metrics, err = ve.NewMetrics(a.registry)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			defer func() { _ = a.logger.Sync() }()
			if !a.showMetrics || a.registry == nil {
				return nil
			}
			return a.writeMetrics(cmd)
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&a.showMetrics, "metrics", false, "Print collected metrics after the command")

	root.AddCommand(
		a.newListCmd(),
		a.newShowCmd(),
		a.newOrderCmd(),
		a.newQueryCmd(),
		a.newRunCmd(),
	)

	return root
}

// writeMetrics prints the registry in the Prometheus text format.
func (a *app) writeMetrics(cmd *cobra.Command) error {
	families, err := a.registry.Gather()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bnet:", err)
		os.Exit(1)
	}
}
