// SPDX-License-Identifier: MIT

package ve

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/ordering"
)

// DefaultParallelThreshold is the smallest elimination enumeration (entries of
// the product space) that is split across workers.
const DefaultParallelThreshold = 1 << 12

// Option configures an Engine.
type Option func(*options)

type options struct {
	order             ordering.Func
	workers           int
	parallelThreshold int
	logger            *zap.Logger
	metrics           *Metrics
}

// defaultOptions: min-fill, sequential, silent, no metrics.
func defaultOptions() options {
	return options{
		order:             ordering.MinFill,
		workers:           1,
		parallelThreshold: DefaultParallelThreshold,
		logger:            zap.NewNop(),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithOrdering sets the elimination ordering strategy. nil keeps MinFill.
func WithOrdering(fn ordering.Func) Option {
	return func(o *options) {
		if fn != nil {
			o.order = fn
		}
	}
}

// WithWorkers sets how many goroutines share one elimination step.
// n <= 0 selects runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.NumCPU()
		}
		o.workers = n
	}
}

// WithParallelThreshold sets the minimum enumeration size split across workers.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.parallelThreshold = n
	}
}

// WithLogger installs a logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics installs prometheus collectors created by NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}
