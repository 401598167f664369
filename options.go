package kmeansgo

import (
	"log/slog"
	"math/rand"
)

// Observer receives the number of changed assignments and the
// zero-based iteration index after each completed iteration. It is an
// observation hook only and has no effect on control flow.
type Observer func(changed, iteration int)

// DefaultMaxIterations bounds a run when WithMaxIterations is not given.
// Lloyd's algorithm is not guaranteed to terminate in bounded time on
// degenerate inputs, so an unbounded loop must be opted into.
const DefaultMaxIterations = 500

type options struct {
	maxIterations int
	rand          *rand.Rand
	observer      Observer
	logger        *Logger
}

// Option configures Run and RunBest behavior.
type Option func(*options)

// WithMaxIterations configures the iteration bound. A run that reaches
// the bound without converging returns its partial result with
// Result.Converged set to false.
//
// n <= 0 removes the bound entirely, restoring the classic
// run-to-convergence loop.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithRand configures the randomness source used to sample initial
// means. A seeded source makes runs reproducible:
//
//	kmeansgo.Run(ctx, points, k, kmeansgo.WithRand(rand.New(rand.NewSource(42))))
//
// If nil is passed, the default time-seeded source is kept.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

// WithObserver configures a progress callback invoked after every
// completed iteration. In RunBest the observer is shared by all
// restarts and may be invoked concurrently.
func WithObserver(fn Observer) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxIterations: DefaultMaxIterations,
		logger:        NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.rand == nil {
		o.rand = rand.New(rand.NewSource(rand.Int63())) // nolint gosec
	}
	return o
}
