package analysis

import (
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlmax/longestpath"
	"github.com/katalvlaran/lvlmax/parallel"
)

// Options configures Analyze.
type Options struct {
	// Strategy selects the path search algorithm.
	Strategy longestpath.Kind
	// Heuristic and MaxExpansions tune BestFirst.
	Heuristic     longestpath.Heuristic
	MaxExpansions int

	// Pairs evaluates (start, goal) pairs of LCC vertices instead of
	// restarts. Only honored by strategies that support a goal.
	Pairs bool
	// MaxPairs, if > 0, samples that many pairs instead of all of them.
	MaxPairs int
	// Restarts is the number of seeded random starts; 0 means every LCC vertex.
	Restarts int
	// Seed drives pair sampling and restart selection.
	Seed int64

	// Workers, Logger, Metrics and ProgressEvery pass through to parallel.
	Workers       int
	Logger        log.FieldLogger
	Metrics       *parallel.Metrics
	ProgressEvery int
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns 32 double-sweep restarts with seed 1.
func DefaultOptions() Options {
	return Options{
		Strategy: longestpath.DoubleSweep,
		Restarts: 32,
		Seed:     1,
		Logger:   log.StandardLogger(),
	}
}

// WithStrategy selects the path search strategy.
func WithStrategy(k longestpath.Kind) Option {
	return func(o *Options) { o.Strategy = k }
}

// WithHeuristic selects the BestFirst heuristic.
func WithHeuristic(h longestpath.Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithMaxExpansions caps BestFirst frontier pops per item.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = max(n, 0) }
}

// WithPairs switches to goal-directed pair evaluation; n > 0 samples n pairs.
func WithPairs(n int) Option {
	return func(o *Options) {
		o.Pairs = true
		o.MaxPairs = n
	}
}

// WithRestarts sets the number of random starts; 0 means every LCC vertex.
func WithRestarts(k int) Option {
	return func(o *Options) {
		o.Pairs = false
		o.Restarts = max(k, 0)
	}
}

// WithSeed sets the seed for sampled work sets.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers sets the orchestrator pool size.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger routes log entries to l.
func WithLogger(l log.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records orchestrator metrics on m.
func WithMetrics(m *parallel.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithProgressEvery logs orchestrator progress every n items.
func WithProgressEvery(n int) Option {
	return func(o *Options) { o.ProgressEvery = n }
}
