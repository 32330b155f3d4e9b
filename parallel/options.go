package parallel

import (
	"runtime"

	log "github.com/sirupsen/logrus"
)

// Options configures BestLongestPath.
type Options struct {
	// Workers is the size of the worker pool; capped at the number of items.
	Workers int

	// Logger receives per-run and progress entries.
	Logger log.FieldLogger

	// Metrics, if non-nil, is updated per completed item.
	Metrics *Metrics

	// ProgressEvery, if > 0, logs a progress entry every that many completed items.
	ProgressEvery int
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns one worker per available CPU, the standard logger,
// no metrics and no progress logging.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  log.StandardLogger(),
	}
}

// WithWorkers sets the pool size. Values < 1 keep the default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithLogger routes log entries to l. A nil logger keeps the default.
func WithLogger(l log.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records item outcomes and durations on m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithProgressEvery logs progress every n completed items.
func WithProgressEvery(n int) Option {
	return func(o *Options) { o.ProgressEvery = n }
}
