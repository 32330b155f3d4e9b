// Package analysis runs the full measurement pipeline on a graph:
// largest connected component, degree statistics over it, and an
// approximate longest simple path inside it.
package analysis

import (
	"cmp"
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlmax/components"
	"github.com/katalvlaran/lvlmax/core"
	"github.com/katalvlaran/lvlmax/degree"
	"github.com/katalvlaran/lvlmax/longestpath"
	"github.com/katalvlaran/lvlmax/parallel"
	"github.com/katalvlaran/lvlmax/report"
)

// Result carries every intermediate product of Analyze.
type Result[V cmp.Ordered] struct {
	LCC      []V
	Degree   degree.Stats
	Strategy string
	Search   parallel.Result[V]
}

// Metrics reduces r to the four reported values.
func (r Result[V]) Metrics() report.Metrics {
	return report.Metrics{
		VLCC:      len(r.LCC),
		MaxDegree: r.Degree.Max,
		AvgDegree: r.Degree.Avg,
		Lmax:      r.Search.Length,
	}
}

// Analyze measures g.
//
// Steps:
//  1. LCC via components.Largest (first discovered on ties).
//  2. Δ and k via degree.Compute over the LCC.
//  3. Lmax via parallel.BestLongestPath on the LCC-induced view, over
//     pairs (goal-capable strategies with Pairs set) or restarts.
//
// A pair run on an LCC of a single vertex has no pairs; it falls back to
// one restart from that vertex so Lmax is 0 rather than an error.
//
// Errors:
//   - core.ErrEmptyVertexSet: g has no vertices.
//   - longestpath.ErrUnknownStrategy: opts name no built-in strategy.
//   - errors from parallel.BestLongestPath (cancellation with no completed item, strategy failures).
func Analyze[V cmp.Ordered](ctx context.Context, g *core.View[V], opts ...Option) (Result[V], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.Logger

	// 1) Largest connected component.
	t0 := time.Now()
	lcc := components.Largest(g)
	logger.WithFields(log.Fields{"vertices": g.Len(), "lcc": len(lcc), "elapsed": time.Since(t0).String()}).
		Debug("largest component extracted")

	// 2) Degree statistics.
	stats, err := degree.Compute(g, lcc)
	if err != nil {
		return Result[V]{}, fmt.Errorf("analysis: %w", err)
	}
	res := Result[V]{LCC: lcc, Degree: stats}

	// 3) Longest path inside the LCC.
	sub, err := g.Induced(lcc)
	if err != nil {
		return res, fmt.Errorf("analysis: %w", err)
	}
	s, err := longestpath.New[V](cfg.Strategy,
		longestpath.WithHeuristic(cfg.Heuristic),
		longestpath.WithMaxExpansions(max(cfg.MaxExpansions, 0)))
	if err != nil {
		return res, fmt.Errorf("analysis: %w", err)
	}
	res.Strategy = s.Name()

	work := workSet(sub.Len(), cfg, logger)
	search, err := parallel.BestLongestPath(ctx, sub, s, work,
		parallel.WithWorkers(cfg.Workers),
		parallel.WithLogger(logger),
		parallel.WithMetrics(cfg.Metrics),
		parallel.WithProgressEvery(cfg.ProgressEvery))
	res.Search = search
	if err != nil {
		return res, fmt.Errorf("analysis: %w", err)
	}

	return res, nil
}

// workSet chooses the items for an LCC of n vertices.
func workSet(n int, cfg Options, logger log.FieldLogger) parallel.WorkSet {
	if cfg.Pairs {
		switch {
		case !cfg.Strategy.SupportsGoal():
			logger.WithField("strategy", cfg.Strategy.String()).
				Warn("strategy ignores goals, using restarts instead of pairs")
		case n < 2:
			return parallel.Vertices(n)
		case cfg.MaxPairs > 0:
			return parallel.SampledPairs(n, cfg.MaxPairs, cfg.Seed)
		default:
			return parallel.Pairs(n)
		}
	}

	return parallel.Restarts(n, cfg.Restarts, cfg.Seed)
}
