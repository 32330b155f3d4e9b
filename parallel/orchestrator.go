// File: orchestrator.go
// Role: Fan a strategy out over a work set and reduce to one best path.
// Concurrency:
//   - A fixed pool of workers pulls item indices from one atomic counter.
//   - Each worker owns its running best; the reduction runs after the pool
//     has stopped, so no accumulator is shared.
// Determinism:
//   - Longest path wins; equal lengths go to the lowest item index, so the
//     result does not depend on completion order.

package parallel

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/lvlmax/core"
	"github.com/katalvlaran/lvlmax/longestpath"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrNoWork is returned when the work set is empty.
var ErrNoWork = errors.New("parallel: no work items")

// Result is the reduced outcome of BestLongestPath.
type Result[V cmp.Ordered] struct {
	Length    int                 // edges on Path
	Path      longestpath.Path[V] // best path; nil if no item produced one
	Item      int                 // work item index that produced Path, -1 if none
	Completed int                 // items evaluated without error
	Total     int                 // items in the work set
	Partial   bool                // the run stopped early on cancellation
}

// candidate is a worker-local running best.
type candidate[V cmp.Ordered] struct {
	path      longestpath.Path[V]
	item      int
	completed int
}

// better reports whether (p, i) beats c: more vertices, then lower item index.
func (c *candidate[V]) better(p longestpath.Path[V], i int) bool {
	if len(p) == 0 {
		return false
	}
	if c.item < 0 || len(p) > len(c.path) {
		return true
	}

	return len(p) == len(c.path) && i < c.item
}

// BestLongestPath evaluates s on every item of work over g (the vertex set,
// usually the LCC view) and returns the longest path found.
//
// Items without a goal call s.Estimate(ctx, g, start, nil); items with one
// pass the goal through. Strategies that ignore goals still start at Start.
//
// Cancellation: when ctx ends, workers stop pulling items. If at least one
// item completed, the best result so far is returned with Partial set and a
// nil error; otherwise ctx.Err() is returned.
//
// Errors:
//   - ErrNoWork: work is empty.
//   - a strategy error, wrapped with the failing item index; the first one
//     stops the pool.
func BestLongestPath[V cmp.Ordered](
	ctx context.Context,
	g *core.View[V],
	s longestpath.Strategy[V],
	work WorkSet,
	opts ...Option,
) (Result[V], error) {
	// 1) Build options and validate input.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	total := 0
	if work != nil {
		total = work.Len()
	}
	if total == 0 {
		return Result[V]{Item: -1}, ErrNoWork
	}
	workers := min(cfg.Workers, total)
	name := s.Name()
	logger := cfg.Logger.WithFields(log.Fields{
		"strategy": name,
		"items":    total,
		"workers":  workers,
	})
	logger.Debug("search started")
	began := time.Now()

	// 2) Run the pool.
	var next, done atomic.Int64
	locals := make([]candidate[V], workers)
	eg, ectx := errgroup.WithContext(ctx)
	for w := range locals {
		local := &locals[w]
		local.item = -1
		eg.Go(func() error {
			for {
				i := int(next.Add(1) - 1)
				if i >= total {
					return nil
				}
				if err := ectx.Err(); err != nil {
					return err
				}

				it := work.At(i)
				var goal *V
				if it.HasGoal() {
					id := g.ID(it.Goal)
					goal = &id
				}
				t0 := time.Now()
				p, err := s.Estimate(ectx, g, g.ID(it.Start), goal)
				if err != nil {
					if ectx.Err() != nil {
						cfg.Metrics.observe(name, OutcomeCanceled, 0)
						return ectx.Err()
					}
					cfg.Metrics.observe(name, OutcomeError, 0)
					return fmt.Errorf("parallel: item %d: %w", i, err)
				}
				cfg.Metrics.observe(name, OutcomeOK, time.Since(t0))

				local.completed++
				if local.better(p, i) {
					local.path, local.item = p, i
				}
				if n := done.Add(1); cfg.ProgressEvery > 0 && n%int64(cfg.ProgressEvery) == 0 {
					logger.WithField("completed", n).Info("search progress")
				}
			}
		})
	}
	waitErr := eg.Wait()

	// 3) Reduce in worker order; better() makes the order irrelevant.
	res := Result[V]{Item: -1, Total: total}
	best := candidate[V]{item: -1}
	for w := range locals {
		res.Completed += locals[w].completed
		if best.better(locals[w].path, locals[w].item) {
			best.path, best.item = locals[w].path, locals[w].item
		}
	}
	res.Path, res.Item, res.Length = best.path, best.item, best.path.Length()

	// 4) Classify the stop reason.
	if waitErr != nil {
		if ctx.Err() == nil {
			// a strategy failed; errgroup canceled the others
			return res, waitErr
		}
		if res.Completed == 0 {
			return res, ctx.Err()
		}
		res.Partial = true
	}

	cfg.Metrics.best(name, res.Length)
	logger.WithFields(log.Fields{
		"lmax":      res.Length,
		"completed": res.Completed,
		"partial":   res.Partial,
		"elapsed":   time.Since(began).String(),
	}).Info("search finished")

	return res, nil
}
