// Package parallel runs a longestpath.Strategy over many work items at once
// and reduces the results to the single longest path.
//
// Work sets address vertices by dense view index and are never materialized
// in full:
//
//	Pairs(n)                 – all n(n−1)/2 unordered pairs, for goal-directed search
//	SampledPairs(n, k, seed) – k distinct pairs drawn with a fixed seed
//	Restarts(n, k, seed)     – k seeded random starts; k ≤ 0 means every vertex
//	Vertices(n)              – every vertex once
//
// BestLongestPath owns a fixed pool of workers (golang.org/x/sync/errgroup).
// Each worker keeps its own best candidate; candidates are merged after the
// pool stops, preferring longer paths and then lower item indices, so the
// answer is the same for any number of workers.
//
// Cancellation is graceful: a canceled context returns whatever was found
// so far with Result.Partial set.
//
// Observability: progress and summaries go to a logrus.FieldLogger; item
// counts, durations and the best length go to Prometheus collectors created
// by NewMetrics.
package parallel
