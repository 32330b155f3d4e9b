// Package longestpath estimates the longest simple path of an undirected,
// unweighted graph. The exact problem is NP-hard; every strategy here is a
// heuristic that returns a valid simple path whose length is a lower bound
// on the true maximum.
//
// Strategies:
//
//	BestFirst   – best-first search over partial paths, scored by
//	              length − h(v). With a goal it reports the longest path found
//	              that ends at the goal (nil if the goal is unreachable).
//	              Without one it reports the longest path it ever popped.
//	DoubleSweep – DFS from start to the deepest tree vertex, then a second
//	              DFS from there; returns the second tree path. O(V+E).
//	Relax       – Dijkstra-like order with max instead of min relaxation;
//	              returns the path to the farthest finalized vertex.
//
// Every strategy takes a *core.View as its vertex set. Estimate (the package
// function) first restricts a larger view to an explicit vertex set.
// Strategies keep all mutable state per call, so one value may serve any
// number of goroutines at once.
//
// Example:
//
//	s, _ := longestpath.New[int](longestpath.BestFirst,
//	    longestpath.WithMaxExpansions(1_000_000))
//	p, err := s.Estimate(ctx, view, 1, nil)
//	fmt.Println(p.Length(), p)
//
// Errors:
//
//	ErrInvalidInput     – empty vertex set, or start/goal outside it
//	ErrUnknownStrategy  – ParseKind/New with an unknown name
//	ErrUnknownHeuristic – ParseHeuristic with an unknown name
//	ErrNotSimple        – Validate: repeated vertex
//	ErrNotAdjacent      – Validate: missing edge between consecutive vertices
//
// Cancellation is checked every few thousand loop iterations; a canceled
// search returns ctx.Err() and no path.
package longestpath
