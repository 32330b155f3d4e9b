// Package lvlmax measures connectivity of undirected graphs and estimates
// their longest simple path.
//
// For a graph read from an edge list (plain "u v" or spatial
// "u x_u y_u v x_v y_v") it reports four numbers:
//
//	|VLCC|  – vertices in the largest connected component
//	Δ(LCC)  – maximum degree inside the LCC
//	k(LCC)  – average degree inside the LCC
//	Lmax    – edges on the longest simple path found inside the LCC
//
// Longest simple path is NP-hard, so Lmax is a lower bound produced by one
// of three heuristics, fanned out over many start (or start/goal) vertices
// by a bounded worker pool.
//
// Packages:
//
//	core/        — Graph store and immutable View snapshots
//	components/  — connected components and the LCC
//	degree/      — degree statistics over a vertex set
//	longestpath/ — BestFirst, DoubleSweep and Relax strategies, path validation
//	parallel/    — work sets, worker pool, deterministic reduction, metrics
//	analysis/    — the full pipeline: LCC → degrees → Lmax
//	report/      — the four-key report as text, JSON or YAML
//	edgelist/    — edge-list reader and writer
//	builder/     — deterministic fixtures and random geometric graphs
//	config/      — YAML/JSON/env configuration
//	cmd/lmax/    — command-line interface (analyze, generate)
//
// Quick start:
//
//	g, _ := edgelist.ReadFile("graph.edges", edgelist.ParseInt)
//	res, _ := analysis.Analyze(ctx, g.View(), analysis.WithStrategy(longestpath.Relax))
//	_ = report.Write(os.Stdout, res.Metrics(), report.FormatText)
package lvlmax
