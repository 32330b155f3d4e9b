// Package builder assembles deterministic test and benchmark graphs over
// integer vertex IDs, including the random geometric graphs the analysis
// pipeline was designed for.
//
// Every topology is a Constructor closure; BuildGraph creates a graph,
// resolves BuilderOptions once and applies constructors in order. Each
// constructor numbers its vertices consecutively after the vertices already
// in the graph, so composing constructors yields disjoint parts:
//
//	g, err := builder.BuildGraph(nil, nil,
//	    builder.Cycle(3), // 0 1 2
//	    builder.Cycle(3), // 3 4 5
//	)
//
// Topologies:
//
//	Cycle(n)              – C_n, n ≥ 3
//	Path(n)               – P_n, n ≥ 1
//	Star(n)               – center + n−1 leaves, n ≥ 2
//	Complete(n)           – K_n, n ≥ 1
//	Grid(rows, cols)      – 4-neighborhood lattice
//	RandomGeometric(n, r) – n uniform points in the unit square, edge iff distance ≤ r
//
// GeometricLCC searches the radius of a random geometric graph so that its
// largest connected component holds a target share of the vertices.
//
// Options:
//
//	WithSeed / WithRand – RNG for RandomGeometric and GeometricLCC (required there)
//	WithLayout          – give fixture vertices unit-square coordinates
//
// Errors are sentinels (ErrTooFewVertices, ErrBadSize, ErrNeedRandSource,
// ErrOptionViolation, ErrConstructFailed) wrapped with the constructor name;
// branch with errors.Is.
package builder
