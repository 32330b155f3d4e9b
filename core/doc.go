// Package core provides the in-memory graph store for lvlmax: an undirected,
// unweighted Graph with optional per-vertex 2D positions, and an immutable
// View snapshot that analysis algorithms read concurrently.
//
// The Graph G = (V,E) is generic over the vertex identifier type: any
// cmp.Ordered type works, so numeric edge lists (int64) and label-based
// edge lists (string) share the same code path.
//
//   - Constant-time amortized insertion: AddVertex, AddEdge, SetPosition.
//   - O(deg) neighbor lookup through dense adjacency slices.
//   - Deterministic iteration: vertices and edges enumerate in insertion order.
//   - Raw multiplicity: parallel edges are kept, a self-loop counts twice.
//   - WithSimple() turns loops and parallel edges into errors instead.
//
// Lifecycle:
//
//	g := core.NewGraph[int64]()
//	_ = g.AddEdge(1, 2)
//	g.SetPosition(1, core.Position{X: 0.1, Y: 0.4})
//	view := g.View() // immutable, lock-free, shareable across goroutines
//
// Methods:
//
//	AddVertex(v)                 // O(1)
//	AddEdge(u, v) error          // O(1)†
//	SetPosition(v, p)            // O(1)†
//	HasVertex(v) bool            // O(1)
//	Neighbors(v) ([]V, error)    // O(deg v)
//	Degree(v) (int, error)       // O(1)
//	Vertices() []V               // O(V), insertion order
//	Edges() []Edge[V]            // O(E), insertion order
//	Position(v) (Position, bool) // O(1)
//	Spatial() bool               // O(1), every vertex has a position
//	View() *View[V]              // O(V+E) snapshot
//
// View methods address vertices by dense index (Len, ID, Index, Adjacent,
// Degree, Position, HasEdge) and Induced(set) restricts a view to a vertex set.
//
// Errors:
//
//	ErrVertexNotFound      – missing vertex
//	ErrEmptyVertexSet      – empty vertex set passed to Induced or a statistic
//	ErrLoopNotAllowed      – self-loop on a WithSimple graph
//	ErrMultiEdgeNotAllowed – parallel edge on a WithSimple graph
//
// † amortized constant time.
package core
