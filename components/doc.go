// Package components partitions a core.View into connected components and
// picks the largest connected component (LCC).
//
// What
//
//   - All(view): every component, in discovery order.
//   - Largest(view): the first component of maximum cardinality.
//
// Determinism
//
//	Roots are taken in view index order (vertex insertion order) and each
//	traversal is a FIFO queue over adjacency order, so both the partition and
//	the order of vertices inside a component are reproducible. On a tie the
//	earliest discovered component wins.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex enqueued once, each adjacency entry scanned once)
//   - Memory: O(V)       (seen flags, queue, output)
//
// Usage
//
//	view := g.View()
//	lcc := components.Largest(view) // []V, empty for an empty graph
package components
