// File: methods_adjacent.go
// Role: Neighborhood queries (Neighbors, Degree).
// Determinism:
//   - Neighbors() returns adjacent vertices in edge insertion order, with multiplicity.
// Concurrency:
//   - Read lock only; returned slices are fresh copies.

package core

import "fmt"

// Neighbors returns the vertices adjacent to v in edge insertion order.
// Parallel edges repeat the neighbor; a self-loop lists v twice.
//
// Errors:
//   - ErrVertexNotFound: if v does not exist.
//
// Complexity:
//   - Time O(deg(v)), Space O(deg(v)).
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[v]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%v): %w", v, ErrVertexNotFound)
	}
	out := make([]V, len(g.adj[i]))
	for k, j := range g.adj[i] {
		out[k] = g.ids[j]
	}

	return out, nil
}

// Degree returns |Neighbors(v)|: raw adjacency size, counting every
// parallel edge separately and a self-loop twice.
//
// Errors:
//   - ErrVertexNotFound: if v does not exist.
//
// Complexity:
//   - Time O(1).
func (g *Graph[V]) Degree(v V) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[v]
	if !ok {
		return 0, fmt.Errorf("Degree(%v): %w", v, ErrVertexNotFound)
	}

	return len(g.adj[i]), nil
}
