// File: methods_vertices.go
// Role: Vertex and edge enumeration, counts, positions.
//
// Determinism:
//   - Vertices() and Edges() return insertion order.
//
// Concurrency:
//   - All methods hold the read lock and return copies.
package core

// Vertices returns all vertices in insertion order.
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, len(g.ids))
	copy(out, g.ids)

	return out
}

// Edges returns every inserted edge once, in insertion order.
// Complexity: O(E).
func (g *Graph[V]) Edges() []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[V], len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids)
}

// EdgeCount returns the number of inserted edges, parallel edges and loops included.
// Complexity: O(1).
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Position returns the coordinate of v and whether one was set.
// Complexity: O(1).
func (g *Graph[V]) Position(v V) (Position, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[v]
	if !ok || !g.has[i] {
		return Position{}, false
	}

	return g.pos[i], true
}

// Spatial reports whether every vertex carries a position.
// An empty graph is not spatial.
// Complexity: O(1).
func (g *Graph[V]) Spatial() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids) > 0 && g.nPos == len(g.ids)
}
