// File: view.go
// Role: Immutable dense-index snapshots used by every algorithm.
// Determinism:
//   - Index order equals the parent's vertex insertion order.
// Concurrency:
//   - A View is never mutated after construction; any number of goroutines
//     may read it without locking.

package core

import (
	"cmp"
	"fmt"
)

// View is a read-only snapshot of a Graph addressed by dense indices
// 0..Len()-1. Slices returned by Adjacent alias internal storage and must
// not be modified.
type View[V cmp.Ordered] struct {
	ids     []V
	index   map[V]int
	adj     [][]int
	pos     []Position
	spatial bool
}

// View copies the current graph state into an immutable snapshot.
// Later mutations of g are not visible through the returned View.
//
// Complexity: O(V + E). Concurrency: read lock on g.
func (g *Graph[V]) View() *View[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.ids)
	v := &View[V]{
		ids:     make([]V, n),
		index:   make(map[V]int, n),
		adj:     make([][]int, n),
		pos:     make([]Position, n),
		spatial: n > 0 && g.nPos == n,
	}
	copy(v.ids, g.ids)
	copy(v.pos, g.pos)
	for id, i := range g.index {
		v.index[id] = i
	}
	for i, nbrs := range g.adj {
		v.adj[i] = append([]int(nil), nbrs...)
	}

	return v
}

// Len returns the number of vertices in the view.
func (v *View[V]) Len() int { return len(v.ids) }

// ID returns the vertex identifier at dense index i.
func (v *View[V]) ID(i int) V { return v.ids[i] }

// IDs returns a copy of all identifiers in index order.
func (v *View[V]) IDs() []V {
	out := make([]V, len(v.ids))
	copy(out, v.ids)

	return out
}

// Index returns the dense index of id.
func (v *View[V]) Index(id V) (int, bool) {
	i, ok := v.index[id]

	return i, ok
}

// Adjacent returns neighbor indices of i with raw multiplicity.
// The slice is shared and read-only.
func (v *View[V]) Adjacent(i int) []int { return v.adj[i] }

// Degree returns the raw adjacency size of i.
func (v *View[V]) Degree(i int) int { return len(v.adj[i]) }

// Spatial reports whether every vertex of the view carries a position.
func (v *View[V]) Spatial() bool { return v.spatial }

// Position returns the coordinate of i; ok is false for non-spatial views.
func (v *View[V]) Position(i int) (Position, bool) {
	if !v.spatial {
		return Position{}, false
	}

	return v.pos[i], true
}

// HasEdge reports whether a and b are adjacent.
// Complexity: O(min(deg(a), deg(b))).
func (v *View[V]) HasEdge(a, b V) bool {
	ai, aok := v.index[a]
	bi, bok := v.index[b]
	if !aok || !bok {
		return false
	}
	if len(v.adj[ai]) > len(v.adj[bi]) {
		ai, bi = bi, ai
	}
	for _, j := range v.adj[ai] {
		if j == bi {
			return true
		}
	}

	return false
}

// Induced returns the subgraph induced by set: its vertices, in this view's
// index order, and every adjacency entry whose endpoints are both in set.
// Duplicates in set are ignored.
//
// Errors:
//   - ErrEmptyVertexSet: if set is empty.
//   - ErrVertexNotFound: if set names a vertex absent from the view.
//
// Complexity: O(|set| + Σ deg). Concurrency: pure read.
func (v *View[V]) Induced(set []V) (*View[V], error) {
	if len(set) == 0 {
		return nil, fmt.Errorf("Induced: %w", ErrEmptyVertexSet)
	}
	keep := make([]bool, len(v.ids))
	for _, id := range set {
		i, ok := v.index[id]
		if !ok {
			return nil, fmt.Errorf("Induced(%v): %w", id, ErrVertexNotFound)
		}
		keep[i] = true
	}

	// Old index → new index, preserving parent order.
	remap := make([]int, len(v.ids))
	out := &View[V]{index: make(map[V]int, len(set))}
	for i, id := range v.ids {
		if !keep[i] {
			remap[i] = -1
			continue
		}
		remap[i] = len(out.ids)
		out.index[id] = len(out.ids)
		out.ids = append(out.ids, id)
		out.pos = append(out.pos, v.pos[i])
	}
	out.adj = make([][]int, len(out.ids))
	for i, nbrs := range v.adj {
		ni := remap[i]
		if ni < 0 {
			continue
		}
		for _, j := range nbrs {
			if nj := remap[j]; nj >= 0 {
				out.adj[ni] = append(out.adj[ni], nj)
			}
		}
	}
	out.spatial = v.spatial

	return out, nil
}
