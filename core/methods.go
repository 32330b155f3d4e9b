// Package core: Graph mutation methods.
//
// This file provides thread-safe, O(1) amortized operations for vertex and
// edge insertion and for attaching positions. All writers take the single
// write lock; the Graph is expected to be built once and then frozen into a
// View for analysis.

package core

import "fmt"

// AddVertex inserts v if it is absent. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.intern(v)
}

// AddEdge inserts u and v if absent and records the symmetric adjacency.
//
// In the default mode self-loops and duplicate edges are accepted and kept
// with their multiplicity, and AddEdge never fails. A Graph created WithSimple
// returns ErrLoopNotAllowed or ErrMultiEdgeNotAllowed instead.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(u, v V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.simple {
		if u == v {
			return fmt.Errorf("AddEdge(%v,%v): %w", u, v, ErrLoopNotAllowed)
		}
		ui, uok := g.index[u]
		vi, vok := g.index[v]
		if uok && vok {
			if _, dup := g.pairs[pairKey(ui, vi)]; dup {
				return fmt.Errorf("AddEdge(%v,%v): %w", u, v, ErrMultiEdgeNotAllowed)
			}
		}
	}

	ui := g.intern(u)
	vi := g.intern(v)

	// Mirror adjacency; a loop lands twice in the same list.
	g.adj[ui] = append(g.adj[ui], vi)
	g.adj[vi] = append(g.adj[vi], ui)
	g.edges = append(g.edges, Edge[V]{From: u, To: v})

	if g.simple {
		g.pairs[pairKey(ui, vi)] = struct{}{}
	}

	return nil
}

// SetPosition attaches a coordinate to v, inserting v if absent.
// A later call overwrites the earlier coordinate.
// Complexity: O(1) amortized.
func (g *Graph[V]) SetPosition(v V, p Position) {
	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.intern(v)
	if !g.has[i] {
		g.has[i] = true
		g.nPos++
	}
	g.pos[i] = p
}

// HasVertex reports whether v exists in the graph.
// Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[v]

	return ok
}

// intern returns the dense index of v, allocating one on first sight.
// Caller must hold the write lock.
func (g *Graph[V]) intern(v V) int {
	if i, ok := g.index[v]; ok {
		return i
	}
	i := len(g.ids)
	g.index[v] = i
	g.ids = append(g.ids, v)
	g.adj = append(g.adj, nil)
	g.pos = append(g.pos, Position{})
	g.has = append(g.has, false)

	return i
}

// pairKey normalizes an unordered index pair.
func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}
