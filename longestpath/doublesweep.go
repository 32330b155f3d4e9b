// File: doublesweep.go
// Role: Two-pass depth-first longest-path estimate.
//
// Pass one runs an iterative DFS from start and keeps the vertex of greatest
// DFS-tree depth (first one wins on ties). Pass two repeats the DFS from that
// vertex; the result is the tree path from it to the deepest vertex of the
// second pass. Tree paths are simple by construction. goal is ignored.

package longestpath

import (
	"cmp"
	"context"

	"github.com/katalvlaran/lvlmax/core"
)

type doubleSweep[V cmp.Ordered] struct{}

// NewDoubleSweep returns the double-sweep strategy.
// Complexity: O(V + E) time and memory per call.
func NewDoubleSweep[V cmp.Ordered]() Strategy[V] { return doubleSweep[V]{} }

func (doubleSweep[V]) Name() string { return DoubleSweep.String() }

func (doubleSweep[V]) Estimate(ctx context.Context, g *core.View[V], start V, goal *V) (Path[V], error) {
	si, _, err := endpoints(g, start, goal)
	if err != nil {
		return nil, err
	}

	w := newSweeper(g)
	far, err := w.sweep(ctx, si)
	if err != nil {
		return nil, err
	}
	end, err := w.sweep(ctx, far)
	if err != nil {
		return nil, err
	}

	return tracePath(g, w.parent, end), nil
}

// frame is one pending DFS visit: vertex, depth it would get, and its tree parent.
type frame struct {
	v, depth, parent int
}

// sweeper keeps DFS buffers reused by both passes.
type sweeper[V cmp.Ordered] struct {
	g      *core.View[V]
	depth  []int // -1 = not yet visited
	parent []int
	stack  []frame
}

func newSweeper[V cmp.Ordered](g *core.View[V]) *sweeper[V] {
	return &sweeper[V]{
		g:      g,
		depth:  make([]int, g.Len()),
		parent: make([]int, g.Len()),
	}
}

// sweep runs one DFS from root and returns the first vertex of maximum depth.
// On return parent holds the DFS tree of this pass.
func (w *sweeper[V]) sweep(ctx context.Context, root int) (int, error) {
	for i := range w.depth {
		w.depth[i] = -1
		w.parent[i] = -1
	}
	w.stack = append(w.stack[:0], frame{v: root, depth: 0, parent: -1})

	deepest, maxDepth := root, 0
	for steps := 0; len(w.stack) > 0; steps++ {
		if steps%checkEvery == 0 {
			if err := canceled(ctx); err != nil {
				return 0, err
			}
		}
		f := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.depth[f.v] >= 0 {
			continue
		}
		w.depth[f.v] = f.depth
		w.parent[f.v] = f.parent
		if f.depth > maxDepth {
			deepest, maxDepth = f.v, f.depth
		}
		for _, u := range w.g.Adjacent(f.v) {
			if w.depth[u] < 0 {
				w.stack = append(w.stack, frame{v: u, depth: f.depth + 1, parent: f.v})
			}
		}
	}

	return deepest, nil
}
