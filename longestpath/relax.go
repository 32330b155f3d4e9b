// File: relax.go
// Role: Dijkstra-style maximizing relaxation.
//
// Vertices are finalized in order of decreasing tentative distance (ties by
// lower dense index); a non-finalized neighbor is relaxed when the finalized
// vertex offers a strictly longer distance. Each vertex is finalized once, so
// the parent chain of a finalized vertex only visits vertices finalized
// before it and the traced path is simple, with exactly dist[v] edges.
//
// The result is the path to the first vertex (in index order) of maximum
// distance. goal is ignored.

package longestpath

import (
	"cmp"
	"container/heap"
	"context"

	"github.com/katalvlaran/lvlmax/core"
)

type relax[V cmp.Ordered] struct{}

// NewRelax returns the maximizing-relaxation strategy.
// Complexity: O((V + E) log V) with lazy decrease-key.
func NewRelax[V cmp.Ordered]() Strategy[V] { return relax[V]{} }

func (relax[V]) Name() string { return Relax.String() }

func (relax[V]) Estimate(ctx context.Context, g *core.View[V], start V, goal *V) (Path[V], error) {
	si, _, err := endpoints(g, start, goal)
	if err != nil {
		return nil, err
	}

	n := g.Len()
	dist := make([]int, n)
	parent := make([]int, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = -1 // unreached
		parent[i] = -1
	}
	dist[si] = 0

	pq := distPQ{{v: si, dist: 0}}
	for steps := 0; pq.Len() > 0; steps++ {
		if steps%checkEvery == 0 {
			if err := canceled(ctx); err != nil {
				return nil, err
			}
		}
		it := heap.Pop(&pq).(distItem)
		if done[it.v] {
			continue // stale entry
		}
		done[it.v] = true

		next := dist[it.v] + 1
		for _, w := range g.Adjacent(it.v) {
			if done[w] || dist[w] >= next {
				continue
			}
			dist[w] = next
			parent[w] = it.v
			heap.Push(&pq, distItem{v: w, dist: next})
		}
	}

	end := si
	for v, d := range dist {
		if d > dist[end] {
			end = v
		}
	}

	return tracePath(g, parent, end), nil
}

type distItem struct {
	v, dist int
}

// distPQ is a max-heap on dist; ties pop the lower index first.
type distPQ []distItem

func (pq distPQ) Len() int { return len(pq) }

func (pq distPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist > pq[j].dist
	}

	return pq[i].v < pq[j].v
}

func (pq distPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *distPQ) Push(x any) { *pq = append(*pq, x.(distItem)) }

func (pq *distPQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
