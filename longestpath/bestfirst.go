// File: bestfirst.go
// Role: Heuristic best-first search over partial simple paths.
//
// The frontier holds partial paths (a vertex plus a parent chain) ordered by
// score = length − h(vertex), highest first; equal scores pop in insertion
// order. A neighbor is pushed only when the extended path is strictly longer
// than any path previously recorded ending at that neighbor, so each vertex
// is re-entered at most |V| times and the search terminates.
//
// With a goal, a popped path ending at the goal is recorded and not
// extended. Without a goal, the longest popped path is the result.

package longestpath

import (
	"cmp"
	"container/heap"
	"context"

	"github.com/katalvlaran/lvlmax/core"
	"gonum.org/v1/gonum/spatial/r2"
)

type bestFirst[V cmp.Ordered] struct {
	opts Options
}

// NewBestFirst returns the best-first strategy.
//
// Heuristic selection (see WithHeuristic):
//   - Euclidean: h(v) = distance(pos(v), pos(goal)); requires a spatial view and a goal.
//   - Degree:    h(v) = −deg(v), so well-connected vertices are extended first.
//
// Complexity: worst case exponential in principle; bounded in practice by the
// strict-improvement rule and by WithMaxExpansions.
func NewBestFirst[V cmp.Ordered](opts ...Option) Strategy[V] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &bestFirst[V]{opts: o}
}

func (*bestFirst[V]) Name() string { return BestFirst.String() }

func (b *bestFirst[V]) Estimate(ctx context.Context, g *core.View[V], start V, goal *V) (Path[V], error) {
	si, gi, err := endpoints(g, start, goal)
	if err != nil {
		return nil, err
	}

	r := &searcher[V]{
		g:     g,
		goal:  gi,
		h:     b.heuristic(g, gi),
		limit: b.opts.MaxExpansions,
		best:  make([]int, g.Len()),
		mark:  make([]uint32, g.Len()),
	}
	end, err := r.run(ctx, si)
	if err != nil {
		return nil, err
	}
	if end == nil {
		// goal unreachable inside the vertex set
		return nil, nil
	}

	return chainPath(g, end), nil
}

// heuristic picks the scoring function for one run.
func (b *bestFirst[V]) heuristic(g *core.View[V], gi int) func(int) float64 {
	euclid := gi >= 0 && g.Spatial()
	if b.opts.Heuristic == HeuristicDegree {
		euclid = false
	}
	if !euclid {
		return func(v int) float64 { return -float64(g.Degree(v)) }
	}
	target, _ := g.Position(gi)

	return func(v int) float64 {
		p, _ := g.Position(v)
		return r2.Norm(r2.Sub(p, target))
	}
}

// partial is one partial path: its last vertex, vertex count and the
// partial it extends. Chains share prefixes.
type partial struct {
	v      int
	length int
	parent *partial
}

// chainPath converts the parent chain ending at end into identifiers.
func chainPath[V cmp.Ordered](g *core.View[V], end *partial) Path[V] {
	p := make(Path[V], end.length)
	for i, c := len(p)-1, end; c != nil; i, c = i-1, c.parent {
		p[i] = g.ID(c.v)
	}

	return p
}

// searcher holds the mutable state of one best-first run.
type searcher[V cmp.Ordered] struct {
	g     *core.View[V]
	goal  int               // dense goal index, -1 when none
	h     func(int) float64 // heuristic of a vertex
	limit int               // max pops, 0 = unbounded
	best  []int             // longest recorded path (vertex count) ending at v
	mark  []uint32          // mark[v] == stamp ⇔ v is on the path being expanded
	stamp uint32
	pq    frontier
	seq   uint64
}

func (r *searcher[V]) push(p *partial) {
	heap.Push(&r.pq, &frontierItem{
		st:    p,
		score: float64(p.length) - r.h(p.v),
		seq:   r.seq,
	})
	r.seq++
}

// run returns the best partial found, or nil when the goal was never reached.
func (r *searcher[V]) run(ctx context.Context, si int) (*partial, error) {
	// 1) Seed the frontier with the single-vertex path.
	r.best[si] = 1
	r.push(&partial{v: si, length: 1})

	var found *partial
	for pops := 0; r.pq.Len() > 0; pops++ {
		// 2) Respect cancellation and the expansion budget.
		if pops%checkEvery == 0 {
			if err := canceled(ctx); err != nil {
				return nil, err
			}
		}
		if r.limit > 0 && pops >= r.limit {
			break
		}

		cur := heap.Pop(&r.pq).(*frontierItem).st

		// 3) Record the running best.
		if r.goal >= 0 {
			if cur.v == r.goal {
				if found == nil || cur.length > found.length {
					found = cur
				}
				continue
			}
		} else if found == nil || cur.length > found.length {
			found = cur
		}

		// 4) Mark the current path so extensions stay simple.
		r.stamp++
		if r.stamp == 0 {
			clear(r.mark)
			r.stamp = 1
		}
		for p := cur; p != nil; p = p.parent {
			r.mark[p.v] = r.stamp
		}

		// 5) Extend by every unvisited neighbor that strictly improves its record.
		next := cur.length + 1
		for _, w := range r.g.Adjacent(cur.v) {
			if r.mark[w] == r.stamp || next <= r.best[w] {
				continue
			}
			r.best[w] = next
			r.push(&partial{v: w, length: next, parent: cur})
		}
	}

	return found, nil
}

// frontierItem is one frontier entry.
type frontierItem struct {
	st    *partial
	score float64
	seq   uint64
}

// frontier is a max-heap on score; ties pop in push order.
type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].score != f[j].score {
		return f[i].score > f[j].score
	}

	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return it
}
