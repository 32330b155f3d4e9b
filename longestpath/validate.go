package longestpath

import (
	"cmp"
	"context"
	"fmt"

	"github.com/katalvlaran/lvlmax/core"
)

// Validate checks that p is a simple path of g: every vertex belongs to g,
// no vertex repeats, and consecutive vertices are adjacent. An empty path is
// valid.
//
// Errors:
//   - ErrInvalidInput: a vertex is not in g.
//   - ErrNotSimple: a vertex repeats.
//   - ErrNotAdjacent: two consecutive vertices share no edge.
func Validate[V cmp.Ordered](g *core.View[V], p Path[V]) error {
	seen := make(map[V]struct{}, len(p))
	for i, v := range p {
		if _, ok := g.Index(v); !ok {
			return fmt.Errorf("%w: vertex %v at position %d", ErrInvalidInput, v, i)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: vertex %v at position %d", ErrNotSimple, v, i)
		}
		seen[v] = struct{}{}
		if i > 0 && !g.HasEdge(p[i-1], v) {
			return fmt.Errorf("%w: %v-%v", ErrNotAdjacent, p[i-1], v)
		}
	}

	return nil
}

// MultiStart runs s once from every vertex in starts, sequentially, and
// returns the longest path; the earliest start wins ties. Runs aim at no goal.
// For concurrent runs use package parallel.
func MultiStart[V cmp.Ordered](ctx context.Context, s Strategy[V], g *core.View[V], starts []V) (Path[V], error) {
	var best Path[V]
	for _, v := range starts {
		p, err := s.Estimate(ctx, g, v, nil)
		if err != nil {
			return nil, fmt.Errorf("MultiStart(%v): %w", v, err)
		}
		if best == nil || len(p) > len(best) {
			best = p
		}
	}

	return best, nil
}
