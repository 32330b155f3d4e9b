package longestpath

import (
	"cmp"
	"context"
	"fmt"

	"github.com/katalvlaran/lvlmax/core"
)

// checkEvery is how many loop iterations pass between context checks.
const checkEvery = 1024

// Estimate restricts g to set and runs s on the induced view.
// It is the vertex-set form of Strategy.Estimate: the search never leaves set.
//
// Errors:
//   - ErrInvalidInput (wrapping core.ErrEmptyVertexSet): if set is empty.
//   - ErrInvalidInput (wrapping core.ErrVertexNotFound): if set names an unknown vertex.
//   - anything s.Estimate returns.
func Estimate[V cmp.Ordered](ctx context.Context, s Strategy[V], g *core.View[V], set []V, start V, goal *V) (Path[V], error) {
	sub, err := g.Induced(set)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return s.Estimate(ctx, sub, start, goal)
}

// endpoints maps start and the optional goal to dense indices of g.
// gi is -1 when goal is nil.
func endpoints[V cmp.Ordered](g *core.View[V], start V, goal *V) (si, gi int, err error) {
	if g == nil || g.Len() == 0 {
		return 0, 0, fmt.Errorf("%w: %w", ErrInvalidInput, core.ErrEmptyVertexSet)
	}
	si, ok := g.Index(start)
	if !ok {
		return 0, 0, fmt.Errorf("%w: start %v not in vertex set", ErrInvalidInput, start)
	}
	gi = -1
	if goal != nil {
		if gi, ok = g.Index(*goal); !ok {
			return 0, 0, fmt.Errorf("%w: goal %v not in vertex set", ErrInvalidInput, *goal)
		}
	}

	return si, gi, nil
}

// tracePath walks parent indices back from end and returns the identifiers
// in start→end order. parent[root] must be -1.
func tracePath[V cmp.Ordered](g *core.View[V], parent []int, end int) Path[V] {
	var rev []int
	for v := end; v >= 0; v = parent[v] {
		rev = append(rev, v)
	}
	p := make(Path[V], len(rev))
	for i, v := range rev {
		p[len(rev)-1-i] = g.ID(v)
	}

	return p
}

// canceled returns ctx.Err() if ctx is done, nil otherwise.
func canceled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
