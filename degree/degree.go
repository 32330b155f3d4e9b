// Package degree computes degree statistics of a graph restricted to a vertex
// set, typically the largest connected component.
//
// Degree of v is the raw adjacency size |Neighbors(v)| in the full graph:
// parallel edges count separately and a self-loop counts twice.
package degree

import (
	"cmp"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvlmax/core"
)

// Stats summarizes the degrees of a vertex set.
type Stats struct {
	// Count is the number of vertices the statistics were taken over.
	Count int
	// Max is Δ, the maximum degree.
	Max int
	// Min is the minimum degree.
	Min int
	// Avg is k, the arithmetic mean degree: Σ deg(v) / |set|.
	Avg float64
	// StdDev is the population standard deviation of the degrees.
	StdDev float64
}

// Compute returns degree statistics of set inside v. Duplicate entries in set
// are counted as often as they appear.
//
// Errors:
//   - core.ErrEmptyVertexSet if set is empty (never a silent 0 or NaN).
//   - core.ErrVertexNotFound if set names a vertex absent from v.
//
// Complexity: O(|set|).
func Compute[V cmp.Ordered](v *core.View[V], set []V) (Stats, error) {
	if len(set) == 0 {
		return Stats{}, fmt.Errorf("degree: %w", core.ErrEmptyVertexSet)
	}

	degs := make([]float64, len(set))
	for k, id := range set {
		i, ok := v.Index(id)
		if !ok {
			return Stats{}, fmt.Errorf("degree: vertex %v: %w", id, core.ErrVertexNotFound)
		}
		degs[k] = float64(v.Degree(i))
	}

	_, std := stat.PopMeanStdDev(degs, nil)

	return Stats{
		Count:  len(set),
		Max:    int(floats.Max(degs)),
		Min:    int(floats.Min(degs)),
		Avg:    stat.Mean(degs, nil),
		StdDev: std,
	}, nil
}
