package components

import (
	"cmp"

	"github.com/katalvlaran/lvlmax/core"
)

// All returns every connected component of v in discovery order. The union
// of the returned slices is exactly the vertex set and no vertex appears twice.
//
// Time:   O(V + E).
// Memory: O(V).
func All[V cmp.Ordered](v *core.View[V]) [][]V {
	n := v.Len()
	seen := make([]bool, n)
	queue := make([]int, 0, n)
	var comps [][]V

	for root := 0; root < n; root++ {
		if seen[root] {
			continue
		}
		comps = append(comps, collect(v, root, seen, queue[:0]))
	}

	return comps
}

// Largest returns the component of maximum cardinality, keeping the first
// one found on ties. An empty view yields an empty, non-nil slice.
//
// Time:   O(V + E).
// Memory: O(V).
func Largest[V cmp.Ordered](v *core.View[V]) []V {
	n := v.Len()
	seen := make([]bool, n)
	queue := make([]int, 0, n)
	best := []V{}

	for root := 0; root < n; root++ {
		if seen[root] {
			continue
		}
		comp := collect(v, root, seen, queue[:0])
		if len(comp) > len(best) {
			best = comp
		}
		// Nothing left can beat the current best.
		if len(best) >= n-root {
			break
		}
	}

	return best
}

// collect runs a queue-based traversal from root, marking seen and returning
// the reached vertices in visit order. queue is scratch space.
func collect[V cmp.Ordered](v *core.View[V], root int, seen []bool, queue []int) []V {
	seen[root] = true
	queue = append(queue, root)
	var comp []V

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		comp = append(comp, v.ID(u))
		for _, w := range v.Adjacent(u) {
			if !seen[w] {
				seen[w] = true
				queue = append(queue, w)
			}
		}
	}

	return comp
}
