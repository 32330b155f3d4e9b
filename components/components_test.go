package components_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvlmax/components"
	"github.com/katalvlaran/lvlmax/core"
)

func build(t *testing.T, edges [][2]int) *core.View[int] {
	t.Helper()
	g := core.NewGraph[int]()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g.View()
}

func sorted(s []int) []int {
	out := append([]int(nil), s...)
	sort.Ints(out)

	return out
}

// TestLargest_Cycle5: C5 is one component of size 5.
func TestLargest_Cycle5(t *testing.T) {
	v := build(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	require.Equal(t, []int{0, 1, 2, 3, 4}, sorted(components.Largest(v)))
}

// TestLargest_TwoTriangles: equal-sized components, the first discovered wins.
func TestLargest_TwoTriangles(t *testing.T) {
	v := build(t, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}})
	require.Equal(t, []int{0, 1, 2}, sorted(components.Largest(v)))

	v = build(t, [][2]int{{5, 4}, {4, 3}, {3, 5}, {0, 1}, {1, 2}, {2, 0}})
	require.Equal(t, []int{3, 4, 5}, sorted(components.Largest(v)), "insertion order decides the tie")
}

func TestLargest_Empty(t *testing.T) {
	v := core.NewGraph[int]().View()
	lcc := components.Largest(v)
	require.NotNil(t, lcc)
	require.Empty(t, lcc)
	require.Empty(t, components.All(v))
}

// TestLargest_PicksBiggest places the big component last.
func TestLargest_PicksBiggest(t *testing.T) {
	v := build(t, [][2]int{{0, 1}, {2, 3}, {3, 4}, {4, 5}})
	require.Equal(t, []int{2, 3, 4, 5}, sorted(components.Largest(v)))
}

// TestAll_PartitionMatchesGonum cross-checks the partition against
// gonum's topo.ConnectedComponents on seeded random sparse graphs.
func TestAll_PartitionMatchesGonum(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		const n = 300

		g := core.NewGraph[int]()
		ref := simple.NewUndirectedGraph()
		for i := 0; i < n; i++ {
			g.AddVertex(i)
			ref.AddNode(simple.Node(i))
		}
		for k := 0; k < n*3/4; k++ {
			a, b := rng.Intn(n), rng.Intn(n)
			if a == b {
				continue
			}
			require.NoError(t, g.AddEdge(a, b))
			ref.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(b)})
		}

		got := components.All(g.View())

		// Partition: every vertex exactly once.
		count := make(map[int]int, n)
		for _, c := range got {
			for _, id := range c {
				count[id]++
			}
		}
		require.Len(t, count, n)
		for id, c := range count {
			require.Equal(t, 1, c, "vertex %d appears %d times", id, c)
		}

		want := topo.ConnectedComponents(ref)
		require.Equal(t, sizesOf(want), sizesOf(got), "seed %d", seed)
	}
}

// sizesOf returns the sorted component sizes.
func sizesOf[N any](comps [][]N) []int {
	out := make([]int, len(comps))
	for i, c := range comps {
		out[i] = len(c)
	}
	sort.Ints(out)

	return out
}

// TestAll_RepeatedLargestPartitions removes each discovered LCC and extracts
// again; the union over all rounds must be the vertex set.
func TestAll_RepeatedLargestPartitions(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {3, 4}, {5, 6}, {6, 7}, {7, 5}, {8, 8}}
	g := core.NewGraph[int]()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	g.AddVertex(9)

	view := g.View()
	remaining := view.IDs()
	seen := map[int]bool{}
	for len(remaining) > 0 {
		sub, err := view.Induced(remaining)
		require.NoError(t, err)
		lcc := components.Largest(sub)
		require.NotEmpty(t, lcc)
		for _, id := range lcc {
			require.False(t, seen[id], "vertex %d extracted twice", id)
			seen[id] = true
		}
		next := remaining[:0:0]
		for _, id := range remaining {
			if !seen[id] {
				next = append(next, id)
			}
		}
		remaining = next
	}
	require.Len(t, seen, 10)
}

func BenchmarkLargest(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	g := core.NewGraph[int]()
	const n = 50_000
	for k := 0; k < n; k++ {
		_ = g.AddEdge(rng.Intn(n), rng.Intn(n))
	}
	v := g.View()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = components.Largest(v)
	}
}
