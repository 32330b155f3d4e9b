package longestpath_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmax/core"
	"github.com/katalvlaran/lvlmax/longestpath"
)

// sparseRandom builds a connected-ish random graph: a spanning path plus n extra edges.
func sparseRandom(b *testing.B, n int) *core.View[int] {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	g := core.NewGraph[int](core.WithCapacity(n))
	for i := 1; i < n; i++ {
		_ = g.AddEdge(i-1, i)
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(rng.Intn(n), rng.Intn(n))
	}

	return g.View()
}

func benchmarkStrategy(b *testing.B, s longestpath.Strategy[int], n int) {
	v := sparseRandom(b, n)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Estimate(ctx, v, 0, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDoubleSweep_10k(b *testing.B) {
	benchmarkStrategy(b, longestpath.NewDoubleSweep[int](), 10_000)
}

func BenchmarkRelax_10k(b *testing.B) {
	benchmarkStrategy(b, longestpath.NewRelax[int](), 10_000)
}

func BenchmarkBestFirst_Capped_10k(b *testing.B) {
	benchmarkStrategy(b, longestpath.NewBestFirst[int](longestpath.WithMaxExpansions(50_000)), 10_000)
}
