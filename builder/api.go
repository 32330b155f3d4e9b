// SPDX-License-Identifier: MIT
//
// api.go - public entry point and shared helpers of the builder package.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlmax/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return
// sentinel errors; they never panic.
type Constructor func(g *core.Graph[int], cfg builderConfig) error

// BuildGraph creates a new graph with gopts, resolves bopts and applies all
// constructors in order. The first constructor error is wrapped with
// "BuildGraph: %w" and returned; no partial graph is returned.
//
// Complexity: Σ cost of constructors.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[int], error) {
	g := core.NewGraph[int](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices interns n fresh vertices after the current ones and returns
// the first new ID.
func addVertices(g *core.Graph[int], n int) int {
	base := g.VertexCount()
	for i := 0; i < n; i++ {
		g.AddVertex(base + i)
	}

	return base
}

// addEdge adds u-v and tags core failures with the constructor name.
func addEdge(g *core.Graph[int], method string, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d, %d): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}

// onCircle places ids base..base+n-1 evenly on the circle of radius 0.5
// centered in the unit square, starting at angle 0.
func onCircle(g *core.Graph[int], base, n int) {
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		g.SetPosition(base+i, core.Position{X: 0.5 + 0.5*math.Cos(a), Y: 0.5 + 0.5*math.Sin(a)})
	}
}

// unitStep maps i in 0..n-1 onto [0,1]; a single point sits at 0.5.
func unitStep(i, n int) float64 {
	if n == 1 {
		return 0.5
	}

	return float64(i) / float64(n-1)
}
