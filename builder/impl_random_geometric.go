// SPDX-License-Identifier: MIT
//
// impl_random_geometric.go - random geometric graphs in the unit square.
//
// RandomGeometric(n, r):
//   - Requires cfg.rng (else ErrNeedRandSource); n ≥ 1; 0 ≤ r.
//   - Vertex i gets (X, Y) drawn uniformly from [0,1)², X first.
//   - Edge {i,j}, i<j, iff ‖p_i − p_j‖ ≤ r; emitted in lexicographic order.
//   - Complexity: O(n²) distance checks.
//
// GeometricLCC(n, lo, hi):
//   - Bisects r over [0, √2] until the LCC share lies in [lo, hi] or the
//     interval is narrower than radiusPrecision. Every probe draws fresh
//     points from the same rng, so the result is deterministic per seed.

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lvlmax/components"
	"github.com/katalvlaran/lvlmax/core"
)

const (
	methodRandomGeometric = "RandomGeometric"
	methodGeometricLCC    = "GeometricLCC"
	minGeometricNodes     = 1
	radiusPrecision       = 0.005
)

// RandomGeometric returns a Constructor for a random geometric graph with n
// vertices and connection radius r.
func RandomGeometric(n int, r float64) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minGeometricNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomGeometric, n, minGeometricNodes, ErrTooFewVertices)
		}
		if r < 0 || math.IsNaN(r) {
			return fmt.Errorf("%s: r=%g: %w", methodRandomGeometric, r, ErrOptionViolation)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomGeometric, ErrNeedRandSource)
		}

		base := addVertices(g, n)
		pts := make([]r2.Vec, n)
		for i := range pts {
			pts[i] = r2.Vec{X: cfg.rng.Float64(), Y: cfg.rng.Float64()}
			g.SetPosition(base+i, pts[i])
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if r2.Norm(r2.Sub(pts[i], pts[j])) > r {
					continue
				}
				if err := addEdge(g, methodRandomGeometric, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// GeometricFit is a random geometric graph whose LCC share hit the target.
type GeometricFit struct {
	Graph  *core.Graph[int]
	Radius float64 // connection radius used
	LCC    int     // vertices in the largest connected component
	Probes int     // graphs generated during the search
}

// GeometricLCC generates random geometric graphs of n vertices, bisecting the
// radius until the largest connected component holds between lo·n and hi·n
// vertices. gopts configure each candidate graph.
//
// Errors:
//   - ErrTooFewVertices: n < 1.
//   - ErrOptionViolation: unless 0 < lo ≤ hi ≤ 1.
//   - ErrNeedRandSource: no WithSeed/WithRand option.
//   - ErrConstructFailed: the radius interval shrank below 0.005 without a fit.
func GeometricLCC(n int, lo, hi float64, gopts []core.GraphOption, bopts ...BuilderOption) (GeometricFit, error) {
	if n < minGeometricNodes {
		return GeometricFit{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodGeometricLCC, n, minGeometricNodes, ErrTooFewVertices)
	}
	if !(lo > 0 && lo <= hi && hi <= 1) {
		return GeometricFit{}, fmt.Errorf("%s: ratio [%g, %g]: %w", methodGeometricLCC, lo, hi, ErrOptionViolation)
	}
	cfg := newBuilderConfig(bopts...)
	if cfg.rng == nil {
		return GeometricFit{}, fmt.Errorf("%s: %w", methodGeometricLCC, ErrNeedRandSource)
	}

	low, high := lo*float64(n), hi*float64(n)
	rMin, rMax := 0.0, math.Sqrt2
	size, probes := 0, 0
	for rMax-rMin > radiusPrecision {
		r := (rMin + rMax) / 2
		g := core.NewGraph[int](gopts...)
		if err := RandomGeometric(n, r)(g, cfg); err != nil {
			return GeometricFit{}, fmt.Errorf("%s: %w", methodGeometricLCC, err)
		}
		probes++
		size = len(components.Largest(g.View()))

		switch s := float64(size); {
		case s >= low && s <= high:
			return GeometricFit{Graph: g, Radius: r, LCC: size, Probes: probes}, nil
		case s < low:
			rMin = r
		default:
			rMax = r
		}
	}

	return GeometricFit{}, fmt.Errorf("%s: n=%d ratio [%g, %g], last LCC %d after %d probes: %w",
		methodGeometricLCC, n, lo, hi, size, probes, ErrConstructFailed)
}
