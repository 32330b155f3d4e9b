// SPDX-License-Identifier: MIT
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The first new vertex is the center; spokes center→leaf in leaf order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlmax/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		center := addVertices(g, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodStar, center, center+i); err != nil {
				return err
			}
		}
		if cfg.layout {
			g.SetPosition(center, core.Position{X: 0.5, Y: 0.5})
			onCircle(g, center+1, n-1)
		}

		return nil
	}
}
