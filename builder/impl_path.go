// SPDX-License-Identifier: MIT
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); Path(1) is a single isolated vertex.
//   - Edges i→i+1 for i=0..n-2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlmax/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		base := addVertices(g, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodPath, base+i-1, base+i); err != nil {
				return err
			}
		}
		if cfg.layout {
			for i := 0; i < n; i++ {
				g.SetPosition(base+i, core.Position{X: unitStep(i, n), Y: 0.5})
			}
		}

		return nil
	}
}
