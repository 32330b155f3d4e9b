// SPDX-License-Identifier: MIT
//
// impl_cycle.go - Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices base..base+n-1; edges i→i+1 for i=0..n-2, then n-1→0.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlmax/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		base := addVertices(g, n)
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}
		if cfg.layout {
			onCircle(g, base, n)
		}

		return nil
	}
}
