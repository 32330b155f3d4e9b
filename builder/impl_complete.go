// SPDX-License-Identifier: MIT
//
// impl_complete.go - Complete(n) constructor.
//
// Edges are emitted in lexicographic order (i<j).
// Complexity: O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlmax/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		base := addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}
		if cfg.layout {
			onCircle(g, base, n)
		}

		return nil
	}
}
