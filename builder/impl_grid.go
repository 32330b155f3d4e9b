// SPDX-License-Identifier: MIT
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 (else ErrBadSize).
//   - Vertex (r,c) is base + r*cols + c (row-major).
//   - Edges in row-major order: right neighbor first, then down neighbor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlmax/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrBadSize)
		}

		base := addVertices(g, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := base + r*cols + c
				if c+1 < cols {
					if err := addEdge(g, methodGrid, id, id+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, id, id+cols); err != nil {
						return err
					}
				}
				if cfg.layout {
					g.SetPosition(id, core.Position{X: unitStep(c, cols), Y: unitStep(r, rows)})
				}
			}
		}

		return nil
	}
}
