// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_path.go — implementation of Path(n, first) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertices are first, first+1, …, first+n-1; edges join consecutive IDs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/undigraph/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the path graph P_n.
func Path(n, first int) Constructor {
	return func(g *core.Graph) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n-1; i++ {
			g.AddEdge(first+i, first+i+1)
		}

		return nil
	}
}
