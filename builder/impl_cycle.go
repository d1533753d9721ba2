// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_cycle.go — implementation of Cycle(n, first) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Vertices are first, first+1, …, first+n-1.
//   • Emits edges in stable order i -> i+1, closing with (first+n-1) -> first.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/undigraph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the n-vertex simple cycle C_n
// over consecutive IDs starting at first.
func Cycle(n, first int) Constructor {
	return func(g *core.Graph) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// Emit edges in ascending i; for i==n-1, connect to first to close the ring.
		for i := 0; i < n; i++ {
			g.AddEdge(first+i, first+(i+1)%n)
		}

		return nil
	}
}
