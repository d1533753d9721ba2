// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_star.go - implementation of Star(center, leaves...) constructor.
//
// Contract:
//   - At least one leaf (else ErrTooFewVertices).
//   - Emits spokes center → leaf in argument order.
//   - A leaf equal to center yields a self-loop on the hub.

package builder

import (
	"fmt"

	"github.com/katalvlaran/undigraph/core"
)

const (
	methodStar    = "Star"
	minStarLeaves = 1
)

// Star returns a Constructor that connects center to every leaf.
func Star(center int, leaves ...int) Constructor {
	return func(g *core.Graph) error {
		if len(leaves) < minStarLeaves {
			return fmt.Errorf("%s: leaves=%d < min=%d: %w", methodStar, len(leaves), minStarLeaves, ErrTooFewVertices)
		}
		for _, leaf := range leaves {
			g.AddEdge(center, leaf)
		}

		return nil
	}
}
