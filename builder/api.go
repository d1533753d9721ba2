// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(cons...). Creates g, runs cons in order.
//   - Public factories are implemented in impl_*.go.
//   - Determinism: same inputs and constructor order ⇒ identical graphs.
//   - Safety: never panic; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/undigraph/core"
)

// Constructor applies a deterministic graph mutation. Constructors validate
// parameters before touching g and return sentinel errors (no panics).
type Constructor func(g *core.Graph) error

// BuildGraph creates a new core.Graph and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Complexity: Σ cost of each constructor.
func BuildGraph(cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
