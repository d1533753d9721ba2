// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for undigraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Express edge expectations as canonical core.Edge slices.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/undigraph/core"
)

// Common vertex IDs used across core tests.
const (
	V1 = 1
	V2 = 2
	V3 = 3
	V4 = 4
	V5 = 5
	V6 = 6
	V7 = 7
)

// newSquare returns the 4-cycle (1,2),(2,3),(3,4),(4,1).
func newSquare() *core.Graph {
	return fromPairs([2]int{V1, V2}, [2]int{V2, V3}, [2]int{V3, V4}, [2]int{V4, V1})
}

// newPairs returns the two-edge graph (3,4),(5,6).
func newPairs() *core.Graph {
	return fromPairs([2]int{V3, V4}, [2]int{V5, V6})
}

// fromPairs builds a graph by calling AddEdge for each pair in order.
func fromPairs(pairs ...[2]int) *core.Graph {
	g := core.NewGraph()
	for _, p := range pairs {
		g.AddEdge(p[0], p[1])
	}

	return g
}

// edges is shorthand for a canonical edge list literal.
func edges(pairs ...[2]int) []core.Edge {
	out := make([]core.Edge, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, core.Edge{U: p[0], V: p[1]})
	}

	return out
}

// assertSymmetric fails the test if any adjacency entry lacks its mirror.
func assertSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()
	for _, v := range g.Vertices() {
		for _, n := range g.NeighborIDs(v) {
			assert.True(t, g.HasEdge(n, v), "missing mirror %d→%d", n, v)
		}
	}
}
