// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge and GraphStats declarations plus the NewGraph constructor.
// Invariants:
//   - adjacency is symmetric: n ∈ adjacency[v] ⇔ v ∈ adjacency[n].
//   - A key exists in adjacency only if AddEdge referenced it.

package core

import "fmt"

// Edge is an unordered pair of vertices in canonical form (U <= V).
type Edge struct {
	// U is the smaller endpoint.
	U int

	// V is the larger endpoint (equal to U for a self-loop).
	V int
}

// String renders the edge as "(u, v)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d)", e.U, e.V)
}

// IsLoop reports whether the edge connects a vertex to itself.
func (e Edge) IsLoop() bool { return e.U == e.V }

// newEdge returns the canonical Edge for the unordered pair {a, b}.
func newEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// GraphStats is a read-only snapshot of graph size and shape.
type GraphStats struct {
	VertexCount   int // number of referenced vertices
	EdgeCount     int // number of undirected edges, self-loops included
	SelfLoopCount int // edges with U == V
	MaxDegree     int // largest adjacency set size
}

// Graph is an undirected, unweighted graph over integer vertex IDs.
//
// The zero value is not usable; construct with NewGraph. A Graph carries no
// lock: callers serialize mutation.
type Graph struct {
	// adjacency[v] is the set of vertices adjacent to v.
	adjacency map[int]map[int]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[int]map[int]struct{})}
}
