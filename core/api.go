// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over the vertex catalog.
// Policy:
//   - Every getter is a non-mutating lookup: querying an unknown vertex
//     never creates it, so IsDisconnectedVertex stays truthful.
//   - Slices returned are fresh copies in ascending order.

package core

import "sort"

// HasVertex reports whether v has been referenced by any AddEdge call.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.adjacency[v]

	return ok
}

// IsDisconnectedVertex reports whether v has never been referenced by an
// edge insertion. It is the negation of HasVertex.
//
// Complexity: O(1).
func (g *Graph) IsDisconnectedVertex(v int) bool {
	return !g.HasVertex(v)
}

// Degree returns the number of distinct vertices adjacent to v.
// A self-loop contributes one neighbor (v itself). Unknown vertices have degree 0.
//
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	// Indexing a nil inner map is a read; len(nil) == 0.
	return len(g.adjacency[v])
}

// NeighborIDs returns the sorted neighbors of v, or an empty slice when v is unknown.
// The result is a copy; mutating it does not affect the graph.
//
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(v int) []int {
	nbrs := g.adjacency[v]
	out := make([]int, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Ints(out)

	return out
}

// Vertices returns all referenced vertex IDs in ascending order.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []int {
	out := make([]int, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// VertexCount returns the number of referenced vertices.
func (g *Graph) VertexCount() int {
	return len(g.adjacency)
}

// Stats produces a snapshot of counts used for diagnostics.
//
// Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{VertexCount: len(g.adjacency)}
	for v, nbrs := range g.adjacency {
		if len(nbrs) > stats.MaxDegree {
			stats.MaxDegree = len(nbrs)
		}
		for n := range nbrs {
			switch {
			case n == v:
				stats.SelfLoopCount++
				stats.EdgeCount++
			case v < n:
				stats.EdgeCount++
			}
		}
	}

	return stats
}
