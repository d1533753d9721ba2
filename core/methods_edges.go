// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and edge queries: AddEdge/HasEdge/Edges/EdgeCount/DisplayEdges.
// Determinism:
//   - Edges() and DisplayEdges() walk vertices and neighbors in ascending order.
// Invariants:
//   - AddEdge is the only mutator; it always writes both directions.

package core

import (
	"fmt"
	"io"
	"sort"
)

// AddEdge connects v1 and v2, creating either vertex if absent.
//
// Behavior highlights:
//   - Idempotent: re-adding an existing edge changes nothing.
//   - Self-loops are permitted: AddEdge(v, v) stores v in its own adjacency set.
//   - Never fails.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(v1, v2 int) {
	g.ensureVertex(v1)
	g.ensureVertex(v2)
	g.adjacency[v1][v2] = struct{}{}
	g.adjacency[v2][v1] = struct{}{}
}

// ensureVertex creates an empty adjacency set for v if missing.
func (g *Graph) ensureVertex(v int) {
	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = make(map[int]struct{})
	}
}

// HasEdge reports whether u and v are adjacent. Order of arguments is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.adjacency[u][v]

	return ok
}

// Edges returns every undirected edge exactly once in canonical form
// (U <= V), sorted by (U, V). Self-loops are included.
//
// Complexity: O(V + E·log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.adjacency))
	for v, nbrs := range g.adjacency {
		for n := range nbrs {
			if v <= n {
				out = append(out, Edge{U: v, V: n})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns the number of undirected edges, self-loops included.
// Complexity: O(V+E).
func (g *Graph) EdgeCount() int {
	return g.Stats().EdgeCount
}

// DisplayEdges writes each edge as a "(v, n)" line, reporting an edge only
// when v < n. Self-loops are therefore never listed.
//
// The first write error aborts the listing and is returned.
//
// Complexity: O(V·log V + E·log d).
func (g *Graph) DisplayEdges(w io.Writer) error {
	for _, v := range g.Vertices() {
		for _, n := range g.NeighborIDs(v) {
			if v >= n {
				continue
			}
			if _, err := fmt.Fprintln(w, Edge{U: v, V: n}); err != nil {
				return fmt.Errorf("core: DisplayEdges(%d, %d): %w", v, n, err)
			}
		}
	}

	return nil
}
