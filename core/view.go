// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph composition: induced subgraph, union, intersection.
// Determinism:
//   - Results depend only on edge membership, never on map iteration order.
// AI-HINT (file):
//   - Inputs are never mutated; every result is a fresh Graph with its own storage.
//   - A nil operand is treated as the empty graph.

package core

// SubGraph returns the graph induced by selected: for every selected vertex v
// and every neighbor n of v that is also selected, the edge (v, n) is added.
//
// Behavior highlights:
//   - Selected IDs unknown to g are treated as having no neighbors.
//   - A selected vertex with no selected neighbor does not appear in the result;
//     vertices come into existence only through edges.
//   - Self-loops on a selected vertex are kept.
//
// Complexity: O(|selected| + Σ deg(v) for v in selected).
func (g *Graph) SubGraph(selected map[int]struct{}) *Graph {
	out := NewGraph()
	var ok bool
	for v := range selected {
		for n := range g.adjacency[v] {
			if _, ok = selected[n]; ok {
				out.AddEdge(v, n)
			}
		}
	}

	return out
}

// SubGraphOf is SubGraph with the selection given as a list of IDs.
// Duplicate IDs are harmless.
func (g *Graph) SubGraphOf(ids ...int) *Graph {
	selected := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}

	return g.SubGraph(selected)
}

// Union returns a new Graph whose edge set is the union of g's and other's.
// g's adjacency is deep-copied as the starting point; other's edges are then added.
//
// Complexity: O(V_g + E_g + V_o + E_o).
func (g *Graph) Union(other *Graph) *Graph {
	out := g.Clone()
	if other == nil {
		return out
	}
	for v, nbrs := range other.adjacency {
		for n := range nbrs {
			out.AddEdge(v, n)
		}
	}

	return out
}

// Intersection returns a new Graph holding exactly the edges present in both
// g and other.
//
// Membership is tested in one direction only (n ∈ other.adjacency[v]); the
// symmetry invariant maintained by AddEdge makes that sufficient, and the
// result is made symmetric by AddEdge.
//
// Complexity: O(V_g + E_g).
func (g *Graph) Intersection(other *Graph) *Graph {
	out := NewGraph()
	if other == nil {
		return out
	}
	for v, nbrs := range g.adjacency {
		for n := range nbrs {
			if other.HasEdge(v, n) {
				out.AddEdge(v, n)
			}
		}
	}

	return out
}
