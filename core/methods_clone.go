// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy of a graph instance.
// AI-HINT (file):
//   - Clone never aliases inner adjacency sets; mutate the clone freely.

package core

// Clone returns a deep copy of the Graph: every adjacency set is reallocated.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{adjacency: make(map[int]map[int]struct{}, len(g.adjacency))}
	for v, nbrs := range g.adjacency {
		set := make(map[int]struct{}, len(nbrs))
		for n := range nbrs {
			set[n] = struct{}{}
		}
		clone.adjacency[v] = set
	}

	return clone
}
