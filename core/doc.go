// Package core provides a compact in-memory undirected Graph over integer
// vertex identifiers, with a minimal, composable API surface.
//
// The Graph G = (V,E) is stored as an adjacency set per vertex:
//
//	adjacency[v] = {n1, n2, ...}
//
// and every operation keeps that mapping symmetric: if n is in adjacency[v]
// then v is in adjacency[n].
//
// Why use core.Graph?
//
//   - Single type, no configuration: undirected, unweighted, set semantics.
//   - Deterministic iteration: Vertices(), Edges(), NeighborIDs() return sorted results.
//   - Total functions: queries about unknown vertices return zero values, never errors.
//   - Non-mutating reads: asking about a vertex never creates it.
//   - Composition by value: SubGraph, Union, Intersection and Clone return fresh
//     graphs that never share adjacency storage with their inputs.
//
// Core Methods:
//
//	// Construction
//	NewGraph() *Graph                         // O(1)
//	AddEdge(v1, v2 int)                       // O(1), idempotent, self-loops allowed
//
//	// Query
//	HasVertex(v int) bool                     // O(1)
//	HasEdge(u, v int) bool                    // O(1)
//	IsDisconnectedVertex(v int) bool          // O(1), true iff v was never referenced
//	Degree(v int) int                         // O(1), 0 for unknown vertices
//	NeighborIDs(v int) []int                  // O(d·log d), sorted copy
//	Vertices() []int                          // O(V·log V)
//	Edges() []Edge                            // O(E·log E), U <= V
//	VertexCount() int, EdgeCount() int
//	Stats() GraphStats                        // O(V+E)
//
//	// Reachability
//	HasPath(src, dst int) bool                // O(V+E), iterative DFS
//	HasPathContext(ctx, src, dst int) (bool, error)
//
//	// Composition
//	SubGraph(selected map[int]struct{}) *Graph
//	SubGraphOf(ids ...int) *Graph
//	Union(other *Graph) *Graph
//	Intersection(other *Graph) *Graph
//	Clone() *Graph
//
//	// Output
//	DisplayEdges(w io.Writer) error           // one "(u, v)" line per edge with u < v
//
// Concurrency: a Graph has no internal locking. Concurrent mutation must be
// serialized by the caller; concurrent reads with no writer are safe.
package core
