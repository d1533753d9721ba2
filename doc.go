// Package undigraph is an in-memory undirected graph over integer vertex IDs:
// build adjacency, extract induced subgraphs, combine graphs by union and
// intersection, and ask degree, disconnection and reachability questions.
//
// Layout:
//
//	core/            — Graph type: AddEdge, SubGraph, Union, Intersection, Degree, HasPath, …
//	dfs/             — iterative depth-first reachability used by core.Graph.HasPath
//	builder/         — deterministic fixtures: Cycle, Path, Star, Pairs
//	internal/config/ — YAML demo scenarios
//	cmd/graphdemo/   — demonstration CLI
//
// Quick ASCII example:
//
//	1───2
//	│   │
//	4───3
//
// is built with four AddEdge calls; HasPath(1, 3) is true via 2 or 4, and
// SubGraphOf(1, 2, 3) keeps only (1,2) and (2,3).
//
// Non-goals: persistence, weights, directed edges, concurrent mutation and
// algorithms beyond reachability.
package undigraph
