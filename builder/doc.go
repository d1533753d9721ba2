// Package builder provides deterministic fixture constructors for core.Graph.
//
// Each constructor is a Constructor closure; BuildGraph composes them in order
// on a fresh graph:
//
//	g, err := builder.BuildGraph(
//		builder.Cycle(4, 1),         // 1-2-3-4-1
//		builder.Pairs([2]int{5, 6}), // plus (5,6)
//	)
//
// Constructors:
//
//   - Cycle(n, first):        C_n over first..first+n-1 (n ≥ 3).
//   - Path(n, first):         P_n over first..first+n-1 (n ≥ 2).
//   - Star(center, leaves...): spokes from center to each leaf (≥ 1 leaf).
//   - Pairs(pairs...):        explicit edge list.
//
// Because core.AddEdge is idempotent, composing overlapping constructors never
// duplicates edges.
//
// Errors:
//
//   - ErrTooFewVertices   size parameter below the constructor minimum.
//   - ErrConstructFailed  nil constructor passed to BuildGraph.
package builder
