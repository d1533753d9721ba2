// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_pairs.go - explicit edge list constructor.

package builder

import "github.com/katalvlaran/undigraph/core"

// Pairs returns a Constructor that adds each {u, v} pair as an edge, in order.
// An empty list is a no-op.
func Pairs(pairs ...[2]int) Constructor {
	return func(g *core.Graph) error {
		for _, p := range pairs {
			g.AddEdge(p[0], p[1])
		}

		return nil
	}
}
