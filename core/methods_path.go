// SPDX-License-Identifier: MIT
//
// File: methods_path.go
// Role: Reachability queries delegated to the dfs package.
// AI-HINT (file):
//   - Each call owns its visited set; repeated queries never share state.
//   - HasPath(v, v) is true for any v, referenced or not.

package core

import (
	"context"

	"github.com/katalvlaran/undigraph/dfs"
)

// HasPath reports whether dst is reachable from src.
//
// The search is a depth-first walk that stops at the first path found; it
// does not look for the shortest one. Unknown vertices are unreachable
// unless src == dst.
//
// Complexity: O(V+E) time, O(V) space.
func (g *Graph) HasPath(src, dst int) bool {
	// Background context and no hooks: PathExists cannot fail here.
	ok, err := dfs.PathExists(g, src, dst)
	if err != nil {
		return false
	}

	return ok
}

// HasPathContext is HasPath with cancellation. It returns ctx.Err() if the
// context is done before the search completes.
func (g *Graph) HasPathContext(ctx context.Context, src, dst int) (bool, error) {
	return dfs.PathExists(g, src, dst, dfs.WithContext(ctx))
}
