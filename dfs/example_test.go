package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/undigraph/core"
	"github.com/katalvlaran/undigraph/dfs"
)

// ExampleReach demonstrates a depth-first traversal (pre-order) on a small tree.
// Graph structure:
//
//	    1
//	   / \
//	  2   3
//	 / \
//	4   5
func ExampleReach() {
	g := core.NewGraph()
	for _, e := range [][2]int{{1, 2}, {1, 3}, {2, 4}, {2, 5}} {
		g.AddEdge(e[0], e[1])
	}

	res, err := dfs.Reach(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.PathTo(5))

	// Output:
	// [1 2 4 5 3]
	// [1 2 5]
}

// ExamplePathExists shows a reachability query across two components.
func ExamplePathExists() {
	g := core.NewGraph()
	g.AddEdge(1, 2)
	g.AddEdge(3, 4)

	ok, _ := dfs.PathExists(g, 1, 2)
	fmt.Println(ok)
	ok, _ = dfs.PathExists(g, 1, 4)
	fmt.Println(ok)

	// Output:
	// true
	// false
}
