package core_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/undigraph/core"
)

// ExampleGraph demonstrates basic construction and queries on a 4-cycle.
//
//	1───2
//	│   │
//	4───3
func ExampleGraph() {
	g := core.NewGraph()
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(4, 1)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Degree of 3:", g.Degree(3))
	fmt.Println("7 disconnected?", g.IsDisconnectedVertex(7))
	fmt.Println("Path 1→3?", g.HasPath(1, 3))

	// Output:
	// Vertices: [1 2 3 4]
	// Degree of 3: 2
	// 7 disconnected? true
	// Path 1→3? true
}

// ExampleGraph_Union combines two graphs without touching either input.
func ExampleGraph_Union() {
	a := core.NewGraph()
	a.AddEdge(1, 2)
	b := core.NewGraph()
	b.AddEdge(2, 3)

	_ = a.Union(b).DisplayEdges(os.Stdout)
	fmt.Println(a.EdgeCount(), b.EdgeCount())

	// Output:
	// (1, 2)
	// (2, 3)
	// 1 1
}

// ExampleGraph_SubGraphOf extracts the subgraph induced by {1,2,3}.
func ExampleGraph_SubGraphOf() {
	g := core.NewGraph()
	for _, e := range [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}} {
		g.AddEdge(e[0], e[1])
	}

	fmt.Println(g.SubGraphOf(1, 2, 3).Edges())

	// Output:
	// [(1, 2) (2, 3)]
}
