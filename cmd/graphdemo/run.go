package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/undigraph/core"
	"github.com/katalvlaran/undigraph/internal/config"
)

// printer is an io.Writer that remembers the first write error and drops
// everything after it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	n, err := p.w.Write(b)
	p.err = err

	return n, err
}

func (p *printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p, format, args...)
}

// listing prints a titled edge listing of g.
func (p *printer) listing(title string, g *core.Graph) {
	p.printf("%s:\n", title)
	_ = g.DisplayEdges(p)
}

// run executes the demo sequence for sc and writes the report to w.
func run(w io.Writer, sc *config.Scenario, log logrus.FieldLogger) error {
	q := sc.Queries

	left, err := sc.Graph(q.Left)
	if err != nil {
		return err
	}
	right, err := sc.Graph(q.Right)
	if err != nil {
		return err
	}
	for name, g := range map[string]*core.Graph{q.Left: left, q.Right: right} {
		st := g.Stats()
		log.WithFields(logrus.Fields{
			"graph":      name,
			"vertices":   st.VertexCount,
			"edges":      st.EdgeCount,
			"self_loops": st.SelfLoopCount,
			"max_degree": st.MaxDegree,
		}).Info("graph built")
	}

	p := &printer{w: w}
	p.listing(fmt.Sprintf("Graph %s edges", q.Left), left)
	p.listing(fmt.Sprintf("Graph %s edges", q.Right), right)

	sub := left.SubGraphOf(q.SubGraph...)
	log.WithFields(logrus.Fields{"graph": q.Left, "selection": q.SubGraph, "edges": sub.EdgeCount()}).Debug("subgraph")
	p.listing(fmt.Sprintf("Subgraph of %s on %v", q.Left, q.SubGraph), sub)

	p.listing(fmt.Sprintf("Union of %s and %s", q.Left, q.Right), left.Union(right))
	p.listing(fmt.Sprintf("Intersection of %s and %s", q.Left, q.Right), left.Intersection(right))

	p.printf("Vertex %d disconnected in %s: %t\n", q.Disconnected, q.Left, left.IsDisconnectedVertex(q.Disconnected))
	p.printf("Degree of vertex %d in %s: %d\n", q.Degree, q.Left, left.Degree(q.Degree))
	if len(q.Path) == 2 {
		p.printf("Path from %d to %d in %s: %t\n", q.Path[0], q.Path[1], q.Left, left.HasPath(q.Path[0], q.Path[1]))
	}

	if p.err != nil {
		return fmt.Errorf("writing report: %w", p.err)
	}

	return nil
}
