// Package config loads demo scenarios: named edge-list graphs plus the
// queries the demo runs against them.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/undigraph/builder"
	"github.com/katalvlaran/undigraph/core"
)

// Sentinel errors returned by Parse, Load and Scenario.Graph.
var (
	ErrNoGraphs      = errors.New("config: no graphs defined")
	ErrEmptyName     = errors.New("config: graph name is empty")
	ErrDuplicateName = errors.New("config: duplicate graph name")
	ErrBadEdge       = errors.New("config: edge must have exactly two endpoints")
	ErrUnknownGraph  = errors.New("config: unknown graph")
	ErrBadQuery      = errors.New("config: invalid query")
)

// GraphDef is one named graph given as an edge list.
type GraphDef struct {
	Name  string  `yaml:"name"`
	Edges [][]int `yaml:"edges"`
}

// Queries names the graphs and vertices the demo operates on.
type Queries struct {
	// Left and Right are the graph names used for listing, union and intersection.
	// Empty values default to the first and second graph.
	Left  string `yaml:"left"`
	Right string `yaml:"right"`

	// SubGraph is the vertex selection extracted from Left.
	SubGraph []int `yaml:"subgraph"`

	// Disconnected is the vertex checked with IsDisconnectedVertex on Left.
	Disconnected int `yaml:"disconnected"`

	// Degree is the vertex whose degree in Left is reported.
	Degree int `yaml:"degree"`

	// Path is the [source, destination] reachability query on Left.
	Path []int `yaml:"path"`
}

// Scenario is a full demo description.
type Scenario struct {
	Graphs  []GraphDef `yaml:"graphs"`
	Queries Queries    `yaml:"queries"`
}

// Default returns the built-in scenario: a 4-cycle and a two-edge graph,
// with the subgraph {1,2,3}, a disconnection check on 7, the degree of 3
// and reachability from 1 to 3.
func Default() *Scenario {
	return &Scenario{
		Graphs: []GraphDef{
			{Name: "square", Edges: [][]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}}},
			{Name: "pairs", Edges: [][]int{{3, 4}, {5, 6}}},
		},
		Queries: Queries{
			Left:         "square",
			Right:        "pairs",
			SubGraph:     []int{1, 2, 3},
			Disconnected: 7,
			Degree:       3,
			Path:         []int{1, 3},
		},
	}
}

// Load reads and validates a YAML scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return sc, nil
}

// Parse decodes and validates a YAML scenario document.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("config: decoding yaml: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// Graph builds the named graph. Each call returns a fresh instance.
func (s *Scenario) Graph(name string) (*core.Graph, error) {
	def, ok := s.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGraph, name)
	}

	pairs := make([][2]int, 0, len(def.Edges))
	for i, e := range def.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("graph %q edge %d: %w", name, i, ErrBadEdge)
		}
		pairs = append(pairs, [2]int{e[0], e[1]})
	}

	return builder.BuildGraph(builder.Pairs(pairs...))
}

// lookup finds a graph definition by name.
func (s *Scenario) lookup(name string) (GraphDef, bool) {
	for _, g := range s.Graphs {
		if g.Name == name {
			return g, true
		}
	}

	return GraphDef{}, false
}
