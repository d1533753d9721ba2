package config

import "fmt"

// validate checks graphs, then queries, filling query defaults in place.
func (s *Scenario) validate() error {
	if err := s.validateGraphs(); err != nil {
		return err
	}

	return s.validateQueries()
}

func (s *Scenario) validateGraphs() error {
	if len(s.Graphs) == 0 {
		return ErrNoGraphs
	}

	seen := make(map[string]struct{}, len(s.Graphs))
	for i, g := range s.Graphs {
		if g.Name == "" {
			return fmt.Errorf("graph %d: %w", i, ErrEmptyName)
		}
		if _, dup := seen[g.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, g.Name)
		}
		seen[g.Name] = struct{}{}

		for j, e := range g.Edges {
			if len(e) != 2 {
				return fmt.Errorf("graph %q edge %d: %w", g.Name, j, ErrBadEdge)
			}
		}
	}

	return nil
}

func (s *Scenario) validateQueries() error {
	q := &s.Queries
	if q.Left == "" {
		q.Left = s.Graphs[0].Name
	}
	if q.Right == "" {
		// A single-graph scenario composes the graph with itself.
		q.Right = s.Graphs[0].Name
		if len(s.Graphs) > 1 {
			q.Right = s.Graphs[1].Name
		}
	}

	for _, name := range []string{q.Left, q.Right} {
		if _, ok := s.lookup(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownGraph, name)
		}
	}

	if q.Path != nil && len(q.Path) != 2 {
		return fmt.Errorf("%w: path needs [source, destination], got %v", ErrBadQuery, q.Path)
	}

	return nil
}
