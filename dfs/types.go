// Package dfs defines types and options for depth-first reachability,
// including cancellation, a pre-order hook and depth limiting.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil Neighborer is passed to Reach or PathExists.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex of Reach does
	// not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Neighborer is the read-only view of an undirected graph that DFS walks.
// *core.Graph satisfies it.
type Neighborer interface {
	// HasVertex reports whether v is known to the graph.
	HasVertex(v int) bool

	// NeighborIDs returns v's neighbors in ascending order; empty for unknown v.
	NeighborIDs(v int) []int
}

// Option configures optional behavior of a traversal.
type Option func(*Options)

// Options holds configurable parameters for a traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked once per expanded vertex.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is first expanded (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// MaxDepth, if non-negative, stops expansion beyond the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Options with a background context, no hook and no depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// Result captures the outcome of Reach.
type Result struct {
	// Order records vertices in the sequence they were expanded (pre-order).
	Order []int

	// Depth maps each visited vertex to its tree depth from the start.
	Depth map[int]int

	// Parent maps each visited vertex to the vertex it was discovered from.
	// The start vertex has no entry.
	Parent map[int]int

	// Visited flags which vertices were reached.
	Visited map[int]bool
}

// PathTo reconstructs the DFS-tree path from the start vertex to v, or nil
// when v was not visited.
func (r *Result) PathTo(v int) []int {
	if !r.Visited[v] {
		return nil
	}
	path := []int{v}
	for {
		p, ok := r.Parent[v]
		if !ok {
			break
		}
		path = append(path, p)
		v = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
