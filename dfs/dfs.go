// Package dfs implements depth-first reachability over an undirected graph.
//
// Key features:
//   - Reach(g, src, opts...): every vertex reachable from src, with pre-order,
//     depth and parent links.
//   - PathExists(g, src, dst, opts...): first-found reachability test that
//     stops as soon as dst is expanded.
//   - Iterative: an explicit stack replaces recursion, so deep or long graphs
//     cannot exhaust the goroutine stack.
//   - Each call owns its visited set; nothing leaks between queries.
//
// Complexity:
//
//   - Time:   O(V + E·log d) (neighbor lists are sorted by the graph).
//   - Memory: O(V + E) for the stack and bookkeeping maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if Reach is started from an unknown vertex.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit, wrapped.
package dfs

import "fmt"

// frame is one pending expansion on the explicit stack.
type frame struct {
	id        int
	parent    int
	hasParent bool
	depth     int
}

// walker encapsulates state during a traversal.
type walker struct {
	graph Neighborer
	opts  Options
	res   *Result
}

// Reach performs depth-first search on g starting at src and returns every
// vertex reachable from it.
func Reach(g Neighborer, src int, opts ...Option) (*Result, error) {
	// 1. Validate input graph and start vertex
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(src) {
		return nil, ErrStartVertexNotFound
	}

	// 2. Walk the whole component
	w := newWalker(g, opts)
	if _, err := w.walk(src, nil); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// PathExists reports whether dst can be reached from src.
//
// Behavior highlights:
//   - src == dst is true immediately, whether or not the vertex exists.
//   - An unknown src or dst (src != dst) is unreachable; no error is returned.
//   - The walk stops at the first path found; it is not a shortest-path search.
func PathExists(g Neighborer, src, dst int, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if src == dst {
		return true, nil
	}
	if !g.HasVertex(src) || !g.HasVertex(dst) {
		return false, nil
	}

	w := newWalker(g, opts)

	return w.walk(src, func(v int) bool { return v == dst })
}

// newWalker applies options and allocates an empty result.
func newWalker(g Neighborer, opts []Option) *walker {
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	return &walker{
		graph: g,
		opts:  dopts,
		res: &Result{
			Order:   make([]int, 0),
			Depth:   make(map[int]int),
			Parent:  make(map[int]int),
			Visited: make(map[int]bool),
		},
	}
}

// walk expands vertices from src until the stack drains or stop(v) holds for
// an expanded vertex. It reports whether stop matched.
func (w *walker) walk(src int, stop func(int) bool) (bool, error) {
	stack := []frame{{id: src}}
	var (
		f    frame
		nbrs []int
		i    int
	)
	for len(stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		// 2. Pop; vertices can be pushed more than once before expansion
		f = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.res.Visited[f.id] {
			continue
		}

		// 3. Depth limit
		if w.opts.MaxDepth >= 0 && f.depth > w.opts.MaxDepth {
			continue
		}

		// 4. Mark visited and record tree data
		w.res.Visited[f.id] = true
		w.res.Depth[f.id] = f.depth
		if f.hasParent {
			w.res.Parent[f.id] = f.parent
		}
		w.res.Order = append(w.res.Order, f.id)

		// 5. Pre-order hook
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(f.id); err != nil {
				return false, fmt.Errorf("dfs: OnVisit hook for %d: %w", f.id, err)
			}
		}

		if stop != nil && stop(f.id) {
			return true, nil
		}

		// 6. Push unvisited neighbors in reverse so the smallest is expanded first
		nbrs = w.graph.NeighborIDs(f.id)
		for i = len(nbrs) - 1; i >= 0; i-- {
			if w.res.Visited[nbrs[i]] {
				continue
			}
			stack = append(stack, frame{id: nbrs[i], parent: f.id, hasParent: true, depth: f.depth + 1})
		}
	}

	return false, nil
}
