// Package dfs implements depth-first reachability for undirected graphs that
// expose sorted neighbor lists (see Neighborer; *core.Graph qualifies).
//
// What:
//
//   - Reach: explores as far as possible along each branch before
//     backtracking, recording pre-order, depth and parent links.
//   - PathExists: the same walk, stopped at the first expansion of the
//     destination.
//
// Why:
//   - Answer "is B reachable from A" without recursion depth limits.
//   - Give every query a private visited set, so callers never manage
//     traversal state between calls.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnVisit(fn)           pre-order hook; an error aborts traversal.
//   - WithMaxDepth(limit)       stops expansion beyond the given depth (>=0).
//
// Non-goals: shortest paths, cycle detection and component enumeration.
package dfs
