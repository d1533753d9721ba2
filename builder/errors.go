// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// minimum for the requested constructor.
// Typical origins: Cycle (n < 3), Path (n < 2), Star (no leaves).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a constructor could not be applied,
// e.g. a nil Constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
