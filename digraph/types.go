// SPDX-License-Identifier: MIT
// Package: lvtopo/digraph
//
// types.go - Graph, Edge, construction options and sentinel errors.
//
// Contract:
//   - Vertices are the integers 0..n-1; there are no labels.
//   - The edge relation is fixed at construction; Graph has no mutators.
//   - Self-loops are stored like any other edge (they make the graph cyclic).
//   - Parallel edges do not exist: the relation is a set.

package digraph

import "errors"

// DefaultMaxVertices bounds n when no WithMaxVertices option is given.
// The bit matrix costs n²/8 bytes, so 4096 vertices is 2 MiB.
const DefaultMaxVertices = 4096

// Sentinel errors for graph construction. Callers branch with errors.Is.
var (
	// ErrNegativeVertexCount is returned when n < 0.
	ErrNegativeVertexCount = errors.New("digraph: negative vertex count")

	// ErrTooManyVertices is returned when n exceeds the configured limit.
	// The check happens before any O(n²) allocation.
	ErrTooManyVertices = errors.New("digraph: vertex count exceeds limit")

	// ErrNonSquare indicates a matrix row whose length differs from the row count.
	ErrNonSquare = errors.New("digraph: adjacency matrix is not square")

	// ErrBadEntry indicates a matrix entry other than 0 or 1.
	ErrBadEntry = errors.New("digraph: adjacency entry must be 0 or 1")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("digraph: vertex out of range")

	// ErrDuplicateEdge indicates the same (from, to) pair listed twice.
	ErrDuplicateEdge = errors.New("digraph: duplicate edge")
)

// Edge is a directed edge From→To.
type Edge struct {
	From int
	To   int
}

// Graph is an immutable directed graph over vertices 0..n-1.
//
// The relation is held twice: a row-major bit matrix for O(1) HasEdge, and
// ascending successor/predecessor lists for traversals. Both are built once
// in the constructor and never written afterwards, so a *Graph may be shared
// freely between goroutines.
type Graph struct {
	n     int      // vertex count
	words int      // uint64 words per matrix row
	bits  []uint64 // row u, column v at bits[u*words+v/64] bit v%64
	succ  [][]int  // succ[u] ascending
	pred  [][]int  // pred[v] ascending
	edges int      // number of set bits
}

// Option configures graph construction.
type Option func(*options)

// options holds construction settings resolved from Option values.
type options struct {
	maxVertices int
}

// defaultOptions returns the construction defaults.
func defaultOptions() options {
	return options{maxVertices: DefaultMaxVertices}
}

// MaxVertices returns the vertex limit opts resolve to. Callers that build
// their own edge lists use it to stop before doing work New would reject.
func MaxVertices(opts ...Option) int {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg.maxVertices
}

// WithMaxVertices sets the upper bound on n accepted by the constructors.
// Non-positive limits are ignored and the default is kept.
func WithMaxVertices(limit int) Option {
	return func(o *options) {
		if limit > 0 {
			o.maxVertices = limit
		}
	}
}
