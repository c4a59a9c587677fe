// Package digraph is the graph store used by lvtopo: an immutable directed
// graph over the integer vertices 0..n-1.
//
// What:
//
//   - New(n, edges, opts...)     build from an edge list
//   - FromMatrix(rows, opts...)  build from a square 0/1 adjacency matrix
//   - HasEdge(u, v)              O(1) edge test backed by a bit matrix
//   - Successors / Predecessors  ascending neighbour lists
//
// Construction validates everything up front: a negative n, an n above
// WithMaxVertices (DefaultMaxVertices by default), a ragged matrix, entries
// other than 0/1, out-of-range endpoints and duplicate edges are all errors.
// The bound on n is checked before the O(n²) matrix is allocated, so n read
// from an untrusted file cannot exhaust memory.
//
// Self-loops are accepted and stored; cycle detection treats them as cycles.
//
// Errors:
//
//   - ErrNegativeVertexCount, ErrTooManyVertices
//   - ErrNonSquare, ErrBadEntry
//   - ErrVertexOutOfRange, ErrDuplicateEdge
//
// Entry and edge errors are aggregated with go-multierror, so one call
// reports every bad cell; errors.Is still matches the sentinels.
package digraph
