// Package graphio loads and stores digraph.Graph values.
//
// Two encodings are supported.
//
// Text, the format of the classic graph.txt: a vertex count n followed by
// n*n integers in row-major order, separated by any whitespace; entry (i, j)
// is 1 iff there is an edge i→j.
//
//	3
//	0 1 0
//	0 0 1
//	0 0 0
//
// YAML, a vertex count plus either an edge list or a matrix:
//
//	vertices: 3
//	edges:
//	  - [0, 1]
//	  - [1, 2]
//
// Every failure to read or parse is returned as an *InputError, so callers
// can tell "cannot load graph" apart from later failures with
// errors.Is(err, ErrInput). The cause inside is one of ErrBadCount,
// ErrTruncated, ErrBadToken, ErrTrailingData, ErrBadDocument, a digraph
// validation sentinel, or an I/O error; causes carry a stack trace printed by
// %+v.
//
// The vertex count is validated against WithMaxVertices before the matrix is
// allocated.
package graphio
