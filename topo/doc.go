// Package topo enumerates every topological ordering of a directed acyclic
// digraph.Graph.
//
// What:
//
//   - Run(g, sink):       detect cycles, then enumerate; the usual entry point.
//   - Enumerate(g, sink): the backtracking enumerator alone; g must be a DAG.
//   - Count(g):           Run with a counting sink.
//
// Orderings are handed to a Sink one by one as they are found and are not
// retained by the package. Collector keeps copies, WriterSink prints the
// classic "Solution N: …" lines, ProgressSink logs progress, MultiSink fans
// out, and SinkFunc adapts a function.
//
// Order of output:
//
// Candidates for each position are tried in increasing vertex index, so the
// orderings arrive in lexicographic order and the sequence is reproducible.
// For edges {0→1, 0→2} the output is "0 1 2" then "0 2 1". A graph with no
// vertices has exactly one ordering, the empty one.
//
// Cost:
//
// The number of orderings can be n!, and every one of them is produced; there
// is no shortcut. Each search step costs O(n) to scan candidates plus O(deg)
// to update predecessor counters, for O(n!·n²) in the worst case. Recursion
// depth is n, which digraph bounds by its vertex limit. WithContext allows a
// caller to abandon a long enumeration.
//
// Errors:
//
//   - ErrGraphNil, ErrSinkNil  nil arguments
//   - *CycleError / ErrCycle   Run found a cycle; nothing was enumerated
//   - ErrSinkAborted           the sink returned an error
//   - context errors           cancelled via WithContext
//
// State is owned by each call. One immutable graph may be enumerated by many
// goroutines at once, each with its own sink.
package topo
