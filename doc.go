// Package lvtopo checks directed graphs for cycles and lists every
// topological ordering of the acyclic ones.
//
// 🚀 What is in here?
//
//	digraph/     immutable adjacency-matrix digraph with sorted successor
//	             and predecessor lists
//	dfs/         three-colour DFS cycle detection (HasCycle, FindCycle)
//	topo/        backtracking enumeration of all orderings, result sinks
//	             and the detect-then-enumerate pipeline (Run, Count)
//	graphio/     text (count + 0/1 matrix) and YAML graph formats
//	builder/     chains, trees, layered and random DAGs, rings
//	cmd/lvtopo/  the command-line tool
//
// Quick ASCII example:
//
//	    0
//	   / \
//	  1   2
//
//	edges 0→1 and 0→2 have exactly two orderings, "0 1 2" and "0 2 1".
//
// Orderings are produced in lexicographic order, one at a time, so even
// graphs with millions of orderings can be streamed to a writer without
// being held in memory.
//
//	go install github.com/katalvlaran/lvtopo/cmd/lvtopo@latest
package lvtopo
