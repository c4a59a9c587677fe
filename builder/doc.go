// SPDX-License-Identifier: MIT
// Package builder produces deterministic digraph.Graph fixtures for tests,
// benchmarks and the lvtopo CLI's generate command.
//
// One orchestrator, Build(bopts, cons...), resolves the options once and runs
// the constructors in order. Each constructor appends a fresh block of
// vertices, so composing constructors yields their disjoint union:
//
//	Build(nil, Chain(3), Antichain(2))  // 5 vertices, edges 0→1, 1→2
//
// Constructors:
//
//	Chain(n)            0→1→…→n-1                  exactly one ordering
//	Antichain(n)        n isolated vertices        n! orderings
//	OutTree(n)          heap-shaped binary tree     n!/∏ subtree sizes
//	Layered(w1, …, wk)  complete bipartite between consecutive layers, ∏ wi!
//	RandomDAG(n, p)     i→j for i<j with probability p (needs WithSeed/WithRand)
//	Cycle(n)            0→1→…→n-1→0 (n=1 is a self-loop)
//
// Errors are sentinels wrapped with the constructor name:
// ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource.
package builder
