// SPDX-License-Identifier: MIT
// Package: lvtopo/digraph
//
// graph.go - constructors and read-only queries.
//
// Complexity:
//   - New:        O(n²/64 + E log E) time, O(n²/64 + n + E) space.
//   - FromMatrix: O(n²) time, same space as New.
//   - HasEdge:    O(1).
//   - Successors, Predecessors: O(deg) (a copy is returned).

package digraph

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// New builds a graph with n vertices and the given edges.
//
// Every invalid edge is reported, not just the first: the returned error is a
// *multierror.Error whose entries wrap ErrVertexOutOfRange or ErrDuplicateEdge.
// A negative or oversized n fails before anything is allocated.
func New(n int, edges []Edge, opts ...Option) (*Graph, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := checkCount(n, cfg.maxVertices); err != nil {
		return nil, err
	}

	g := alloc(n)
	var merr *multierror.Error
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			merr = multierror.Append(merr,
				fmt.Errorf("edge %d (%d→%d) with n=%d: %w", i, e.From, e.To, n, ErrVertexOutOfRange))
			continue
		}
		if g.HasEdge(e.From, e.To) {
			merr = multierror.Append(merr,
				fmt.Errorf("edge %d (%d→%d): %w", i, e.From, e.To, ErrDuplicateEdge))
			continue
		}
		g.set(e.From, e.To)
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	g.index()

	return g, nil
}

// FromMatrix builds a graph from a square 0/1 adjacency matrix where
// rows[u][v] == 1 means an edge u→v.
//
// A ragged row fails immediately with ErrNonSquare. Entries other than 0 or 1
// are all collected into a *multierror.Error wrapping ErrBadEntry.
func FromMatrix(rows [][]int, opts ...Option) (*Graph, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	n := len(rows)
	if err := checkCount(n, cfg.maxVertices); err != nil {
		return nil, err
	}
	for u, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", u, len(row), n, ErrNonSquare)
		}
	}

	g := alloc(n)
	var merr *multierror.Error
	for u, row := range rows {
		for v, x := range row {
			switch x {
			case 0:
			case 1:
				g.set(u, v)
			default:
				merr = multierror.Append(merr,
					fmt.Errorf("entry [%d][%d]=%d: %w", u, v, x, ErrBadEntry))
			}
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	g.index()

	return g, nil
}

// checkCount validates n against zero and the configured limit.
func checkCount(n, limit int) error {
	if n < 0 {
		return fmt.Errorf("n=%d: %w", n, ErrNegativeVertexCount)
	}
	if n > limit {
		return fmt.Errorf("n=%d > limit=%d: %w", n, limit, ErrTooManyVertices)
	}

	return nil
}

// alloc returns an edgeless graph with storage for n vertices.
func alloc(n int) *Graph {
	words := (n + 63) / 64

	return &Graph{
		n:     n,
		words: words,
		bits:  make([]uint64, n*words),
	}
}

// set records u→v in the bit matrix. Only constructors call it.
func (g *Graph) set(u, v int) {
	g.bits[u*g.words+v/64] |= 1 << (uint(v) % 64)
	g.edges++
}

// index derives the successor and predecessor lists from the bit matrix.
// Scanning rows in order yields both lists already sorted.
func (g *Graph) index() {
	g.succ = make([][]int, g.n)
	g.pred = make([][]int, g.n)
	for u := 0; u < g.n; u++ {
		row := g.bits[u*g.words : (u+1)*g.words]
		for w, word := range row {
			for word != 0 {
				v := w*64 + bits.TrailingZeros64(word)
				g.succ[u] = append(g.succ[u], v)
				g.pred[v] = append(g.pred[v], u)
				word &= word - 1
			}
		}
	}
}

// VertexCount returns n.
func (g *Graph) VertexCount() int {
	return g.n
}

// EdgeCount returns the number of edges, self-loops included.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// HasEdge reports whether u→v is an edge. Out-of-range vertices report false.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}

	return g.bits[u*g.words+v/64]&(1<<(uint(v)%64)) != 0
}

// Successors returns the targets of edges leaving v, ascending.
// It returns nil for an out-of-range v.
func (g *Graph) Successors(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}

	return append([]int(nil), g.succ[v]...)
}

// Predecessors returns the sources of edges entering v, ascending.
// It returns nil for an out-of-range v.
func (g *Graph) Predecessors(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}

	return append([]int(nil), g.pred[v]...)
}

// OutDegree returns len(Successors(v)) without copying.
func (g *Graph) OutDegree(v int) int {
	if v < 0 || v >= g.n {
		return 0
	}

	return len(g.succ[v])
}

// InDegree returns len(Predecessors(v)) without copying.
func (g *Graph) InDegree(v int) int {
	if v < 0 || v >= g.n {
		return 0
	}

	return len(g.pred[v])
}

// Edges returns every edge in row-major order (by From, then To).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u, vs := range g.succ {
		for _, v := range vs {
			out = append(out, Edge{From: u, To: v})
		}
	}

	return out
}

// Matrix returns a fresh n×n 0/1 adjacency matrix.
func (g *Graph) Matrix() [][]int {
	m := make([][]int, g.n)
	for u := range m {
		m[u] = make([]int, g.n)
		for _, v := range g.succ[u] {
			m[u][v] = 1
		}
	}

	return m
}

// SortEdges orders edges row-major in place. Handy for comparing edge sets.
func SortEdges(es []Edge) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].From != es[j].From {
			return es[i].From < es[j].From
		}

		return es[i].To < es[j].To
	})
}
