package topo

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/digraph"
)

// Enumerate hands every topological ordering of g to sink, then calls
// sink.Done with the total, and returns that total.
//
// Orderings are produced by backtracking: at each position the unplaced
// vertices whose predecessors are all placed are tried in increasing index
// order. The output sequence is therefore lexicographically increasing and
// identical from run to run.
//
// g must be acyclic; use Run, which checks first. On a cyclic graph the
// vertices of a cycle never become placeable, so Enumerate terminates having
// produced nothing from those branches, typically returning 0.
//
// If sink.Emit returns an error, enumeration stops and the error is returned
// wrapped in ErrSinkAborted together with the number of orderings accepted so
// far; Done is not called. A cancelled context stops it the same way with
// ctx.Err().
func Enumerate(g *digraph.Graph, sink Sink, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if sink == nil {
		return 0, ErrSinkNil
	}
	cfg := resolve(opts)

	n := g.VertexCount()
	e := &enumerator{
		n:       n,
		succ:    make([][]int, n),
		blocked: make([]int, n),
		visited: make([]bool, n),
		order:   make(Ordering, n),
		sink:    sink,
		opts:    cfg,
	}
	for v := 0; v < n; v++ {
		e.succ[v] = g.Successors(v)
		e.blocked[v] = g.InDegree(v)
	}

	cfg.logger.Debug("enumerating topological orderings", "vertices", n)
	if err := e.place(0); err != nil {
		cfg.logger.Debug("enumeration stopped", "orderings", e.count, "error", err)
		return e.count, err
	}
	if err := sink.Done(e.count); err != nil {
		return e.count, fmt.Errorf("topo: sink Done: %w", err)
	}
	cfg.logger.Debug("enumeration complete", "orderings", e.count)

	return e.count, nil
}

// enumerator owns the placement state of one Enumerate call.
//
// Invariant: order[:position] is a topological prefix of the placed
// vertices, visited marks exactly those vertices, and blocked[v] counts the
// predecessors of v that are not yet placed. A vertex is placeable iff it is
// unvisited and blocked[v] == 0, which is the "every predecessor visited"
// test in O(1) instead of a scan over all n potential predecessors.
type enumerator struct {
	n       int
	succ    [][]int // successors per vertex, ascending
	blocked []int   // unplaced-predecessor counts
	visited []bool
	order   Ordering // reused buffer; sinks must copy what they keep
	sink    Sink
	opts    options
	count   int
}

// place fills order[position] with each placeable vertex in turn and
// recurses. Recursion depth is n + 1.
func (e *enumerator) place(position int) error {
	// 1) Stop early on cancellation
	select {
	case <-e.opts.ctx.Done():
		return e.opts.ctx.Err()
	default:
	}

	// 2) Every vertex placed: hand the ordering to the sink
	if position == e.n {
		index := e.count + 1
		if err := e.sink.Emit(index, e.order); err != nil {
			return fmt.Errorf("%w: ordering %d: %w", ErrSinkAborted, index, err)
		}
		e.count = index
		return nil
	}

	// 3) Try each ready vertex in ascending order, so orderings come out
	//    lexicographically
	for v := 0; v < e.n; v++ {
		if e.visited[v] || e.blocked[v] > 0 {
			continue
		}

		// 4) Place v and release its successors
		e.order[position] = v
		e.visited[v] = true
		for _, w := range e.succ[v] {
			e.blocked[w]--
		}

		// 5) Fill the remaining positions
		err := e.place(position + 1)

		// 6) Undo step 4 before looking at err so state is always restored
		for _, w := range e.succ[v] {
			e.blocked[w]++
		}
		e.visited[v] = false
		if err != nil {
			return err
		}
	}

	return nil
}
