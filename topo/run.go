package topo

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/dfs"
	"github.com/katalvlaran/lvtopo/digraph"
)

// Run is the detect-then-enumerate pipeline.
//
// It first runs the cycle detector. If g has a cycle, Run returns a
// *CycleError and never starts the enumerator. Otherwise every ordering goes
// to sink (see Enumerate) and Result reports the count.
//
// Errors:
//   - ErrGraphNil, ErrSinkNil for nil arguments.
//   - *CycleError (errors.Is(err, ErrCycle)) when g is not a DAG.
//   - ErrSinkAborted or a context error if enumeration was stopped.
func Run(g *digraph.Graph, sink Sink, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if sink == nil {
		return Result{}, ErrSinkNil
	}
	cfg := resolve(opts)
	res := Result{Vertices: g.VertexCount()}

	cfg.logger.Debug("detecting cycles", "vertices", res.Vertices, "edges", g.EdgeCount())
	cycle, err := dfs.FindCycle(g, dfs.WithContext(cfg.ctx))
	if err != nil {
		return res, fmt.Errorf("topo: cycle detection: %w", err)
	}
	if cycle != nil {
		cfg.logger.Debug("cycle detected, enumeration skipped", "cycle", cycle)
		return res, &CycleError{Cycle: cycle}
	}

	res.Orderings, err = Enumerate(g, sink, opts...)

	return res, err
}

// Count returns the number of topological orderings of g, or a *CycleError
// if g is cyclic. It walks the full search tree; the count of an n-vertex
// antichain is n!.
func Count(g *digraph.Graph, opts ...Option) (int, error) {
	res, err := Run(g, SinkFunc(func(int, Ordering) error { return nil }), opts...)

	return res.Orderings, err
}
