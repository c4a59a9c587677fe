// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// api.go - the Build orchestrator and the draft it assembles.
//
// Determinism: same constructors, same order, same seed ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/digraph"
)

// Constructor appends one block of vertices and its edges to the draft.
// Constructors validate their parameters first and return wrapped sentinel
// errors; they never panic.
type Constructor func(d *draft, cfg builderConfig) error

// draft accumulates vertices and edges before the immutable graph is built.
type draft struct {
	n     int
	limit int // resolved digraph vertex limit
	edges []digraph.Edge
}

// grow appends k vertices and returns the index of the first one. It fails
// with digraph.ErrTooManyVertices, before anything is linked, when the draft
// would pass the limit.
func (d *draft) grow(k int) (int, error) {
	if k > d.limit-d.n {
		return 0, fmt.Errorf("n=%d > limit=%d: %w", d.n+k, d.limit, digraph.ErrTooManyVertices)
	}
	base := d.n
	d.n += k

	return base, nil
}

// link records the edge u→v.
func (d *draft) link(u, v int) {
	d.edges = append(d.edges, digraph.Edge{From: u, To: v})
}

// Build resolves bopts, applies every constructor in order and freezes the
// result into a *digraph.Graph. Any constructor error is wrapped with
// "Build: %w" and returned immediately.
func Build(bopts []BuilderOption, cons ...Constructor) (*digraph.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	d := &draft{limit: digraph.MaxVertices(cfg.graphOpts...)}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	g, err := digraph.New(d.n, d.edges, cfg.graphOpts...)
	if err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}
