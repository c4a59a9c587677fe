// Package dfs defines the vertex colours, options and sentinel errors shared
// by the depth-first cycle detector.
package dfs

import (
	"context"
	"errors"
)

// Vertex colours used during a single detection pass.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS path.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

// ErrGraphNil is returned when a nil *digraph.Graph is passed to HasCycle or FindCycle.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures a detection pass.
type Option func(*options)

// options holds settings for HasCycle and FindCycle, currently only cancellation.
type options struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultOptions returns the default options (Background context).
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
