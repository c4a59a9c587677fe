// Package topo defines the ordering type, options and errors for exhaustive
// topological enumeration.
package topo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
)

var (
	// ErrGraphNil is returned when a nil *digraph.Graph is passed to Run,
	// Enumerate or Count.
	ErrGraphNil = errors.New("topo: graph is nil")

	// ErrSinkNil is returned when Run or Enumerate receive a nil Sink.
	ErrSinkNil = errors.New("topo: sink is nil")

	// ErrCycle is the sentinel every *CycleError unwraps to.
	ErrCycle = errors.New("topo: graph contains a cycle")

	// ErrSinkAborted wraps the error a Sink returned to stop enumeration.
	ErrSinkAborted = errors.New("topo: sink aborted enumeration")
)

// CycleError reports that Run refused to enumerate because the graph is not
// a DAG. Cycle is the first cycle met by the detector, closed back to its
// start ([0 1 0] for a 2-cycle, [3 3] for a self-loop).
type CycleError struct {
	Cycle []int
}

// Error implements error.
func (e *CycleError) Error() string {
	if len(e.Cycle) == 0 {
		return ErrCycle.Error()
	}

	return fmt.Sprintf("%s: %s", ErrCycle, e.Path())
}

// Path renders the cycle as "0 -> 1 -> 0", or "" when unknown.
func (e *CycleError) Path() string {
	parts := make([]string, len(e.Cycle))
	for i, v := range e.Cycle {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " -> ")
}

// Unwrap lets errors.Is(err, ErrCycle) match.
func (e *CycleError) Unwrap() error {
	return ErrCycle
}

// Ordering is a sequence of vertex indices, one topological order.
type Ordering []int

// String renders the ordering as space-separated indices, "0 2 1".
func (o Ordering) String() string {
	var b strings.Builder
	for i, v := range o {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// Result summarises a completed Run.
type Result struct {
	Vertices  int // vertex count of the graph
	Orderings int // number of orderings handed to the sink
}

// Option configures Run, Enumerate and Count.
type Option func(*options)

// options holds resolved settings.
type options struct {
	ctx    context.Context
	logger hclog.Logger
}

// defaultOptions returns Background context and a null logger.
func defaultOptions() options {
	return options{
		ctx:    context.Background(),
		logger: hclog.NewNullLogger(),
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) options {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithContext sets the cancellation context, checked once per search step.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sets the logger for phase and progress messages.
// Passing nil keeps the null logger.
func WithLogger(l hclog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
