package topo

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/slices"
)

// Sink receives the orderings produced by Enumerate.
//
// Emit is called once per ordering with its 1-based index. The order slice is
// the enumerator's working buffer: it is valid only for the duration of the
// call, and a sink that keeps it must copy it. Returning an error stops the
// enumeration.
//
// Done is called once after the last ordering with the total count, only if
// enumeration ran to exhaustion.
type Sink interface {
	Emit(index int, order Ordering) error
	Done(total int) error
}

// SinkFunc adapts a plain function to a Sink whose Done is a no-op.
type SinkFunc func(index int, order Ordering) error

// Emit calls f.
func (f SinkFunc) Emit(index int, order Ordering) error {
	return f(index, order)
}

// Done does nothing.
func (f SinkFunc) Done(int) error {
	return nil
}

// Collector retains a copy of every ordering. Total is set by Done.
type Collector struct {
	Orderings []Ordering
	Total     int
}

// Emit stores a copy of order.
func (c *Collector) Emit(_ int, order Ordering) error {
	c.Orderings = append(c.Orderings, slices.Clone(order))
	return nil
}

// Done records the total.
func (c *Collector) Done(total int) error {
	c.Total = total
	return nil
}

// WriterSink prints orderings in the classic console format:
//
//	Solution 1: 0 1 2
//	Solution 2: 0 2 1
//
//	Total number of topological orderings: 2
//
// A total of zero prints "No valid topological ordering found." instead.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink returns a WriterSink printing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit writes one "Solution" line.
func (s *WriterSink) Emit(index int, order Ordering) error {
	_, err := fmt.Fprintf(s.w, "Solution %d: %s\n", index, order)
	return err
}

// Done writes the summary line.
func (s *WriterSink) Done(total int) error {
	if total == 0 {
		_, err := fmt.Fprintln(s.w, "No valid topological ordering found.")
		return err
	}
	_, err := fmt.Fprintf(s.w, "\nTotal number of topological orderings: %d\n", total)

	return err
}

// ProgressSink logs a progress message every `every` orderings and the
// total at Done. It never fails.
type ProgressSink struct {
	logger hclog.Logger
	every  int
}

// NewProgressSink returns a ProgressSink. every <= 0 disables the periodic
// messages; the final total is still logged.
func NewProgressSink(logger hclog.Logger, every int) *ProgressSink {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &ProgressSink{logger: logger, every: every}
}

// Emit logs on every multiple of every.
func (p *ProgressSink) Emit(index int, _ Ordering) error {
	if p.every > 0 && index%p.every == 0 {
		p.logger.Info("enumeration progress", "orderings", index)
	}

	return nil
}

// Done logs the total.
func (p *ProgressSink) Done(total int) error {
	p.logger.Info("enumeration finished", "orderings", total)
	return nil
}

// multiSink fans out to several sinks.
type multiSink []Sink

// MultiSink returns a Sink that forwards every call to each of sinks in
// order. Emit stops at the first failing sink. Done calls every sink and
// aggregates their errors with go-multierror. Nil sinks are skipped.
func MultiSink(sinks ...Sink) Sink {
	out := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}

	return out
}

// Emit forwards to every sink.
func (m multiSink) Emit(index int, order Ordering) error {
	for _, s := range m {
		if err := s.Emit(index, order); err != nil {
			return err
		}
	}

	return nil
}

// Done forwards to every sink.
func (m multiSink) Done(total int) error {
	var merr *multierror.Error
	for _, s := range m {
		if err := s.Done(total); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	return merr.ErrorOrNil()
}
