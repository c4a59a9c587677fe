package graphio

import (
	stderrors "errors"
	"fmt"
)

// ErrInput matches every *InputError via errors.Is.
var ErrInput = stderrors.New("graphio: cannot load graph")

// Causes carried inside an *InputError.
var (
	// ErrBadCount: the leading vertex count is missing or not an integer.
	ErrBadCount = stderrors.New("graphio: cannot read number of vertices")

	// ErrTruncated: the input ended before n*n matrix entries were read.
	ErrTruncated = stderrors.New("graphio: adjacency matrix is truncated")

	// ErrBadToken: a matrix entry is not an integer.
	ErrBadToken = stderrors.New("graphio: adjacency entry is not an integer")

	// ErrTrailingData: tokens follow the last matrix entry, or a YAML stream
	// holds more than one document.
	ErrTrailingData = stderrors.New("graphio: unexpected data after graph")

	// ErrBadDocument: a YAML document is structurally invalid.
	ErrBadDocument = stderrors.New("graphio: invalid graph document")
)

// InputError reports a graph source that could not be read or parsed.
// Source names the file or stream; Err is the underlying cause, which may
// wrap digraph sentinels such as digraph.ErrBadEntry.
type InputError struct {
	Source string
	Err    error
}

// Error implements error.
func (e *InputError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s: %v", ErrInput, e.Err)
	}

	return fmt.Sprintf("%s from %s: %v", ErrInput, e.Source, e.Err)
}

// Unwrap returns the cause.
func (e *InputError) Unwrap() error {
	return e.Err
}

// Is reports true for ErrInput.
func (e *InputError) Is(target error) bool {
	return target == ErrInput
}

// Format prints the cause with its stack trace for %+v.
func (e *InputError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') && e.Source != "" {
		_, _ = fmt.Fprintf(s, "%s from %s: %+v", ErrInput, e.Source, e.Err)
		return
	}
	if verb == 'v' && s.Flag('+') {
		_, _ = fmt.Fprintf(s, "%s: %+v", ErrInput, e.Err)
		return
	}
	_, _ = fmt.Fprint(s, e.Error())
}

// inputError wraps err for source, leaving nil alone.
func inputError(source string, err error) error {
	if err == nil {
		return nil
	}

	return &InputError{Source: source, Err: err}
}
