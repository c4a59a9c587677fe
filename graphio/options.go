package graphio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvtopo/digraph"
)

// Format selects a graph encoding.
type Format int

const (
	// FormatAuto picks by file extension in Load and means FormatText in Read.
	FormatAuto Format = iota
	// FormatText is the count-then-matrix whitespace format.
	FormatText
	// FormatYAML is the vertices/edges (or vertices/matrix) YAML document.
	FormatYAML
)

// String returns the flag spelling of f.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// ParseFormat maps "auto", "text"/"txt" and "yaml"/"yml" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return FormatAuto, fmt.Errorf("graphio: unknown format %q (want auto, text or yaml)", s)
}

// formatFor resolves FormatAuto from a file name.
func formatFor(name string, f Format) Format {
	if f != FormatAuto {
		return f
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Option configures Load and Read.
type Option func(*options)

type options struct {
	format      Format
	maxVertices int
}

func resolve(opts []Option) options {
	cfg := options{format: FormatAuto, maxVertices: digraph.DefaultMaxVertices}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithFormat forces an encoding instead of guessing from the extension.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithMaxVertices bounds the vertex count accepted from the input. The
// bound is checked before the matrix is allocated. Non-positive values keep
// digraph.DefaultMaxVertices.
func WithMaxVertices(limit int) Option {
	return func(o *options) {
		if limit > 0 {
			o.maxVertices = limit
		}
	}
}
