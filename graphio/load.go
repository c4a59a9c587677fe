package graphio

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvtopo/digraph"
)

// Load reads the graph stored at path. The format comes from WithFormat or,
// by default, the extension: .yaml and .yml are YAML, anything else is text.
// Every failure, including a missing file, is an *InputError.
func Load(path string, opts ...Option) (*digraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, inputError(path, errors.Wrap(err, "open"))
	}
	defer f.Close()

	return Read(bufio.NewReader(f), path, opts...)
}

// Read decodes a graph from r. source names the stream in error messages
// and, under FormatAuto, selects the format by its extension.
func Read(r io.Reader, source string, opts ...Option) (*digraph.Graph, error) {
	cfg := resolve(opts)

	var (
		g   *digraph.Graph
		err error
	)
	switch formatFor(source, cfg.format) {
	case FormatYAML:
		g, err = decodeYAML(r, cfg)
	default:
		g, err = decodeText(r, cfg)
	}
	if err != nil {
		return nil, inputError(source, err)
	}

	return g, nil
}

// ReadText decodes the text format from r.
func ReadText(r io.Reader, opts ...Option) (*digraph.Graph, error) {
	return Read(r, "", append(opts[:len(opts):len(opts)], WithFormat(FormatText))...)
}

// ReadYAML decodes the YAML format from r.
func ReadYAML(r io.Reader, opts ...Option) (*digraph.Graph, error) {
	return Read(r, "", append(opts[:len(opts):len(opts)], WithFormat(FormatYAML))...)
}

// Write encodes g to w. FormatAuto writes text.
func Write(w io.Writer, g *digraph.Graph, f Format) error {
	if g == nil {
		return errors.New("graphio: graph is nil")
	}
	if f == FormatYAML {
		return encodeYAML(w, g)
	}

	return encodeText(w, g)
}
