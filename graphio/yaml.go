package graphio

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtopo/digraph"
)

// document is the YAML graph description. Exactly one of Edges and Matrix
// may be present; with neither, the graph has no edges.
//
//	vertices: 3
//	edges:
//	  - [0, 1]
//	  - [1, 2]
type document struct {
	Vertices *int    `yaml:"vertices"`
	Edges    [][]int `yaml:"edges"`
	Matrix   [][]int `yaml:"matrix"`
}

// decodeYAML parses exactly one YAML document. Unknown keys and further
// documents in the stream are rejected.
func decodeYAML(r io.Reader, cfg options) (*digraph.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(ErrBadDocument, "empty document")
		}
		return nil, errors.Wrap(err, "decode yaml")
	}
	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case err == io.EOF:
	case err != nil:
		return nil, errors.Wrapf(ErrTrailingData, "second yaml document: %v", err)
	default:
		return nil, errors.Wrapf(ErrTrailingData, "second yaml document at line %d", extra.Line)
	}
	limit := digraph.WithMaxVertices(cfg.maxVertices)

	if doc.Matrix != nil {
		if doc.Edges != nil {
			return nil, errors.Wrap(ErrBadDocument, "both edges and matrix given")
		}
		if doc.Vertices != nil && *doc.Vertices != len(doc.Matrix) {
			return nil, errors.Wrapf(ErrBadDocument, "vertices=%d but matrix has %d rows",
				*doc.Vertices, len(doc.Matrix))
		}
		g, err := digraph.FromMatrix(doc.Matrix, limit)
		return g, errors.Wrap(err, "matrix")
	}

	if doc.Vertices == nil {
		return nil, errors.Wrap(ErrBadDocument, "missing vertices")
	}
	edges := make([]digraph.Edge, 0, len(doc.Edges))
	for i, e := range doc.Edges {
		if len(e) != 2 {
			return nil, errors.Wrapf(ErrBadDocument, "edge %d has %d endpoints, want 2", i, len(e))
		}
		edges = append(edges, digraph.Edge{From: e[0], To: e[1]})
	}
	g, err := digraph.New(*doc.Vertices, edges, limit)

	return g, errors.Wrap(err, "edges")
}

// pair is one edge written as a flow sequence, "[0, 1]".
type pair [2]int

// MarshalYAML renders the pair in flow style.
func (p pair) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(p[0])},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(p[1])},
		},
	}, nil
}

// outDocument is what encodeYAML writes; it always uses the edge list.
type outDocument struct {
	Vertices int    `yaml:"vertices"`
	Edges    []pair `yaml:"edges,omitempty"`
}

// encodeYAML writes g as a vertices/edges document.
func encodeYAML(w io.Writer, g *digraph.Graph) error {
	doc := outDocument{Vertices: g.VertexCount()}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, pair{e.From, e.To})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "encode yaml")
	}

	return errors.Wrap(enc.Close(), "encode yaml")
}
