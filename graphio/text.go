package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvtopo/digraph"
)

// decodeText parses the whitespace format: a vertex count n followed by n*n
// integers, row-major, each 0 or 1.
//
// n is checked against cfg.maxVertices before any row is allocated, and rows
// are allocated only as they are reached, so a huge n on a short input costs
// nothing.
func decodeText(r io.Reader, cfg options) (*digraph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, errors.Wrap(err, "read vertex count")
		}
		return nil, errors.Wrap(ErrBadCount, "empty input")
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return nil, errors.Wrapf(ErrBadCount, "token %q", sc.Text())
	}
	if n < 0 {
		return nil, errors.Wrapf(digraph.ErrNegativeVertexCount, "n=%d", n)
	}
	if n > cfg.maxVertices {
		return nil, errors.Wrapf(digraph.ErrTooManyVertices, "n=%d > limit=%d", n, cfg.maxVertices)
	}

	rows := make([][]int, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]int, n)
		for j := 0; j < n; j++ {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return nil, errors.Wrapf(err, "read row %d", i)
				}
				return nil, errors.Wrapf(ErrTruncated, "read %d of %d entries", i*n+j, n*n)
			}
			x, err := strconv.Atoi(sc.Text())
			if err != nil {
				return nil, errors.Wrapf(ErrBadToken, "row %d column %d: %q", i, j, sc.Text())
			}
			rows[i][j] = x
		}
	}
	if sc.Scan() {
		return nil, errors.Wrapf(ErrTrailingData, "token %q", sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read trailing input")
	}

	g, err := digraph.FromMatrix(rows, digraph.WithMaxVertices(cfg.maxVertices))
	if err != nil {
		return nil, errors.Wrap(err, "adjacency matrix")
	}

	return g, nil
}

// encodeText writes g in the format decodeText reads.
func encodeText(w io.Writer, g *digraph.Graph) error {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintln(bw, g.VertexCount())

	cells := make([]string, g.VertexCount())
	for _, row := range g.Matrix() {
		for j, x := range row {
			cells[j] = strconv.Itoa(x)
		}
		_, _ = fmt.Fprintln(bw, strings.Join(cells, " "))
	}

	return errors.Wrap(bw.Flush(), "write text graph")
}
