package command

import (
	"github.com/urfave/cli"

	"github.com/katalvlaran/lvtopo/digraph"
	"github.com/katalvlaran/lvtopo/graphio"
)

// loader carries the flags that control how graph files are read.
type loader struct {
	Format      string
	MaxVertices int
}

func (l *loader) flags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:        "format, f",
			Value:       "auto",
			Usage:       "graph file format (auto, text, yaml); auto picks by extension",
			Destination: &l.Format,
		},
		cli.IntFlag{
			Name:        "max-vertices",
			Value:       digraph.DefaultMaxVertices,
			Usage:       "refuse graphs with more vertices than this",
			Destination: &l.MaxVertices,
		},
	}
}

// options validates the flags once per invocation.
func (l *loader) options() ([]graphio.Option, error) {
	f, err := graphio.ParseFormat(l.Format)
	if err != nil {
		return nil, cli.NewExitError(err.Error(), ExitUsage)
	}

	return []graphio.Option{graphio.WithFormat(f), graphio.WithMaxVertices(l.MaxVertices)}, nil
}

// load reads one graph file.
func (l *loader) load(path string) (*digraph.Graph, error) {
	opts, err := l.options()
	if err != nil {
		return nil, err
	}

	return graphio.Load(path, opts...)
}

// graphArg returns the single optional graph argument.
func graphArg(c *cli.Context) (string, error) {
	switch c.NArg() {
	case 0:
		return DefaultGraph, nil
	case 1:
		return c.Args().First(), nil
	default:
		return "", usageError("%s: expected at most one graph file, got %d", c.Command.Name, c.NArg())
	}
}
