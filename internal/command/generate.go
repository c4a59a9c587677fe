package command

import (
	"bufio"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/digraph"
	"github.com/katalvlaran/lvtopo/graphio"
)

var _ Constructor = (*Generate)(nil)

// Generate writes a synthetic graph to stdout.
type Generate struct {
	*Config
	Kind   string
	N      int
	Width  int
	P      float64
	Seed   int64
	Format string

	MaxVertices int
}

func (cmd *Generate) New(_ *cli.App, config *Config) cli.Command {
	cmd.Config = config

	return cli.Command{
		Name:  "generate",
		Usage: "write a generated graph to stdout",
		Description: "kinds: chain, antichain, outtree, layered (N layers of --width vertices),\n" +
			"   random (edges i<j kept with probability --p), cycle",
		Action: cmd.run,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:        "kind, k",
				Value:       "chain",
				Usage:       "graph shape",
				Destination: &cmd.Kind,
			},
			cli.IntFlag{
				Name:        "n",
				Value:       5,
				Usage:       "number of vertices (layers for layered)",
				Destination: &cmd.N,
			},
			cli.IntFlag{
				Name:        "width",
				Value:       2,
				Usage:       "vertices per layer for layered",
				Destination: &cmd.Width,
			},
			cli.Float64Flag{
				Name:        "p",
				Value:       0.5,
				Usage:       "edge probability for random",
				Destination: &cmd.P,
			},
			cli.Int64Flag{
				Name:        "seed",
				Value:       1,
				Usage:       "random seed for random",
				Destination: &cmd.Seed,
			},
			cli.StringFlag{
				Name:        "format, f",
				Value:       "text",
				Usage:       "output format (text, yaml)",
				Destination: &cmd.Format,
			},
			cli.IntFlag{
				Name:        "max-vertices",
				Value:       digraph.DefaultMaxVertices,
				Usage:       "refuse to generate more vertices than this",
				Destination: &cmd.MaxVertices,
			},
		},
	}
}

func (cmd *Generate) graphOptions() []digraph.Option {
	return []digraph.Option{digraph.WithMaxVertices(cmd.MaxVertices)}
}

// constructor maps the flags to a builder constructor.
func (cmd *Generate) constructor() (builder.Constructor, error) {
	switch cmd.Kind {
	case "chain":
		return builder.Chain(cmd.N), nil
	case "antichain":
		return builder.Antichain(cmd.N), nil
	case "outtree":
		return builder.OutTree(cmd.N), nil
	case "layered":
		if cmd.N < 1 {
			return nil, usageError("generate: layered needs n >= 1, got %d", cmd.N)
		}
		if limit := digraph.MaxVertices(cmd.graphOptions()...); cmd.N > limit {
			return nil, usageError("generate: %d layers > limit=%d", cmd.N, limit)
		}
		widths := make([]int, cmd.N)
		for i := range widths {
			widths[i] = cmd.Width
		}
		return builder.Layered(widths...), nil
	case "random":
		return builder.RandomDAG(cmd.N, cmd.P), nil
	case "cycle":
		return builder.Cycle(cmd.N), nil
	default:
		return nil, usageError("generate: unknown kind %q", cmd.Kind)
	}
}

func (cmd *Generate) run(c *cli.Context) error {
	if c.NArg() > 0 {
		return usageError("generate: unexpected argument %q", c.Args().First())
	}
	format, err := graphio.ParseFormat(cmd.Format)
	if err != nil {
		return cli.NewExitError(err.Error(), ExitUsage)
	}
	cons, err := cmd.constructor()
	if err != nil {
		return err
	}

	g, err := builder.Build([]builder.BuilderOption{
		builder.WithSeed(cmd.Seed),
		builder.WithGraphOptions(cmd.graphOptions()...),
	}, cons)
	if err != nil {
		return cli.NewExitError(err.Error(), ExitUsage)
	}
	cmd.Logger.Debug("generated graph", "kind", cmd.Kind, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	bw := bufio.NewWriter(c.App.Writer)
	if err := graphio.Write(bw, g, format); err != nil {
		return err
	}

	return errors.Wrap(bw.Flush(), "write graph")
}
