package command

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli"

	"github.com/katalvlaran/lvtopo/topo"
)

var _ Constructor = (*Count)(nil)

// Count prints only the number of topological orderings.
type Count struct {
	*Config
	loader
}

func (cmd *Count) New(_ *cli.App, config *Config) cli.Command {
	cmd.Config = config

	return cli.Command{
		Name:      "count",
		Usage:     "print the number of topological orderings of a graph",
		ArgsUsage: "[GRAPH]",
		Action:    cmd.run,
		Flags:     cmd.flags(),
	}
}

func (cmd *Count) run(c *cli.Context) error {
	path, err := graphArg(c)
	if err != nil {
		return err
	}

	g, err := cmd.load(path)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	n, err := topo.Count(g, topo.WithContext(ctx), topo.WithLogger(cmd.Logger))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, n)

	return nil
}
