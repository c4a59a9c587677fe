package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/katalvlaran/lvtopo/topo"
)

var _ Constructor = (*Enumerate)(nil)

// Enumerate prints every topological ordering of one graph.
type Enumerate struct {
	*Config
	loader
	Output   string
	Progress int
}

func (cmd *Enumerate) New(_ *cli.App, config *Config) cli.Command {
	cmd.Config = config

	return cli.Command{
		Name:      "enumerate",
		Aliases:   []string{"enum"},
		Usage:     "print every topological ordering of a graph",
		ArgsUsage: "[GRAPH]",
		Action:    cmd.run,
		Flags: append(cmd.flags(),
			cli.StringFlag{
				Name:        "output, o",
				Usage:       "write the orderings to `FILE` instead of stdout",
				Destination: &cmd.Output,
			},
			cli.IntFlag{
				Name:        "progress",
				Usage:       "log progress every `N` orderings at info level (0 disables)",
				Destination: &cmd.Progress,
			},
		),
	}
}

func (cmd *Enumerate) run(c *cli.Context) (err error) {
	path, err := graphArg(c)
	if err != nil {
		return err
	}

	g, err := cmd.load(path)
	if err != nil {
		return err
	}

	st := cmd.styles(c.App.Writer)
	fmt.Fprintln(c.App.Writer, st.ok.Render(fmt.Sprintf("Graph loaded successfully with %d vertices.", g.VertexCount())))

	var out io.Writer = c.App.Writer
	if cmd.Output != "" {
		f, cerr := os.Create(cmd.Output)
		if cerr != nil {
			return errors.Wrap(cerr, "create output file")
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = errors.Wrap(cerr, "close output file")
			}
		}()
		out = f
	}
	bw := bufio.NewWriter(out)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sink := topo.MultiSink(
		&headerSink{w: bw, header: "\nAll possible topological orderings:"},
		topo.NewWriterSink(bw),
		topo.NewProgressSink(cmd.Logger, cmd.Progress),
	)
	res, err := topo.Run(g, sink, topo.WithContext(ctx), topo.WithLogger(cmd.Logger))
	if ferr := bw.Flush(); err == nil && ferr != nil {
		err = errors.Wrap(ferr, "write orderings")
	}
	if err != nil {
		return err
	}

	if cmd.Output != "" {
		fmt.Fprintln(c.App.Writer, st.dim.Render(fmt.Sprintf("Wrote %d orderings to %s.", res.Orderings, cmd.Output)))
	}

	return nil
}

// headerSink writes header once, before anything else reaches w.
type headerSink struct {
	w       io.Writer
	header  string
	written bool
}

func (h *headerSink) write() error {
	if h.written {
		return nil
	}
	h.written = true
	_, err := fmt.Fprintln(h.w, h.header)

	return err
}

func (h *headerSink) Emit(int, topo.Ordering) error {
	return h.write()
}

func (h *headerSink) Done(int) error {
	return h.write()
}
