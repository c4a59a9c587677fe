package command

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvtopo/dfs"
	"github.com/katalvlaran/lvtopo/graphio"
	"github.com/katalvlaran/lvtopo/topo"
)

var _ Constructor = (*Check)(nil)

// Check reports, for every file matched by the patterns, whether the graph
// it holds is acyclic.
type Check struct {
	*Config
	loader
	Jobs int
}

func (cmd *Check) New(_ *cli.App, config *Config) cli.Command {
	cmd.Config = config

	return cli.Command{
		Name:      "check",
		Usage:     "report whether each graph file is acyclic",
		ArgsUsage: "PATTERN...",
		Action:    cmd.run,
		Flags: append(cmd.flags(),
			cli.IntFlag{
				Name:        "jobs, j",
				Value:       runtime.GOMAXPROCS(0),
				Usage:       "check at most `N` files at once",
				Destination: &cmd.Jobs,
			},
		),
	}
}

// checked is the outcome for one file: a load error, a cycle, or neither.
type checked struct {
	path  string
	err   error
	cycle []int
}

// expand resolves the patterns in order. A pattern with no match is kept
// as a literal path so that loading reports it.
func expand(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "pattern %q", pattern)
		}
		if len(matches) == 0 {
			matches = []string{pattern}
		}
		files = append(files, matches...)
	}

	return files, nil
}

func (cmd *Check) run(c *cli.Context) error {
	if c.NArg() == 0 {
		return usageError("check: at least one PATTERN is required")
	}
	opts, err := cmd.options()
	if err != nil {
		return err
	}
	files, err := expand(c.Args())
	if err != nil {
		return cli.NewExitError(err.Error(), ExitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := make([]checked, len(files))
	group, ctx := errgroup.WithContext(ctx)
	if cmd.Jobs > 0 {
		group.SetLimit(cmd.Jobs)
	}
	for i, path := range files {
		i, path := i, path
		group.Go(func() error {
			results[i].path = path
			g, err := graphio.Load(path, opts...)
			if err != nil {
				results[i].err = err
				return nil
			}
			cycle, err := dfs.FindCycle(g, dfs.WithContext(ctx))
			if err != nil {
				return errors.Wrapf(err, "check %s", path)
			}
			results[i].cycle = cycle
			cmd.Logger.Debug("checked graph", "path", path, "vertices", g.VertexCount(), "acyclic", cycle == nil)

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	return cmd.report(c, results)
}

// report prints one line per file, in input order, and picks the exit code:
// load failures outrank cycles.
func (cmd *Check) report(c *cli.Context, results []checked) error {
	st := cmd.styles(c.App.Writer)
	code := ExitOK
	for _, r := range results {
		name := st.dim.Render(r.path + ":")
		switch {
		case r.err != nil:
			fmt.Fprintln(c.App.Writer, name, st.bad.Render("error: "+r.err.Error()))
			code = ExitInput
		case r.cycle != nil:
			ce := &topo.CycleError{Cycle: r.cycle}
			fmt.Fprintln(c.App.Writer, name, st.bad.Render("cycle: "+ce.Path()))
			if code == ExitOK {
				code = ExitCycle
			}
		default:
			fmt.Fprintln(c.App.Writer, name, st.ok.Render("acyclic"))
		}
	}
	if code != ExitOK {
		return cli.NewExitError("", code)
	}

	return nil
}
