// Package command holds the lvtopo subcommands and the shared plumbing they
// use: configuration, graph loading flags, output styles and exit codes.
package command

import (
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/katalvlaran/lvtopo/graphio"
	"github.com/katalvlaran/lvtopo/topo"
)

// Process exit statuses.
const (
	ExitOK = iota
	ExitInput
	ExitCycle
	ExitUsage
)

// DefaultGraph is read when no graph argument is given.
const DefaultGraph = "graph.txt"

// Config is shared by every subcommand. It is filled in by the app's Before
// hook, after global flags are parsed.
type Config struct {
	Logger  hclog.Logger
	NoColor bool
}

// Constructor builds one subcommand.
type Constructor interface {
	New(app *cli.App, config *Config) cli.Command
}

// ExitCode maps an error returned by App.Run to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}

	switch {
	case errors.Is(err, graphio.ErrInput):
		return ExitInput
	case errors.Is(err, topo.ErrCycle):
		return ExitCycle
	default:
		return ExitUsage
	}
}

// usageError reports a bad invocation.
func usageError(format string, args ...interface{}) error {
	return cli.NewExitError(errors.Errorf(format, args...).Error(), ExitUsage)
}
