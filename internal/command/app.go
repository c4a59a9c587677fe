package command

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Version is reported by --version.
var Version = "0.1.0"

// Subcommands lists the commands NewApp installs, in help order.
func Subcommands() []Constructor {
	return []Constructor{
		&Enumerate{},
		&Count{},
		&Check{},
		&Generate{},
	}
}

// NewApp builds the lvtopo application writing to stdout and stderr.
// Errors returned by Run are printed to stderr; map them to a status with
// ExitCode.
func NewApp(stdout, stderr io.Writer) *cli.App {
	config := &Config{Logger: hclog.NewNullLogger()}
	var level string

	app := cli.NewApp()
	app.Name = "lvtopo"
	app.Usage = "detect cycles and enumerate the topological orderings of a directed graph"
	app.Version = Version
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "log-level",
			EnvVar:      "LVTOPO_LOG_LEVEL",
			Value:       "warn",
			Usage:       "set log level (trace, debug, info, warn, error)",
			Destination: &level,
		},
		cli.BoolFlag{
			Name:        "no-color",
			Usage:       "disable coloured status lines",
			Destination: &config.NoColor,
		},
	}
	app.Before = func(*cli.Context) error {
		lvl := hclog.LevelFromString(level)
		if lvl == hclog.NoLevel {
			return cli.NewExitError(fmt.Sprintf("unknown log level %q", level), ExitUsage)
		}
		config.Logger = hclog.New(&hclog.LoggerOptions{
			Name:   app.Name,
			Level:  lvl,
			Output: stderr,
		})

		return nil
	}
	app.ExitErrHandler = func(c *cli.Context, err error) {
		config.report(stderr, c, err)
	}

	for _, sc := range Subcommands() {
		app.Commands = append(app.Commands, sc.New(app, config))
	}

	return app
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// report prints err for the user. Errors carrying a stack trace are logged
// in full at debug level.
func (c *Config) report(w io.Writer, ctx *cli.Context, err error) {
	if err == nil {
		return
	}

	if hasStack(err) {
		c.Logger.Debug("command failed", "command", ctx.Command.Name, "error", fmt.Sprintf("%+v", err))
	}

	msg := err.Error()
	if msg == "" {
		return
	}
	fmt.Fprintln(w, c.styles(w).bad.Render("Error: "+msg))
}

// hasStack reports whether any error in the chain recorded a stack.
func hasStack(err error) bool {
	var st stackTracer

	return errors.As(err, &st)
}
