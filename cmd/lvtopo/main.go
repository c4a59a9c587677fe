// Command lvtopo checks directed graphs for cycles and enumerates their
// topological orderings.
//
//	lvtopo enumerate graph.txt
//	lvtopo count --format yaml deps.yaml
//	lvtopo check 'graphs/**/*.txt'
//	lvtopo generate --kind layered --n 3 --width 2
//
// Exit status: 0 success, 1 the graph could not be loaded, 2 the graph has
// a cycle, 3 any other error.
package main

import (
	"os"

	"github.com/katalvlaran/lvtopo/internal/command"
)

func main() {
	app := command.NewApp(os.Stdout, os.Stderr)
	os.Exit(command.ExitCode(app.Run(os.Args)))
}
