package command_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/katalvlaran/lvtopo/graphio"
	"github.com/katalvlaran/lvtopo/internal/command"
	"github.com/katalvlaran/lvtopo/topo"
)

const (
	forkText     = "3\n0 1 1\n0 0 0\n0 0 0\n"
	twoCycleText = "2\n0 1\n1 0\n"
)

// lvtopo runs the app with colour disabled and returns its output and exit
// status.
func lvtopo(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := command.NewApp(&out, &errOut)
	err := app.Run(append([]string{"lvtopo", "--no-color"}, args...))

	return out.String(), errOut.String(), command.ExitCode(err)
}

// writeGraph stores body under dir/name and returns the path.
func writeGraph(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// TestEnumerate_Fork prints the classic report.
func TestEnumerate_Fork(t *testing.T) {
	path := writeGraph(t, t.TempDir(), "fork.txt", forkText)

	stdout, stderr, code := lvtopo(t, "enumerate", path)
	assert.Equal(t, command.ExitOK, code, stderr)
	assert.Equal(t, `Graph loaded successfully with 3 vertices.

All possible topological orderings:
Solution 1: 0 1 2
Solution 2: 0 2 1

Total number of topological orderings: 2
`, stdout)
	assert.Empty(t, stderr)
}

// TestEnumerate_YAML reads a YAML graph picked by extension.
func TestEnumerate_YAML(t *testing.T) {
	path := writeGraph(t, t.TempDir(), "diamond.yml",
		"vertices: 4\nedges: [[0, 1], [0, 2], [1, 3], [2, 3]]\n")

	stdout, _, code := lvtopo(t, "enum", path)
	assert.Equal(t, command.ExitOK, code)
	assert.Contains(t, stdout, "Solution 1: 0 1 2 3\nSolution 2: 0 2 1 3\n")
	assert.Contains(t, stdout, "Total number of topological orderings: 2")
}

// TestEnumerate_OutputFile sends the orderings to a file.
func TestEnumerate_OutputFile(t *testing.T) {
	dir := t.TempDir()
	path := writeGraph(t, dir, "fork.txt", forkText)
	out := filepath.Join(dir, "orderings.txt")

	stdout, stderr, code := lvtopo(t, "enumerate", "--output", out, path)
	require.Equal(t, command.ExitOK, code, stderr)
	assert.Equal(t, "Graph loaded successfully with 3 vertices.\nWrote 2 orderings to "+out+".\n", stdout)

	body, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "\nAll possible topological orderings:\nSolution 1: 0 1 2\n"))
}

// TestEnumerate_Cycle stops before any ordering and exits 2.
func TestEnumerate_Cycle(t *testing.T) {
	path := writeGraph(t, t.TempDir(), "cycle.txt", twoCycleText)

	stdout, stderr, code := lvtopo(t, "enumerate", path)
	assert.Equal(t, command.ExitCycle, code)
	assert.Equal(t, "Graph loaded successfully with 2 vertices.\n", stdout)
	assert.Equal(t, "Error: topo: graph contains a cycle: 0 -> 1 -> 0\n", stderr)
}

// TestEnumerate_LoadErrors exit 1 without printing the load banner.
func TestEnumerate_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	for name, path := range map[string]string{
		"missing":   filepath.Join(dir, "missing.txt"),
		"truncated": writeGraph(t, dir, "short.txt", "3\n0 1 0\n0 0\n"),
		"bad entry": writeGraph(t, dir, "bad.txt", "2\n0 2\n0 0\n"),
		"two yaml documents": writeGraph(t, dir, "two.yaml", "vertices: 1\n---\nvertices: 2\n"),
	} {
		t.Run(name, func(t *testing.T) {
			stdout, stderr, code := lvtopo(t, "enumerate", path)
			assert.Equal(t, command.ExitInput, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Error: graphio: cannot load graph from "+path)
		})
	}
}

// TestEnumerate_DefaultGraph falls back to graph.txt in the working
// directory.
func TestEnumerate_DefaultGraph(t *testing.T) {
	dir := t.TempDir()
	writeGraph(t, dir, command.DefaultGraph, "1\n0\n")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	stdout, _, code := lvtopo(t, "enumerate")
	assert.Equal(t, command.ExitOK, code)
	assert.Contains(t, stdout, "Solution 1: 0\n")
}

// TestEnumerate_Usage rejects extra arguments and unknown formats.
func TestEnumerate_Usage(t *testing.T) {
	_, stderr, code := lvtopo(t, "enumerate", "a.txt", "b.txt")
	assert.Equal(t, command.ExitUsage, code)
	assert.Contains(t, stderr, "expected at most one graph file")

	_, stderr, code = lvtopo(t, "enumerate", "--format", "json", "a.txt")
	assert.Equal(t, command.ExitUsage, code)
	assert.Contains(t, stderr, "unknown format")
}

// TestEnumerate_MaxVertices enforces the flag.
func TestEnumerate_MaxVertices(t *testing.T) {
	path := writeGraph(t, t.TempDir(), "fork.txt", forkText)

	_, stderr, code := lvtopo(t, "enumerate", "--max-vertices", "2", path)
	assert.Equal(t, command.ExitInput, code)
	assert.Contains(t, stderr, "limit=2")
}

// TestLogLevel_Env routes debug logs to stderr.
func TestLogLevel_Env(t *testing.T) {
	t.Setenv("LVTOPO_LOG_LEVEL", "debug")
	path := writeGraph(t, t.TempDir(), "fork.txt", forkText)

	_, stderr, code := lvtopo(t, "count", path)
	assert.Equal(t, command.ExitOK, code)
	assert.Contains(t, stderr, "detecting cycles")

	_, _, code = lvtopo(t, "--log-level", "loud", "count", path)
	assert.Equal(t, command.ExitUsage, code)
}

// TestCount prints the bare number.
func TestCount(t *testing.T) {
	dir := t.TempDir()

	stdout, _, code := lvtopo(t, "count", writeGraph(t, dir, "anti.txt", "4 "+strings.Repeat("0 ", 16)))
	assert.Equal(t, command.ExitOK, code)
	assert.Equal(t, "24\n", stdout)

	stdout, stderr, code := lvtopo(t, "count", writeGraph(t, dir, "loop.txt", "1\n1\n"))
	assert.Equal(t, command.ExitCycle, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "cycle: 0 -> 0")
}

// TestCheck reports per file in argument order.
func TestCheck(t *testing.T) {
	dir := t.TempDir()
	fork := writeGraph(t, dir, "fork.txt", forkText)
	cyc := writeGraph(t, dir, "cycle.txt", twoCycleText)

	stdout, stderr, code := lvtopo(t, "check", fork, cyc)
	assert.Equal(t, command.ExitCycle, code)
	assert.Empty(t, stderr)
	assert.Equal(t, fmt.Sprintf("%s: acyclic\n%s: cycle: 0 -> 1 -> 0\n", fork, cyc), stdout)

	stdout, _, code = lvtopo(t, "check", "--jobs", "1", fork)
	assert.Equal(t, command.ExitOK, code)
	assert.Equal(t, fork+": acyclic\n", stdout)
}

// TestCheck_Glob expands doublestar patterns across directories.
func TestCheck_Glob(t *testing.T) {
	dir := t.TempDir()
	writeGraph(t, dir, "a.txt", forkText)
	writeGraph(t, dir, "nested/deeper/b.txt", forkText)
	writeGraph(t, dir, "nested/c.yaml", "vertices: 1\n")

	stdout, _, code := lvtopo(t, "check", filepath.Join(dir, "**", "*.txt"))
	assert.Equal(t, command.ExitOK, code)
	assert.Equal(t, 2, strings.Count(stdout, ": acyclic"))
	assert.Contains(t, stdout, filepath.Join(dir, "nested", "deeper", "b.txt"))
	assert.NotContains(t, stdout, "c.yaml")
}

// TestCheck_LoadErrorWins exits 1 when any file fails to load, even if
// another is cyclic.
func TestCheck_LoadErrorWins(t *testing.T) {
	dir := t.TempDir()
	cyc := writeGraph(t, dir, "cycle.txt", twoCycleText)
	missing := filepath.Join(dir, "nope.txt")

	stdout, _, code := lvtopo(t, "check", cyc, missing)
	assert.Equal(t, command.ExitInput, code)
	assert.Contains(t, stdout, cyc+": cycle: 0 -> 1 -> 0")
	assert.Contains(t, stdout, missing+": error: graphio: cannot load graph")

	_, _, code = lvtopo(t, "check")
	assert.Equal(t, command.ExitUsage, code)
}

// TestGenerate covers the shapes and formats.
func TestGenerate(t *testing.T) {
	stdout, _, code := lvtopo(t, "generate", "--kind", "chain", "--n", "3")
	assert.Equal(t, command.ExitOK, code)
	assert.Equal(t, "3\n0 1 0\n0 0 1\n0 0 0\n", stdout)

	stdout, _, code = lvtopo(t, "generate", "--kind", "cycle", "--n", "2", "--format", "yaml")
	assert.Equal(t, command.ExitOK, code)
	assert.Equal(t, "vertices: 2\nedges:\n  - [0, 1]\n  - [1, 0]\n", stdout)

	first, _, _ := lvtopo(t, "generate", "--kind", "random", "--n", "8", "--p", "0.4", "--seed", "7")
	second, _, _ := lvtopo(t, "generate", "--kind", "random", "--n", "8", "--p", "0.4", "--seed", "7")
	assert.Equal(t, first, second)

	for _, args := range [][]string{
		{"generate", "--kind", "spiral"},
		{"generate", "--kind", "random", "--p", "1.5"},
		{"generate", "--kind", "chain", "--n", "0"},
		{"generate", "--kind", "layered", "--n", "0"},
		{"generate", "extra"},
	} {
		_, _, code := lvtopo(t, args...)
		assert.Equal(t, command.ExitUsage, code, args)
	}
}

// TestGenerate_MaxVertices refuses oversized shapes before building them.
func TestGenerate_MaxVertices(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default limit", []string{"--kind", "layered", "--n", "3", "--width", "100000"}, "limit=4096"},
		{"too many layers", []string{"--kind", "layered", "--n", "1000000000", "--width", "1"}, "limit=4096"},
		{"custom limit", []string{"--max-vertices", "2", "--kind", "chain", "--n", "3"}, "limit=2"},
		{"random", []string{"--kind", "random", "--n", "5000000", "--p", "0.5"}, "limit=4096"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr, code := lvtopo(t, append([]string{"generate"}, tc.args...)...)
			assert.Equal(t, command.ExitUsage, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tc.want)
		})
	}

	stdout, _, code := lvtopo(t, "generate", "--max-vertices", "3", "--kind", "chain", "--n", "3")
	assert.Equal(t, command.ExitOK, code)
	assert.Equal(t, "3\n0 1 0\n0 0 1\n0 0 0\n", stdout)
}

// TestGenerate_ThenCount feeds a generated graph back in.
func TestGenerate_ThenCount(t *testing.T) {
	stdout, _, code := lvtopo(t, "generate", "--kind", "layered", "--n", "3", "--width", "2")
	require.Equal(t, command.ExitOK, code)
	path := writeGraph(t, t.TempDir(), "layered.txt", stdout)

	stdout, _, code = lvtopo(t, "count", path)
	assert.Equal(t, command.ExitOK, code)
	assert.Equal(t, "8\n", stdout)
}

// TestExitCode maps errors to statuses.
func TestExitCode(t *testing.T) {
	assert.Equal(t, command.ExitOK, command.ExitCode(nil))
	assert.Equal(t, command.ExitInput, command.ExitCode(&graphio.InputError{Err: graphio.ErrTruncated}))
	assert.Equal(t, command.ExitCycle, command.ExitCode(errors.Wrap(&topo.CycleError{Cycle: []int{0, 0}}, "run")))
	assert.Equal(t, 5, command.ExitCode(cli.NewExitError("", 5)))
	assert.Equal(t, command.ExitUsage, command.ExitCode(errors.New("boom")))
}
