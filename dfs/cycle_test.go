package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/dfs"
	"github.com/katalvlaran/lvtopo/digraph"
)

// mustGraph builds a graph or fails the test.
func mustGraph(t *testing.T, n int, edges ...digraph.Edge) *digraph.Graph {
	t.Helper()
	g, err := digraph.New(n, edges)
	require.NoError(t, err)

	return g
}

// TestHasCycle_NilGraph verifies that passing a nil graph returns ErrGraphNil.
func TestHasCycle_NilGraph(t *testing.T) {
	has, err := dfs.HasCycle(nil)
	assert.False(t, has)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	cycle, err := dfs.FindCycle(nil)
	assert.Nil(t, cycle)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestHasCycle_Table covers acyclic and cyclic shapes, including the
// degenerate ones (empty graph, self-loop, 2-cycle).
func TestHasCycle_Table(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges []digraph.Edge
		want  bool
	}{
		{"empty", 0, nil, false},
		{"single vertex", 1, nil, false},
		{"self-loop", 1, []digraph.Edge{{From: 0, To: 0}}, true},
		{"two-cycle", 2, []digraph.Edge{{From: 0, To: 1}, {From: 1, To: 0}}, true},
		{"chain", 3, []digraph.Edge{{From: 0, To: 1}, {From: 1, To: 2}}, false},
		{"antichain", 3, nil, false},
		{"fork", 3, []digraph.Edge{{From: 0, To: 1}, {From: 0, To: 2}}, false},
		{"diamond", 4, []digraph.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}, {From: 2, To: 3}}, false},
		{"triangle", 3, []digraph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}}, true},
		{"back edge to high index root", 3, []digraph.Edge{{From: 2, To: 1}, {From: 1, To: 2}}, true},
		{"cross edge is not a cycle", 4, []digraph.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 2, To: 1}, {From: 3, To: 1}}, false},
		{"self-loop deep in a DAG", 4, []digraph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 3}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGraph(t, tc.n, tc.edges...)
			has, err := dfs.HasCycle(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, has)
		})
	}
}

// TestHasCycle_Idempotent runs detection twice on the same graphs; no colour
// state may leak from one pass to the next.
func TestHasCycle_Idempotent(t *testing.T) {
	for _, g := range []*digraph.Graph{
		mustGraph(t, 3, digraph.Edge{From: 0, To: 1}, digraph.Edge{From: 1, To: 2}),
		mustGraph(t, 2, digraph.Edge{From: 0, To: 1}, digraph.Edge{From: 1, To: 0}),
	} {
		first, err := dfs.HasCycle(g)
		require.NoError(t, err)
		second, err := dfs.HasCycle(g)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

// TestFindCycle_Paths checks the reported cycle is the first back edge met in
// ascending-index order, closed back to its start.
func TestFindCycle_Paths(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges []digraph.Edge
		want  []int
	}{
		{"acyclic", 3, []digraph.Edge{{From: 0, To: 1}, {From: 1, To: 2}}, nil},
		{"self-loop", 1, []digraph.Edge{{From: 0, To: 0}}, []int{0, 0}},
		{"two-cycle", 2, []digraph.Edge{{From: 0, To: 1}, {From: 1, To: 0}}, []int{0, 1, 0}},
		{"triangle", 3, []digraph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}}, []int{0, 1, 2, 0}},
		// 0→1→2→1 : the cycle does not include the root
		{"tail then loop", 3, []digraph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 1}}, []int{1, 2, 1}},
		// the 1→3→1 cycle is met before the 4→5→4 one
		{"first of two", 6, []digraph.Edge{{From: 0, To: 1}, {From: 1, To: 3}, {From: 3, To: 1}, {From: 4, To: 5}, {From: 5, To: 4}}, []int{1, 3, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGraph(t, tc.n, tc.edges...)
			cycle, err := dfs.FindCycle(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cycle)
		})
	}
}

// TestFindCycle_CycleIsReal verifies every consecutive pair of the reported
// path is an edge of the graph.
func TestFindCycle_CycleIsReal(t *testing.T) {
	g := mustGraph(t, 8,
		digraph.Edge{From: 0, To: 4}, digraph.Edge{From: 4, To: 6}, digraph.Edge{From: 6, To: 2},
		digraph.Edge{From: 2, To: 7}, digraph.Edge{From: 7, To: 4}, digraph.Edge{From: 1, To: 3},
	)
	cycle, err := dfs.FindCycle(g)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(cycle), 2)
	assert.Equal(t, cycle[0], cycle[len(cycle)-1])
	for i := 0; i+1 < len(cycle); i++ {
		assert.True(t, g.HasEdge(cycle[i], cycle[i+1]), "%d→%d", cycle[i], cycle[i+1])
	}
}

// TestHasCycle_LongChain exercises a path as deep as the default vertex limit.
func TestHasCycle_LongChain(t *testing.T) {
	n := digraph.DefaultMaxVertices
	edges := make([]digraph.Edge, 0, n)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, digraph.Edge{From: i, To: i + 1})
	}
	g := mustGraph(t, n, edges...)

	has, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.False(t, has)

	// closing the chain makes it a single big cycle
	closed := mustGraph(t, n, append(edges, digraph.Edge{From: n - 1, To: 0})...)
	cycle, err := dfs.FindCycle(closed)
	require.NoError(t, err)
	assert.Len(t, cycle, n+1)
}

// TestHasCycle_Cancelled ensures a cancelled context aborts the pass.
func TestHasCycle_Cancelled(t *testing.T) {
	g := mustGraph(t, 2, digraph.Edge{From: 0, To: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	has, err := dfs.HasCycle(g, dfs.WithContext(ctx))
	assert.False(t, has)
	assert.ErrorIs(t, err, context.Canceled)

	// nil context is ignored
	has, err = dfs.HasCycle(g, dfs.WithContext(nil)) //nolint:staticcheck // nil on purpose
	assert.NoError(t, err)
	assert.False(t, has)
}
