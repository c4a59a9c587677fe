package dfs

import (
	"github.com/katalvlaran/lvtopo/digraph"
)

// HasCycle reports whether g contains a directed cycle.
// If g is nil, returns ErrGraphNil.
// If the context set with WithContext is done, returns its error.
func HasCycle(g *digraph.Graph, opts ...Option) (bool, error) {
	cycle, err := FindCycle(g, opts...)
	if err != nil {
		return false, err
	}

	return cycle != nil, nil
}

// FindCycle returns the first directed cycle met by the search as a closed
// vertex path: FindCycle on 0→1→2→0 returns [0 1 2 0], on a self-loop at 3
// returns [3 3]. It returns nil when g is acyclic.
func FindCycle(g *digraph.Graph, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.VertexCount()
	f := &cycleFinder{
		graph: g,
		opts:  cfg,
		color: make([]int, n), // all White
		stack: make([]frame, 0, n),
	}
	for v := 0; v < n; v++ {
		if f.color[v] != White {
			continue
		}
		cycle, err := f.walk(v)
		if err != nil || cycle != nil {
			return cycle, err
		}
	}

	return nil, nil
}

// frame is one vertex on the explicit DFS stack.
type frame struct {
	v    int   // vertex being explored
	succ []int // its successors, ascending
	next int   // index into succ of the next successor to examine
}

// cycleFinder encapsulates state for a single detection pass.
type cycleFinder struct {
	graph *digraph.Graph
	opts  options
	color []int   // White, Gray or Black per vertex
	stack []frame // current DFS path; stack[i].v are exactly the Gray vertices
}

// walk runs the DFS tree rooted at root. It returns the closed cycle on the
// first back edge, or nil after every reachable vertex turned Black.
func (f *cycleFinder) walk(root int) ([]int, error) {
	// 1) Colour the root Gray and push its frame
	if err := f.enter(root); err != nil {
		return nil, err
	}
	for len(f.stack) > 0 {
		// 2) Finished frame: all successors done without a cycle, so the
		//    vertex turns Black and is popped
		top := &f.stack[len(f.stack)-1]
		if top.next == len(top.succ) {
			f.color[top.v] = Black
			f.stack = f.stack[:len(f.stack)-1]
			continue
		}
		// 3) Advance to the next successor of the top vertex
		w := top.succ[top.next]
		top.next++

		// 4) A Gray successor closes a cycle via a back edge. A White one
		//    is descended into
		switch f.color[w] {
		case Gray:
			return f.cycleTo(w), nil
		case White:
			if err := f.enter(w); err != nil {
				return nil, err
			}
		}
	}

	return nil, nil
}

// enter colours v Gray and pushes its frame, honouring cancellation.
func (f *cycleFinder) enter(v int) error {
	select {
	case <-f.opts.ctx.Done():
		return f.opts.ctx.Err()
	default:
	}
	f.color[v] = Gray
	f.stack = append(f.stack, frame{v: v, succ: f.graph.Successors(v)})

	return nil
}

// cycleTo extracts the path from the Gray vertex w to the stack top and
// closes it back to w.
func (f *cycleFinder) cycleTo(w int) []int {
	// 1) Find w's frame; it is on the stack because w is Gray
	i := len(f.stack) - 1
	for f.stack[i].v != w {
		i--
	}
	// 2) Frames from w up to the top form the path w → … → top
	cycle := make([]int, 0, len(f.stack)-i+1)
	for _, fr := range f.stack[i:] {
		cycle = append(cycle, fr.v)
	}

	// 3) Close the path with the back edge top → w
	return append(cycle, w)
}
