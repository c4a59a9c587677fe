// Package dfs decides whether a digraph.Graph contains a directed cycle.
//
// What:
//
//   - HasCycle(g):  true iff some directed cycle exists (self-loops included).
//   - FindCycle(g): the first cycle met, as a closed path [v0 … vk v0].
//
// How:
//
// Standard three-colour depth-first search. Every vertex starts White. Roots
// are taken in increasing index order; from each root the successors of the
// current vertex are explored in increasing index order. A vertex turns Gray
// when entered and Black once all of its successors are finished. Reaching a
// Gray successor is a back edge, i.e. a cycle, and stops the whole pass
// immediately: no other cycles are looked for and the current vertex is not
// coloured Black.
//
// The traversal keeps its own stack of frames instead of recursing, so a path
// as long as the graph (a chain of DefaultMaxVertices vertices, say) costs a
// slice, not goroutine stack. The visiting order is exactly that of the
// recursive formulation.
//
// Colour state is allocated per call and dropped afterwards, so repeated calls
// on the same graph always agree and concurrent calls do not interfere.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) colours plus the explicit stack
//
// Errors:
//
//   - ErrGraphNil     graph pointer is nil
//   - context errors  when WithContext is cancelled mid-pass
package dfs
