// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_tree.go - OutTree(n) and Layered(widths...).

package builder

import "fmt"

const (
	methodOutTree = "OutTree"
	methodLayered = "Layered"
	minTreeNodes  = 1
	minLayers     = 1
	minLayerWidth = 1
)

// OutTree returns a Constructor for a heap-shaped binary out-tree: vertex i
// has children 2i+1 and 2i+2 when they exist.
func OutTree(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodOutTree, n, minTreeNodes, ErrTooFewVertices)
		}
		base, err := d.grow(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodOutTree, err)
		}
		for i := 1; i < n; i++ {
			d.link(base+(i-1)/2, base+i)
		}

		return nil
	}
}

// Layered returns a Constructor for consecutive layers of the given widths
// where every vertex of layer k points to every vertex of layer k+1.
// Orderings permute each layer independently.
func Layered(widths ...int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if len(widths) < minLayers {
			return fmt.Errorf("%s: %d layers < min=%d: %w", methodLayered, len(widths), minLayers, ErrTooFewVertices)
		}
		for k, w := range widths {
			if w < minLayerWidth {
				return fmt.Errorf("%s: layer %d width=%d < min=%d: %w",
					methodLayered, k, w, minLayerWidth, ErrTooFewVertices)
			}
		}

		prev, prevWidth := 0, 0 // the first layer has no predecessors
		for k, w := range widths {
			base, err := d.grow(w)
			if err != nil {
				return fmt.Errorf("%s: layer %d: %w", methodLayered, k, err)
			}
			for u := prev; u < prev+prevWidth; u++ {
				for v := base; v < base+w; v++ {
					d.link(u, v)
				}
			}
			prev, prevWidth = base, w
		}

		return nil
	}
}
