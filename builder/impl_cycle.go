// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_cycle.go - Cycle(n), the cyclic fixture.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 1
)

// Cycle returns a Constructor for the directed ring 0→1→…→n-1→0.
// Cycle(1) is a single self-loop and Cycle(2) the 2-cycle 0⇄1.
func Cycle(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base, err := d.grow(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		for i := 0; i < n; i++ {
			d.link(base+i, base+(i+1)%n)
		}

		return nil
	}
}
