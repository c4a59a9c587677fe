// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_random.go - RandomDAG(n, p).
//
// Trial order is fixed (i asc, then j asc over j > i), so a given seed always
// yields the same edge set.

package builder

import "fmt"

const (
	methodRandomDAG = "RandomDAG"
	minRandomNodes  = 1
	probMin         = 0.0
	probMax         = 1.0
)

// RandomDAG returns a Constructor that includes each forward pair i→j (i<j)
// independently with probability p. Edges only point to higher indices, so
// the result is acyclic by construction.
//
// An RNG is required for 0 < p < 1; p = 0 and p = 1 are deterministic.
func RandomDAG(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomDAG, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomDAG, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomDAG, ErrNeedRandSource)
		}

		base, err := d.grow(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodRandomDAG, err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch p {
				case probMin:
					keep = false
				case probMax:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if keep {
					d.link(base+i, base+j)
				}
			}
		}

		return nil
	}
}
