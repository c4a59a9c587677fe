// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_chain.go - Chain(n) and Antichain(n).

package builder

import "fmt"

const (
	methodChain     = "Chain"
	methodAntichain = "Antichain"
	minChainNodes   = 1
)

// Chain returns a Constructor for the path 0→1→…→n-1, a total order with a
// single topological ordering.
func Chain(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
		}
		base, err := d.grow(n)
		if err != nil {
			return fmt.Errorf("%s: %w", methodChain, err)
		}
		for i := 1; i < n; i++ {
			d.link(base+i-1, base+i)
		}

		return nil
	}
}

// Antichain returns a Constructor for n vertices and no edges; every one of
// the n! permutations is a topological ordering.
func Antichain(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodAntichain, n, minChainNodes, ErrTooFewVertices)
		}
		if _, err := d.grow(n); err != nil {
			return fmt.Errorf("%s: %w", methodAntichain, err)
		}

		return nil
	}
}
