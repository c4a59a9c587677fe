// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// options.go - functional options and the resolved builderConfig.
//
// Option constructors panic on meaningless input (nil RNG); constructors
// themselves never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvtopo/digraph"
)

// BuilderOption customizes a Build call.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng       *rand.Rand       // nil means "no randomness"
	graphOpts []digraph.Option // forwarded to digraph.New
}

// newBuilderConfig applies opts in order over the deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithGraphOptions forwards options to digraph.New, e.g. a raised
// digraph.WithMaxVertices for very large fixtures. The resolved vertex limit
// also bounds the draft while constructors add vertices.
func WithGraphOptions(opts ...digraph.Option) BuilderOption {
	return func(c *builderConfig) {
		c.graphOpts = append(c.graphOpts, opts...)
	}
}
