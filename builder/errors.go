// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// errors.go - sentinel errors for the builder package.
// Callers branch with errors.Is; constructors add context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, a layer width, the
// number of layers) is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the assembled draft was rejected, e.g. a nil
// constructor. A constructor that would pass the digraph vertex limit fails
// earlier with digraph.ErrTooManyVertices.
var ErrConstructFailed = errors.New("builder: construction failed")
