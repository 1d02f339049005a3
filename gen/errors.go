// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the gen package.
// Callers branch with errors.Is; context is attached with %w.

package gen

import "errors"

// ErrTooFewVertices indicates n is smaller than the constructor allows.
var ErrTooFewVertices = errors.New("gen: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("gen: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was called without an RNG.
var ErrNeedRandSource = errors.New("gen: rng is required")
