// SPDX-License-Identifier: MIT
// Package gen builds deterministic graph fixtures for tests, benchmarks and
// demos: the fixed demo DAG, chains, cycles, edgeless graphs and seeded
// random DAGs.
//
// Contract:
//   - Vertices are 0..n-1; edges are emitted in a stable, documented order.
//   - Invalid parameters return sentinel errors (never panic).
//   - RandomDAG is deterministic for a fixed *rand.Rand seed.
//
// Errors:
//
//	ErrTooFewVertices     - n below the constructor's minimum.
//	ErrInvalidProbability - p outside [0, 1].
//	ErrNeedRandSource     - 0 < p < 1 without an RNG.
package gen
