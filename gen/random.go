// SPDX-License-Identifier: MIT
//
// random.go — RandomDAG(n, p, rng).
//
// Model:
//   - Draw a random ranking of 0..n-1 (rng.Perm).
//   - For each ordered pair of ranks (i, j), i < j, add rank[i] → rank[j]
//     with probability p. Edges only point up the ranking, so the result is
//     acyclic by construction while vertex ids carry no ordering hint.
//
// Determinism:
//   - Trial order is i asc, then j asc; outcomes are fixed for a fixed seed.
//
// Complexity: O(n²) Bernoulli trials.

package gen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/toposort/digraph"
)

const (
	minRandomVertices = 0
	probMin           = 0.0
	probMax           = 1.0
)

// RandomDAG samples a DAG over n vertices with independent edge probability p.
// rng is required when 0 < p < 1; for p ∈ {0, 1} a nil rng keeps the
// identity ranking.
func RandomDAG(n int, p float64, rng *rand.Rand) (*digraph.Graph, error) {
	// 1) Validate parameters early
	if n < minRandomVertices {
		return nil, fmt.Errorf("RandomDAG: n=%d < min=%d: %w", n, minRandomVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("RandomDAG: p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("RandomDAG: %w", ErrNeedRandSource)
	}

	g, err := digraph.New(n)
	if err != nil {
		return nil, err
	}

	// 2) Ranking: identity without an RNG, else a random permutation
	rank := make([]int, n)
	for i := range rank {
		rank[i] = i
	}
	if rng != nil {
		rank = rng.Perm(n)
	}

	// 3) Bernoulli trials over rank pairs
	var keep bool
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch p {
			case probMin:
				keep = false
			case probMax:
				keep = true
			default:
				keep = rng.Float64() < p
			}
			if !keep {
				continue
			}
			if err = g.AddEdge(rank[i], rank[j]); err != nil {
				return nil, fmt.Errorf("RandomDAG: AddEdge(%d→%d): %w", rank[i], rank[j], err)
			}
		}
	}

	return g, nil
}
