// File: random.go
// Role: the cheap probabilistic strategy — uniform random guesses over a
// small palette with a deterministic exhaustive fallback.
package coloring

import (
	"math/rand"

	"github.com/katalvlaran/localcolor/core"
)

// randomColoring guesses ball colorings until one is locally valid.
type randomColoring struct {
	radius   int
	opts     Options
	rng      *rand.Rand
	fallback DynamicLocal
}

// RandomColoring returns the randomized local strategy: assign every node in
// the radius-bounded ball a uniform color from a fixed small palette and
// accept the first locally valid attempt. When the attempt budget is spent
// (default 1e6), it falls back to MinimalGreedy's exhaustive search, which
// restores the correctness guarantee.
//
// The generator is seeded through WithSeed; seed 0 selects a fixed default,
// so runs are reproducible unless a seed is chosen explicitly.
func RandomColoring(radius int, opts ...Option) DynamicLocal {
	o := buildOptions(opts)

	return &randomColoring{
		radius:   radius,
		opts:     o,
		rng:      rngFromSeed(o.Seed),
		fallback: MinimalGreedy(radius),
	}
}

// Locality declares the fixed recoloring radius, independent of graph size.
func (a *randomColoring) Locality(int) int { return a.radius }

// Step guesses up to MaxAttempts ball colorings, then delegates to the
// exhaustive fallback.
// Complexity: O(MaxAttempts × ball × degree) before fallback.
func (a *randomColoring) Step(g *core.Graph, changed *core.Node) (map[*core.Node]int, error) {
	ball, err := stepSetup(g, changed, a.radius)
	if err != nil {
		return nil, err
	}

	guess := make(map[*core.Node]int, len(ball))
	for attempt := 0; attempt < a.opts.MaxAttempts; attempt++ {
		for _, n := range ball {
			guess[n] = a.rng.Intn(a.opts.PaletteSize)
		}
		if assignmentValid(g, guess) {
			return guess, nil
		}
	}

	a.opts.Logger.Debug("random attempts exhausted, falling back to exhaustive search",
		"change", changed.ID, "attempts", a.opts.MaxAttempts)

	return a.fallback.Step(g, changed)
}
