// Package coloring - RNG utilities for the randomized strategy.
//
// Determinism policy: same seed ⇒ identical guesses across platforms; no
// time-based sources anywhere. math/rand.Rand is not goroutine-safe, but a
// strategy instance is single-writer by contract, so each instance owns one
// generator.
package coloring

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
