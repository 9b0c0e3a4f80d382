// File: greedy.go
// Role: the two baseline local strategies — full-ball greedy recoloring and
// the minimize-changes-then-minimize-colors variant.
package coloring

import "github.com/katalvlaran/localcolor/core"

// neighborhoodGreedy recolors the whole radius-bounded ball with as few
// colors as the backtracker can manage.
type neighborhoodGreedy struct {
	radius int
}

// NeighborhoodGreedy returns the baseline local strategy: collect the
// radius-bounded ball around the point of change and recolor all of it,
// escalating the color ceiling from 2 to 20. On a graph with maximum degree
// Δ it never needs more than Δ+1 colors.
//
// Failing at ceiling 20 is a programming error surfaced as ErrNoColoring.
func NeighborhoodGreedy(radius int) DynamicLocal {
	return &neighborhoodGreedy{radius: radius}
}

// Locality declares the fixed recoloring radius, independent of graph size.
func (a *neighborhoodGreedy) Locality(int) int { return a.radius }

// Step recolors the ball around changed.
// Complexity: worst-case exponential in ball size (backtracking).
func (a *neighborhoodGreedy) Step(g *core.Graph, changed *core.Node) (map[*core.Node]int, error) {
	ball, err := stepSetup(g, changed, a.radius)
	if err != nil {
		return nil, err
	}
	res := exhaustiveSearch(g, ball)
	if res == nil {
		return nil, noColoringErr(changed)
	}

	return res, nil
}

// minimalGreedy prefers touching fewer nodes over using fewer colors.
type minimalGreedy struct {
	radius int
}

// MinimalGreedy returns the minimal-change strategy: like
// NeighborhoodGreedy, but it first tries to recolor only the changed node,
// then ever longer BFS-ordered prefixes of the ball, and only escalates the
// color ceiling inside each prefix size. The policy is lexicographic:
// minimize changed nodes first, colors second. Nodes beyond the prefix keep
// their current colors and constrain the search as fixed.
func MinimalGreedy(radius int) DynamicLocal {
	return &minimalGreedy{radius: radius}
}

// Locality declares the fixed recoloring radius, independent of graph size.
func (a *minimalGreedy) Locality(int) int { return a.radius }

// Step searches prefixes of the ball, smallest first.
// Complexity: worst-case exponential in ball size (backtracking).
func (a *minimalGreedy) Step(g *core.Graph, changed *core.Node) (map[*core.Node]int, error) {
	ball, err := stepSetup(g, changed, a.radius)
	if err != nil {
		return nil, err
	}
	res := incrementalRetry(1, len(ball), func(size int) map[*core.Node]int {
		prefix := ball[:size]
		return incrementalRetry(minCeiling, maxCeiling, func(k int) map[*core.Node]int {
			return FindColoring(g, prefix, FixedCeiling(k))
		})
	})
	if res == nil {
		return nil, noColoringErr(changed)
	}

	return res, nil
}
