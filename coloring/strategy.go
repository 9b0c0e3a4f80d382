// File: strategy.go
// Role: shared strategy plumbing — step validation, the exhaustive fallback
// every strategy escalates to, and the Online↔DynamicLocal bridge.
package coloring

import (
	"fmt"

	"github.com/katalvlaran/localcolor/core"
)

// stepSetup validates a Step invocation and collects the bounded-radius ball
// around the point of change (BFS order, changed node first).
func stepSetup(g *core.Graph, changed *core.Node, radius int) ([]*core.Node, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if changed == nil {
		return nil, ErrNilNode
	}
	ball, err := g.Neighborhood(changed.ID, radius)
	if err != nil {
		return nil, fmt.Errorf("coloring: collecting radius-%d neighborhood of %q: %w", radius, changed.ID, err)
	}

	return ball, nil
}

// exhaustiveSearch is the last-resort escalation shared by every strategy:
// full recoloring of the node list under ceilings minCeiling..maxCeiling.
// A nil result here is the fatal exhausted-search condition.
func exhaustiveSearch(g *core.Graph, nodes []*core.Node) map[*core.Node]int {
	return incrementalRetry(minCeiling, maxCeiling, func(k int) map[*core.Node]int {
		return FindColoring(g, nodes, FixedCeiling(k))
	})
}

// noColoringErr wraps ErrNoColoring with the failing change point.
func noColoringErr(changed *core.Node) error {
	return fmt.Errorf("%w: neighborhood of %q has no coloring under ceiling %d", ErrNoColoring, changed.ID, maxCeiling)
}

// FirstFit is the canonical Online algorithm: the smallest non-negative
// color unused by any neighbor of the revealed node. On a graph with maximum
// degree Δ it never needs more than Δ+1 colors.
// Complexity: O(d log d) per step.
func FirstFit(g *core.Graph, changed *core.Node) (int, error) {
	if g == nil {
		return core.Uncolored, ErrNilGraph
	}
	if changed == nil {
		return core.Uncolored, ErrNilNode
	}
	nbrs, err := g.Neighbors(changed.ID)
	if err != nil {
		return core.Uncolored, fmt.Errorf("coloring: first-fit at %q: %w", changed.ID, err)
	}
	taken := make(map[int]struct{}, len(nbrs))
	for _, m := range nbrs {
		if m != changed && m.Color != core.Uncolored {
			taken[m.Color] = struct{}{}
		}
	}
	for c := 0; ; c++ {
		if _, ok := taken[c]; !ok {
			return c, nil
		}
	}
}

// adapted lifts an Online algorithm to the DynamicLocal contract with
// locality radius 0: only the point of change itself may be assigned.
type adapted struct {
	algo Online
}

// Adapt wraps an Online algorithm as a DynamicLocal one, so drivers can keep
// the two contracts structurally distinct while sharing one step path.
func Adapt(algo Online) DynamicLocal {
	return &adapted{algo: algo}
}

// Locality of an online algorithm is always 0: it may touch nothing but the
// revealed node.
func (a *adapted) Locality(int) int { return 0 }

// Step delegates to the wrapped Online algorithm and returns its single
// assignment.
func (a *adapted) Step(g *core.Graph, changed *core.Node) (map[*core.Node]int, error) {
	c, err := a.algo(g, changed)
	if err != nil {
		return nil, err
	}

	return map[*core.Node]int{changed: c}, nil
}
