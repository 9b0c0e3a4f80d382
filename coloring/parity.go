// File: parity.go
// Role: parity-aware border coloring — the first strategy that keeps
// independently grown 2-colored regions mutually consistent without global
// coordination.
//
// Mechanism: a plain 2-coloring is always preferred. When the ball admits
// none, a border color may be introduced, but only at graph distances from
// the point of change whose parity agrees with the nearest border node
// already standing outside the ball. Every wall therefore lives on a single
// parity class, so walls raised by far-apart steps cannot collide.
package coloring

import "github.com/katalvlaran/localcolor/core"

// parityBorder implements ParityBorderColoring.
type parityBorder struct {
	radius int
	opts   Options
}

// ParityBorderColoring returns the parity-aware border strategy:
//
//  1. try a plain 2-coloring of the ball;
//  2. else find the nearest existing border-colored node outside the ball
//     and allow new border nodes only at matching distance parity;
//  3. with no existing border anywhere, fall back to an unconstrained
//     3-coloring;
//  4. as a last resort run the exhaustive search up to ceiling 20
//     (ErrNoColoring if even that fails).
func ParityBorderColoring(radius int, opts ...Option) DynamicLocal {
	return &parityBorder{radius: radius, opts: buildOptions(opts)}
}

// Locality declares the fixed recoloring radius, independent of graph size.
func (a *parityBorder) Locality(int) int { return a.radius }

// Step colors the ball with the parity discipline described above.
// Complexity: one full BFS plus worst-case exponential backtracking.
func (a *parityBorder) Step(g *core.Graph, changed *core.Node) (map[*core.Node]int, error) {
	ball, err := stepSetup(g, changed, a.radius)
	if err != nil {
		return nil, err
	}

	// Preferred outcome: the ball extends its surroundings as a plain
	// 2-colored region.
	if res := FindColoring(g, ball, FixedCeiling(minCeiling)); res != nil {
		return res, nil
	}

	dist, err := g.Distances(changed.ID, 0)
	if err != nil {
		return nil, err
	}
	parity, found := nearestBorderParity(g, ball, dist)

	if found {
		// A wall already stands somewhere out there: new border nodes must
		// sit on the same parity class relative to the point of change.
		ceil := func(n *core.Node, _ map[int]int) int {
			if dist[n.ID]%2 == parity {
				return BorderColor + 1
			}
			return BorderColor
		}
		if res := FindColoring(g, ball, ceil); res != nil {
			return res, nil
		}
		a.opts.Logger.Warn("parity-constrained border coloring failed, relaxing",
			"change", changed.ID, "parity", parity)
	} else if res := FindColoring(g, ball, FixedCeiling(BorderColor+1)); res != nil {
		// No wall exists yet: this step is free to define the parity class.
		return res, nil
	}

	res := exhaustiveSearch(g, ball)
	if res == nil {
		return nil, noColoringErr(changed)
	}

	return res, nil
}

// nearestBorderParity walks the distance map for the closest border-colored
// node outside the ball and returns the parity of its distance. found is
// false when no such node exists.
func nearestBorderParity(g *core.Graph, ball []*core.Node, dist map[string]int) (parity int, found bool) {
	inBall := make(map[*core.Node]struct{}, len(ball))
	for _, n := range ball {
		inBall[n] = struct{}{}
	}

	best := -1
	for _, n := range g.Nodes() {
		if n.Color != BorderColor {
			continue
		}
		if _, ok := inBall[n]; ok {
			continue
		}
		d, reachable := dist[n.ID]
		if !reachable {
			continue
		}
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0, false
	}

	return best % 2, true
}
