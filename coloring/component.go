// File: component.go
// Role: region analysis around the change point and the component-sealing
// strategy BorderComponentColoring.
//
// A region is a connected component of regularly colored nodes (0/1) outside
// the ball, reachable without crossing border-colored nodes, that touches
// the ball. Each region votes a parity: for a member at distance d from the
// point of change holding color c, the phase (d+c) mod 2 is invariant across
// the whole region when it is properly 2-colored. Regions whose majority
// phases disagree cannot be merged by any 2-coloring of the ball — a latent
// collision between independently grown regions. Sealing resolves it by
// raising a border ring between the minority region and the rest.
package coloring

import (
	"sort"

	"github.com/katalvlaran/localcolor/core"
)

// region is one attachment component with its parity classification.
type region struct {
	nodes       []*core.Node
	attachments []*core.Node // members adjacent to the ball
	votes       [2]int       // phase votes from attachment nodes
	parity      int          // majority phase; ties break toward even
	minDist     int          // closest member to the point of change
}

// size returns the member count of the region.
func (r *region) size() int { return len(r.nodes) }

// analyzeRegions recomputes the attachment regions of the ball from scratch:
// components of colored non-border nodes outside the ball, kept only when
// they touch the ball and reach the size threshold. Regions are discovered
// in the graph's insertion order, so the result is deterministic.
// Complexity: O(V + E).
func analyzeRegions(g *core.Graph, inBall map[*core.Node]struct{}, dist map[string]int, minSize int) []*region {
	include := func(n *core.Node) bool {
		if _, ok := inBall[n]; ok {
			return false
		}
		return n.Color == 0 || n.Color == 1
	}

	var out []*region
	for _, comp := range g.Components(include) {
		if len(comp) < minSize {
			continue // too small to matter
		}
		r := &region{nodes: comp, minDist: -1}
		for _, n := range comp {
			d, reachable := dist[n.ID]
			if !reachable {
				continue
			}
			if r.minDist < 0 || d < r.minDist {
				r.minDist = d
			}
			if attachesToBall(g, n, inBall) {
				r.attachments = append(r.attachments, n)
				r.votes[(d+n.Color)%2]++
			}
		}
		if len(r.attachments) == 0 {
			continue // not adjacent to the neighborhood boundary
		}
		if r.votes[1] > r.votes[0] {
			r.parity = 1
		}
		out = append(out, r)
	}

	return out
}

// attachesToBall reports whether n has a neighbor inside the ball.
func attachesToBall(g *core.Graph, n *core.Node, inBall map[*core.Node]struct{}) bool {
	nbrs, _ := g.Neighbors(n.ID)
	for _, m := range nbrs {
		if _, ok := inBall[m]; ok {
			return true
		}
	}

	return false
}

// majorityParity returns the size-weighted dominant phase of the regions;
// ties and the empty case resolve to even.
func majorityParity(regions []*region) int {
	var weight [2]int
	for _, r := range regions {
		weight[r.parity] += r.size()
	}
	if weight[1] > weight[0] {
		return 1
	}

	return 0
}

// sealRing grows a border ring inside the ball against the given region: a
// bounded BFS from the ball nodes adjacent to the region's attachments,
// stopping at the first ring whose nodes all sit at the required distance
// parity from the point of change. Returns nil when no such ring exists
// inside the ball.
// Complexity: O(ball × degree).
func sealRing(g *core.Graph, ball []*core.Node, inBall map[*core.Node]struct{}, r *region, required int, dist map[string]int) []*core.Node {
	seen := make(map[*core.Node]struct{}, len(ball))
	var frontier []*core.Node
	// Seed with ball nodes touching the region, in ball (BFS) order.
	for _, n := range ball {
		if _, ok := seen[n]; ok {
			continue
		}
		nbrs, _ := g.Neighbors(n.ID)
		for _, m := range nbrs {
			if containsNode(r.attachments, m) {
				seen[n] = struct{}{}
				frontier = append(frontier, n)
				break
			}
		}
	}

	for len(frontier) > 0 {
		if ringOnParity(frontier, required, dist) {
			return frontier
		}
		var next []*core.Node
		for _, n := range frontier {
			nbrs, _ := g.Neighbors(n.ID)
			for _, m := range nbrs {
				if _, ok := inBall[m]; !ok {
					continue
				}
				if _, ok := seen[m]; ok {
					continue
				}
				seen[m] = struct{}{}
				next = append(next, m)
			}
		}
		frontier = next
	}

	return nil
}

// ringOnParity reports whether every ring node sits at the required
// distance parity.
func ringOnParity(ring []*core.Node, required int, dist map[string]int) bool {
	for _, n := range ring {
		if dist[n.ID]%2 != required {
			return false
		}
	}

	return true
}

// containsNode reports membership of n in list (attachment lists are tiny).
func containsNode(list []*core.Node, n *core.Node) bool {
	for _, m := range list {
		if m == n {
			return true
		}
	}

	return false
}

// propagateForced applies single-choice constraint propagation inside the
// ball: any unassigned ball node whose decided neighbors (assigned this
// step, or fixed outside the ball) already use both color 0 and color 1 has
// no 2-coloring left and must become the border color. Runs to fixpoint.
// Complexity: O(ball² × degree) worst case.
func propagateForced(g *core.Graph, ball []*core.Node, assigned map[*core.Node]int, inBall map[*core.Node]struct{}) {
	for changed := true; changed; {
		changed = false
		for _, n := range ball {
			if _, done := assigned[n]; done {
				continue
			}
			var has0, has1 bool
			nbrs, _ := g.Neighbors(n.ID)
			for _, m := range nbrs {
				c, decided := assigned[m]
				if !decided {
					if _, ok := inBall[m]; ok {
						continue // still to be recolored, color unknown
					}
					c = m.Color
				}
				switch c {
				case 0:
					has0 = true
				case 1:
					has1 = true
				}
			}
			if has0 && has1 {
				assigned[n] = BorderColor
				n.Color = BorderColor
				changed = true
			}
		}
	}
}

// colorWithMajorityBorder fills the remaining nodes, rationing the border
// color: it retries with an increasing border budget, and the ceiling admits
// the border color only on the majority parity class while the running
// histogram stays under budget. Budget 0 is a plain 2-coloring, so border
// nodes are introduced only when unavoidable, and as few as possible.
func colorWithMajorityBorder(g *core.Graph, nodes []*core.Node, parity int, dist map[string]int) map[*core.Node]int {
	return incrementalRetry(0, len(nodes), func(budget int) map[*core.Node]int {
		ceil := func(n *core.Node, used map[int]int) int {
			if dist[n.ID]%2 == parity && used[BorderColor] < budget {
				return BorderColor + 1
			}
			return BorderColor
		}
		return FindColoring(g, nodes, ceil)
	})
}

// borderComponent implements BorderComponentColoring.
type borderComponent struct {
	radius int
	opts   Options
}

// BorderComponentColoring returns the component-sealing strategy. Each step
// classifies the attachment regions of the ball by majority parity, seals
// the smallest non-conforming regions behind a parity-consistent border
// ring, propagates the forced single-choice moves that sealing creates, and
// fills the rest of the ball with the fewest border nodes the backtracker
// can manage. Failed seals and residual conflicts are advisory: logged,
// then left to the exhaustive fallback.
func BorderComponentColoring(radius int, opts ...Option) DynamicLocal {
	return &borderComponent{radius: radius, opts: buildOptions(opts)}
}

// Locality declares the fixed recoloring radius, independent of graph size.
func (a *borderComponent) Locality(int) int { return a.radius }

// Step seals minority regions and recolors the ball.
// Complexity: O(V+E) analysis plus worst-case exponential backtracking.
func (a *borderComponent) Step(g *core.Graph, changed *core.Node) (map[*core.Node]int, error) {
	ball, err := stepSetup(g, changed, a.radius)
	if err != nil {
		return nil, err
	}
	inBall := make(map[*core.Node]struct{}, len(ball))
	for _, n := range ball {
		inBall[n] = struct{}{}
	}
	dist, err := g.Distances(changed.ID, 0)
	if err != nil {
		return nil, err
	}

	regions := analyzeRegions(g, inBall, dist, a.opts.MinComponentSize)
	maj := majorityParity(regions)

	// Collect minority regions, smallest first (greedy sealing order).
	var minority []*region
	for _, r := range regions {
		if r.parity != maj {
			minority = append(minority, r)
		}
	}
	if len(minority) == 0 {
		// All regions agree: a plain 2-coloring merges them when one exists.
		if res := FindColoring(g, ball, FixedCeiling(minCeiling)); res != nil {
			return res, nil
		}
	}
	sort.SliceStable(minority, func(i, j int) bool { return minority[i].size() < minority[j].size() })

	assigned := make(map[*core.Node]int, len(ball))
	for _, r := range minority {
		ring := sealRing(g, ball, inBall, r, maj, dist)
		if ring == nil {
			a.opts.Logger.Warn("unable to seal non-conforming component",
				"change", changed.ID, "componentSize", r.size(), "componentParity", r.parity, "majorityParity", maj)
			continue
		}
		for _, n := range ring {
			assigned[n] = BorderColor
			n.Color = BorderColor
		}
	}

	propagateForced(g, ball, assigned, inBall)

	if err = fillRemainder(g, ball, assigned, maj, dist, a.opts, changed); err != nil {
		return nil, err
	}

	return assigned, nil
}

// fillRemainder colors every still-unassigned ball node via the
// majority-border fill, escalating to the exhaustive search, and records the
// result into assigned. The final local-validity check is advisory.
func fillRemainder(g *core.Graph, ball []*core.Node, assigned map[*core.Node]int, maj int, dist map[string]int, opts Options, changed *core.Node) error {
	var remaining []*core.Node
	for _, n := range ball {
		if _, done := assigned[n]; !done {
			remaining = append(remaining, n)
		}
	}
	if len(remaining) > 0 {
		fill := colorWithMajorityBorder(g, remaining, maj, dist)
		if fill == nil {
			opts.Logger.Warn("majority-border fill failed, falling back to exhaustive search",
				"change", changed.ID, "remaining", len(remaining))
			fill = exhaustiveSearch(g, remaining)
		}
		if fill == nil {
			return noColoringErr(changed)
		}
		for n, c := range fill {
			assigned[n] = c
			n.Color = c
		}
	}

	if !assignmentValid(g, assigned) {
		opts.Logger.Warn("step left local conflicts in the neighborhood", "change", changed.ID)
	}

	return nil
}
