// File: anticollision.go
// Role: the most elaborate strategy — anti-collision coloring over an
// explicit containment DAG of attachment regions.
//
// Where BorderComponentColoring seals every minority region directly,
// AntiCollisionColoring first decides WHICH side of each parity conflict
// builds the wall. Conflicting regions that attach close to each other are
// linked in a containment DAG (outer region → contained region, ordered by
// proximity to the point of change); depth and height over that DAG pick
// the cheaper side — the one with the smaller subtree — to raise a fresh
// separating wall. Along the containment tree, outward from the point of
// change, the three colors rotate: inside-of-border phase, outside-of-border
// phase, border.
package coloring

import (
	"sort"

	"github.com/katalvlaran/localcolor/core"
)

// containment is the DAG over conflict-linked regions. edges[i] = (outer,
// inner) region indices; depth counts containment levels from the outermost
// regions, height the longest chain below a region.
type containment struct {
	edges  [][2]int
	depth  []int
	height []int
}

// conflictRange is the attachment proximity (in hops) at which two
// opposite-parity regions are considered on a collision course.
const conflictRange = 2

// newContainment links every pair of opposite-parity regions whose
// attachments lie within conflictRange hops of each other. The region
// closer to the point of change is the outer endpoint (larger region wins
// ties, then lower index), so edges follow a total order and the graph is
// acyclic by construction. Depth and height are computed along that order.
// Complexity: O(regions² × attachments) small-ball BFS probes.
func newContainment(g *core.Graph, regions []*region) *containment {
	d := &containment{
		depth:  make([]int, len(regions)),
		height: make([]int, len(regions)),
	}
	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			if regions[i].parity == regions[j].parity {
				continue
			}
			if !attachmentsClose(g, regions[i], regions[j]) {
				continue
			}
			outer, inner := i, j
			if containsBefore(regions[j], regions[i], j, i) {
				outer, inner = j, i
			}
			d.edges = append(d.edges, [2]int{outer, inner})
		}
	}

	// Longest-path depth/height along the containment order. Processing
	// edges sorted by outer depth keeps both passes a single sweep because
	// edge direction follows a total order over regions.
	sort.SliceStable(d.edges, func(a, b int) bool {
		return containsBefore(regions[d.edges[a][0]], regions[d.edges[b][0]], d.edges[a][0], d.edges[b][0])
	})
	for _, e := range d.edges {
		if d.depth[e[1]] < d.depth[e[0]]+1 {
			d.depth[e[1]] = d.depth[e[0]] + 1
		}
	}
	for i := len(d.edges) - 1; i >= 0; i-- {
		e := d.edges[i]
		if d.height[e[0]] < d.height[e[1]]+1 {
			d.height[e[0]] = d.height[e[1]] + 1
		}
	}

	return d
}

// containsBefore is the total containment order: nearer to the point of
// change first, then larger, then lower index.
func containsBefore(a, b *region, ia, ib int) bool {
	if a.minDist != b.minDist {
		return a.minDist < b.minDist
	}
	if a.size() != b.size() {
		return a.size() > b.size()
	}

	return ia < ib
}

// attachmentsClose reports whether any attachment of a lies within
// conflictRange hops of an attachment of b.
func attachmentsClose(g *core.Graph, a, b *region) bool {
	targets := make(map[string]struct{}, len(b.attachments))
	for _, n := range b.attachments {
		targets[n.ID] = struct{}{}
	}
	for _, n := range a.attachments {
		near, err := g.Distances(n.ID, conflictRange)
		if err != nil {
			continue
		}
		for id := range targets {
			if _, ok := near[id]; ok {
				return true
			}
		}
	}

	return false
}

// rotationColor is the three-color rotation along the containment tree: at
// containment level l, a node at distance d continues phase p shifted by l,
// alternating the inside-of-border and outside-of-border colors between
// consecutive walls. The border color itself is the third member of the
// rotation, placed by the walls.
func rotationColor(d, phase, level int) int {
	return (d + phase + level) % 2
}

// antiCollision implements AntiCollisionColoring.
type antiCollision struct {
	radius int
	opts   Options
}

// AntiCollisionColoring returns the containment-aware sealing strategy: it
// builds the containment DAG over conflicting attachment regions, lets the
// smaller-height side of each conflict build the fresh separating wall, and
// rotates the three colors outward from the point of change along the
// containment tree. Everything left undecided is filled exactly like
// BorderComponentColoring, and the final validity check stays advisory.
func AntiCollisionColoring(radius int, opts ...Option) DynamicLocal {
	return &antiCollision{radius: radius, opts: buildOptions(opts)}
}

// Locality declares the fixed recoloring radius, independent of graph size.
func (a *antiCollision) Locality(int) int { return a.radius }

// Step resolves region conflicts through the containment DAG, then fills.
// Complexity: O(V+E) analysis plus worst-case exponential backtracking.
func (a *antiCollision) Step(g *core.Graph, changed *core.Node) (map[*core.Node]int, error) {
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
	dag := newContainment(g, regions)

	if len(dag.edges) == 0 {
		// No collision course anywhere: prefer the plain 2-coloring merge.
		if res := FindColoring(g, ball, FixedCeiling(minCeiling)); res != nil {
			return res, nil
		}
	}

	assigned := make(map[*core.Node]int, len(ball))
	for _, e := range dag.edges {
		outer, inner := regions[e[0]], regions[e[1]]
		// The side with the smaller subtree height builds the fresh wall —
		// the cheaper half of the conflict to seal off.
		builder, other := inner, outer
		builderIdx := e[1]
		if dag.height[e[0]] < dag.height[e[1]] {
			builder, other = outer, inner
			builderIdx = e[0]
		}
		// Walls always live on the majority parity class so that rings built
		// by different steps can meet without touching.
		ring := sealRing(g, ball, inBall, builder, maj, dist)
		if ring == nil {
			a.opts.Logger.Warn("no parity-consistent wall inside neighborhood",
				"change", changed.ID, "builderSize", builder.size(),
				"builderParity", builder.parity, "otherParity", other.parity)
			continue
		}
		level := dag.depth[builderIdx]
		for _, n := range ring {
			assigned[n] = BorderColor
			n.Color = BorderColor
		}
		// Collar cells adjacent to the fresh wall continue the rotation for
		// this containment level.
		for _, w := range ring {
			nbrs, _ := g.Neighbors(w.ID)
			for _, m := range nbrs {
				if _, ok := inBall[m]; !ok {
					continue
				}
				if _, done := assigned[m]; done {
					continue
				}
				c := rotationColor(dist[m.ID], maj, level)
				assigned[m] = c
				m.Color = c
			}
		}
	}

	propagateForced(g, ball, assigned, inBall)

	if err = fillRemainder(g, ball, assigned, maj, dist, a.opts, changed); err != nil {
		return nil, err
	}

	return assigned, nil
}
