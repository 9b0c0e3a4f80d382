// File: step.go
// Role: running coloring algorithms at a cell — placeholder handling, the
// locality audit, and write-back by coordinate.
package partialgrid

import (
	"fmt"

	"github.com/katalvlaran/localcolor/coloring"
	"github.com/katalvlaran/localcolor/core"
)

// cellState snapshots one cell for rollback on a failed step.
type cellState struct {
	value   int
	present bool
}

// placeholder marks (r,c) as existing-but-uncolored and returns the prior
// state, so a failed step can be rolled back without a trace.
func (p *PartialGrid) placeholder(r, c int) cellState {
	i := p.index(r, c)
	prior := cellState{value: p.values[i], present: p.present[i]}
	p.values[i] = core.Uncolored
	p.present[i] = true

	return prior
}

// restore puts a snapshotted cell state back.
func (p *PartialGrid) restore(r, c int, s cellState) {
	i := p.index(r, c)
	p.values[i] = s.value
	p.present[i] = s.present
}

// stepSetup validates the step inputs and raises the placeholder. It returns
// the induced graph, the changed node, the coordinate lookup, and the prior
// cell state for rollback.
func (p *PartialGrid) stepSetup(r, c int, algoNil bool) (*core.Graph, *core.Node, map[Coord]*core.Node, cellState, error) {
	if !p.inBounds(r, c) {
		return nil, nil, nil, cellState{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, r, c)
	}
	if algoNil {
		return nil, nil, nil, cellState{}, ErrNilAlgorithm
	}
	prior := p.placeholder(r, c)
	g, lookup := p.Graph()

	return g, lookup[Coord{Row: r, Col: c}], lookup, prior, nil
}

// OnlineStep reveals (or recolors) the cell at (r,c) with an online
// algorithm: placeholder, fresh graph, one invocation, one stored color.
// A negative color counts as no value; the step is rolled back.
// Complexity: O(rows×cols) plus the algorithm.
func (p *PartialGrid) OnlineStep(r, c int, algo coloring.Online) error {
	g, changed, _, prior, err := p.stepSetup(r, c, algo == nil)
	if err != nil {
		return err
	}

	color, err := algo(g, changed)
	if err != nil {
		p.restore(r, c, prior)
		return fmt.Errorf("online step at (%d,%d): %w", r, c, err)
	}
	if color < 0 {
		p.restore(r, c, prior)
		return fmt.Errorf("%w: (%d,%d)", ErrNoValue, r, c)
	}

	return p.Put(r, c, color)
}

// DynamicStep reveals (or recolors) the cell at (r,c) with a dynamic local
// algorithm. Every color in the returned assignment is written back by
// coordinate, including the changed cell's, which must be present and
// non-negative.
//
// Each other recolored node is audited against the algorithm's declared
// locality radius using its true graph distance from the point of change.
// Locality is a should-hold contract: violations are logged and the value is
// written anyway.
// Complexity: O(rows×cols) plus one BFS plus the algorithm.
func (p *PartialGrid) DynamicStep(r, c int, algo coloring.DynamicLocal) error {
	g, changed, lookup, prior, err := p.stepSetup(r, c, algo == nil)
	if err != nil {
		return err
	}

	res, err := algo.Step(g, changed)
	if err != nil {
		p.restore(r, c, prior)
		return fmt.Errorf("dynamic step at (%d,%d): %w", r, c, err)
	}
	if color, ok := res[changed]; !ok || color < 0 {
		p.restore(r, c, prior)
		return fmt.Errorf("%w: (%d,%d)", ErrNoValue, r, c)
	}

	p.auditLocality(g, changed, res, algo.Locality(g.NodeCount()))

	byNode := make(map[*core.Node]Coord, len(lookup))
	for at, n := range lookup {
		byNode[n] = at
	}
	for n, color := range res {
		at, ok := byNode[n]
		if !ok {
			continue // not a grid node; nothing to write
		}
		_ = p.Put(at.Row, at.Col, color)
	}

	return nil
}

// auditLocality checks every recolored node's graph distance from the point
// of change against the declared limit and logs each violation.
func (p *PartialGrid) auditLocality(g *core.Graph, changed *core.Node, res map[*core.Node]int, limit int) {
	dist, err := g.Distances(changed.ID, 0)
	if err != nil {
		return
	}
	for n := range res {
		if n == changed {
			continue
		}
		d, reachable := dist[n.ID]
		if !reachable || d > limit {
			p.opts.Logger.Warn("locality violated",
				"change", changed.ID, "node", n.ID, "distance", d, "limit", limit)
		}
	}
}
