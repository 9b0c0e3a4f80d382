// File: partialgrid.go
// Role: the durable grid state — cell accessors, iteration, and the induced
// graph over non-empty cells.
package partialgrid

import (
	"fmt"

	"github.com/katalvlaran/localcolor/core"
)

// PartialGrid is a rectangular grid of optionally-empty int cells. The grid
// is the only durable state of the engine; every step induces a throwaway
// graph from it and copies results back by coordinate.
type PartialGrid struct {
	rows, cols int
	values     []int  // row-major backing array
	present    []bool // cell existence, parallel to values
	opts       Options
}

// New creates an empty rows×cols grid.
// Complexity: O(rows×cols).
func New(rows, cols int, opts ...Option) (*PartialGrid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrEmptyGrid, rows, cols)
	}

	return &PartialGrid{
		rows:    rows,
		cols:    cols,
		values:  make([]int, rows*cols),
		present: make([]bool, rows*cols),
		opts:    buildOptions(opts),
	}, nil
}

// Rows returns the grid height.
func (p *PartialGrid) Rows() int { return p.rows }

// Cols returns the grid width.
func (p *PartialGrid) Cols() int { return p.cols }

// inBounds reports whether (r,c) lies inside the rectangle.
func (p *PartialGrid) inBounds(r, c int) bool {
	return r >= 0 && r < p.rows && c >= 0 && c < p.cols
}

// index maps a coordinate into the backing arrays.
func (p *PartialGrid) index(r, c int) int { return r*p.cols + c }

// Has reports whether (r,c) holds a value. Out-of-bounds coordinates are
// simply absent.
func (p *PartialGrid) Has(r, c int) bool {
	return p.inBounds(r, c) && p.present[p.index(r, c)]
}

// Get returns the value at (r,c).
// Errors: ErrOutOfBounds, ErrCellEmpty.
func (p *PartialGrid) Get(r, c int) (int, error) {
	if !p.inBounds(r, c) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, r, c)
	}
	i := p.index(r, c)
	if !p.present[i] {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrCellEmpty, r, c)
	}

	return p.values[i], nil
}

// Put stores v at (r,c), marking the cell existing.
// Errors: ErrOutOfBounds.
func (p *PartialGrid) Put(r, c, v int) error {
	if !p.inBounds(r, c) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, r, c)
	}
	i := p.index(r, c)
	p.values[i] = v
	p.present[i] = true

	return nil
}

// Clear empties the cell at (r,c).
// Errors: ErrOutOfBounds.
func (p *PartialGrid) Clear(r, c int) error {
	if !p.inBounds(r, c) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, r, c)
	}
	i := p.index(r, c)
	p.values[i] = 0
	p.present[i] = false

	return nil
}

// CountNonEmpty returns the number of existing cells.
// Complexity: O(rows×cols).
func (p *PartialGrid) CountNonEmpty() int {
	n := 0
	for _, ok := range p.present {
		if ok {
			n++
		}
	}

	return n
}

// ForEach visits every coordinate in row-major order.
func (p *PartialGrid) ForEach(fn func(Coord)) {
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			fn(Coord{Row: r, Col: c})
		}
	}
}

// ForNonEmpty visits every existing cell with its value, row-major.
func (p *PartialGrid) ForNonEmpty(fn func(Coord, int)) {
	p.ForEach(func(at Coord) {
		if i := p.index(at.Row, at.Col); p.present[i] {
			fn(at, p.values[i])
		}
	})
}

// ForEmpty visits every empty coordinate, row-major.
func (p *PartialGrid) ForEmpty(fn func(Coord)) {
	p.ForEach(func(at Coord) {
		if !p.present[p.index(at.Row, at.Col)] {
			fn(at)
		}
	})
}

// EmptyCells returns all empty coordinates in row-major order.
func (p *PartialGrid) EmptyCells() []Coord {
	var out []Coord
	p.ForEmpty(func(at Coord) { out = append(out, at) })

	return out
}

// nodeID names the graph node for a cell.
func nodeID(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }

// Graph induces a fresh graph over the existing cells under the 4-neighbor
// relation, plus a coordinate lookup for the write-back path. Node objects
// are new on every call; nothing survives across steps. Each cell adds only
// its upward and leftward edges, so no edge is visited twice.
// Complexity: O(rows×cols).
func (p *PartialGrid) Graph() (*core.Graph, map[Coord]*core.Node) {
	g := core.NewGraph()
	lookup := make(map[Coord]*core.Node, p.CountNonEmpty())

	p.ForNonEmpty(func(at Coord, v int) {
		// IDs are unique per coordinate, so AddNode cannot fail here.
		n, _ := g.AddNode(nodeID(at.Row, at.Col), v)
		lookup[at] = n
		if p.Has(at.Row-1, at.Col) {
			_ = g.AddEdge(n.ID, nodeID(at.Row-1, at.Col))
		}
		if p.Has(at.Row, at.Col-1) {
			_ = g.AddEdge(n.ID, nodeID(at.Row, at.Col-1))
		}
	})

	return g, lookup
}
