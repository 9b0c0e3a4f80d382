package partialgrid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localcolor/coloring"
	"github.com/katalvlaran/localcolor/core"
	"github.com/katalvlaran/localcolor/partialgrid"
)

// mustGet reads a cell that is expected to exist.
func mustGet(t *testing.T, p *partialgrid.PartialGrid, r, c int) int {
	t.Helper()
	v, err := p.Get(r, c)
	require.NoError(t, err)
	return v
}

func TestOnlineStep_FirstFitSequence(t *testing.T) {
	p, err := partialgrid.New(1, 3)
	require.NoError(t, err)

	require.NoError(t, p.OnlineStep(0, 0, coloring.FirstFit))
	require.NoError(t, p.OnlineStep(0, 1, coloring.FirstFit))
	require.NoError(t, p.OnlineStep(0, 2, coloring.FirstFit))

	assert.Equal(t, 0, mustGet(t, p, 0, 0))
	assert.Equal(t, 1, mustGet(t, p, 0, 1))
	assert.Equal(t, 0, mustGet(t, p, 0, 2), "only (0,1) constrains the last cell")
}

func TestOnlineStep_RollsBackOnFailure(t *testing.T) {
	p, err := partialgrid.New(1, 2)
	require.NoError(t, err)
	require.NoError(t, p.Put(0, 1, 3))

	boom := errors.New("boom")
	failing := func(*core.Graph, *core.Node) (int, error) { return 0, boom }
	err = p.OnlineStep(0, 0, failing)
	assert.ErrorIs(t, err, boom)
	assert.False(t, p.Has(0, 0), "failed reveal leaves the cell empty")

	undecided := func(*core.Graph, *core.Node) (int, error) { return -1, nil }
	err = p.OnlineStep(0, 1, undecided)
	assert.ErrorIs(t, err, partialgrid.ErrNoValue)
	assert.Equal(t, 3, mustGet(t, p, 0, 1), "failed recolor keeps the prior value")
}

func TestOnlineStep_InputErrors(t *testing.T) {
	p, err := partialgrid.New(1, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, p.OnlineStep(4, 0, coloring.FirstFit), partialgrid.ErrOutOfBounds)
	assert.ErrorIs(t, p.OnlineStep(0, 0, nil), partialgrid.ErrNilAlgorithm)
	assert.ErrorIs(t, p.DynamicStep(0, 0, nil), partialgrid.ErrNilAlgorithm)
}

// TestDynamicStep_AdjacentReveals replays the canonical two-step scenario on
// an empty 10×10 grid.
func TestDynamicStep_AdjacentReveals(t *testing.T) {
	p, err := partialgrid.New(10, 10)
	require.NoError(t, err)
	algo := coloring.NeighborhoodGreedy(1)

	require.NoError(t, p.DynamicStep(5, 5, algo))
	assert.Equal(t, 0, mustGet(t, p, 5, 5), "a neighborless reveal gets color 0")

	require.NoError(t, p.DynamicStep(5, 6, algo))
	assert.NotEqual(t, mustGet(t, p, 5, 5), mustGet(t, p, 5, 6),
		"adjacent cells must end up properly colored")
}

// TestDynamicStep_FourCycle reveals a 2×2 block cell by cell and expects a
// proper 2-coloring of the resulting 4-cycle.
func TestDynamicStep_FourCycle(t *testing.T) {
	p, err := partialgrid.New(2, 2)
	require.NoError(t, err)
	algo := coloring.MinimalGreedy(2)

	for _, at := range []partialgrid.Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		require.NoError(t, p.DynamicStep(at.Row, at.Col, algo))
	}

	g, _ := p.Graph()
	assert.Empty(t, g.Conflicts(), "the 4-cycle must be properly colored")

	distinct := map[int]struct{}{}
	p.ForNonEmpty(func(_ partialgrid.Coord, v int) { distinct[v] = struct{}{} })
	assert.LessOrEqual(t, len(distinct), 2, "an even cycle needs two colors")
}

// sprawling recolors a far-away node on purpose, violating its declared
// locality radius.
type sprawling struct {
	farID    string
	farColor int
}

func (s sprawling) Locality(int) int { return 1 }

func (s sprawling) Step(g *core.Graph, changed *core.Node) (map[*core.Node]int, error) {
	far, err := g.Node(s.farID)
	if err != nil {
		return nil, err
	}
	return map[*core.Node]int{changed: 0, far: s.farColor}, nil
}

// TestDynamicStep_LocalityIsAdvisory verifies the soft contract: a violating
// assignment is logged but still written back in full.
func TestDynamicStep_LocalityIsAdvisory(t *testing.T) {
	p, err := partialgrid.New(1, 4)
	require.NoError(t, err)
	for c := 0; c < 4; c++ {
		require.NoError(t, p.Put(0, c, c%2))
	}

	require.NoError(t, p.DynamicStep(0, 0, sprawling{farID: "0,3", farColor: 9}))
	assert.Equal(t, 0, mustGet(t, p, 0, 0))
	assert.Equal(t, 9, mustGet(t, p, 0, 3), "violating values are written regardless")
}

// silent returns an assignment without the changed node.
type silent struct{}

func (silent) Locality(int) int { return 0 }

func (silent) Step(*core.Graph, *core.Node) (map[*core.Node]int, error) {
	return map[*core.Node]int{}, nil
}

func TestDynamicStep_MissingChangedValue(t *testing.T) {
	p, err := partialgrid.New(1, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, p.DynamicStep(0, 0, silent{}), partialgrid.ErrNoValue)
	assert.False(t, p.Has(0, 0), "the placeholder must not survive a failed step")
}

// TestDynamicStep_AdaptedOnline drives an online algorithm through the
// dynamic path via the bridge.
func TestDynamicStep_AdaptedOnline(t *testing.T) {
	p, err := partialgrid.New(1, 2)
	require.NoError(t, err)
	require.NoError(t, p.Put(0, 0, 0))

	require.NoError(t, p.DynamicStep(0, 1, coloring.Adapt(coloring.FirstFit)))
	assert.Equal(t, 1, mustGet(t, p, 0, 1))
	assert.Equal(t, 0, mustGet(t, p, 0, 0), "the bridge touches nothing else")
}
