package coloring_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localcolor/coloring"
	"github.com/katalvlaran/localcolor/core"
)

// pathIDs returns ids p0..p(n-1) for a test path.
func pathIDs(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("p%d", i)
	}
	return out
}

// borderNodes collects the IDs colored BorderColor in an assignment.
func borderNodes(res map[*core.Node]int) []string {
	var out []string
	for n, c := range res {
		if c == coloring.BorderColor {
			out = append(out, n.ID)
		}
	}
	return out
}

// TestParityBorder_PrefersTwoColoring verifies no border appears when the
// ball extends its surroundings as a plain 2-colored region.
func TestParityBorder_PrefersTwoColoring(t *testing.T) {
	ids := pathIDs(5)
	g := buildGraph(t, ids, map[string]int{"p0": 0, "p1": 1, "p3": 1, "p4": 0}, pathEdges(ids...))
	changed := nodesOf(t, g, "p2")[0]

	res, err := coloring.ParityBorderColoring(1).Step(g, changed)
	require.NoError(t, err)
	assert.Empty(t, borderNodes(res), "compatible phases must merge without a border")
	assert.Equal(t, 0, res[changed])

	applyStep(res)
	assert.Empty(t, g.Conflicts())
}

// TestParityBorder_IntroducesSingleBorder verifies the conflict case: two
// regions with incompatible phases meet and exactly one border node appears,
// with no two border nodes adjacent.
func TestParityBorder_IntroducesSingleBorder(t *testing.T) {
	ids := pathIDs(7)
	colors := map[string]int{"p0": 0, "p1": 1, "p2": 0, "p4": 1, "p5": 0, "p6": 1}
	g := buildGraph(t, ids, colors, pathEdges(ids...))
	changed := nodesOf(t, g, "p3")[0]

	res, err := coloring.ParityBorderColoring(1).Step(g, changed)
	require.NoError(t, err)

	borders := borderNodes(res)
	assert.Len(t, borders, 1, "one wall suffices to separate the two phases")

	applyStep(res)
	assert.Empty(t, g.Conflicts())
	// No two adjacent border-colored nodes anywhere.
	for _, n := range g.Nodes() {
		if n.Color != coloring.BorderColor {
			continue
		}
		nbrs, nerr := g.Neighbors(n.ID)
		require.NoError(t, nerr)
		for _, m := range nbrs {
			assert.NotEqual(t, coloring.BorderColor, m.Color, "adjacent borders at %s-%s", n.ID, m.ID)
		}
	}
}

// TestParityBorder_MatchesExistingBorderParity verifies a new border lands
// on the parity class of the nearest existing border node.
func TestParityBorder_MatchesExistingBorderParity(t *testing.T) {
	ids := pathIDs(7)
	colors := map[string]int{
		"p0": coloring.BorderColor, // existing wall, 4 hops from the change point
		"p1": 0, "p2": 1, "p5": 1, "p6": 0,
	}
	g := buildGraph(t, ids, colors, pathEdges(ids...))
	changed := nodesOf(t, g, "p4")[0]

	res, err := coloring.ParityBorderColoring(1).Step(g, changed)
	require.NoError(t, err)

	borders := borderNodes(res)
	require.Len(t, borders, 1)
	assert.Equal(t, "p4", borders[0],
		"the wall at p0 sits at even distance, so a new wall must too")

	applyStep(res)
	assert.Empty(t, g.Conflicts())
}

// TestParityBorder_Locality verifies the declared radius.
func TestParityBorder_Locality(t *testing.T) {
	assert.Equal(t, 2, coloring.ParityBorderColoring(2).Locality(64))
}
