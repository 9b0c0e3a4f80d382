package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localcolor/coloring"
	"github.com/katalvlaran/localcolor/core"
)

// buildGraph constructs a graph from id→color pairs and an edge list.
// Insertion order follows the ids slice so traversal order is predictable.
func buildGraph(t *testing.T, ids []string, colors map[string]int, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range ids {
		c, ok := colors[id]
		if !ok {
			c = core.Uncolored
		}
		_, err := g.AddNode(id, c)
		require.NoError(t, err)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

// pathEdges returns the edge list of the path ids[0]-ids[1]-...-ids[n-1].
func pathEdges(ids ...string) [][2]string {
	out := make([][2]string, 0, len(ids)-1)
	for i := 1; i < len(ids); i++ {
		out = append(out, [2]string{ids[i-1], ids[i]})
	}
	return out
}

// nodesOf resolves ids to their *core.Node values in the given order.
func nodesOf(t *testing.T, g *core.Graph, ids ...string) []*core.Node {
	t.Helper()
	out := make([]*core.Node, 0, len(ids))
	for _, id := range ids {
		n, err := g.Node(id)
		require.NoError(t, err)
		out = append(out, n)
	}
	return out
}

// TestFindColoring_PathTwoColors verifies the canonical alternating
// assignment on an uncolored path.
func TestFindColoring_PathTwoColors(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	g := buildGraph(t, ids, nil, pathEdges(ids...))
	nodes := nodesOf(t, g, ids...)

	res := coloring.FindColoring(g, nodes, coloring.FixedCeiling(2))
	require.NotNil(t, res)
	assert.Equal(t, 0, res[nodes[0]])
	assert.Equal(t, 1, res[nodes[1]])
	assert.Equal(t, 0, res[nodes[2]])
	assert.Equal(t, 1, res[nodes[3]])
}

// TestFindColoring_TriangleNeedsThree verifies ceiling exhaustion and the
// minimal escape at ceiling 3.
func TestFindColoring_TriangleNeedsThree(t *testing.T) {
	ids := []string{"a", "b", "c"}
	edges := [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}}
	g := buildGraph(t, ids, nil, edges)
	nodes := nodesOf(t, g, ids...)

	assert.Nil(t, coloring.FindColoring(g, nodes, coloring.FixedCeiling(2)),
		"a triangle admits no 2-coloring")

	res := coloring.FindColoring(g, nodes, coloring.FixedCeiling(3))
	require.NotNil(t, res)
	assert.Equal(t, 0, res[nodes[0]])
	assert.Equal(t, 1, res[nodes[1]])
	assert.Equal(t, 2, res[nodes[2]])
}

// TestFindColoring_Deterministic verifies repeated runs return the same
// assignment — no hidden randomness.
func TestFindColoring_Deterministic(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	edges := append(pathEdges(ids...), [2]string{"a", "e"}, [2]string{"b", "d"})
	g := buildGraph(t, ids, nil, edges)
	nodes := nodesOf(t, g, ids...)

	first := coloring.FindColoring(g, nodes, coloring.FixedCeiling(3))
	require.NotNil(t, first)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, coloring.FindColoring(g, nodes, coloring.FixedCeiling(3)))
	}
}

// TestFindColoring_OutsideFixedNeighbors verifies nodes outside the list
// constrain the search at their current colors.
func TestFindColoring_OutsideFixedNeighbors(t *testing.T) {
	ids := []string{"x", "a"}
	g := buildGraph(t, ids, map[string]int{"x": 0}, [][2]string{{"x", "a"}})
	target := nodesOf(t, g, "a")

	res := coloring.FindColoring(g, target, coloring.FixedCeiling(2))
	require.NotNil(t, res)
	assert.Equal(t, 1, res[target[0]], "fixed neighbor x=0 must push a to 1")
	assert.Equal(t, 0, target[0].Color, "FindColoring must not mutate node colors")
}

// TestFindColoring_LaterNodesHidden verifies nodes later in the list are
// treated as absent, exactly like unrevealed nodes.
func TestFindColoring_LaterNodesHidden(t *testing.T) {
	// b already holds 0; with b hidden, a may take 0 as well.
	ids := []string{"a", "b"}
	g := buildGraph(t, ids, map[string]int{"b": 0}, [][2]string{{"a", "b"}})
	nodes := nodesOf(t, g, ids...)

	res := coloring.FindColoring(g, nodes, coloring.FixedCeiling(2))
	require.NotNil(t, res)
	assert.Equal(t, 0, res[nodes[0]], "b is later in the list, so its color is invisible to a")
	assert.Equal(t, 1, res[nodes[1]])
}

// TestFindColoring_SelfLoop verifies a self-looped node is unsatisfiable.
func TestFindColoring_SelfLoop(t *testing.T) {
	g := buildGraph(t, []string{"a"}, nil, [][2]string{{"a", "a"}})
	nodes := nodesOf(t, g, "a")

	assert.Nil(t, coloring.FindColoring(g, nodes, coloring.FixedCeiling(5)))
}

// TestFindColoring_EmptyList verifies the trivial assignment.
func TestFindColoring_EmptyList(t *testing.T) {
	g := core.NewGraph()
	res := coloring.FindColoring(g, nil, coloring.FixedCeiling(2))
	require.NotNil(t, res)
	assert.Empty(t, res)
}

// TestFindColoring_HistogramCeiling verifies the running histogram reaches
// the ceiling function and changes the outcome: rationing color 0 to a
// single use flips the assignment of a path.
func TestFindColoring_HistogramCeiling(t *testing.T) {
	ids := []string{"a", "b"}
	g := buildGraph(t, ids, nil, pathEdges(ids...))
	nodes := nodesOf(t, g, ids...)

	rationed := func(_ *core.Node, used map[int]int) int {
		if used[0] >= 1 {
			return 1 // only color 0 remains below the ceiling, and it is taken
		}
		return 2
	}
	res := coloring.FindColoring(g, nodes, rationed)
	require.NotNil(t, res)
	assert.Equal(t, 1, res[nodes[0]], "search must backtrack a to 1 so b can use 0")
	assert.Equal(t, 0, res[nodes[1]])
}
