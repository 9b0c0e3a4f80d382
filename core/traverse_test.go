package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localcolor/core"
)

// TestDistances_Path verifies hop counts and the depth limit on a path.
func TestDistances_Path(t *testing.T) {
	g := buildPath(t, "a", "b", "c", "d", "e")

	dist, err := g.Distances("a", 0)
	require.NoError(t, err)
	want := map[string]int{"a": 0, "b": 1, "c": 2, "d": 3, "e": 4}
	assert.Equal(t, want, dist)

	// maxDepth truncates the frontier.
	dist, err = g.Distances("a", 2)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 2}, dist)

	_, err = g.Distances("ghost", 0)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestDistances_Disconnected verifies unreachable nodes are absent.
func TestDistances_Disconnected(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "x"} {
		_, err := g.AddNode(id, core.Uncolored)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddEdge("a", "b"))

	dist, err := g.Distances("a", 0)
	require.NoError(t, err)
	_, reachable := dist["x"]
	assert.False(t, reachable, "isolated node must not appear in the distance map")
}

// TestNeighborhood_Order verifies BFS order with ID tie-breaks and radius 0.
func TestNeighborhood_Order(t *testing.T) {
	// Star with center "m": neighbors revealed in ID order.
	g := core.NewGraph()
	for _, id := range []string{"m", "z", "a", "k"} {
		_, err := g.AddNode(id, core.Uncolored)
		require.NoError(t, err)
	}
	for _, leaf := range []string{"z", "a", "k"} {
		require.NoError(t, g.AddEdge("m", leaf))
	}

	ball, err := g.Neighborhood("m", 1)
	require.NoError(t, err)
	got := make([]string, len(ball))
	for i, n := range ball {
		got[i] = n.ID
	}
	assert.Equal(t, []string{"m", "a", "k", "z"}, got)

	ball, err = g.Neighborhood("m", 0)
	require.NoError(t, err)
	require.Len(t, ball, 1)
	assert.Equal(t, "m", ball[0].ID)

	_, err = g.Neighborhood("m", -1)
	assert.ErrorIs(t, err, core.ErrNegativeRadius)
}

// TestComponents_Filter verifies components stop at rejected nodes.
func TestComponents_Filter(t *testing.T) {
	// a-b-w-c-d where w acts as a wall.
	g := buildPath(t, "a", "b", "w", "c", "d")
	wall := func(n *core.Node) bool { return n.ID != "w" }

	comps := g.Components(wall)
	require.Len(t, comps, 2, "wall node must split the path in two")
	assert.Len(t, comps[0], 2)
	assert.Len(t, comps[1], 2)

	// Without a filter the path is a single component.
	comps = g.Components(nil)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 5)
}

// TestComponentFrom_RejectedStart verifies a rejected start yields nil.
func TestComponentFrom_RejectedStart(t *testing.T) {
	g := buildPath(t, "a", "b")
	comp, err := g.ComponentFrom("a", func(n *core.Node) bool { return n.ID != "a" })
	require.NoError(t, err)
	assert.Nil(t, comp)

	_, err = g.ComponentFrom("ghost", nil)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}
