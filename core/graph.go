// File: graph.go
// Role: Graph mutation and query methods (nodes, edges, neighbors, validity).
// Determinism:
//   - Nodes() returns insertion order.
//   - Neighbors() returns ID-ascending order.
package core

import "sort"

// AddNode inserts a new node with the given ID and color.
// Returns ErrEmptyNodeID for an empty ID and ErrDuplicateNode if the ID is
// already present.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, color int) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	if _, ok := g.nodes[id]; ok {
		return nil, ErrDuplicateNode
	}
	n := &Node{ID: id, Color: color}
	g.nodes[id] = n
	g.order = append(g.order, id)
	g.adj[id] = make(map[string]struct{})

	return n, nil
}

// Node returns the node with the given ID, or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Node(id string) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeCount returns the number of nodes in the graph.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// Nodes returns all nodes in insertion order.
// The returned slice is freshly allocated and safe to retain.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}

	return out
}

// AddEdge connects a and b with an undirected edge. Adding an existing edge
// is a no-op; a == b records a self-loop. Both endpoints must exist.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string) error {
	if _, ok := g.nodes[a]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes[b]; !ok {
		return ErrNodeNotFound
	}
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}

	return nil
}

// HasEdge reports whether an edge a–b exists.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.adj[a][b]
	return ok
}

// Degree returns the number of distinct neighbors of id (a self-loop counts
// once). Returns ErrNodeNotFound for unknown IDs.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	set, ok := g.adj[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(set), nil
}

// Neighbors returns the nodes adjacent to id, sorted by ID ascending.
// A self-looped node appears in its own neighbor list.
// Complexity: O(d log d) for degree d.
func (g *Graph) Neighbors(id string) ([]*Node, error) {
	set, ok := g.adj[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	ids := make([]string, 0, len(set))
	for nbr := range set {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	out := make([]*Node, 0, len(ids))
	for _, nbr := range ids {
		out = append(out, g.nodes[nbr])
	}

	return out, nil
}

// ProperlyColored reports whether node id holds a color no neighbor shares.
// Uncolored nodes never conflict; a colored self-looped node always does.
// Complexity: O(d log d).
func (g *Graph) ProperlyColored(id string) (bool, error) {
	n, err := g.Node(id)
	if err != nil {
		return false, err
	}
	if n.Color == Uncolored {
		return true, nil
	}
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return false, err
	}
	for _, m := range nbrs {
		if m.Color == n.Color {
			return false, nil
		}
	}

	return true, nil
}

// Conflicts returns every node that shares a color with at least one
// neighbor, in insertion order. Used for diagnostics and visualization of
// tolerated violations.
// Complexity: O(V + E).
func (g *Graph) Conflicts() []*Node {
	var out []*Node
	for _, id := range g.order {
		ok, _ := g.ProperlyColored(id)
		if !ok {
			out = append(out, g.nodes[id])
		}
	}

	return out
}
