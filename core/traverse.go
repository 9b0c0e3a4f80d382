// File: traverse.go
// Role: BFS distances, bounded neighborhoods, and filtered connected
// components over a Graph.
//
// All traversals use slice-backed queues and visit neighbors in ID-ascending
// order, so their output is deterministic for a fixed graph.
package core

// Distances runs an unweighted BFS from startID and returns the hop count of
// every reachable node. maxDepth > 0 limits exploration to that many hops;
// maxDepth == 0 means no limit. Unreachable nodes are absent from the map.
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) Distances(startID string, maxDepth int) (map[string]int, error) {
	if !g.HasNode(startID) {
		return nil, ErrNodeNotFound
	}
	depth := make(map[string]int, len(g.order))
	depth[startID] = 0
	queue := []string{startID}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		d := depth[id]
		if maxDepth > 0 && d >= maxDepth {
			continue
		}
		nbrs, _ := g.Neighbors(id)
		for _, m := range nbrs {
			if _, seen := depth[m.ID]; seen {
				continue
			}
			depth[m.ID] = d + 1
			queue = append(queue, m.ID)
		}
	}

	return depth, nil
}

// Neighborhood returns the ball of the given radius around startID: every
// node within radius hops, in BFS order (startID first, then increasing
// distance, ties broken by ID). radius 0 yields only the start node.
// Complexity: O(V + E) worst case, O(ball) typical.
func (g *Graph) Neighborhood(startID string, radius int) ([]*Node, error) {
	if radius < 0 {
		return nil, ErrNegativeRadius
	}
	start, err := g.Node(startID)
	if err != nil {
		return nil, err
	}
	depth := map[string]int{startID: 0}
	out := []*Node{start}

	for qi := 0; qi < len(out); qi++ {
		id := out[qi].ID
		d := depth[id]
		if d >= radius {
			continue
		}
		nbrs, _ := g.Neighbors(id)
		for _, m := range nbrs {
			if _, seen := depth[m.ID]; seen {
				continue
			}
			depth[m.ID] = d + 1
			out = append(out, m)
		}
	}

	return out, nil
}

// ComponentFrom returns the connected component containing startID,
// restricted to nodes accepted by include. If include rejects the start
// node the component is empty. Nodes appear in BFS order.
// Complexity: O(V + E) worst case.
func (g *Graph) ComponentFrom(startID string, include func(*Node) bool) ([]*Node, error) {
	start, err := g.Node(startID)
	if err != nil {
		return nil, err
	}
	if include != nil && !include(start) {
		return nil, nil
	}
	seen := map[string]struct{}{startID: {}}
	comp := []*Node{start}

	for qi := 0; qi < len(comp); qi++ {
		nbrs, _ := g.Neighbors(comp[qi].ID)
		for _, m := range nbrs {
			if _, ok := seen[m.ID]; ok {
				continue
			}
			if include != nil && !include(m) {
				continue
			}
			seen[m.ID] = struct{}{}
			comp = append(comp, m)
		}
	}

	return comp, nil
}

// Components returns every connected component of the subgraph induced by
// nodes accepted by include (nil accepts all). Components are discovered in
// insertion order of their first member and never cached: parity and border
// analysis recompute them from scratch on every step.
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) Components(include func(*Node) bool) [][]*Node {
	seen := make(map[string]struct{}, len(g.order))
	var comps [][]*Node

	for _, id := range g.order {
		if _, ok := seen[id]; ok {
			continue
		}
		n := g.nodes[id]
		if include != nil && !include(n) {
			continue
		}
		comp, _ := g.ComponentFrom(id, include)
		for _, m := range comp {
			seen[m.ID] = struct{}{}
		}
		comps = append(comps, comp)
	}

	return comps
}
