// File: backtrack.go
// Role: the exhaustive colorer every strategy is built on — iterative
// backtracking with an explicit stack and history-dependent color ceilings —
// plus the generic escalation helper incrementalRetry.
package coloring

import "github.com/katalvlaran/localcolor/core"

// Ceiling bounds the colors tried for a node: candidate colors range over
// [0, ceiling). used is the running histogram of colors assigned so far by
// the current search, which lets a ceiling ration a particular color (the
// border color, typically) instead of applying a flat limit.
type Ceiling func(n *core.Node, used map[int]int) int

// FixedCeiling returns a Ceiling that allows exactly k colors for every node.
func FixedCeiling(k int) Ceiling {
	return func(*core.Node, map[int]int) int { return k }
}

// FindColoring searches for an assignment of colors to nodes, in list order,
// such that no node conflicts with a fixed neighbor. A neighbor is fixed if
// it was assigned earlier in the list, or if it is outside the list and
// already carries a color. Neighbors later in the list are hidden — treated
// exactly like nodes not yet revealed. A self-loop makes a node
// unsatisfiable.
//
// The search is classic backtracking expressed iteratively: an explicit
// index into the node list advances on success and retreats on exhaustion,
// so large neighborhoods cannot hit recursion depth limits. The first
// complete valid assignment is returned; nil means the search space under
// the given ceilings is exhausted.
//
// Node colors are never mutated; the assignment lives in the returned map.
//
// Determinism: for a fixed graph, node list, and ceiling, the result is
// always the same.
// Complexity: worst-case exponential in len(nodes).
func FindColoring(g *core.Graph, nodes []*core.Node, ceiling Ceiling) map[*core.Node]int {
	if g == nil || ceiling == nil {
		return nil
	}
	pos := make(map[*core.Node]int, len(nodes))
	for i, n := range nodes {
		pos[n] = i
	}
	assigned := make([]int, len(nodes))
	for i := range assigned {
		assigned[i] = core.Uncolored
	}
	used := make(map[int]int) // histogram of tentatively assigned colors

	idx := 0
	for idx >= 0 && idx < len(nodes) {
		n := nodes[idx]
		// Resume after the previously tried color; start at 0 on first entry.
		next := assigned[idx] + 1
		if assigned[idx] != core.Uncolored {
			used[assigned[idx]]--
			assigned[idx] = core.Uncolored
		}
		limit := ceiling(n, used)

		found := core.Uncolored
		for c := next; c < limit; c++ {
			if fits(g, n, c, pos, assigned, idx) {
				found = c
				break
			}
		}
		if found == core.Uncolored {
			idx-- // retreat; color resets via the Uncolored write above
			continue
		}
		assigned[idx] = found
		used[found]++
		idx++
	}
	if idx < 0 {
		return nil
	}

	out := make(map[*core.Node]int, len(nodes))
	for i, n := range nodes {
		out[n] = assigned[i]
	}

	return out
}

// fits reports whether color c at nodes[idx] conflicts with any fixed
// neighbor. Stack slots at index >= idx are hidden; a self-loop always
// conflicts (the node would share c with itself).
func fits(g *core.Graph, n *core.Node, c int, pos map[*core.Node]int, assigned []int, idx int) bool {
	nbrs, err := g.Neighbors(n.ID)
	if err != nil {
		return false
	}
	for _, m := range nbrs {
		if m == n {
			return false // self-loop
		}
		if j, inList := pos[m]; inList {
			if j < idx && assigned[j] == c {
				return false
			}
			continue // hidden: not yet revealed to the search
		}
		if m.Color == c {
			return false
		}
	}

	return true
}

// incrementalRetry calls f with successively larger integers from start up
// to and including limit, returning the first non-nil result. This is the
// generic way every strategy escalates: try fewer colors (or fewer changed
// nodes) first, then more.
func incrementalRetry(start, limit int, f func(int) map[*core.Node]int) map[*core.Node]int {
	for v := start; v <= limit; v++ {
		if res := f(v); res != nil {
			return res
		}
	}

	return nil
}

// assignmentValid checks a tentative assignment for local validity: no node
// in the assignment may share its color with a neighbor, where neighbors
// inside the assignment use their tentative colors and all others their
// fixed ones. Self-loops invalidate their node.
func assignmentValid(g *core.Graph, colors map[*core.Node]int) bool {
	for n, c := range colors {
		nbrs, err := g.Neighbors(n.ID)
		if err != nil {
			return false
		}
		for _, m := range nbrs {
			if m == n {
				return false
			}
			effective := m.Color
			if mc, ok := colors[m]; ok {
				effective = mc
			}
			if effective == c {
				return false
			}
		}
	}

	return true
}
