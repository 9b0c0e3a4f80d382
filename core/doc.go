// Package core defines the graph substrate consumed by the coloring engine:
// nodes with mutable colors, symmetric set-valued adjacency, and the
// traversal utilities (BFS distances, bounded neighborhoods, filtered
// connected components) every strategy is built on.
//
// What:
//
//   - Node: identity plus a mutable integer color (Uncolored = -1).
//   - Graph: insertion-ordered node catalog; undirected adjacency with
//     duplicate edges collapsed and self-loops permitted.
//   - Distances / Neighborhood: unweighted BFS with optional depth limit.
//   - Components / ComponentFrom: connected components restricted by a
//     caller-supplied node filter, recomputed from scratch on every call.
//   - ProperlyColored / Conflicts: the "no neighbor shares my color"
//     predicate, self-loops included.
//
// Why:
//
//   - Online coloring: a revealed node must be colored against the current
//     partial graph only.
//   - Local repair: dynamic strategies collect a bounded-radius ball around
//     a change point and recolor inside it.
//   - Region analysis: parity/border strategies need components that stop
//     at border-colored nodes.
//
// Determinism:
//
//   - Neighbors(id) returns nodes sorted by ID ascending.
//   - Nodes() returns nodes in insertion order.
//   - All traversals inherit deterministic order from the two rules above.
//
// Concurrency:
//
//   - Graphs are single-writer values. Every coloring step builds a fresh
//     Graph and discards it; nothing here locks. Callers that share a Graph
//     across goroutines must serialize externally.
//
// Errors:
//
//   - ErrNilGraph: nil graph pointer passed to a package function.
//   - ErrEmptyNodeID: node ID is the empty string.
//   - ErrDuplicateNode: AddNode called twice with the same ID.
//   - ErrNodeNotFound: operation referenced a non-existent node.
//   - ErrNegativeRadius: Neighborhood called with radius < 0.
package core
