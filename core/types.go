// Package core types: Node, Graph, sentinel errors, and the constructor.
package core

import "errors"

// Uncolored marks a node that exists in the graph but has not been assigned
// a color yet (for example the placeholder written at the point of change
// before an algorithm runs). Proper colors are small non-negative integers.
const Uncolored = -1

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed where one is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyNodeID indicates the provided node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates AddNode was called with an ID already present.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeRadius indicates a negative radius passed to Neighborhood.
	ErrNegativeRadius = errors.New("core: radius must be non-negative")
)

// Node is a vertex of the coloring graph.
//
// ID uniquely identifies the node within its Graph. Color is the mutable
// payload; strategies read fixed colors through it and the grid adapter
// copies final colors out of it. Adjacency lives on the Graph, not the node.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Color is the node's current color, or Uncolored.
	Color int
}

// Graph is an undirected graph over *Node values.
//
// Adjacency is symmetric and set-valued: adding the same edge twice is a
// no-op, and self-loops are allowed (a self-looped node can never be
// properly colored, which the validity predicate must surface).
//
// Graphs are transient by design: the grid adapter rebuilds a fresh Graph
// for every step, so node pointers never survive across steps.
type Graph struct {
	nodes map[string]*Node
	order []string // insertion order of node IDs
	adj   map[string]map[string]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		adj:   make(map[string]map[string]struct{}),
	}
}
