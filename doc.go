// Package localcolor is a simulation engine for online and local
// graph-coloring algorithms on incrementally revealed graphs.
//
// 🚀 What is localcolor?
//
//	A small, focused library for studying distributed "local" coloring:
//		• Core primitives: nodes with mutable colors, symmetric adjacency,
//		  BFS distances, bounded neighborhoods, filtered components
//		• PartialGrid: a 2D grid of optional cells driven one reveal at a time,
//		  adapted to an induced graph on demand
//		• Contracts: Online (one node per step) and DynamicLocal (bounded-radius
//		  revisions, subject to a declared locality radius)
//		• Strategies: greedy, minimal-change, randomized, parity-aware border
//		  coloring, component sealing, and anti-collision coloring
//
// ✨ Why localcolor?
//
//   - Deterministic by contract – same reveal sequence, same colors
//   - Explicit-stack backtracking – no recursion-depth surprises
//   - Advisory invariants – locality and parity violations are logged,
//     never silently corrected
//
// Everything is organized under three library packages plus a terminal
// harness:
//
//	core/        — coloring graph substrate (Graph, Node, traversal)
//	coloring/    — algorithm contracts, exhaustive colorer, strategy family
//	partialgrid/ — grid-to-graph adapter enforcing the step lifecycle
//	cmd/localcolor — interactive reveal harness for the terminal
//
// Quick ASCII example:
//
//	    0───1        a 2-colored region growing left to right;
//	    │   │        a border cell (color 2) seals two regions
//	    1───0──2──0  whose parities disagree.
//
// Dive into the package docs for the full algorithm catalogue.
package localcolor
