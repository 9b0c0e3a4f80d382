// Package coloring implements the algorithm contracts and the strategy
// family of the online/local graph-coloring engine.
//
// What:
//
//   - Online: assigns a color to one newly revealed node from the current
//     partial graph.
//   - DynamicLocal: may revise a bounded set of nodes around a change point,
//     subject to a declared locality radius.
//   - FindColoring: exhaustive explicit-stack backtracking over an ordered
//     node list with per-node, history-dependent color ceilings. Every
//     "does a k-coloring of this neighborhood exist" query goes through it.
//   - Strategies: NeighborhoodGreedy, MinimalGreedy, RandomColoring,
//     ParityBorderColoring, BorderComponentColoring, AntiCollisionColoring.
//
// Why:
//
//   - Online coloring models vertices arriving one at a time.
//   - Local strategies model distributed algorithms that may only touch a
//     bounded ball around the point of change, yet must keep independently
//     grown regions mutually consistent. The border color (2) and distance
//     parity are the coordination mechanism: a wall of border-colored nodes
//     separates regions whose 2-colorings disagree.
//
// Failure model:
//
//   - Exhausted search (no coloring under the ceiling) is fatal:
//     ErrNoColoring.
//   - Parity conflicts, failed seals, and residual local conflicts are
//     advisory: logged through the configured logger, then worked around by
//     an exhaustive fallback. Correctness of the fallback is structural;
//     everything before it is best-effort.
//
// Determinism:
//
//   - FindColoring is fully deterministic for a fixed node list and graph.
//   - RandomColoring draws from an explicitly seeded generator
//     (seed 0 selects a fixed default seed).
//
// Complexity:
//
//   - FindColoring is worst-case exponential in the node-list length; keep
//     neighborhood radii small. There is no timeout.
package coloring
