// Package partialgrid drives coloring algorithms over a 2D grid of cells
// revealed one at a time.
//
// What:
//
//   - PartialGrid wraps a rows×cols array of optionally-empty int cells.
//   - Graph() induces a fresh core.Graph over the non-empty cells using the
//     4-neighbor relation, with fresh node objects on every call.
//   - OnlineStep runs a coloring.Online algorithm at a cell and stores the
//     single returned color.
//   - DynamicStep runs a coloring.DynamicLocal step, audits the declared
//     locality radius against true graph distances, and writes every
//     returned color back by coordinate.
//
// Why:
//
//   - Simulating distributed local algorithms: each step may only touch a
//     bounded-distance neighborhood of the point of change.
//   - The grid is the only durable state; graphs and nodes are transient,
//     so algorithms cannot smuggle state between steps.
//
// Complexity:
//
//   - Graph():     O(rows×cols), Memory: O(cells).
//   - OnlineStep:  O(rows×cols) + one algorithm invocation.
//   - DynamicStep: O(rows×cols) + one BFS + one algorithm invocation.
//
// Errors:
//
//   - ErrEmptyGrid: rows or cols is not positive.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//   - ErrCellEmpty: Get on a cell with no value.
//   - ErrNilAlgorithm: a nil algorithm passed to a step.
//   - ErrNoValue: the algorithm produced no color for the changed cell.
//
// Concurrency: callers must serialize steps against the same grid; a step
// mutates the backing array in place.
package partialgrid
