// Package gridgraph treats a rectangular grid of integer cells as an implicit
// graph and searches it with package bfs.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid; it is immutable once built.
//   - ParseGrid builds one from text rows with a caller-supplied cell decoder.
//   - Neighbors / ChildrenFunc expose 4- or 8-connected moves, optionally
//     filtered by a caller rule (height limits, walls, terrain).
//   - ConnectedComponents finds contiguous regions of cells whose value is at
//     least LandThreshold.
//   - ShortestPath finds a fewest-move route between two cells.
//
// Why:
//
//   - Grid puzzles and maps are the most common implicit graph; the move rule
//     is the only part that changes between them.
//
// Determinism:
//
//	Neighbors are produced in a fixed offset order: N, E, S, W for Conn4, and
//	N, NE, E, SE, S, SW, W, NW for Conn8. Paths and component orders are
//	therefore reproducible.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - ShortestPath:        O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: the cell decoder rejected a character.
//   - ErrOutOfBounds: a path endpoint lies outside the grid.
package gridgraph
