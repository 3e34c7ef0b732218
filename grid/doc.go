// Package grid provides the cell matrix underlying maze generation and
// pathfinding: a fixed-size, odd-dimensioned board of wall/terrain cells
// with per-cell search state (visited, on-path, parent link, g/h costs).
//
// What
//
//   - Grid owns a rows×cols board of cells, addressed by Coord (row, col),
//     stored row-major. Cells never escape the Grid: consumers work with
//     coordinates and per-cell accessor queries.
//   - Neighbors(c) returns the in-bounds 4-neighbors in a fixed
//     North, South, West, East order. Every traversal in this module
//     expands neighbors in that order, so tie-breaks are reproducible.
//   - ResetSearchState() clears only the mutable search fields
//     (visited, onPath, parent, gCost, hCost); walls and terrain weights
//     are untouched.
//
// Ownership
//
//	The Grid is the sole owner of cell lifetime. Parent links are stored
//	as row-major indices into the owning Grid, never as independent
//	pointers, so a Grid tears down as a single unit.
//
// Terrain
//
//	Walkable cells carry one of three traversal costs:
//	WeightGrass (1), WeightMud (5), WeightWater (10).
//	The weight of a wall cell is meaningless.
//
// Concurrency
//
//	A Grid is not safe for concurrent mutation. One generation or search
//	run at a time owns write access; see package engine for the guard.
package grid
