// Package mazegen carves perfect mazes with the randomized Prim's
// algorithm and dresses them with terrain weights and endpoints.
//
// What
//
//   - Generate(rows, cols, opts...) produces a grid.Grid whose walkable
//     cells form a spanning tree: every walkable cell reachable from
//     every other by exactly one simple path, no cycles.
//   - After carving, each walkable cell draws a terrain weight
//     (15% water, 20% mud, 65% grass), and the first/last walkable cells
//     in row-major order become start/end, both forced to grass so the
//     entry and exit stay unambiguous and path-cost bounds do not depend
//     on the terrain draw.
//
// Algorithm
//
//	Seed a random odd-coordinate cell, then repeatedly draw a wall
//	uniformly from the frontier of walls adjacent to carved territory.
//	A drawn wall is opened only when it separates a carved cell from an
//	uncarved one along exactly one axis; opening it also opens the far
//	cell and extends the frontier. Walls whose far side is already carved
//	are discarded: opening them would create a cycle. The frontier is a
//	multiset by design: duplicate entries are drawn and discarded one
//	occurrence at a time.
//
// Determinism
//
//	WithSeed pins the random source, making the produced grid
//	bit-identical across runs. Without a seed a time-seeded source is
//	used. No hidden time-based randomness exists once a seed is supplied.
//
// Complexity
//
//	O(rows×cols) cells are carved; each wall enters the frontier at most
//	four times, so generation runs in O(rows×cols) expected time.
package mazegen
