// Package mazegrid is an in-memory grid-graph engine: it carves perfect
// mazes with randomized Prim's algorithm, dresses them with weighted
// terrain, and routes between endpoints with four interchangeable search
// strategies — all observable step by step.
//
// 🚀 What is mazegrid?
//
//	A small, focused library that brings together:
//		• grid/    — the cell board: walls, terrain weights, per-run search state
//		• mazegen/ — randomized Prim's carving, terrain draw, endpoint selection
//		• search/  — BFS, DFS, Dijkstra and A* under one shared run contract
//		• step/    — the Carve/Settle/Path notification contract for animators
//		• engine/  — one-run-at-a-time state machine and timed run results
//
// ✨ Why choose mazegrid?
//
//   - Deterministic – a pinned seed reproduces the maze bit for bit, and
//     fixed North/South/West/East expansion makes every tie-break stable
//   - Host-agnostic – no window, no rendering, no input handling; a
//     renderer consumes the cell-state query surface and step events only
//   - Honest results – unreachable goals report Found=false, never errors
//
// Quick ASCII example, a 5×5 board after carving (█ wall, · path):
//
//	█████
//	█·█·█
//	█·█·█
//	█···█
//	█████
//
// See cmd/mazeimg for a complete PNG-rendering consumer built purely on
// the public surface.
package mazegrid
