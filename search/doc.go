// Package search runs pathfinding over a carved maze grid with one of
// four interchangeable strategies: breadth-first, depth-first, Dijkstra,
// and A*.
//
// Shared contract
//
//	Run resets the grid's search state, explores reachable walkable cells
//	from start, marks visited/parent as cells are settled, and emits one
//	Settle event per settlement through the step callback. On reaching
//	end it reconstructs the path by walking parent links back from end
//	(the chain terminates at start by construction), marks each cell
//	on-path, and reports path length and summed terrain cost. A frontier
//	that empties without reaching end is a valid Found=false outcome,
//	never an error.
//
// Strategy policy
//
//   - BFS: FIFO queue, visited at enqueue, unweighted; exit on dequeue of
//     end.
//   - DFS: LIFO stack, duplicates pushed and visited checked at pop time
//     (first-popped occurrence wins), parent assigned at push time. This
//     deliberately non-standard shape preserves exploration-order
//     fidelity; do not "fix" it to classic recursive DFS.
//   - Dijkstra: min-heap on gCost, lazy stale-entry skip, strict
//     relaxation by the neighbor's terrain weight.
//   - A*: Dijkstra ordered by gCost + Manhattan-to-end. The heuristic is
//     admissible because the minimum terrain cost is 1 and moves are
//     axis-aligned unit steps, so A* matches Dijkstra's path cost while
//     usually settling fewer cells.
//
// Every strategy expands neighbors in the grid's fixed North, South,
// West, East order, and the priority queues break equal keys FIFO, so
// exploration order is fully reproducible.
//
// Complexity (N = rows×cols)
//
//   - BFS/DFS: O(N) time, O(N) memory.
//   - Dijkstra/A*: O(N log N) time under lazy-decrease-key, O(N) memory.
package search
