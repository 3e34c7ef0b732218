package search

import "github.com/katalvlaran/mazegrid/grid"

// dfs explores in LIFO order with the duplicate-tolerant stack policy:
// a cell may be pushed several times (each push reassigns its parent),
// the visited check happens at pop time, and the first-popped occurrence
// wins. The early-exit check on end fires before the visited check, so a
// found end is never itself marked visited.
//
// This favors exploration-order fidelity over minimal memory and differs
// from classic recursive DFS in both visit order and visited count;
// keep it as is.
func (w *walker) dfs() (bool, error) {
	stack := make([]grid.Coord, 0, w.g.Rows()*w.g.Cols())
	stack = append(stack, w.start)

	for len(stack) > 0 {
		if err := w.cancelled(); err != nil {
			return false, err
		}

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur == w.end {
			return true, nil
		}
		if w.g.Visited(cur) {
			continue // duplicate stack entry; an earlier pop won
		}

		w.g.MarkVisited(cur)
		w.settle(cur)

		for _, n := range w.g.Neighbors(cur) {
			if w.g.IsWall(n) || w.g.Visited(n) {
				continue
			}
			w.g.SetParent(n, cur)
			stack = append(stack, n)
		}
	}

	return false, nil
}
