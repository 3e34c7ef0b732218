package search

import "github.com/katalvlaran/mazegrid/grid"

// bfs explores in FIFO order. Cells are marked visited at enqueue time,
// so no cell enters the queue twice; the early-exit check fires on
// dequeue of end, before that iteration's settle notification.
func (w *walker) bfs() (bool, error) {
	queue := make([]grid.Coord, 0, w.g.Rows()*w.g.Cols())
	w.g.MarkVisited(w.start)
	queue = append(queue, w.start)

	for len(queue) > 0 {
		if err := w.cancelled(); err != nil {
			return false, err
		}

		cur := queue[0]
		queue = queue[1:]

		if cur == w.end {
			return true, nil
		}

		for _, n := range w.g.Neighbors(cur) {
			if w.g.IsWall(n) || w.g.Visited(n) {
				continue
			}
			w.g.MarkVisited(n)
			w.g.SetParent(n, cur)
			queue = append(queue, n)
		}

		w.settle(cur)
	}

	return false, nil
}
