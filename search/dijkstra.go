package search

import (
	"container/heap"

	"github.com/katalvlaran/mazegrid/grid"
)

// uniformCost runs Dijkstra's algorithm, or A* when useHeuristic is set.
// The two share everything but the ordering key: Dijkstra orders the
// frontier by gCost, A* by gCost + Manhattan(cell, end).
//
// The heap follows the lazy-decrease-key pattern: a strictly improved
// gCost pushes a fresh entry and stale entries are skipped at pop time
// via the visited flag. Equal keys pop FIFO, so tie-breaks follow the
// fixed North, South, West, East insertion order.
func (w *walker) uniformCost(useHeuristic bool) (bool, error) {
	pq := &cellPQ{items: make([]cellItem, 0, w.g.Rows()*w.g.Cols())}
	heap.Init(pq)

	w.g.SetGCost(w.start, 0)
	key := 0.0
	if useHeuristic {
		h := float64(grid.Manhattan(w.start, w.end))
		w.g.SetHCost(w.start, h)
		key = h
	}
	heap.Push(pq, cellItem{cell: w.start, key: key})

	for pq.Len() > 0 {
		if err := w.cancelled(); err != nil {
			return false, err
		}

		cur := heap.Pop(pq).(cellItem).cell

		// Stale entry: a shorter path settled this cell already.
		if w.g.Visited(cur) {
			continue
		}
		w.g.MarkVisited(cur)
		w.settle(cur)

		if cur == w.end {
			return true, nil
		}

		for _, n := range w.g.Neighbors(cur) {
			if w.g.IsWall(n) || w.g.Visited(n) {
				continue
			}

			// Relax only on strict improvement; ties keep the earlier
			// parent, avoiding duplicate pushes for equal-cost routes.
			cand := w.g.GCost(cur) + float64(w.g.Weight(n))
			if cand >= w.g.GCost(n) {
				continue
			}
			w.g.SetGCost(n, cand)
			w.g.SetParent(n, cur)

			key = cand
			if useHeuristic {
				h := float64(grid.Manhattan(n, w.end))
				w.g.SetHCost(n, h)
				key = cand + h
			}
			heap.Push(pq, cellItem{cell: n, key: key})
		}
	}

	return false, nil
}
