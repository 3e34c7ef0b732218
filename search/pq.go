package search

import "github.com/katalvlaran/mazegrid/grid"

// cellItem pairs a coordinate with its ordering key. seq is a monotone
// insertion counter: equal keys pop FIFO, keeping tie-breaks stable with
// respect to the fixed neighbor-expansion order.
type cellItem struct {
	cell grid.Coord
	key  float64 // gCost for Dijkstra, gCost+hCost for A*
	seq  uint64
}

// cellPQ is a min-heap of cellItem under the lazy-decrease-key strategy:
// improved keys push a fresh entry and stale entries are skipped at pop
// time via the grid's visited flag.
type cellPQ struct {
	items   []cellItem
	nextSeq uint64
}

// Len returns the number of queued entries, stale ones included.
func (pq *cellPQ) Len() int { return len(pq.items) }

// Less orders by key ascending, then by insertion sequence.
func (pq *cellPQ) Less(i, j int) bool {
	if pq.items[i].key != pq.items[j].key {
		return pq.items[i].key < pq.items[j].key
	}

	return pq.items[i].seq < pq.items[j].seq
}

// Swap swaps two entries.
func (pq *cellPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push adds x; called by heap.Push, x must be a cellItem.
func (pq *cellPQ) Push(x interface{}) {
	item := x.(cellItem)
	item.seq = pq.nextSeq
	pq.nextSeq++
	pq.items = append(pq.items, item)
}

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *cellPQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
