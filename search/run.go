package search

import (
	"fmt"
	"time"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/step"
)

// Run executes one search of g from start to end using the selected
// strategy. It applies ResetSearchState first, so only the search fields
// (visited, onPath, parent, gCost, hCost) are mutated; walls and weights
// are read-only to the run.
//
// Endpoint walkability is deliberately not validated: an end cell that is
// a wall (or unreachable) is a legitimate Found=false outcome. Only nil
// grids, out-of-bounds endpoints and unknown algorithms are errors.
//
// Run is not safe for concurrent use on one grid; see package engine for
// the one-run-at-a-time guard.
func Run(g *grid.Grid, algo Algorithm, start, end grid.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !g.InBounds(start.Row, start.Col) || !g.InBounds(end.Row, end.Col) {
		return nil, fmt.Errorf("%w: start=%v end=%v on %dx%d", ErrOutOfBounds, start, end, g.Rows(), g.Cols())
	}
	if algo != BFS && algo != DFS && algo != Dijkstra && algo != AStar {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}

	g.ResetSearchState()
	w := &walker{g: g, start: start, end: end, opts: o}

	began := time.Now()
	var (
		found bool
		err   error
	)
	switch algo {
	case BFS:
		found, err = w.bfs()
	case DFS:
		found, err = w.dfs()
	case Dijkstra:
		found, err = w.uniformCost(false)
	case AStar:
		found, err = w.uniformCost(true)
	}
	if err != nil {
		return nil, err
	}

	res := &Result{Found: found}
	if found {
		w.reconstruct(res)
	}
	res.VisitedCount = g.VisitedCount()
	res.Elapsed = time.Since(began)

	return res, nil
}

// walker encapsulates the mutable state of one run.
type walker struct {
	g          *grid.Grid
	start, end grid.Coord
	opts       Options
}

// cancelled reports a done context; checked once per settlement.
func (w *walker) cancelled() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// settle emits the per-settlement notification. This is the suspension
// point between settling one cell and the next.
func (w *walker) settle(c grid.Coord) {
	w.opts.OnStep(step.Event{Kind: step.Settle, Cell: c})
}

// reconstruct walks parent links from end back to the parentless root
// (start, by invariant), marking each cell on-path and accumulating
// length and cost. Both endpoints contribute their weight to PathCost.
func (w *walker) reconstruct(res *Result) {
	chain := make([]grid.Coord, 0, 16)
	cur := w.end
	for {
		w.g.MarkOnPath(cur)
		res.PathCost += w.g.Weight(cur)
		chain = append(chain, cur)
		w.opts.OnStep(step.Event{Kind: step.Path, Cell: cur})

		p, ok := w.g.Parent(cur)
		if !ok {
			break
		}
		cur = p
	}
	res.PathLength = len(chain)

	// Reverse into start→end order.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	res.Path = chain
}
