package engine

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/mazegen"
	"github.com/katalvlaran/mazegrid/search"
)

// Engine owns at most one grid and serializes all runs over it.
type Engine struct {
	mu    sync.Mutex
	state State
	grid  *grid.Grid
}

// New returns an idle Engine with no maze.
func New() *Engine {
	return &Engine{state: StateIdle}
}

// State reports the current run state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// Grid returns the current maze, or nil before the first generation.
// Consumers should restrict themselves to the read-only query surface;
// the engine guards all mutation.
func (e *Engine) Grid() *grid.Grid {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.grid
}

// begin transitions Idle → next, or fails with ErrBusy.
func (e *Engine) begin(next State) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateIdle {
		return fmt.Errorf("%w: engine is %s", ErrBusy, e.state)
	}
	e.state = next

	return nil
}

// settle transitions back to Idle, optionally installing a new grid.
func (e *Engine) settle(g *grid.Grid) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if g != nil {
		e.grid = g
	}
	e.state = StateIdle
}

// GenerateMaze carves a fresh maze, fully replacing any prior grid (no
// cell state is reused). Returns ErrBusy while another run is active,
// or any mazegen/grid error. On failure the previous maze is kept.
func (e *Engine) GenerateMaze(rows, cols int, opts ...mazegen.Option) (*grid.Grid, error) {
	if err := e.begin(StateGenerating); err != nil {
		return nil, err
	}

	g, err := mazegen.Generate(rows, cols, opts...)
	e.settle(g) // nil on failure keeps the previous maze
	if err != nil {
		return nil, err
	}

	return g, nil
}

// RunSearch executes one search between the generated endpoints using the
// selected strategy. Returns ErrBusy while another run is active and
// ErrNoMaze before the first successful generation. An exhausted frontier
// is not an error: it reports Found=false on the result.
func (e *Engine) RunSearch(algo search.Algorithm, opts ...search.Option) (*RunResult, error) {
	if err := e.begin(StateSearching); err != nil {
		return nil, err
	}
	defer e.settle(nil)

	// State is Searching: no concurrent run can swap the grid underneath.
	e.mu.Lock()
	g := e.grid
	e.mu.Unlock()
	if g == nil {
		return nil, ErrNoMaze
	}
	start, okS := g.Start()
	end, okE := g.End()
	if !okS || !okE {
		return nil, ErrNoMaze
	}

	res, err := search.Run(g, algo, start, end, opts...)
	if err != nil {
		return nil, err
	}

	return &RunResult{
		ID:           uuid.New(),
		Algorithm:    algo,
		Found:        res.Found,
		VisitedCount: res.VisitedCount,
		PathLength:   res.PathLength,
		PathCost:     res.PathCost,
		Elapsed:      res.Elapsed,
		Path:         res.Path,
	}, nil
}

// RunSearchAsync runs RunSearch on a dedicated goroutine and delivers the
// outcome on the returned channel (buffered; the worker never blocks).
// The state machine still rejects any overlapping request with ErrBusy,
// so the worker owns the grid's search state for the run's duration.
func (e *Engine) RunSearchAsync(algo search.Algorithm, opts ...search.Option) <-chan AsyncResult {
	ch := make(chan AsyncResult, 1)
	go func() {
		res, err := e.RunSearch(algo, opts...)
		ch <- AsyncResult{Result: res, Err: err}
		close(ch)
	}()

	return ch
}
