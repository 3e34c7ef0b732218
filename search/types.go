// Package search defines the strategy selector, run options, sentinel
// errors and the immutable run result.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/step"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrOutOfBounds is returned when start or end lies outside the grid.
	ErrOutOfBounds = errors.New("search: endpoint out of bounds")

	// ErrUnknownAlgorithm is returned for an Algorithm value outside the
	// declared set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm selects the search strategy for a run.
type Algorithm int

const (
	// BFS is breadth-first search: unweighted, shortest in hop count.
	BFS Algorithm = iota
	// DFS is depth-first search: complete but not optimal.
	DFS
	// Dijkstra is uniform-cost search over terrain weights.
	Dijkstra
	// AStar is Dijkstra guided by the Manhattan-distance heuristic.
	AStar
)

// String returns the conventional name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case Dijkstra:
		return "Dijkstra"
	case AStar:
		return "A*"
	default:
		return fmt.Sprintf("search.Algorithm(%d)", int(a))
	}
}

// Option configures a search run via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for one Run call.
type Options struct {
	// Ctx allows cancellation; checked once per settlement.
	Ctx context.Context

	// OnStep receives one Settle event per settled cell and one Path
	// event per cell marked during reconstruction. Invoked synchronously;
	// blocking inside it paces the run. The callback must not mutate
	// grid state.
	OnStep step.Func
}

// DefaultOptions returns Options with a background context and no step
// notifications.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: step.Nop,
	}
}

// WithContext sets a custom context for cancellation.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers the step callback. A nil callback is ignored.
func WithOnStep(fn step.Func) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Result is the immutable snapshot produced once per run, intended for
// direct display by a reporting consumer.
//
// VisitedCount is a post-run scan of visited flags, so for BFS it counts
// cells marked at enqueue time, not only dequeued ones, matching the
// per-strategy settle rules.
type Result struct {
	// Found reports whether end was reached.
	Found bool

	// VisitedCount is the number of cells marked visited by the run.
	VisitedCount int

	// PathLength is the number of cells on the reconstructed chain,
	// both endpoints included. Zero when Found is false.
	PathLength int

	// PathCost is the summed terrain weight over the chain, both
	// endpoints included. Zero when Found is false.
	PathCost int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// Path lists the chain from start to end. Nil when Found is false.
	Path []grid.Coord
}
