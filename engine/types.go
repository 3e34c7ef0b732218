// Package engine defines the run-isolation state machine types, sentinel
// errors and the reported run result.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/search"
)

// Sentinel errors for engine requests.
var (
	// ErrBusy is returned when a generation or search request arrives
	// while another run is in progress. Requests are rejected, not queued.
	ErrBusy = errors.New("engine: run already in progress")

	// ErrNoMaze is returned when a search is requested before any maze
	// has been generated.
	ErrNoMaze = errors.New("engine: no maze generated")
)

// State is the engine's run state.
type State int

const (
	// StateIdle means no run is in progress.
	StateIdle State = iota
	// StateGenerating means a maze generation is in progress.
	StateGenerating
	// StateSearching means a search run is in progress.
	StateSearching
)

// String returns the human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateGenerating:
		return "generating"
	case StateSearching:
		return "searching"
	default:
		return fmt.Sprintf("engine.State(%d)", int(s))
	}
}

// RunResult is the immutable outcome of one search run, intended for
// direct display. The ID distinguishes runs for logging or reporting
// surfaces that accumulate history.
type RunResult struct {
	// ID uniquely identifies this run.
	ID uuid.UUID

	// Algorithm is the strategy that produced the result.
	Algorithm search.Algorithm

	// Found reports whether end was reached.
	Found bool

	// VisitedCount is the number of cells the run marked visited.
	VisitedCount int

	// PathLength is the cell count of the reconstructed chain, or 0.
	PathLength int

	// PathCost is the summed terrain weight over the chain, or 0.
	PathCost int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration

	// Path is the chain from start to end, nil when Found is false.
	Path []grid.Coord
}

// AsyncResult is delivered on the channel returned by RunSearchAsync.
type AsyncResult struct {
	Result *RunResult
	Err    error
}
