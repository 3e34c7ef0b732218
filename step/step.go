package step

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
)

// Kind discriminates the unit of progress an Event reports.
type Kind int

const (
	// Carve reports a cell opened by the maze generator.
	Carve Kind = iota
	// Settle reports a cell settled by a search run.
	Settle
	// Path reports a cell marked during path reconstruction.
	Path
)

// String returns the human-readable name of k.
func (k Kind) String() string {
	switch k {
	case Carve:
		return "carve"
	case Settle:
		return "settle"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("step.Kind(%d)", int(k))
	}
}

// Event is a single progress notification. It carries no state the
// algorithm needs back; the consumer observes the grid through its
// read-only query surface.
type Event struct {
	Kind Kind
	Cell grid.Coord
}

// Func receives progress events. It is called synchronously from the
// algorithm goroutine; blocking inside it paces the run.
type Func func(Event)

// Nop is the no-op consumer used when no callback is supplied.
func Nop(Event) {}

// Recorder collects every emitted Event in order. Useful for headless
// instrumentation and for asserting exploration order in tests.
// Not safe for concurrent use; a run emits from a single goroutine.
type Recorder struct {
	Events []Event
}

// Record is the Func to hand to WithOnStep.
func (r *Recorder) Record(e Event) { r.Events = append(r.Events, e) }

// Settled returns the cells of all Settle events, in emission order.
func (r *Recorder) Settled() []grid.Coord {
	return r.cellsOf(Settle)
}

// Carved returns the cells of all Carve events, in emission order.
func (r *Recorder) Carved() []grid.Coord {
	return r.cellsOf(Carve)
}

// PathCells returns the cells of all Path events, in emission order
// (end towards start, matching reconstruction order).
func (r *Recorder) PathCells() []grid.Coord {
	return r.cellsOf(Path)
}

func (r *Recorder) cellsOf(k Kind) []grid.Coord {
	out := make([]grid.Coord, 0, len(r.Events))
	for _, e := range r.Events {
		if e.Kind == k {
			out = append(out, e.Cell)
		}
	}

	return out
}
