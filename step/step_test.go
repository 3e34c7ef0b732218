package step_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/step"
)

func TestKind_String(t *testing.T) {
	cases := map[step.Kind]string{
		step.Carve:    "carve",
		step.Settle:   "settle",
		step.Path:     "path",
		step.Kind(42): "step.Kind(42)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("String() = %q; want %q", got, want)
		}
	}
}

// TestRecorder_Filtering: each accessor returns its kind only, in
// emission order.
func TestRecorder_Filtering(t *testing.T) {
	a := grid.Coord{Row: 1, Col: 1}
	b := grid.Coord{Row: 1, Col: 2}
	c := grid.Coord{Row: 2, Col: 2}

	var rec step.Recorder
	rec.Record(step.Event{Kind: step.Carve, Cell: a})
	rec.Record(step.Event{Kind: step.Settle, Cell: a})
	rec.Record(step.Event{Kind: step.Settle, Cell: b})
	rec.Record(step.Event{Kind: step.Path, Cell: c})
	rec.Record(step.Event{Kind: step.Carve, Cell: b})

	if got := rec.Carved(); !reflect.DeepEqual(got, []grid.Coord{a, b}) {
		t.Errorf("Carved() = %v; want [%v %v]", got, a, b)
	}
	if got := rec.Settled(); !reflect.DeepEqual(got, []grid.Coord{a, b}) {
		t.Errorf("Settled() = %v; want [%v %v]", got, a, b)
	}
	if got := rec.PathCells(); !reflect.DeepEqual(got, []grid.Coord{c}) {
		t.Errorf("PathCells() = %v; want [%v]", got, c)
	}
	if len(rec.Events) != 5 {
		t.Errorf("Events length = %d; want 5", len(rec.Events))
	}
}

func TestRecorder_Empty(t *testing.T) {
	var rec step.Recorder
	if got := rec.Settled(); len(got) != 0 {
		t.Errorf("Settled() on empty recorder = %v; want empty", got)
	}
}
