package grid_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/mazegrid/grid"
)

// TestNew_InvalidDimensions verifies the odd/≥3 parity contract.
func TestNew_InvalidDimensions(t *testing.T) {
	cases := []struct{ rows, cols int }{
		{0, 0}, {1, 1}, {2, 3}, {3, 2}, {4, 4}, {3, 1}, {-3, 5}, {10, 11}, {11, 10},
	}
	for _, tc := range cases {
		if _, err := grid.New(tc.rows, tc.cols); !errors.Is(err, grid.ErrInvalidDimensions) {
			t.Errorf("New(%d,%d): want ErrInvalidDimensions, got %v", tc.rows, tc.cols, err)
		}
	}
}

// TestNew_AllWallDefaults checks the freshly constructed board state.
func TestNew_AllWallDefaults(t *testing.T) {
	g, err := grid.New(5, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Rows() != 5 || g.Cols() != 7 {
		t.Fatalf("dimensions = %dx%d; want 5x7", g.Rows(), g.Cols())
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cc := grid.Coord{Row: r, Col: c}
			if !g.IsWall(cc) {
				t.Fatalf("cell %v: want wall", cc)
			}
			if w := g.Weight(cc); w != grid.WeightGrass {
				t.Fatalf("cell %v: weight = %d; want default grass", cc, w)
			}
			if !math.IsInf(g.GCost(cc), 1) || !math.IsInf(g.HCost(cc), 1) {
				t.Fatalf("cell %v: g/h costs not at +Inf sentinel", cc)
			}
			if _, ok := g.Parent(cc); ok {
				t.Fatalf("cell %v: fresh cell has a parent", cc)
			}
		}
	}
	if _, ok := g.Start(); ok {
		t.Error("fresh grid should have no start endpoint")
	}
	if n := g.WalkableCount(); n != 0 {
		t.Errorf("WalkableCount = %d; want 0", n)
	}
}

// TestNeighbors_Order pins the North, South, West, East contract that
// every traversal's tie-break depends on.
func TestNeighbors_Order(t *testing.T) {
	g, _ := grid.New(5, 5)

	center := grid.Coord{Row: 2, Col: 2}
	want := []grid.Coord{{Row: 1, Col: 2}, {Row: 3, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 3}}
	if got := g.Neighbors(center); !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(center) = %v; want N,S,W,E = %v", got, want)
	}

	// Corner: North and West fall out of bounds; S before E.
	corner := grid.Coord{Row: 0, Col: 0}
	want = []grid.Coord{{Row: 1, Col: 0}, {Row: 0, Col: 1}}
	if got := g.Neighbors(corner); !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(corner) = %v; want %v", got, want)
	}
}

// TestInBounds exercises the pure bounds predicate.
func TestInBounds(t *testing.T) {
	g, _ := grid.New(3, 5)
	cases := []struct {
		r, c int
		want bool
	}{
		{0, 0, true}, {2, 4, true}, {-1, 0, false}, {0, -1, false},
		{3, 0, false}, {0, 5, false}, {2, 5, false},
	}
	for _, tc := range cases {
		if got := g.InBounds(tc.r, tc.c); got != tc.want {
			t.Errorf("InBounds(%d,%d) = %v; want %v", tc.r, tc.c, got, tc.want)
		}
	}
}

// TestResetSearchState verifies that reset clears exactly the search
// fields and leaves walls, weights and endpoints alone.
func TestResetSearchState(t *testing.T) {
	g, _ := grid.New(3, 3)
	a := grid.Coord{Row: 1, Col: 1}
	b := grid.Coord{Row: 1, Col: 2}

	g.Carve(a)
	g.Carve(b)
	g.SetWeight(b, grid.WeightMud)
	g.SetEndpoints(a, b)

	g.MarkVisited(b)
	g.MarkOnPath(b)
	g.SetParent(b, a)
	g.SetGCost(b, 6)
	g.SetHCost(b, 1)

	g.ResetSearchState()

	if g.Visited(b) || g.OnPath(b) {
		t.Error("reset should clear visited/onPath")
	}
	if _, ok := g.Parent(b); ok {
		t.Error("reset should clear parent links")
	}
	if !math.IsInf(g.GCost(b), 1) || !math.IsInf(g.HCost(b), 1) {
		t.Error("reset should restore the +Inf cost sentinel")
	}
	// Untouched by reset:
	if g.IsWall(a) || g.IsWall(b) {
		t.Error("reset must not touch walls")
	}
	if g.Weight(b) != grid.WeightMud {
		t.Error("reset must not touch weights")
	}
	if !g.IsStart(a) || !g.IsEnd(b) {
		t.Error("reset must not touch endpoints")
	}
}

// TestParentLink checks the coordinate-based parent representation.
func TestParentLink(t *testing.T) {
	g, _ := grid.New(3, 3)
	a := grid.Coord{Row: 0, Col: 1}
	b := grid.Coord{Row: 1, Col: 1}

	g.SetParent(b, a)
	p, ok := g.Parent(b)
	if !ok || p != a {
		t.Errorf("Parent = %v,%v; want %v,true", p, ok, a)
	}
	if _, ok = g.Parent(a); ok {
		t.Error("a should have no parent")
	}
}

// TestManhattan pins the heuristic helper.
func TestManhattan(t *testing.T) {
	cases := []struct {
		a, b grid.Coord
		want int
	}{
		{grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 0, Col: 0}, 0},
		{grid.Coord{Row: 1, Col: 2}, grid.Coord{Row: 4, Col: 0}, 5},
		{grid.Coord{Row: 4, Col: 0}, grid.Coord{Row: 1, Col: 2}, 5},
	}
	for _, tc := range cases {
		if got := grid.Manhattan(tc.a, tc.b); got != tc.want {
			t.Errorf("Manhattan(%v,%v) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

// TestEqual covers the bit-identical comparison used by determinism checks.
func TestEqual(t *testing.T) {
	g1, _ := grid.New(3, 3)
	g2, _ := grid.New(3, 3)
	if !g1.Equal(g2) {
		t.Fatal("fresh identical grids must be Equal")
	}
	if g1.Equal(nil) {
		t.Error("Equal(nil) must be false")
	}
	g3, _ := grid.New(3, 5)
	if g1.Equal(g3) {
		t.Error("different dimensions must not be Equal")
	}

	c := grid.Coord{Row: 1, Col: 1}
	g2.Carve(c)
	if g1.Equal(g2) {
		t.Error("wall difference must break equality")
	}
	g1.Carve(c)
	if !g1.Equal(g2) {
		t.Error("grids converged again; must be Equal")
	}
	g2.MarkVisited(c)
	if g1.Equal(g2) {
		t.Error("search-state difference must break equality")
	}
}

// TestVisitedCount counts only flagged cells.
func TestVisitedCount(t *testing.T) {
	g, _ := grid.New(3, 3)
	if n := g.VisitedCount(); n != 0 {
		t.Fatalf("VisitedCount = %d; want 0", n)
	}
	g.MarkVisited(grid.Coord{Row: 0, Col: 0})
	g.MarkVisited(grid.Coord{Row: 2, Col: 2})
	if n := g.VisitedCount(); n != 2 {
		t.Errorf("VisitedCount = %d; want 2", n)
	}
}
