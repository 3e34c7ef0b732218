package grid

import "fmt"

// neighborOffsets lists the 4-directional offsets in the fixed
// North, South, West, East order. Every algorithm in this module expands
// neighbors in this order; it is the tie-break contract.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// New constructs an all-wall Grid of the given dimensions.
// Returns ErrInvalidDimensions unless both rows and cols are odd and ≥ 3
// (parity keeps "cell" and "wall" positions alternating during carving).
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 3 || cols < 3 || rows%2 == 0 || cols%2 == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]cell, rows*cols),
		start: noParent,
		end:   noParent,
	}
	for i := range g.cells {
		g.cells[i] = cell{
			wall:   true,
			weight: WeightGrass,
			parent: noParent,
			gCost:  unreached(),
			hCost:  unreached(),
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies within the board.
// Pure function of the four ints; O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// index maps a Coord to its row-major slice position.
// Callers must pass in-bounds coordinates; the index is an internal
// invariant, so a violation panics rather than silently aliasing a
// neighboring row.
func (g *Grid) index(c Coord) int {
	if !g.InBounds(c.Row, c.Col) {
		panic(fmt.Sprintf("grid: coordinate %d,%d outside %dx%d board", c.Row, c.Col, g.rows, g.cols))
	}

	return c.Row*g.cols + c.Col
}

// coordOf converts a row-major index back to a Coord.
func (g *Grid) coordOf(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Neighbors returns the in-bounds 4-neighbors of c in the fixed
// North, South, West, East order. The result holds at most 4 coordinates.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range neighborOffsets {
		nr, nc := c.Row+d[0], c.Col+d[1]
		if g.InBounds(nr, nc) {
			out = append(out, Coord{Row: nr, Col: nc})
		}
	}

	return out
}

// ResetSearchState clears visited, onPath, parent, gCost and hCost on
// every cell. Walls, weights and endpoints are untouched.
// Called at the start of every search run; O(rows×cols).
func (g *Grid) ResetSearchState() {
	for i := range g.cells {
		g.cells[i].visited = false
		g.cells[i].onPath = false
		g.cells[i].parent = noParent
		g.cells[i].gCost = unreached()
		g.cells[i].hCost = unreached()
	}
}

// --- Cell-state query surface (read-only) ---

// IsWall reports whether the cell at c is impassable.
func (g *Grid) IsWall(c Coord) bool { return g.cells[g.index(c)].wall }

// Weight returns the terrain cost of the cell at c.
// Meaningful only when IsWall(c) is false.
func (g *Grid) Weight(c Coord) int { return g.cells[g.index(c)].weight }

// Visited reports whether the current search run has visited c.
func (g *Grid) Visited(c Coord) bool { return g.cells[g.index(c)].visited }

// OnPath reports whether c lies on the reconstructed path of the last
// successful search run.
func (g *Grid) OnPath(c Coord) bool { return g.cells[g.index(c)].onPath }

// Parent returns the parent link of c and whether one is set.
func (g *Grid) Parent(c Coord) (Coord, bool) {
	p := g.cells[g.index(c)].parent
	if p == noParent {
		return Coord{}, false
	}

	return g.coordOf(p), true
}

// GCost returns the cumulative path cost from start recorded on c,
// or +Inf if c has not been reached.
func (g *Grid) GCost(c Coord) float64 { return g.cells[g.index(c)].gCost }

// HCost returns the heuristic estimate recorded on c, or +Inf.
func (g *Grid) HCost(c Coord) float64 { return g.cells[g.index(c)].hCost }

// Start returns the start endpoint, if endpoints have been selected.
func (g *Grid) Start() (Coord, bool) {
	if g.start == noParent {
		return Coord{}, false
	}

	return g.coordOf(g.start), true
}

// End returns the end endpoint, if endpoints have been selected.
func (g *Grid) End() (Coord, bool) {
	if g.end == noParent {
		return Coord{}, false
	}

	return g.coordOf(g.end), true
}

// IsStart reports whether c is the start endpoint.
func (g *Grid) IsStart(c Coord) bool { return g.start != noParent && g.index(c) == g.start }

// IsEnd reports whether c is the end endpoint.
func (g *Grid) IsEnd(c Coord) bool { return g.end != noParent && g.index(c) == g.end }

// WalkableCount returns the number of non-wall cells.
// Complexity: O(rows×cols).
func (g *Grid) WalkableCount() int {
	n := 0
	for i := range g.cells {
		if !g.cells[i].wall {
			n++
		}
	}

	return n
}

// VisitedCount returns the number of cells the current search run has
// marked visited. Complexity: O(rows×cols).
func (g *Grid) VisitedCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].visited {
			n++
		}
	}

	return n
}

// WalkableCoords returns every walkable coordinate in row-major scan
// order. Endpoint selection and the test suite rely on this order.
func (g *Grid) WalkableCoords() []Coord {
	out := make([]Coord, 0, len(g.cells))
	for i := range g.cells {
		if !g.cells[i].wall {
			out = append(out, g.coordOf(i))
		}
	}

	return out
}

// --- Mutators (generator and search engine only) ---
//
// Walls and weights must never be written once generation completes;
// a search run mutates only visited/onPath/parent/gCost/hCost.
// The engine facade enforces this discipline for external callers.

// Carve opens the cell at c (clears its wall flag).
func (g *Grid) Carve(c Coord) { g.cells[g.index(c)].wall = false }

// SetWeight assigns the terrain cost of the cell at c.
func (g *Grid) SetWeight(c Coord, w int) { g.cells[g.index(c)].weight = w }

// SetEndpoints records the start and end cells chosen after generation.
func (g *Grid) SetEndpoints(start, end Coord) {
	g.start = g.index(start)
	g.end = g.index(end)
}

// MarkVisited sets the visited flag on c.
func (g *Grid) MarkVisited(c Coord) { g.cells[g.index(c)].visited = true }

// MarkOnPath sets the on-path flag on c.
func (g *Grid) MarkOnPath(c Coord) { g.cells[g.index(c)].onPath = true }

// SetParent points the parent link of c at p. Parent assignment happens
// only from a cell already dequeued/explored, which structurally prevents
// cycles in the parent forest.
func (g *Grid) SetParent(c, p Coord) { g.cells[g.index(c)].parent = g.index(p) }

// SetGCost records the cumulative path cost on c.
func (g *Grid) SetGCost(c Coord, v float64) { g.cells[g.index(c)].gCost = v }

// SetHCost records the heuristic estimate on c.
func (g *Grid) SetHCost(c Coord, v float64) { g.cells[g.index(c)].hCost = v }

// Equal reports whether g and other hold bit-identical state: dimensions,
// endpoints, walls, weights and all per-cell search fields.
// Used by determinism checks; O(rows×cols).
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	if g.start != other.start || g.end != other.end {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}
