// Package grid defines the board types and sentinel errors shared by the
// maze generator and the search engine.
package grid

import (
	"errors"
	"math"
)

// ErrInvalidDimensions indicates a rows/cols pair that violates the
// odd/≥3 parity contract required by the maze-carving scheme.
// It is returned before any allocation happens.
var ErrInvalidDimensions = errors.New("grid: rows and cols must be odd and >= 3")

// Terrain traversal costs. Meaningful only on walkable cells.
const (
	// WeightGrass is the default (and minimum) traversal cost.
	WeightGrass = 1
	// WeightMud is the mid-tier traversal cost.
	WeightMud = 5
	// WeightWater is the maximum traversal cost.
	WeightWater = 10
)

// noParent marks a cell without a parent link.
const noParent = -1

// Coord identifies a cell by its 0-indexed row and column.
type Coord struct {
	Row, Col int
}

// Manhattan returns the Manhattan distance |Δrow| + |Δcol| between a and b.
// With axis-aligned unit moves and a minimum terrain cost of WeightGrass,
// it is an admissible heuristic for A*.
func Manhattan(a, b Coord) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// cell is the per-position storage. It never escapes the Grid.
type cell struct {
	wall    bool    // true = impassable; all cells start as walls
	weight  int     // terrain cost; one of WeightGrass/WeightMud/WeightWater
	visited bool    // set by a search run
	onPath  bool    // set during path reconstruction
	parent  int     // row-major index of the parent cell, noParent if unset
	gCost   float64 // cumulative path cost from start; +Inf until reached
	hCost   float64 // heuristic estimate to goal; +Inf until computed
}

// unreached is the "not yet reached" cost sentinel.
func unreached() float64 { return math.Inf(1) }

// Grid is a fixed-size board of cells, rows and cols both odd.
// The zero value is unusable; construct with New.
type Grid struct {
	rows, cols int
	cells      []cell // row-major
	start, end int    // row-major endpoint indices, noParent until set
}
