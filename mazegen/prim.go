package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/step"
)

// Generate carves a perfect maze over a fresh rows×cols grid using the
// randomized Prim's algorithm, assigns terrain weights to every walkable
// cell, and selects start/end endpoints.
//
// Errors:
//   - grid.ErrInvalidDimensions if rows/cols violate the odd/≥3 contract.
//   - ErrEmptyGrid if carving produced no walkable cell (defensive guard).
//
// The returned grid fully replaces any prior maze; no cell state is
// reused between generations.
func Generate(rows, cols int, opts ...Option) (*grid.Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}

	c := &carver{
		g:      g,
		rng:    o.rng(),
		onStep: o.OnStep,
		// Each carved cell contributes at most 4 frontier entries.
		frontier: make([]grid.Coord, 0, rows*cols),
	}
	c.carve()

	if err = c.dress(); err != nil {
		return nil, err
	}

	return g, nil
}

// carver holds the transient state of one generation run. The frontier is
// discarded on completion; only the grid survives.
type carver struct {
	g        *grid.Grid
	rng      *rand.Rand
	onStep   step.Func
	frontier []grid.Coord // multiset of candidate walls; duplicates tolerated
}

// carve runs the randomized Prim's loop until the wall frontier empties.
func (c *carver) carve() {
	// 1. Seed: a uniformly random odd-coordinate cell becomes walkable.
	seed := grid.Coord{
		Row: 1 + 2*c.rng.Intn((c.g.Rows()-1)/2),
		Col: 1 + 2*c.rng.Intn((c.g.Cols()-1)/2),
	}
	c.open(seed)
	c.pushWalls(seed)

	// 2. Draw walls uniformly until the frontier empties.
	for len(c.frontier) > 0 {
		w := c.draw()

		// 3. A wall is openable only when exactly one of its two opposite
		//    neighbors along some axis is already carved.
		far, ok := c.dividedFar(w)
		if !ok {
			continue // no separating axis; discard this occurrence
		}

		// 4. Far side already carved means this wall would close a cycle.
		if !c.g.IsWall(far) {
			continue
		}

		// 5. Open the wall and the far cell, extend the frontier.
		c.open(w)
		c.open(far)
		c.pushWalls(far)
	}
}

// draw removes and returns one uniformly random frontier entry.
// Swap-remove keeps the draw O(1); the frontier is an unordered multiset,
// so entry order carries no meaning.
func (c *carver) draw() grid.Coord {
	i := c.rng.Intn(len(c.frontier))
	w := c.frontier[i]
	last := len(c.frontier) - 1
	c.frontier[i] = c.frontier[last]
	c.frontier = c.frontier[:last]

	return w
}

// open marks x walkable and emits a Carve event.
func (c *carver) open(x grid.Coord) {
	c.g.Carve(x)
	c.onStep(step.Event{Kind: step.Carve, Cell: x})
}

// pushWalls appends every in-bounds wall neighbor of x to the frontier.
// A wall reachable from several carved cells enters more than once;
// removal processes one occurrence at a time.
func (c *carver) pushWalls(x grid.Coord) {
	for _, n := range c.g.Neighbors(x) {
		if c.g.IsWall(n) {
			c.frontier = append(c.frontier, n)
		}
	}
}

// dividedFar inspects the two opposite neighbors of w along the vertical
// axis, then the horizontal one. When exactly one neighbor on an axis is
// carved and the other is still wall, it returns the wall-side neighbor.
// Both carved, both wall, or an edge wall with no opposite pair yield
// ok=false.
func (c *carver) dividedFar(w grid.Coord) (far grid.Coord, ok bool) {
	up := grid.Coord{Row: w.Row - 1, Col: w.Col}
	down := grid.Coord{Row: w.Row + 1, Col: w.Col}
	if c.g.InBounds(up.Row, up.Col) && c.g.InBounds(down.Row, down.Col) {
		uw, dw := c.g.IsWall(up), c.g.IsWall(down)
		if !uw && dw {
			return down, true
		}
		if uw && !dw {
			return up, true
		}
	}

	left := grid.Coord{Row: w.Row, Col: w.Col - 1}
	right := grid.Coord{Row: w.Row, Col: w.Col + 1}
	if c.g.InBounds(left.Row, left.Col) && c.g.InBounds(right.Row, right.Col) {
		lw, rw := c.g.IsWall(left), c.g.IsWall(right)
		if !lw && rw {
			return right, true
		}
		if lw && !rw {
			return left, true
		}
	}

	return grid.Coord{}, false
}

// dress assigns terrain to every walkable cell in a single row-major pass
// and selects the endpoints: first and last walkable cells in scan order,
// both forced to grass regardless of their draw.
func (c *carver) dress() error {
	walkable := c.g.WalkableCoords()
	if len(walkable) == 0 {
		return ErrEmptyGrid
	}

	// Independent per-cell draw; no spatial correlation.
	for _, w := range walkable {
		chance := c.rng.Intn(100)
		switch {
		case chance < waterBelow:
			c.g.SetWeight(w, grid.WeightWater)
		case chance < mudBelow:
			c.g.SetWeight(w, grid.WeightMud)
		default:
			c.g.SetWeight(w, grid.WeightGrass)
		}
	}

	start, end := walkable[0], walkable[len(walkable)-1]
	c.g.SetWeight(start, grid.WeightGrass)
	c.g.SetWeight(end, grid.WeightGrass)
	c.g.SetEndpoints(start, end)

	return nil
}
