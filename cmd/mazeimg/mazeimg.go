// This defines a basic executable for generating an image of a maze and,
// optionally, of a search run over it. It consumes only the grid's
// read-only query surface, as any renderer should.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/mazegrid/engine"
	"github.com/katalvlaran/mazegrid/grid"
	"github.com/katalvlaran/mazegrid/mazegen"
	"github.com/katalvlaran/mazegrid/search"
)

const cellPixels = 15

// Board palette, matching the traditional terrain colors.
var (
	colWall    = color.RGBA{40, 40, 40, 255}
	colGrass   = color.RGBA{144, 238, 144, 255}
	colMud     = color.RGBA{205, 133, 63, 255}
	colWater   = color.RGBA{135, 206, 235, 255}
	colStart   = color.RGBA{0, 255, 0, 255}
	colGoal    = color.RGBA{255, 0, 0, 255}
	colVisited = color.RGBA{255, 255, 0, 255}
	colPath    = color.RGBA{138, 43, 226, 255}
)

func terrainColor(weight int) color.RGBA {
	switch weight {
	case grid.WeightMud:
		return colMud
	case grid.WeightWater:
		return colWater
	default:
		return colGrass
	}
}

// blend mixes two colors 50/50, used to overlay "visited" onto terrain.
func blend(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((int(a.R) + int(b.R)) / 2),
		G: uint8((int(a.G) + int(b.G)) / 2),
		B: uint8((int(a.B) + int(b.B)) / 2),
		A: 255,
	}
}

// cellColor picks the display color for one cell from the query surface.
func cellColor(g *grid.Grid, c grid.Coord) color.RGBA {
	switch {
	case g.IsWall(c):
		return colWall
	case g.IsStart(c):
		return colStart
	case g.IsEnd(c):
		return colGoal
	case g.OnPath(c):
		return colPath
	case g.Visited(c):
		return blend(terrainColor(g.Weight(c)), colVisited)
	default:
		return terrainColor(g.Weight(c))
	}
}

// rasterize draws the whole board, one filled square per cell.
func rasterize(g *grid.Grid) *image.RGBA {
	pic := image.NewRGBA(image.Rect(0, 0, g.Cols()*cellPixels, g.Rows()*cellPixels))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			col := cellColor(g, grid.Coord{Row: r, Col: c})
			for y := r * cellPixels; y < (r+1)*cellPixels; y++ {
				for x := c * cellPixels; x < (c+1)*cellPixels; x++ {
					pic.SetRGBA(x, y, col)
				}
			}
		}
	}

	return pic
}

func parseAlgorithm(name string) (search.Algorithm, error) {
	switch strings.ToLower(name) {
	case "bfs":
		return search.BFS, nil
	case "dfs":
		return search.DFS, nil
	case "dijkstra":
		return search.Dijkstra, nil
	case "astar", "a*":
		return search.AStar, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q", name)
	}
}

func run() int {
	var rows, cols int
	var randomSeed int64
	var algorithm, outFilename string
	flag.IntVar(&rows, "rows", 41, "The height of the maze, in cells. Must be odd and >= 3.")
	flag.IntVar(&cols, "cols", 41, "The width of the maze, in cells. Must be odd and >= 3.")
	flag.Int64Var(&randomSeed, "random_seed", -1,
		"If non-negative, specifies the random seed to use.")
	flag.StringVar(&algorithm, "algorithm", "",
		"If set, runs the given search (bfs, dfs, dijkstra, astar) and "+
			"renders its exploration and path.")
	flag.StringVar(&outFilename, "output_file", "",
		"The name of the .png file to which the maze will be saved.")
	flag.Parse()
	if outFilename == "" {
		fmt.Println("Invalid or missing argument.")
		fmt.Println("Run with -help for more information.")
		return 1
	}

	eng := engine.New()
	var g *grid.Grid
	var e error
	if randomSeed >= 0 {
		g, e = eng.GenerateMaze(rows, cols, mazegen.WithSeed(randomSeed))
	} else {
		g, e = eng.GenerateMaze(rows, cols)
	}
	if e != nil {
		fmt.Printf("Failed generating maze: %s\n", e)
		return 1
	}
	fmt.Printf("Generated %dx%d maze OK (%d walkable cells).\n",
		g.Rows(), g.Cols(), g.WalkableCount())

	if algorithm != "" {
		algo, err := parseAlgorithm(algorithm)
		if err != nil {
			fmt.Printf("Bad -algorithm: %s\n", err)
			return 1
		}
		res, err := eng.RunSearch(algo)
		if err != nil {
			fmt.Printf("Search failed: %s\n", err)
			return 1
		}
		status := "No Path"
		if res.Found {
			status = "Found"
		}
		fmt.Printf("Run %s\nAlgorithm: %s\nStatus: %s\nTotal Cost: %d\nVisited: %d\nPath Len: %d\nTime: %s\n",
			res.ID, res.Algorithm, status, res.PathCost, res.VisitedCount,
			res.PathLength, res.Elapsed)
	}

	finalPic := image_utils.ToRGBA(image_utils.AddImageBorder(rasterize(g), color.White, 5))
	f, e := os.Create(outFilename)
	if e != nil {
		fmt.Printf("Error creating output file %s: %s\n", outFilename, e)
		return 1
	}
	defer f.Close()
	e = png.Encode(f, finalPic)
	if e != nil {
		fmt.Printf("Error writing image to %s: %s\n", outFilename, e)
		return 1
	}
	fmt.Printf("Image %s written OK.\n", outFilename)
	return 0
}

func main() {
	os.Exit(run())
}
