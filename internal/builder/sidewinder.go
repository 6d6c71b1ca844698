package builder

import (
	"math/rand"

	"github.com/vovakirdan/mazey/internal/maze"
)

// Sidewinder carves g row by row. Cells are linked East into runs; when a
// run closes (a coin flip, or the end of the row) one of its cells opens
// North. The top row is a single East corridor.
func Sidewinder(g *maze.Grid, rng *rand.Rand) {
	w, h := g.Width(), g.Height()

	for y := 0; y < h; y++ {
		run := 0 // cells linked East before x in the current run

		for x := 0; x < w; x++ {
			last := x == w-1
			switch {
			case y == 0 && last:
				// top-right corner: nothing left to join
			case y == 0:
				g.Connect(maze.C(x, y), maze.East)
			case last || rng.Intn(2) == 0:
				back := rng.Intn(run + 1)
				g.Connect(maze.C(x-back, y), maze.North)
				run = 0
			default:
				g.Connect(maze.C(x, y), maze.East)
				run++
			}
		}
	}
}
