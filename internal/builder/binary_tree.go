package builder

import (
	"math/rand"

	"github.com/vovakirdan/mazey/internal/maze"
)

// BinaryTree carves g row by row. Every cell except the top-right corner
// opens either North or East: the top row always goes East, the rightmost
// column always goes North.
func BinaryTree(g *maze.Grid, rng *rand.Rand) {
	w, h := g.Width(), g.Height()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if y == 0 && x == w-1 {
				continue
			}

			var d maze.Dir
			switch {
			case y == 0:
				d = maze.East
			case x == w-1:
				d = maze.North
			case rng.Intn(2) == 0:
				d = maze.North
			default:
				d = maze.East
			}
			g.Connect(maze.C(x, y), d)
		}
	}
}
