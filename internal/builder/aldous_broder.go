package builder

import (
	"math/rand"

	"github.com/vovakirdan/mazey/internal/maze"
)

// AldousBroder carves t with an unbiased random walk from start. Whenever
// the walk steps onto a cell it has never visited, the wall it crossed is
// opened. Runs until every cell has been visited; expected running time is
// quadratic in the number of cells.
func AldousBroder(t maze.Topology, start maze.Coord, rng *rand.Rand) {
	remaining := t.Cells() - 1
	cur := start

	for remaining > 0 {
		neighbors := t.Neighbors(cur, maze.Anything)
		n := neighbors[rng.Intn(len(neighbors))]

		if !t.Reachable(n.To) {
			t.Connect(cur, n.Dir)
			remaining--
		}
		cur = n.To
	}
}
