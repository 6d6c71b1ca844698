package builder

import (
	"math/rand"

	"github.com/vovakirdan/mazey/internal/maze"
)

// Wilson carves t with Wilson's algorithm: loop-erased random walks from
// random unreached cells, each joined to the maze once it hits a reached
// cell. The result is a uniform sample over all spanning trees of t.
func Wilson(t maze.Topology, start maze.Coord, rng *rand.Rand) {
	wilson(t, start, rng)
}

// wilson carves t and returns the number of random-walk steps taken.
func wilson(t maze.Topology, start maze.Coord, rng *rand.Rand) int {
	unreached := newCoordSet(maze.AllCoords(t))

	t.MarkReached(start)
	unreached.Remove(start)

	steps := 0
	for unreached.Len() > 0 {
		cur := unreached.At(rng.Intn(unreached.Len()))

		// dirs[i] leads from path[i] to path[i+1]
		path := []maze.Coord{cur}
		dirs := []maze.Dir{}
		onPath := map[maze.Coord]int{cur: 0}

		for {
			neighbors := t.Neighbors(cur, maze.Anything)
			n := neighbors[rng.Intn(len(neighbors))]
			steps++
			cur = n.To

			if i, ok := onPath[cur]; ok {
				// erase the loop back to the revisited cell
				for _, c := range path[i+1:] {
					delete(onPath, c)
				}
				path = path[:i+1]
				dirs = dirs[:i]
				continue
			}

			path = append(path, cur)
			dirs = append(dirs, n.Dir)
			onPath[cur] = len(path) - 1

			if t.Reachable(cur) {
				break
			}
		}

		for i, d := range dirs {
			t.Connect(path[i], d)
			unreached.Remove(path[i])
		}
	}
	return steps
}
