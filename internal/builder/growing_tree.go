package builder

import (
	"math/rand"

	"github.com/vovakirdan/mazey/internal/maze"
)

// GrowingTree carves t from start with a randomized depth-first growing
// tree. Each popped cell links to one or two of its unreached neighbours,
// which are pushed in turn.
//
// Because cells may keep unreached neighbours, the stack can drain while
// islands remain. Each time that happens exactly one unreached cell that
// touches the maze (first in row-major order) is joined and growth resumes
// from it.
func GrowingTree(t maze.Topology, start maze.Coord, rng *rand.Rand) {
	unreached := newCoordSet(maze.AllCoords(t))

	unreached.Remove(start)
	stack := []maze.Coord{start}

	for {
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			neighbors := t.Neighbors(cur, maze.UnreachableOnly)
			if len(neighbors) == 0 {
				continue
			}

			count := 1 + rng.Intn(min(2, len(neighbors)))
			rng.Shuffle(len(neighbors), func(i, j int) {
				neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
			})

			for _, n := range neighbors[:count] {
				t.Connect(cur, n.Dir)
				stack = append(stack, n.To)
				unreached.Remove(n.To)
			}
		}

		if unreached.Len() == 0 {
			return
		}

		for _, c := range maze.AllCoords(t) {
			if !unreached.Has(c) {
				continue
			}
			reached := t.Neighbors(c, maze.ReachableOnly)
			if len(reached) == 0 {
				continue
			}
			t.Connect(c, reached[0].Dir)
			unreached.Remove(c)
			stack = append(stack, c)
			break
		}

		if len(stack) == 0 {
			maze.Invariantf("growing tree: %d cells unreached but none touches the maze", unreached.Len())
		}
	}
}
