package solver

import "github.com/vovakirdan/mazey/internal/maze"

// DeadEnds returns the cells with exactly one open passage, in row-major
// order.
func DeadEnds(t maze.Topology) []maze.Coord {
	var ends []maze.Coord
	for _, c := range maze.AllCoords(t) {
		if len(maze.Passages(t, c)) == 1 {
			ends = append(ends, c)
		}
	}
	return ends
}

// LongestPath returns the endpoints and length (in steps) of the longest
// shortest path of a perfect maze: BFS from the hub or top-left cell finds
// one end of the diameter, a second BFS from there finds the other.
func LongestPath(t maze.Topology) (from, to maze.Coord, length int) {
	_, first := DistanceMap(t, maze.C(0, 0))
	from, _ = first.Farthest()

	_, second := DistanceMap(t, from)
	to, length = second.Farthest()
	return from, to, length
}
