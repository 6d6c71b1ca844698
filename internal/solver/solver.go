// Package solver computes breadth-first distance fields and shortest paths
// over the open passages of a carved maze. It never mutates the maze.
package solver

import (
	"github.com/vovakirdan/mazey/internal/maze"
)

// Unvisited marks a cell BFS never reached.
const Unvisited = -1

// Distances holds one entry per cell, indexed [y][x]. Rows have the length
// of the topology row (RowLen), so polar distance maps are ragged.
type Distances [][]int

// NewDistances returns a map shaped like t with every cell Unvisited.
func NewDistances(t maze.Topology) Distances {
	d := make(Distances, t.Rows())
	for y := range d {
		row := make([]int, t.RowLen(y))
		for x := range row {
			row[x] = Unvisited
		}
		d[y] = row
	}
	return d
}

// At returns the distance of c.
func (d Distances) At(c maze.Coord) int {
	return d[c.Y][c.X]
}

func (d Distances) set(c maze.Coord, v int) {
	d[c.Y][c.X] = v
}

// Max returns the largest recorded distance, or Unvisited if empty.
func (d Distances) Max() int {
	best := Unvisited
	for _, row := range d {
		for _, v := range row {
			if v > best {
				best = v
			}
		}
	}
	return best
}

// Farthest returns the cell with the largest distance. Ties resolve to the
// first cell in row-major order.
func (d Distances) Farthest() (maze.Coord, int) {
	best, at := Unvisited, maze.Coord{}
	for y, row := range d {
		for x, v := range row {
			if v > best {
				best, at = v, maze.C(x, y)
			}
		}
	}
	return at, best
}

// bfs fills dist from start across open walls. It stops as soon as stop is
// discovered when stopAt is true.
func bfs(t maze.Topology, start maze.Coord, stop maze.Coord, stopAt bool) (Distances, int) {
	dist := NewDistances(t)
	dist.set(start, 0)
	maxDist := 0

	queue := []maze.Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curDist := dist.At(cur)

		for _, n := range t.Neighbors(cur, maze.Anything) {
			if !t.IsOpen(cur, n.Dir) {
				continue
			}

			if seen := dist.At(n.To); seen != Unvisited {
				if seen > curDist+1 {
					maze.Invariantf("bfs: %v at distance %d reached from %v at distance %d", n.To, seen, cur, curDist)
				}
				continue
			}

			dist.set(n.To, curDist+1)
			maxDist = max(maxDist, curDist+1)

			if stopAt && n.To == stop {
				return dist, maxDist
			}
			queue = append(queue, n.To)
		}
	}
	return dist, maxDist
}

// DistanceMap runs BFS from start over open walls and returns the largest
// distance found together with the full map. Cells not connected to start
// stay Unvisited.
func DistanceMap(t maze.Topology, start maze.Coord) (int, Distances) {
	dist, maxDist := bfs(t, start, start, false)
	return maxDist, dist
}

// ShortestPath returns the cells from start to finish, both included,
// following open walls.
//
// The search stops once finish is discovered, then walks back from finish
// to any open neighbour one step closer to start. Panics with an
// *maze.InvariantError if finish cannot be reached or the walk back breaks
// off; in a perfect maze neither can happen.
func ShortestPath(t maze.Topology, start, finish maze.Coord) []maze.Coord {
	dist, _ := bfs(t, start, finish, true)

	curDist := dist.At(finish)
	if curDist == Unvisited {
		maze.Invariantf("no path from %v to %v", start, finish)
	}

	path := make([]maze.Coord, 0, curDist+1)
	cur := finish
	path = append(path, cur)

	for cur != start {
		found := false
		for _, n := range t.Neighbors(cur, maze.Anything) {
			if dist.At(n.To) == curDist-1 && t.IsOpen(cur, n.Dir) {
				cur = n.To
				curDist--
				path = append(path, cur)
				found = true
				break
			}
		}
		if !found {
			maze.Invariantf("no predecessor for %v at distance %d", cur, curDist)
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
