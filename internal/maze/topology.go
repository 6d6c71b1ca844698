package maze

// Reach filters neighbours by whether they already belong to the maze.
type Reach int

const (
	Anything Reach = iota
	ReachableOnly
	UnreachableOnly
)

// String returns a human-readable name for the filter.
func (r Reach) String() string {
	switch r {
	case Anything:
		return "Anything"
	case ReachableOnly:
		return "ReachableOnly"
	case UnreachableOnly:
		return "UnreachableOnly"
	default:
		return "Unknown"
	}
}

// Neighbor is one entry of a cell's adjacency: the direction taken and the
// cell it leads to.
type Neighbor struct {
	Dir Dir
	To  Coord
}

// Topology is the capability set carving and solving algorithms work
// against. Rectangular and polar grids both implement it.
//
// Neighbors returns entries in a fixed direction order so seeded runs are
// reproducible. Connect is the only mutator of maze topology: it opens the
// wall on both sides. Coordinates outside the grid are programming errors
// and panic.
type Topology interface {
	// Rows returns the number of rows (rings for polar grids).
	Rows() int

	// RowLen returns the number of cells in row y.
	RowLen(y int) int

	// Cells returns the total number of cells.
	Cells() int

	// InBounds reports whether c names a cell of the grid.
	InBounds(c Coord) bool

	// Neighbors lists adjacent cells of c that pass the filter.
	Neighbors(c Coord, filter Reach) []Neighbor

	// Connect opens the wall of c in direction d and the matching wall of
	// the neighbour.
	Connect(c Coord, d Dir)

	// IsOpen reports whether the wall of c in direction d is open.
	IsOpen(c Coord, d Dir) bool

	// Reachable reports whether c is part of the carved maze.
	Reachable(c Coord) bool

	// MarkReached forces c to count as reachable without opening a wall.
	MarkReached(c Coord)

	// Opposite returns the direction leading from the neighbour of c in
	// direction d back to c.
	Opposite(c Coord, d Dir) Dir
}

// AllCoords returns every coordinate of t, ordered by row then column.
func AllCoords(t Topology) []Coord {
	coords := make([]Coord, 0, t.Cells())
	for y := 0; y < t.Rows(); y++ {
		for x := 0; x < t.RowLen(y); x++ {
			coords = append(coords, C(x, y))
		}
	}
	return coords
}

// Passages returns the open neighbour links of c.
func Passages(t Topology, c Coord) []Neighbor {
	var open []Neighbor
	for _, n := range t.Neighbors(c, Anything) {
		if t.IsOpen(c, n.Dir) {
			open = append(open, n)
		}
	}
	return open
}

// NeighborAt returns the cell reached from c in direction d.
// ok is false if no such cell exists.
func NeighborAt(t Topology, c Coord, d Dir) (Coord, bool) {
	for _, n := range t.Neighbors(c, Anything) {
		if n.Dir == d {
			return n.To, true
		}
	}
	return Coord{}, false
}
