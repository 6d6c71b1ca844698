// Package maze holds the maze topology model: cell wall state, the
// rectangular and polar grids, and neighbour enumeration over both.
// It contains no external dependencies so carving and solving stay
// pure and testable.
package maze

import "fmt"

// Coord identifies a cell.
// For rectangular grids X is the column and Y the row. For polar grids X is
// the angular index inside a ring and Y the ring (0 = hub).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}
