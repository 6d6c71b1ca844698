package maze

// Cell is a rectangular maze cell.
// walls holds one flag per side in North, East, South, West order;
// true means the wall is present.
type Cell struct {
	walls  [4]bool
	forced bool // counts as reached without any open wall
}

// NewFullCell returns a cell with all four walls present.
func NewFullCell() Cell {
	return Cell{walls: [4]bool{true, true, true, true}}
}

// NewEmptyCell returns a cell with all four walls open.
func NewEmptyCell() Cell {
	return Cell{}
}

// IsOpen reports whether the wall on side s is open.
func (c *Cell) IsOpen(s Side) bool {
	return !c.walls[s]
}

// Open removes the wall on side s.
// The wall must currently be present.
func (c *Cell) Open(s Side) {
	if !c.walls[s] {
		Invariantf("wall %s already open", s)
	}
	c.walls[s] = false
}

// OpenCount returns the number of open walls.
func (c *Cell) OpenCount() int {
	n := 0
	for _, w := range c.walls {
		if !w {
			n++
		}
	}
	return n
}

// Reachable reports whether the cell is part of the carved maze: any wall
// is open, or it was force-marked.
func (c *Cell) Reachable() bool {
	return c.forced || c.OpenCount() > 0
}

// MarkReached forces the cell to count as reachable. The flag is never
// cleared.
func (c *Cell) MarkReached() {
	c.forced = true
}
