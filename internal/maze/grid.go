package maze

// Grid is a rectangular maze.
// Cells are stored in row-major order: index = y*width + x.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewFull creates a grid where every cell is walled off.
// width and height must be at least 1.
func NewFull(width, height int) *Grid {
	return newGrid(width, height, NewFullCell)
}

// NewEmpty creates a grid where every wall is open.
func NewEmpty(width, height int) *Grid {
	return newGrid(width, height, NewEmptyCell)
}

func newGrid(width, height int, mk func() Cell) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range g.cells {
		g.cells[i] = mk()
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Rows implements Topology.
func (g *Grid) Rows() int {
	return g.height
}

// RowLen implements Topology. Every row has width cells.
func (g *Grid) RowLen(int) int {
	return g.width
}

// Cells implements Topology.
func (g *Grid) Cells() int {
	return len(g.cells)
}

// Index converts a coordinate to a flat array index.
func (g *Grid) Index(c Coord) int {
	return c.Y*g.width + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Cell returns the cell at c. Panics if c is out of bounds.
func (g *Grid) Cell(c Coord) *Cell {
	if !g.InBounds(c) {
		Invariantf("coordinate %v outside %dx%d grid", c, g.width, g.height)
	}
	return &g.cells[g.Index(c)]
}

// Neighbors returns the in-bounds neighbours of c in North, East, South,
// West order, restricted by filter.
func (g *Grid) Neighbors(c Coord, filter Reach) []Neighbor {
	result := make([]Neighbor, 0, 4)
	for _, d := range RectDirs {
		dx, dy := d.Side.Delta()
		n := c.Add(dx, dy)
		if !g.InBounds(n) {
			continue
		}
		if !passes(filter, g.cells[g.Index(n)].Reachable()) {
			continue
		}
		result = append(result, Neighbor{Dir: d, To: n})
	}
	return result
}

// Connect opens the wall of c on side d and the opposite wall of the
// neighbouring cell. Opening towards the outer border only touches c.
func (g *Grid) Connect(c Coord, d Dir) {
	g.Cell(c).Open(d.Side)

	dx, dy := d.Side.Delta()
	n := c.Add(dx, dy)
	if g.InBounds(n) {
		g.cells[g.Index(n)].Open(d.Side.Opposite())
	}
}

// IsOpen implements Topology.
func (g *Grid) IsOpen(c Coord, d Dir) bool {
	return g.Cell(c).IsOpen(d.Side)
}

// Reachable implements Topology.
func (g *Grid) Reachable(c Coord) bool {
	return g.Cell(c).Reachable()
}

// MarkReached implements Topology.
func (g *Grid) MarkReached(c Coord) {
	g.Cell(c).MarkReached()
}

// Opposite implements Topology. On a rectangular grid it does not depend on c.
func (g *Grid) Opposite(_ Coord, d Dir) Dir {
	return Dir{Side: d.Side.Opposite()}
}

// passes applies a reachability filter to a neighbour's state.
func passes(filter Reach, reachable bool) bool {
	switch filter {
	case ReachableOnly:
		return reachable
	case UnreachableOnly:
		return !reachable
	default:
		return true
	}
}

var _ Topology = (*Grid)(nil)
