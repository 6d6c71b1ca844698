package maze

import "math"

// PolarOptions controls ring layout.
type PolarOptions struct {
	HubCells    int     // cells of the first ring around the hub
	LevelHeight float64 // radial height of one ring
	CellArc     float64 // arc length above which a ring doubles its cell count
}

// DefaultPolarOptions returns the standard layout: a 6-way hub, rings 30
// units tall, doubling once cells would exceed an arc of 15.
func DefaultPolarOptions() PolarOptions {
	return PolarOptions{
		HubCells:    6,
		LevelHeight: 30,
		CellArc:     15,
	}
}

// PolarGrid is an annular maze: ring 0 is a single hub cell and each
// following ring holds either as many cells as the previous ring or exactly
// twice as many.
type PolarGrid struct {
	opts  PolarOptions
	sizes []int
	cells [][]PolarCell
}

// NewPolar creates a fully walled polar grid with the default layout.
func NewPolar(rings int) *PolarGrid {
	return NewPolarWithOptions(rings, DefaultPolarOptions())
}

// NewPolarWithOptions creates a fully walled polar grid.
// Zero option fields fall back to the defaults. rings must be at least 1.
func NewPolarWithOptions(rings int, opts PolarOptions) *PolarGrid {
	opts = opts.withDefaults()
	sizes := RingSizes(rings, opts)
	g := &PolarGrid{
		opts:  opts,
		sizes: sizes,
		cells: make([][]PolarCell, rings),
	}

	for y, n := range sizes {
		north := 0
		if y+1 < rings {
			north = sizes[y+1] / n
		}
		row := make([]PolarCell, n)
		for x := range row {
			row[x] = NewPolarCell(y > 0, north)
		}
		g.cells[y] = row
	}
	return g
}

// withDefaults fills non-positive fields from DefaultPolarOptions.
func (o PolarOptions) withDefaults() PolarOptions {
	def := DefaultPolarOptions()
	if o.HubCells <= 0 {
		o.HubCells = def.HubCells
	}
	if o.LevelHeight <= 0 {
		o.LevelHeight = def.LevelHeight
	}
	if o.CellArc <= 0 {
		o.CellArc = def.CellArc
	}
	return o
}

// RingSizes computes the cell count of every ring.
// The count of ring h doubles when the circumference at the ring's inner
// radius fits at least twice the current count of arcs.
func RingSizes(rings int, opts PolarOptions) []int {
	if rings <= 0 {
		return nil
	}
	opts = opts.withDefaults()
	sizes := make([]int, 0, rings)
	sizes = append(sizes, 1)

	current := opts.HubCells
	for h := 1; h < rings; h++ {
		r := (float64(h) - 0.5) * opts.LevelHeight
		circumference := 2 * r * math.Pi
		possible := int(circumference / opts.CellArc)
		if possible >= current*2 {
			current *= 2
		}
		sizes = append(sizes, current)
	}
	return sizes
}

// Options returns the layout the grid was built with.
func (g *PolarGrid) Options() PolarOptions {
	return g.opts
}

// RingSizes returns a copy of the per-ring cell counts.
func (g *PolarGrid) RingSizes() []int {
	out := make([]int, len(g.sizes))
	copy(out, g.sizes)
	return out
}

// Rows implements Topology.
func (g *PolarGrid) Rows() int {
	return len(g.sizes)
}

// RowLen implements Topology.
func (g *PolarGrid) RowLen(y int) int {
	return g.sizes[y]
}

// Cells implements Topology.
func (g *PolarGrid) Cells() int {
	total := 0
	for _, n := range g.sizes {
		total += n
	}
	return total
}

// InBounds implements Topology.
func (g *PolarGrid) InBounds(c Coord) bool {
	return c.Y >= 0 && c.Y < len(g.sizes) && c.X >= 0 && c.X < g.sizes[c.Y]
}

// Cell returns the cell at c. Panics if c is out of bounds.
func (g *PolarGrid) Cell(c Coord) *PolarCell {
	if !g.InBounds(c) {
		Invariantf("coordinate %v outside polar grid of %d rings", c, len(g.sizes))
	}
	return &g.cells[c.Y][c.X]
}

// Scale returns how many cells of ring y sit above one cell of ring y-1.
// It is always 1 or 2, except for the first ring where it equals the hub
// fan-out.
func (g *PolarGrid) Scale(y int) int {
	if y <= 0 {
		return 1
	}
	return g.sizes[y] / g.sizes[y-1]
}

// NorthCount returns the number of North children of c.
func (g *PolarGrid) NorthCount(c Coord) int {
	return g.Cell(c).NorthCount()
}

// Neighbors returns the neighbours of c in East, South, West, North(0..k)
// order, restricted by filter. The hub only has North neighbours.
func (g *PolarGrid) Neighbors(c Coord, filter Reach) []Neighbor {
	cell := g.Cell(c)
	result := make([]Neighbor, 0, 3+cell.northCount)

	add := func(d Dir, to Coord) {
		if passes(filter, g.cells[to.Y][to.X].Reachable()) {
			result = append(result, Neighbor{Dir: d, To: to})
		}
	}

	if cell.hasDefaults {
		n := g.sizes[c.Y]
		add(East, C((c.X+1)%n, c.Y))
		add(South, C(c.X/g.Scale(c.Y), c.Y-1))
		add(West, C((c.X+n-1)%n, c.Y))
	}

	if cell.northCount > 0 {
		scale := g.Scale(c.Y + 1)
		for k := 0; k < cell.northCount; k++ {
			add(NorthChild(k), C(c.X*scale+k, c.Y+1))
		}
	}
	return result
}

// Connect opens the wall of c in direction d and the matching wall of the
// neighbour.
func (g *PolarGrid) Connect(c Coord, d Dir) {
	to, ok := NeighborAt(g, c, d)
	if !ok {
		Invariantf("no neighbour of %v towards %s", c, d)
	}
	g.Cell(c).Open(d)
	g.Cell(to).Open(g.Opposite(c, d))
}

// IsOpen implements Topology.
func (g *PolarGrid) IsOpen(c Coord, d Dir) bool {
	return g.Cell(c).IsOpen(d)
}

// Reachable implements Topology.
func (g *PolarGrid) Reachable(c Coord) bool {
	return g.Cell(c).Reachable()
}

// MarkReached implements Topology.
func (g *PolarGrid) MarkReached(c Coord) {
	g.Cell(c).MarkReached()
}

// Opposite implements Topology. Going South from c lands on the parent,
// which reaches c again through North(c.X mod scale).
func (g *PolarGrid) Opposite(c Coord, d Dir) Dir {
	switch d.Side {
	case SideEast:
		return West
	case SideWest:
		return East
	case SideSouth:
		return NorthChild(c.X % g.Scale(c.Y))
	default:
		return South
	}
}

var _ Topology = (*PolarGrid)(nil)
