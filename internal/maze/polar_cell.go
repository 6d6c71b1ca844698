package maze

// PolarCell is a cell of a polar grid.
//
// Ring cells carry three default walls (East, South, West) followed by one
// slot per North child. The hub cell has no default walls, only North
// slots, one per cell of the first ring.
type PolarCell struct {
	paths       []bool // true = wall present
	hasDefaults bool
	northCount  int
	forced      bool
}

// NewPolarCell returns a fully walled cell.
func NewPolarCell(hasDefaults bool, northCount int) PolarCell {
	n := northCount
	if hasDefaults {
		n += 3
	}
	paths := make([]bool, n)
	for i := range paths {
		paths[i] = true
	}
	return PolarCell{
		paths:       paths,
		hasDefaults: hasDefaults,
		northCount:  northCount,
	}
}

// HasDefaults reports whether the cell has East, South and West walls.
func (c *PolarCell) HasDefaults() bool {
	return c.hasDefaults
}

// NorthCount returns the number of North children (0, 1 or 2; the hub has
// as many as the first ring has cells).
func (c *PolarCell) NorthCount() int {
	return c.northCount
}

// slot maps a direction to its index in paths.
func (c *PolarCell) slot(d Dir) int {
	if d.Side == SideNorth {
		if d.Child < 0 || d.Child >= c.northCount {
			Invariantf("north child %d out of range [0,%d)", d.Child, c.northCount)
		}
		if c.hasDefaults {
			return 3 + d.Child
		}
		return d.Child
	}
	if !c.hasDefaults {
		Invariantf("hub cell has no %s wall", d.Side)
	}
	switch d.Side {
	case SideEast:
		return 0
	case SideSouth:
		return 1
	default:
		return 2
	}
}

// IsOpen reports whether the wall in direction d is open.
func (c *PolarCell) IsOpen(d Dir) bool {
	return !c.paths[c.slot(d)]
}

// Open removes the wall in direction d. The wall must currently be present.
func (c *PolarCell) Open(d Dir) {
	i := c.slot(d)
	if !c.paths[i] {
		Invariantf("wall %s already open", d)
	}
	c.paths[i] = false
}

// OpenCount returns the number of open wall slots.
func (c *PolarCell) OpenCount() int {
	n := 0
	for _, w := range c.paths {
		if !w {
			n++
		}
	}
	return n
}

// Reachable reports whether any wall slot is open or the cell was
// force-marked.
func (c *PolarCell) Reachable() bool {
	return c.forced || c.OpenCount() > 0
}

// MarkReached forces the cell to count as reachable.
func (c *PolarCell) MarkReached() {
	c.forced = true
}
