package maze

import "fmt"

// Side is one of the four wall sides of a cell.
type Side uint8

const (
	SideNorth Side = iota
	SideEast
	SideSouth
	SideWest
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideNorth:
		return "North"
	case SideEast:
		return "East"
	case SideSouth:
		return "South"
	case SideWest:
		return "West"
	default:
		return "Unknown"
	}
}

// Opposite returns the geometrically opposite side (North<->South, East<->West).
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// Delta returns the rectangular grid offset for the side.
// North is up (y-1), matching screen coordinates.
func (s Side) Delta() (int, int) {
	switch s {
	case SideNorth:
		return 0, -1
	case SideEast:
		return 1, 0
	case SideSouth:
		return 0, 1
	case SideWest:
		return -1, 0
	default:
		return 0, 0
	}
}

// Dir is an outgoing direction from a cell.
// Child selects one of several North passages on polar grids, where a cell
// may have two children in the next ring. It is always 0 elsewhere.
type Dir struct {
	Side  Side
	Child int
}

// The four plain directions. On polar grids North is North(0).
var (
	North = Dir{Side: SideNorth}
	East  = Dir{Side: SideEast}
	South = Dir{Side: SideSouth}
	West  = Dir{Side: SideWest}
)

// NorthChild returns the North direction leading to child k.
func NorthChild(k int) Dir {
	return Dir{Side: SideNorth, Child: k}
}

// String returns a human-readable name for the direction.
func (d Dir) String() string {
	if d.Side == SideNorth && d.Child > 0 {
		return fmt.Sprintf("North(%d)", d.Child)
	}
	return d.Side.String()
}

// RectDirs lists the rectangular directions in their fixed order.
var RectDirs = [4]Dir{North, East, South, West}
