// Package core provides the character screen buffer that maze renderers
// draw into, plus small geometry helpers. It has no external dependencies
// so rendering stays testable without a terminal.
package core

// Rect is an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampInto moves r so it lies inside a w x h area, shrinking it if the
// area is smaller. Used to keep a viewport over a large maze.
func (r Rect) ClampInto(w, h int) Rect {
	r.W = Clamp(r.W, 0, w)
	r.H = Clamp(r.H, 0, h)
	r.X = Clamp(r.X, 0, w-r.W)
	r.Y = Clamp(r.Y, 0, h-r.H)
	return r
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
