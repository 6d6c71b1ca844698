// Package render draws carved mazes as text, into a core.Screen for the
// terminal viewer, and as SVG documents.
package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/mazey/internal/core"
	"github.com/vovakirdan/mazey/internal/maze"
	"github.com/vovakirdan/mazey/internal/solver"
)

// Style selects a text rendering of rectangular mazes.
type Style string

const (
	StyleBlocks Style = "blocks" // full-block walls, two characters per cell
	StyleLines  Style = "lines"  // +---+ corners and | walls
)

// Styles lists the known text styles.
var Styles = []Style{StyleBlocks, StyleLines}

// ParseStyle converts a name to a Style.
func ParseStyle(name string) (Style, error) {
	for _, s := range Styles {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("render: unknown style %q", name)
}

// Overlay is the solver output drawn on top of the walls.
type Overlay struct {
	Path    []maze.Coord     // solution, start first
	Dist    solver.Distances // nil disables the heat map
	MaxDist int
}

// onPath returns the set of path cells.
func (o Overlay) onPath() map[maze.Coord]bool {
	set := make(map[maze.Coord]bool, len(o.Path))
	for _, c := range o.Path {
		set[c] = true
	}
	return set
}

// cellColor picks the colour role of a cell interior.
func (o Overlay) cellColor(c maze.Coord, path map[maze.Coord]bool) core.Color {
	if n := len(o.Path); n > 0 {
		switch c {
		case o.Path[0]:
			return core.ColorStart
		case o.Path[n-1]:
			return core.ColorFinish
		}
	}
	if path[c] {
		return core.ColorPath
	}
	if o.Dist != nil {
		return core.Heat(core.HeatFor(o.Dist.At(c), o.MaxDist))
	}
	return core.ColorDefault
}

// ScreenFor returns a screen holding the text rendering of t.
// Rectangular grids use style; polar grids always use the ring dump.
func ScreenFor(t maze.Topology, style Style, ov Overlay) (*core.Screen, error) {
	switch g := t.(type) {
	case *maze.Grid:
		switch style {
		case StyleBlocks:
			return BlocksScreen(g, ov), nil
		case StyleLines:
			return LinesScreen(g, ov), nil
		default:
			return nil, fmt.Errorf("render: unknown style %q", style)
		}
	case *maze.PolarGrid:
		return PolarScreen(g, ov), nil
	default:
		return nil, fmt.Errorf("render: unsupported topology %T", t)
	}
}

// Text renders t as plain text.
func Text(t maze.Topology, style Style, ov Overlay) (string, error) {
	s, err := ScreenFor(t, style, ov)
	if err != nil {
		return "", err
	}
	return trimLines(s.String()), nil
}

func trimLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

// FitRect returns the largest rectangular maze whose rendering in style
// fits into cols x rows terminal cells. Both results are at least 1.
func FitRect(style Style, cols, rows int) (w, h int) {
	cellW := 2
	if style == StyleLines {
		cellW = 4
	}
	return max(1, (cols-1)/cellW), max(1, (rows-1)/2)
}
