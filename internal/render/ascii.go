package render

import (
	"fmt"

	"github.com/vovakirdan/mazey/internal/core"
	"github.com/vovakirdan/mazey/internal/maze"
)

const (
	blockWall = '█'
	pathMark  = 'x'
)

// BlocksScreen draws g with full blocks. Cell (x, y) sits at screen
// position (2x+1, 2y+1); walls and corners fill the even rows and columns.
func BlocksScreen(g *maze.Grid, ov Overlay) *core.Screen {
	w, h := g.Width(), g.Height()
	s := core.NewScreen(2*w+1, 2*h+1)
	path := ov.onPath()

	wall := func(x, y int, closed bool, open core.Color) {
		if closed {
			s.SetCell(x, y, blockWall, core.ColorWall)
		} else {
			s.SetCell(x, y, ' ', open)
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := maze.C(x, y)
			sx, sy := 2*x+1, 2*y+1
			color := ov.cellColor(c, path)

			s.SetCell(sx-1, sy-1, blockWall, core.ColorWall)
			wall(sx, sy-1, !g.IsOpen(c, maze.North), color)
			wall(sx-1, sy, !g.IsOpen(c, maze.West), color)

			mark := ' '
			if path[c] {
				mark = pathMark
			}
			s.SetCell(sx, sy, mark, color)

			if x == w-1 {
				s.SetCell(sx+1, sy-1, blockWall, core.ColorWall)
				wall(sx+1, sy, !g.IsOpen(c, maze.East), color)
			}
			if y == h-1 {
				s.SetCell(sx-1, sy+1, blockWall, core.ColorWall)
				wall(sx, sy+1, !g.IsOpen(c, maze.South), color)
			}
		}
	}
	s.SetCell(2*w, 2*h, blockWall, core.ColorWall)
	return s
}

// LinesScreen draws g with +---+ corners. Each cell is three characters
// wide and one line tall.
func LinesScreen(g *maze.Grid, ov Overlay) *core.Screen {
	w, h := g.Width(), g.Height()
	s := core.NewScreen(4*w+1, 2*h+1)
	path := ov.onPath()

	hwall := func(x, y int, closed bool) {
		s.SetCell(x, y, '+', core.ColorWall)
		if closed {
			s.DrawHLine(x+1, y, 3, '-', core.ColorWall)
		}
	}
	vwall := func(x, y int, closed bool) {
		if closed {
			s.SetCell(x, y, '|', core.ColorWall)
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := maze.C(x, y)
			sx, sy := 4*x, 2*y

			hwall(sx, sy, !g.IsOpen(c, maze.North))
			vwall(sx, sy+1, !g.IsOpen(c, maze.West))

			color := ov.cellColor(c, path)
			mark := ' '
			if path[c] {
				mark = pathMark
			}
			s.SetCell(sx+1, sy+1, ' ', color)
			s.SetCell(sx+2, sy+1, mark, color)
			s.SetCell(sx+3, sy+1, ' ', color)

			if x == w-1 {
				s.SetCell(sx+4, sy, '+', core.ColorWall)
				vwall(sx+4, sy+1, !g.IsOpen(c, maze.East))
			}
			if y == h-1 {
				hwall(sx, sy+2, !g.IsOpen(c, maze.South))
			}
		}
	}
	s.SetCell(4*w, 2*h, '+', core.ColorWall)
	return s
}

// PolarScreen dumps a polar grid ring by ring, hub first. Every ring but
// the hub takes two lines: the inner (South) walls, then the cells with
// their West walls. Rings are unrolled from angle zero, so outer rings are
// longer.
func PolarScreen(p *maze.PolarGrid, ov Overlay) *core.Screen {
	widest := 0
	for _, n := range p.RingSizes() {
		widest = max(widest, n)
	}

	const margin = 4
	s := core.NewScreen(margin+3*widest, 2*p.Rows()-1)
	path := ov.onPath()

	hub := maze.C(0, 0)
	s.DrawText(0, 0, label(0), core.ColorMuted)
	s.SetCell(margin, 0, '(', core.ColorWall)
	s.SetCell(margin+1, 0, ' ', ov.cellColor(hub, path))
	if path[hub] {
		s.SetCell(margin+2, 0, pathMark, ov.cellColor(hub, path))
	} else {
		s.SetCell(margin+2, 0, ' ', ov.cellColor(hub, path))
	}
	s.SetCell(margin+3, 0, ')', core.ColorWall)

	for y := 1; y < p.Rows(); y++ {
		south, cells := 2*y-1, 2*y
		s.DrawText(0, cells, label(y), core.ColorMuted)

		for x := 0; x < p.RowLen(y); x++ {
			c := maze.C(x, y)
			sx := margin + 3*x
			color := ov.cellColor(c, path)

			s.SetCell(sx, south, '+', core.ColorWall)
			if !p.IsOpen(c, maze.South) {
				s.DrawHLine(sx+1, south, 2, '-', core.ColorWall)
			}

			if !p.IsOpen(c, maze.West) {
				s.SetCell(sx, cells, '|', core.ColorWall)
			}
			mark := ' '
			if path[c] {
				mark = pathMark
			}
			s.SetCell(sx+1, cells, ' ', color)
			s.SetCell(sx+2, cells, mark, color)
		}
	}
	return s
}

func label(ring int) string {
	return fmt.Sprintf("%3d ", ring)
}
