package render

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mazey/internal/builder"
	"github.com/vovakirdan/mazey/internal/core"
	"github.com/vovakirdan/mazey/internal/maze"
	"github.com/vovakirdan/mazey/internal/solver"
)

func corridor() *maze.Grid {
	g := maze.NewFull(2, 1)
	g.Connect(maze.C(0, 0), maze.East)
	return g
}

func TestBlocks(t *testing.T) {
	g := corridor()
	ov := Overlay{Path: []maze.Coord{maze.C(0, 0), maze.C(1, 0)}}

	text, err := Text(g, StyleBlocks, ov)
	require.NoError(t, err)
	assert.Equal(t, "█████\n█x x█\n█████", text)
}

func TestLines(t *testing.T) {
	text, err := Text(corridor(), StyleLines, Overlay{})
	require.NoError(t, err)
	assert.Equal(t, "+---+---+\n|       |\n+---+---+", text)
}

func TestBlocksBorderOpening(t *testing.T) {
	g := maze.NewFull(1, 1)
	g.Connect(maze.C(0, 0), maze.West)

	text, err := Text(g, StyleBlocks, Overlay{})
	require.NoError(t, err)
	assert.Equal(t, "███\n  █\n███", text)
}

func TestBlocksColors(t *testing.T) {
	g := maze.NewFull(3, 1)
	g.Connect(maze.C(0, 0), maze.East)
	g.Connect(maze.C(1, 0), maze.East)
	maxDist, dist := solver.DistanceMap(g, maze.C(0, 0))

	ov := Overlay{
		Path:    []maze.Coord{maze.C(0, 0), maze.C(1, 0)},
		Dist:    dist,
		MaxDist: maxDist,
	}
	s := BlocksScreen(g, ov)

	assert.Equal(t, core.ColorWall, s.GetCell(0, 0).Color)
	assert.Equal(t, core.ColorStart, s.GetCell(1, 1).Color)
	assert.Equal(t, core.ColorFinish, s.GetCell(3, 1).Color)
	assert.Equal(t, core.Heat(core.HeatLevels-1), s.GetCell(5, 1).Color)
}

func TestPolarText(t *testing.T) {
	text, err := Text(maze.NewPolar(2), StyleBlocks, Overlay{})
	require.NoError(t, err)

	expected := strings.Join([]string{
		"  0 (  )",
		"    +--+--+--+--+--+--",
		"  1 |  |  |  |  |  |",
	}, "\n")
	assert.Equal(t, expected, text)
}

func TestPolarTextOpenings(t *testing.T) {
	p := maze.NewPolar(2)
	p.Connect(maze.C(0, 0), maze.NorthChild(2))
	p.Connect(maze.C(2, 1), maze.East)

	ov := Overlay{Path: []maze.Coord{maze.C(0, 0), maze.C(2, 1)}}
	text, err := Text(p, StyleBlocks, ov)
	require.NoError(t, err)

	lines := strings.Split(text, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  0 ( x)", lines[0])
	assert.Equal(t, "    +--+--+  +--+--+--", lines[1])
	assert.Equal(t, "  1 |  |  | x   |  |", lines[2])
}

func TestUnknownStyle(t *testing.T) {
	_, err := Text(corridor(), Style("fancy"), Overlay{})
	assert.EqualError(t, err, `render: unknown style "fancy"`)

	_, err = ParseStyle("fancy")
	assert.Error(t, err)

	s, err := ParseStyle("lines")
	require.NoError(t, err)
	assert.Equal(t, StyleLines, s)
}

func TestRectSVG(t *testing.T) {
	g := maze.NewFull(5, 4)
	require.NoError(t, builder.Build(g, builder.AlgoSidewinder, maze.C(0, 0), rand.New(rand.NewSource(1))))
	path := solver.ShortestPath(g, maze.C(0, 0), maze.C(4, 3))
	maxDist, dist := solver.DistanceMap(g, maze.C(0, 0))

	out, err := SVG(g, Overlay{Path: path, Dist: dist, MaxDist: maxDist}, DefaultOptions())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `width="96" height="80"`)
	assert.Contains(t, out, `<polyline points="16.00,16.00`)
	assert.Contains(t, out, `stroke="#c82828"`)
	assert.Equal(t, 20, strings.Count(out, `<rect x="`)-2, "one heat cell per maze cell")
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))

	// 20 cells, 19 passages: interior walls = 2*5*4 - 5 - 4 - 19.
	assert.Equal(t, 12, strings.Count(out, "<line "))
}

func TestPolarSVG(t *testing.T) {
	p := maze.NewPolar(4)
	require.NoError(t, builder.Build(p, builder.AlgoWilson, maze.C(0, 0), rand.New(rand.NewSource(2))))
	rim := maze.C(0, 3)
	path := solver.ShortestPath(p, maze.C(0, 0), rim)

	out, err := SVG(p, Overlay{Path: path}, DefaultOptions())
	require.NoError(t, err)

	assert.Contains(t, out, `width="144" height="144"`)
	assert.Contains(t, out, `<circle cx="72.00" cy="72.00" r="64"/>`)
	assert.Contains(t, out, "<polyline points=\"72.00,72.00")
	assert.NotContains(t, out, "NaN")
}

func TestHeatColor(t *testing.T) {
	assert.Equal(t, heatNear.Hex(), HeatColor(0, 10).Hex())
	assert.Equal(t, heatFar.Hex(), HeatColor(10, 10).Hex())
	assert.Equal(t, heatFar.Hex(), HeatColor(-1, 10).Hex())

	palette := HeatPalette()
	require.Len(t, palette, core.HeatLevels)
	assert.Equal(t, heatNear.Hex(), palette[0])
	for _, hex := range palette {
		assert.Regexp(t, `^#[0-9a-f]{6}$`, hex)
	}
}

func TestFitRect(t *testing.T) {
	tests := []struct {
		style      Style
		cols, rows int
		w, h       int
	}{
		{StyleBlocks, 81, 25, 40, 12},
		{StyleBlocks, 80, 24, 39, 11},
		{StyleLines, 81, 25, 20, 12},
		{StyleBlocks, 2, 2, 1, 1},
		{StyleLines, 0, 0, 1, 1},
	}

	for _, tc := range tests {
		w, h := FitRect(tc.style, tc.cols, tc.rows)
		assert.Equal(t, tc.w, w, "%s %dx%d width", tc.style, tc.cols, tc.rows)
		assert.Equal(t, tc.h, h, "%s %dx%d height", tc.style, tc.cols, tc.rows)

		s, err := ScreenFor(maze.NewFull(w, h), tc.style, Overlay{})
		require.NoError(t, err)
		if tc.cols > 2 {
			assert.LessOrEqual(t, s.Width(), tc.cols)
			assert.LessOrEqual(t, s.Height(), tc.rows)
		}
	}
}
