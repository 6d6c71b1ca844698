package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFullGrid(t *testing.T) {
	g := NewFull(4, 3)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 12, g.Cells())

	for _, c := range AllCoords(g) {
		for _, d := range RectDirs {
			assert.False(t, g.IsOpen(c, d), "cell %v %s should be walled", c, d)
		}
		assert.False(t, g.Reachable(c), "cell %v should be unreachable", c)
	}
}

func TestNewEmptyGrid(t *testing.T) {
	g := NewEmpty(2, 2)

	for _, c := range AllCoords(g) {
		for _, d := range RectDirs {
			assert.True(t, g.IsOpen(c, d))
		}
		assert.True(t, g.Reachable(c))
	}
}

func TestGridIndex(t *testing.T) {
	g := NewFull(5, 4)

	assert.Equal(t, 0, g.Index(C(0, 0)))
	assert.Equal(t, 4, g.Index(C(4, 0)))
	assert.Equal(t, 5, g.Index(C(0, 1)))
	assert.Equal(t, 19, g.Index(C(4, 3)))
}

func TestGridNeighbors(t *testing.T) {
	g := NewFull(3, 3)

	tests := []struct {
		name     string
		coord    Coord
		expected []Neighbor
	}{
		{
			name:  "top-left corner",
			coord: C(0, 0),
			expected: []Neighbor{
				{Dir: East, To: C(1, 0)},
				{Dir: South, To: C(0, 1)},
			},
		},
		{
			name:  "centre",
			coord: C(1, 1),
			expected: []Neighbor{
				{Dir: North, To: C(1, 0)},
				{Dir: East, To: C(2, 1)},
				{Dir: South, To: C(1, 2)},
				{Dir: West, To: C(0, 1)},
			},
		},
		{
			name:  "bottom-right corner",
			coord: C(2, 2),
			expected: []Neighbor{
				{Dir: North, To: C(2, 1)},
				{Dir: West, To: C(1, 2)},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, g.Neighbors(tc.coord, Anything))
		})
	}
}

func TestGridNeighborsFilter(t *testing.T) {
	g := NewFull(3, 3)
	g.Connect(C(1, 0), South) // (1,0) and (1,1) become reachable

	reachable := g.Neighbors(C(0, 0), ReachableOnly)
	require.Len(t, reachable, 1)
	assert.Equal(t, C(1, 0), reachable[0].To)

	unreachable := g.Neighbors(C(0, 0), UnreachableOnly)
	require.Len(t, unreachable, 1)
	assert.Equal(t, C(0, 1), unreachable[0].To)
}

func TestGridConnectOpensBothSides(t *testing.T) {
	g := NewFull(3, 3)

	g.Connect(C(1, 1), East)
	assert.True(t, g.IsOpen(C(1, 1), East))
	assert.True(t, g.IsOpen(C(2, 1), West))

	g.Connect(C(1, 1), North)
	assert.True(t, g.IsOpen(C(1, 1), North))
	assert.True(t, g.IsOpen(C(1, 0), South))

	// Untouched walls stay closed
	assert.False(t, g.IsOpen(C(1, 1), South))
	assert.False(t, g.IsOpen(C(1, 1), West))
}

func TestGridConnectTwicePanics(t *testing.T) {
	g := NewFull(2, 1)
	g.Connect(C(0, 0), East)

	assert.PanicsWithError(t, "maze: invariant violated: wall East already open", func() {
		g.Connect(C(0, 0), East)
	})
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	g := NewFull(2, 2)

	assert.Panics(t, func() { g.Cell(C(2, 0)) })
	assert.Panics(t, func() { g.Reachable(C(0, -1)) })
}

func TestMarkReached(t *testing.T) {
	g := NewFull(2, 2)

	assert.False(t, g.Reachable(C(1, 1)))
	g.MarkReached(C(1, 1))
	assert.True(t, g.Reachable(C(1, 1)))

	// Force-marking does not open any wall
	assert.Empty(t, Passages(g, C(1, 1)))
}

func TestRectOpposite(t *testing.T) {
	g := NewFull(2, 2)

	assert.Equal(t, South, g.Opposite(C(0, 0), North))
	assert.Equal(t, West, g.Opposite(C(0, 0), East))
	assert.Equal(t, North, g.Opposite(C(0, 0), South))
	assert.Equal(t, East, g.Opposite(C(0, 0), West))
}

func TestDirString(t *testing.T) {
	assert.Equal(t, "North", North.String())
	assert.Equal(t, "North(1)", NorthChild(1).String())
	assert.Equal(t, "West", West.String())
	assert.Equal(t, "(3,4)", C(3, 4).String())
}
