package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingSizes(t *testing.T) {
	tests := []struct {
		rings    int
		expected []int
	}{
		{1, []int{1}},
		{2, []int{1, 6}},
		{4, []int{1, 6, 12, 24}},
		{10, []int{1, 6, 12, 24, 24, 48, 48, 48, 48, 96}},
	}

	for _, tc := range tests {
		got := RingSizes(tc.rings, DefaultPolarOptions())
		assert.Equal(t, tc.expected, got, "rings=%d", tc.rings)
	}

	assert.Nil(t, RingSizes(0, DefaultPolarOptions()))
}

func TestRingSizesZeroOptionsUseDefaults(t *testing.T) {
	assert.Equal(t, RingSizes(4, DefaultPolarOptions()), RingSizes(4, PolarOptions{}))
}

func TestPolarGridLayout(t *testing.T) {
	g := NewPolar(4)

	assert.Equal(t, []int{1, 6, 12, 24}, g.RingSizes())
	assert.Equal(t, 43, g.Cells())
	assert.Equal(t, 4, g.Rows())

	hub := g.Cell(C(0, 0))
	assert.False(t, hub.HasDefaults())
	assert.Equal(t, 6, hub.NorthCount())

	assert.Equal(t, 2, g.NorthCount(C(0, 1)))
	assert.Equal(t, 2, g.NorthCount(C(5, 2)))
	assert.Equal(t, 0, g.NorthCount(C(23, 3)))
}

func TestPolarScaleIsOneOrTwo(t *testing.T) {
	g := NewPolar(16)

	assert.Equal(t, 6, g.Scale(1))
	for y := 2; y < g.Rows(); y++ {
		s := g.Scale(y)
		assert.True(t, s == 1 || s == 2, "ring %d has scale %d", y, s)
	}
}

func TestPolarHubNeighbors(t *testing.T) {
	g := NewPolar(3)

	neighbors := g.Neighbors(C(0, 0), Anything)
	require.Len(t, neighbors, 6)
	for k, n := range neighbors {
		assert.Equal(t, NorthChild(k), n.Dir)
		assert.Equal(t, C(k, 1), n.To)
	}

	assert.Panics(t, func() { g.IsOpen(C(0, 0), East) })
}

func TestPolarRingNeighbors(t *testing.T) {
	g := NewPolar(3)

	// Ring 1 cell 0: wraps west to cell 5, south to the hub, two children.
	expected := []Neighbor{
		{Dir: East, To: C(1, 1)},
		{Dir: South, To: C(0, 0)},
		{Dir: West, To: C(5, 1)},
		{Dir: NorthChild(0), To: C(0, 2)},
		{Dir: NorthChild(1), To: C(1, 2)},
	}
	assert.Equal(t, expected, g.Neighbors(C(0, 1), Anything))

	// Outermost ring: no North.
	outer := g.Neighbors(C(11, 2), Anything)
	assert.Equal(t, []Neighbor{
		{Dir: East, To: C(0, 2)},
		{Dir: South, To: C(5, 1)},
		{Dir: West, To: C(10, 2)},
	}, outer)
}

func TestPolarSouthNorthAreInverse(t *testing.T) {
	g := NewPolar(12)

	for _, c := range AllCoords(g) {
		for _, n := range g.Neighbors(c, Anything) {
			back := g.Opposite(c, n.Dir)
			to, ok := NeighborAt(g, n.To, back)
			require.True(t, ok, "%v -> %s -> %v has no way back via %s", c, n.Dir, n.To, back)
			assert.Equal(t, c, to, "%v -> %s -> %v returns to %v", c, n.Dir, n.To, to)
		}
	}
}

func TestPolarConnectOpensBothSides(t *testing.T) {
	g := NewPolar(3)

	g.Connect(C(3, 2), South)
	assert.True(t, g.IsOpen(C(3, 2), South))
	assert.True(t, g.IsOpen(C(1, 1), NorthChild(1)))
	assert.False(t, g.IsOpen(C(1, 1), NorthChild(0)))

	g.Connect(C(0, 0), NorthChild(4))
	assert.True(t, g.IsOpen(C(4, 1), South))
	assert.True(t, g.Reachable(C(0, 0)))

	assert.Panics(t, func() { g.Connect(C(4, 1), South) })
}

func TestPolarMarkReached(t *testing.T) {
	g := NewPolar(2)

	assert.False(t, g.Reachable(C(2, 1)))
	g.MarkReached(C(2, 1))
	assert.True(t, g.Reachable(C(2, 1)))
	assert.Equal(t, 0, g.Cell(C(2, 1)).OpenCount())
}
