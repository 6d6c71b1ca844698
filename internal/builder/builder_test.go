package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mazey/internal/maze"
)

// assertPerfect checks that the open-wall graph of t is a spanning tree and
// that every wall is open on both sides or on neither.
func assertPerfect(t *testing.T, g maze.Topology) {
	t.Helper()

	openEnds := 0
	for _, c := range maze.AllCoords(g) {
		for _, n := range g.Neighbors(c, maze.Anything) {
			open := g.IsOpen(c, n.Dir)
			back := g.IsOpen(n.To, g.Opposite(c, n.Dir))
			require.Equal(t, open, back, "asymmetric wall between %v and %v", c, n.To)
			if open {
				openEnds++
			}
		}
	}
	assert.Equal(t, g.Cells()-1, openEnds/2, "open wall pairs")

	start := maze.C(0, 0)
	seen := map[maze.Coord]bool{start: true}
	queue := []maze.Coord{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range maze.Passages(g, c) {
			if !seen[n.To] {
				seen[n.To] = true
				queue = append(queue, n.To)
			}
		}
	}
	assert.Len(t, seen, g.Cells(), "connected cells")
}

func TestBuildPerfectRectMazes(t *testing.T) {
	algos := []string{AlgoBinaryTree, AlgoSidewinder, AlgoGrowingTree, AlgoAldousBroder, AlgoWilson}
	sizes := []struct{ w, h int }{{1, 1}, {1, 5}, {5, 1}, {2, 2}, {7, 4}, {12, 12}}

	for _, algo := range algos {
		for _, size := range sizes {
			for seed := int64(1); seed <= 5; seed++ {
				g := maze.NewFull(size.w, size.h)
				err := Build(g, algo, maze.C(0, 0), rand.New(rand.NewSource(seed)))
				require.NoError(t, err)
				assertPerfect(t, g)
			}
		}
	}
}

func TestBuildPerfectPolarMazes(t *testing.T) {
	algos := []string{AlgoGrowingTree, AlgoAldousBroder, AlgoWilson}

	for _, algo := range algos {
		for _, rings := range []int{1, 2, 4, 7} {
			for seed := int64(1); seed <= 3; seed++ {
				g := maze.NewPolar(rings)
				err := Build(g, algo, maze.C(0, 0), rand.New(rand.NewSource(seed)))
				require.NoError(t, err)
				assertPerfect(t, g)
			}
		}
	}
}

func TestBuildFromNonCornerStart(t *testing.T) {
	g := maze.NewFull(6, 6)
	require.NoError(t, Build(g, AlgoWilson, maze.C(3, 2), rand.New(rand.NewSource(9))))
	assertPerfect(t, g)

	p := maze.NewPolar(5)
	require.NoError(t, Build(p, AlgoGrowingTree, maze.C(4, 3), rand.New(rand.NewSource(9))))
	assertPerfect(t, p)
}

func TestBuildIsDeterministic(t *testing.T) {
	for _, algo := range []string{AlgoGrowingTree, AlgoWilson, AlgoSidewinder} {
		a := maze.NewFull(8, 8)
		b := maze.NewFull(8, 8)
		require.NoError(t, Build(a, algo, maze.C(0, 0), rand.New(rand.NewSource(42))))
		require.NoError(t, Build(b, algo, maze.C(0, 0), rand.New(rand.NewSource(42))))

		for _, c := range maze.AllCoords(a) {
			for _, d := range maze.RectDirs {
				assert.Equal(t, a.IsOpen(c, d), b.IsOpen(c, d), "%s: %v %s", algo, c, d)
			}
		}
	}
}

func TestBuildErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	err := Build(maze.NewFull(3, 3), "spiral", maze.C(0, 0), rng)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	err = Build(maze.NewPolar(3), AlgoSidewinder, maze.C(0, 0), rng)
	assert.ErrorIs(t, err, ErrUnsupportedTopology)

	err = Build(maze.NewPolar(3), AlgoBinaryTree, maze.C(0, 0), rng)
	assert.ErrorIs(t, err, ErrUnsupportedTopology)

	err = Build(maze.NewFull(3, 3), AlgoWilson, maze.C(3, 0), rng)
	assert.ErrorIs(t, err, ErrStartOutOfBounds)
}

func TestBuildNilRng(t *testing.T) {
	g := maze.NewFull(4, 4)
	require.NoError(t, Build(g, AlgoAldousBroder, maze.C(0, 0), nil))
	assertPerfect(t, g)
}

func TestBinaryTreeEdges(t *testing.T) {
	g := maze.NewFull(5, 4)
	BinaryTree(g, rand.New(rand.NewSource(3)))

	// Top row is one corridor, rightmost column a straight drop.
	for x := 0; x < 4; x++ {
		assert.True(t, g.IsOpen(maze.C(x, 0), maze.East))
	}
	for y := 1; y < 4; y++ {
		assert.True(t, g.IsOpen(maze.C(4, y), maze.North))
	}
}

func TestSidewinderTopRow(t *testing.T) {
	g := maze.NewFull(6, 3)
	Sidewinder(g, rand.New(rand.NewSource(5)))

	for x := 0; x < 5; x++ {
		assert.True(t, g.IsOpen(maze.C(x, 0), maze.East))
	}
	assert.False(t, g.IsOpen(maze.C(5, 0), maze.East))

	// Each lower row has at least one North opening.
	for y := 1; y < 3; y++ {
		north := 0
		for x := 0; x < 6; x++ {
			if g.IsOpen(maze.C(x, y), maze.North) {
				north++
			}
		}
		assert.GreaterOrEqual(t, north, 1, "row %d", y)
	}
}

func TestWilsonTerminatesOnSmallGrid(t *testing.T) {
	// 3x3 stress: the walk length is unbounded in theory, but a seeded
	// run must finish well inside this budget.
	const maxSteps = 10_000

	for seed := int64(0); seed < 500; seed++ {
		g := maze.NewFull(3, 3)
		steps := wilson(g, maze.C(0, 0), rand.New(rand.NewSource(seed)))
		assert.Less(t, steps, maxSteps, "seed %d", seed)
		assertPerfect(t, g)
	}
}

func TestOnlyWilsonForcesStartReached(t *testing.T) {
	// A single cell never gets an open wall, so it is reachable only when
	// the algorithm force-marks it.
	tests := []struct {
		algo string
		want bool
	}{
		{AlgoWilson, true},
		{AlgoGrowingTree, false},
		{AlgoAldousBroder, false},
		{AlgoBinaryTree, false},
		{AlgoSidewinder, false},
	}

	for _, tc := range tests {
		t.Run(tc.algo, func(t *testing.T) {
			g := maze.NewFull(1, 1)
			require.NoError(t, Build(g, tc.algo, maze.C(0, 0), rand.New(rand.NewSource(1))))
			assert.Equal(t, tc.want, g.Reachable(maze.C(0, 0)))
		})
	}
}

func TestCoordSet(t *testing.T) {
	s := newCoordSet([]maze.Coord{maze.C(0, 0), maze.C(1, 0), maze.C(2, 0)})
	require.Equal(t, 3, s.Len())

	s.Remove(maze.C(0, 0))
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Has(maze.C(0, 0)))
	assert.Equal(t, maze.C(2, 0), s.At(0))

	s.Remove(maze.C(0, 0))
	assert.Equal(t, 2, s.Len())

	s.Remove(maze.C(2, 0))
	s.Remove(maze.C(1, 0))
	assert.Equal(t, 0, s.Len())
}
