package generator

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mazey/internal/builder"
	"github.com/vovakirdan/mazey/internal/config"
	"github.com/vovakirdan/mazey/internal/maze"
	"github.com/vovakirdan/mazey/internal/registry"
	"github.com/vovakirdan/mazey/internal/render"
	"github.com/vovakirdan/mazey/internal/storage"
)

type memRecorder struct {
	runs []storage.Run
	err  error
}

func (m *memRecorder) SaveRun(run storage.Run) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.runs = append(m.runs, run)
	return "run-1", nil
}

func rectReq(w, h int, algo string, seed int64) Request {
	return Request{Kind: registry.KindRect, Width: w, Height: h, Algorithm: algo, Seed: seed}
}

func TestGenerateRect(t *testing.T) {
	gen := New(Options{})

	res, err := gen.Generate(rectReq(8, 6, builder.AlgoWilson, 3))
	require.NoError(t, err)

	g := res.Rect()
	require.NotNil(t, g)
	assert.Nil(t, res.Polar())
	assert.Equal(t, 8, g.Width())
	assert.Equal(t, 6, g.Height())

	assert.Equal(t, maze.C(0, 0), res.Start)
	assert.Equal(t, maze.C(7, 5), res.Finish)
	require.NotEmpty(t, res.Path)
	assert.Equal(t, res.Start, res.Path[0])
	assert.Equal(t, res.Finish, res.Path[len(res.Path)-1])

	// Path length in steps equals the BFS distance of the finish.
	assert.Equal(t, len(res.Path)-1, res.Distances.At(res.Finish))
	assert.Equal(t, res.Distances.Max(), res.MaxDistance)
	assert.GreaterOrEqual(t, res.LongestLength, res.MaxDistance)
	assert.NotEmpty(t, res.DeadEnds)
	assert.Empty(t, res.RunID)
}

func TestGenerateCircle(t *testing.T) {
	gen := New(Options{})

	res, err := gen.Generate(Request{Kind: registry.KindPolar, Rings: 5, Algorithm: builder.AlgoGrowingTree, Seed: 9})
	require.NoError(t, err)

	p := res.Polar()
	require.NotNil(t, p)
	assert.Equal(t, 5, p.Rows())
	assert.Equal(t, maze.C(0, 0), res.Start)
	assert.Equal(t, maze.C(0, 4), res.Finish)
	assert.Equal(t, res.Finish, res.Path[len(res.Path)-1])

	run := res.Run()
	assert.Equal(t, "circle", run.Topology)
	assert.Equal(t, 0, run.Width)
	assert.Equal(t, 5, run.Height)
	assert.Equal(t, p.Cells(), run.Cells)
}

func TestGenerateDeterministic(t *testing.T) {
	gen := New(Options{})

	a, err := gen.Generate(rectReq(10, 10, builder.AlgoAldousBroder, 77))
	require.NoError(t, err)
	b, err := gen.Generate(rectReq(10, 10, builder.AlgoAldousBroder, 77))
	require.NoError(t, err)

	assert.Equal(t, a.Path, b.Path)
	assert.Equal(t, a.Distances, b.Distances)
}

func TestGenerateCustomEndpoints(t *testing.T) {
	gen := New(Options{})

	req := rectReq(5, 5, builder.AlgoSidewinder, 1)
	req.Start = &maze.Coord{X: 2, Y: 2}
	req.Finish = &maze.Coord{X: 0, Y: 4}

	res, err := gen.Generate(req)
	require.NoError(t, err)
	assert.Equal(t, maze.C(2, 2), res.Path[0])
	assert.Equal(t, maze.C(0, 4), res.Path[len(res.Path)-1])
	assert.Equal(t, 0, res.Distances.At(maze.C(2, 2)))
}

func TestGenerateSingleCell(t *testing.T) {
	res, err := New(Options{}).Generate(rectReq(1, 1, builder.AlgoBinaryTree, 0))
	require.NoError(t, err)
	assert.Equal(t, []maze.Coord{maze.C(0, 0)}, res.Path)
	assert.Equal(t, 0, res.MaxDistance)
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		gen  *Generator
		req  Request
		want error
	}{
		{"zero width", New(Options{}), rectReq(0, 4, builder.AlgoWilson, 1), ErrInvalidSize},
		{"negative height", New(Options{}), rectReq(4, -1, builder.AlgoWilson, 1), ErrInvalidSize},
		{"no rings", New(Options{}), Request{Kind: registry.KindPolar, Algorithm: builder.AlgoWilson}, ErrInvalidSize},
		{"tiny hub", New(Options{}), Request{Kind: registry.KindPolar, Rings: 3, Polar: maze.PolarOptions{HubCells: 2}, Algorithm: builder.AlgoWilson}, ErrInvalidSize},
		{"too large", New(Options{MaxCells: 100}), rectReq(20, 20, builder.AlgoWilson, 1), ErrTooLarge},
		{"product overflows limit", New(Options{MaxCells: 40000}), rectReq(math.MaxInt/2, 4, builder.AlgoAldousBroder, 1), ErrTooLarge},
		{"product overflows int", New(Options{}), rectReq(math.MaxInt/2, 3, builder.AlgoAldousBroder, 1), ErrTooLarge},
		{"too many rings", New(Options{MaxCells: 40000}), Request{Kind: registry.KindPolar, Rings: math.MaxInt / 4, Algorithm: builder.AlgoWilson}, ErrTooLarge},
		{"unknown algorithm", New(Options{}), rectReq(4, 4, "maze-o-matic", 1), builder.ErrUnknownAlgorithm},
		{"rect only algorithm", New(Options{}), Request{Kind: registry.KindPolar, Rings: 3, Algorithm: builder.AlgoSidewinder}, builder.ErrUnsupportedTopology},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.gen.Generate(tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("finish out of bounds", func(t *testing.T) {
		req := rectReq(3, 3, builder.AlgoWilson, 1)
		req.Finish = &maze.Coord{X: 3, Y: 0}
		_, err := New(Options{}).Generate(req)
		assert.ErrorIs(t, err, ErrPointOutOfBounds)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := New(Options{}).Generate(Request{Kind: "hex", Width: 2, Height: 2})
		assert.Error(t, err)
	})
}

func TestRequestSize(t *testing.T) {
	assert.Equal(t, 12, rectReq(3, 4, "", 0).Size())
	assert.Equal(t, 43, Request{Kind: registry.KindPolar, Rings: 4}.Size())
	assert.Equal(t, 0, Request{Kind: registry.KindPolar}.Size())
	assert.Equal(t, math.MaxInt, rectReq(math.MaxInt/2, 3, "", 0).Size())
}

func TestGenerateRecordsRun(t *testing.T) {
	rec := &memRecorder{}
	gen := New(Options{Store: rec})

	res, err := gen.Generate(rectReq(6, 4, builder.AlgoWilson, 5))
	require.NoError(t, err)
	assert.Equal(t, "run-1", res.RunID)

	require.Len(t, rec.runs, 1)
	run := rec.runs[0]
	assert.Equal(t, "rect", run.Topology)
	assert.Equal(t, builder.AlgoWilson, run.Algorithm)
	assert.Equal(t, int64(5), run.Seed)
	assert.Equal(t, 6, run.Width)
	assert.Equal(t, 4, run.Height)
	assert.Equal(t, 24, run.Cells)
	assert.Equal(t, len(res.Path), run.SolutionLength)
	assert.Equal(t, len(res.DeadEnds), run.DeadEnds)
}

func TestGenerateStoreFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	gen := New(Options{
		Store:  &memRecorder{err: errors.New("disk full")},
		Logger: log.New(&buf),
	})

	res, err := gen.Generate(rectReq(3, 3, builder.AlgoWilson, 1))
	require.NoError(t, err)
	assert.Empty(t, res.RunID)
	assert.Contains(t, buf.String(), "could not record run")
	assert.Contains(t, buf.String(), "disk full")
}

func TestGenerateWithSQLiteStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	res, err := New(Options{Store: store}).Generate(rectReq(4, 4, builder.AlgoGrowingTree, 11))
	require.NoError(t, err)

	run, err := store.RunByID(res.RunID)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, builder.AlgoGrowingTree, run.Algorithm)
	assert.Equal(t, int64(11), run.Seed)
}

func TestRequestsFromConfig(t *testing.T) {
	cfg := config.Default()

	rr := RectRequest(cfg.Rect, 4)
	assert.Equal(t, registry.KindRect, rr.Kind)
	assert.Equal(t, cfg.Rect.Width, rr.Width)
	require.NotNil(t, rr.Finish)
	assert.Equal(t, maze.C(cfg.Rect.Width-1, cfg.Rect.Height-1), *rr.Finish)

	cr := CircleRequest(cfg.Circle, 4)
	assert.Equal(t, registry.KindPolar, cr.Kind)
	assert.Equal(t, cfg.Circle.Rings, cr.Rings)
	assert.Equal(t, cfg.Circle.HubCells, cr.Polar.HubCells)
	assert.Nil(t, cr.Start)
}

func TestOverlay(t *testing.T) {
	res, err := New(Options{}).Generate(rectReq(3, 3, builder.AlgoWilson, 2))
	require.NoError(t, err)

	ov := res.Overlay(true, false)
	assert.Equal(t, res.Path, ov.Path)
	assert.Nil(t, ov.Dist)

	ov = res.Overlay(false, true)
	assert.Nil(t, ov.Path)
	assert.Equal(t, res.MaxDistance, ov.MaxDist)
}

func TestSVGOptions(t *testing.T) {
	assert.Equal(t, render.DefaultOptions(), SVGOptions(config.RenderConfig{}))

	opts := SVGOptions(config.RenderConfig{CellSize: 20, WallColor: "#ffffff"})
	assert.Equal(t, 20.0, opts.CellSize)
	assert.Equal(t, "#ffffff", opts.WallColor)
	assert.Equal(t, render.DefaultOptions().PathColor, opts.PathColor)
}
