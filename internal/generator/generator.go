// Package generator turns a maze request into a carved, solved and measured
// maze. It is the boundary where user input is validated; the packages it
// drives assume valid input and panic otherwise.
package generator

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazey/internal/builder"
	"github.com/vovakirdan/mazey/internal/config"
	"github.com/vovakirdan/mazey/internal/maze"
	"github.com/vovakirdan/mazey/internal/registry"
	"github.com/vovakirdan/mazey/internal/render"
	"github.com/vovakirdan/mazey/internal/solver"
	"github.com/vovakirdan/mazey/internal/storage"
)

var (
	ErrInvalidSize      = errors.New("generator: invalid maze size")
	ErrTooLarge         = errors.New("generator: maze too large")
	ErrPointOutOfBounds = errors.New("generator: point out of bounds")
)

// Request describes one maze to generate.
type Request struct {
	Kind      registry.Kind
	Width     int // rect only
	Height    int // rect only
	Rings     int // circle only
	Polar     maze.PolarOptions
	Algorithm string
	Seed      int64
	Start     *maze.Coord // nil: top-left corner, or the hub
	Finish    *maze.Coord // nil: bottom-right corner, or the outer rim
}

// RectRequest builds a request from the rect config section.
func RectRequest(cfg config.RectConfig, seed int64) Request {
	start, finish := cfg.StartPoint(), cfg.FinishPoint()
	return Request{
		Kind:      registry.KindRect,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Algorithm: cfg.Algorithm,
		Seed:      seed,
		Start:     &maze.Coord{X: start.X, Y: start.Y},
		Finish:    &maze.Coord{X: finish.X, Y: finish.Y},
	}
}

// CircleRequest builds a request from the circle config section.
func CircleRequest(cfg config.CircleConfig, seed int64) Request {
	return Request{
		Kind:  registry.KindPolar,
		Rings: cfg.Rings,
		Polar: maze.PolarOptions{
			HubCells:    cfg.HubCells,
			LevelHeight: cfg.LevelHeight,
			CellArc:     cfg.CellArc,
		},
		Algorithm: cfg.Algorithm,
		Seed:      seed,
	}
}

// Size returns the number of cells the request would produce. Rectangles
// whose cell count overflows int report math.MaxInt.
func (r Request) Size() int {
	switch r.Kind {
	case registry.KindPolar:
		if r.Rings < 1 {
			return 0
		}
		n := 0
		for _, s := range maze.RingSizes(r.Rings, r.Polar) {
			n += s
		}
		return n
	default:
		if r.Width < 1 || r.Height < 1 {
			return 0
		}
		if r.Width > math.MaxInt/r.Height {
			return math.MaxInt
		}
		return r.Width * r.Height
	}
}

// checkLimit reports ErrTooLarge when the request has more than limit
// cells. It rejects oversized requests before allocating anything.
func (r Request) checkLimit(limit int) error {
	switch r.Kind {
	case registry.KindPolar:
		// every ring holds at least one cell
		if r.Rings > limit {
			return fmt.Errorf("%w: %d rings, limit %d cells", ErrTooLarge, r.Rings, limit)
		}
	default:
		if r.Width > limit/r.Height {
			return fmt.Errorf("%w: %dx%d, limit %d cells", ErrTooLarge, r.Width, r.Height, limit)
		}
	}
	if n := r.Size(); n > limit {
		return fmt.Errorf("%w: %d cells, limit %d", ErrTooLarge, n, limit)
	}
	return nil
}

// Validate checks the request shape. It does not check the algorithm;
// Generate reports unknown algorithms through the builder errors.
func (r Request) Validate() error {
	switch r.Kind {
	case registry.KindRect:
		if r.Width < 1 || r.Height < 1 {
			return fmt.Errorf("%w: %dx%d", ErrInvalidSize, r.Width, r.Height)
		}
		if r.Width > math.MaxInt/r.Height {
			return fmt.Errorf("%w: %dx%d overflows", ErrTooLarge, r.Width, r.Height)
		}
	case registry.KindPolar:
		if r.Rings < 1 {
			return fmt.Errorf("%w: %d rings", ErrInvalidSize, r.Rings)
		}
		if r.Polar.HubCells != 0 && r.Polar.HubCells < 3 {
			return fmt.Errorf("%w: hub needs at least 3 cells, got %d", ErrInvalidSize, r.Polar.HubCells)
		}
	default:
		return fmt.Errorf("generator: unknown maze kind %q", r.Kind)
	}
	return nil
}

// Result is a generated maze with its solution and statistics.
type Result struct {
	RunID   string // empty unless the run was recorded
	Request Request
	Maze    maze.Topology
	Start   maze.Coord
	Finish  maze.Coord

	Path        []maze.Coord
	Distances   solver.Distances
	MaxDistance int
	DeadEnds    []maze.Coord

	LongestFrom   maze.Coord
	LongestTo     maze.Coord
	LongestLength int

	Duration time.Duration
}

// Rect returns the maze as a rectangular grid, or nil.
func (r *Result) Rect() *maze.Grid {
	g, _ := r.Maze.(*maze.Grid)
	return g
}

// Polar returns the maze as a polar grid, or nil.
func (r *Result) Polar() *maze.PolarGrid {
	p, _ := r.Maze.(*maze.PolarGrid)
	return p
}

// Overlay returns the render overlay for the result.
func (r *Result) Overlay(showPath, heat bool) render.Overlay {
	var ov render.Overlay
	if showPath {
		ov.Path = r.Path
	}
	if heat {
		ov.Dist = r.Distances
		ov.MaxDist = r.MaxDistance
	}
	return ov
}

// Run converts the result to a history record.
func (r *Result) Run() storage.Run {
	run := storage.Run{
		ID:             r.RunID,
		Topology:       string(r.Request.Kind),
		Algorithm:      r.Request.Algorithm,
		Seed:           r.Request.Seed,
		Cells:          r.Maze.Cells(),
		DeadEnds:       len(r.DeadEnds),
		SolutionLength: len(r.Path),
		MaxDistance:    r.MaxDistance,
		Duration:       r.Duration,
	}
	if g := r.Rect(); g != nil {
		run.Width, run.Height = g.Width(), g.Height()
	} else {
		run.Height = r.Maze.Rows()
	}
	return run
}

// Recorder stores finished runs.
type Recorder interface {
	SaveRun(run storage.Run) (string, error)
}

// Options configures a Generator.
type Options struct {
	Store    Recorder    // nil disables history
	Logger   *log.Logger // nil discards log output
	MaxCells int         // 0 means unlimited
}

// Generator produces mazes. It is safe for concurrent use if its Recorder is.
type Generator struct {
	store    Recorder
	logger   *log.Logger
	maxCells int
}

// New creates a Generator.
func New(opts Options) *Generator {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{
		store:    opts.Store,
		logger:   logger,
		maxCells: opts.MaxCells,
	}
}

// Generate validates req, carves the maze and solves it from start to finish.
func (g *Generator) Generate(req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if g.maxCells > 0 {
		if err := req.checkLimit(g.maxCells); err != nil {
			return nil, err
		}
	}

	m := newTopology(req)
	start, finish := endpoints(req, m)
	for _, p := range []maze.Coord{start, finish} {
		if !m.InBounds(p) {
			return nil, fmt.Errorf("%w: %v", ErrPointOutOfBounds, p)
		}
	}

	began := time.Now()
	rng := rand.New(rand.NewSource(req.Seed))
	if err := builder.Build(m, req.Algorithm, start, rng); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	res := &Result{
		Request: req,
		Maze:    m,
		Start:   start,
		Finish:  finish,
	}
	res.MaxDistance, res.Distances = solver.DistanceMap(m, start)
	res.Path = solver.ShortestPath(m, start, finish)
	res.DeadEnds = solver.DeadEnds(m)
	res.LongestFrom, res.LongestTo, res.LongestLength = solver.LongestPath(m)
	res.Duration = time.Since(began)

	g.record(res)

	g.logger.Info("maze generated",
		"kind", req.Kind,
		"algorithm", req.Algorithm,
		"seed", req.Seed,
		"cells", m.Cells(),
		"dead_ends", len(res.DeadEnds),
		"path", len(res.Path),
		"duration", res.Duration,
	)

	return res, nil
}

// record saves the run. A failing store is logged and otherwise ignored.
func (g *Generator) record(res *Result) {
	if g.store == nil {
		return
	}
	id, err := g.store.SaveRun(res.Run())
	if err != nil {
		g.logger.Warn("could not record run", "error", err)
		return
	}
	res.RunID = id
}

func newTopology(req Request) maze.Topology {
	if req.Kind == registry.KindPolar {
		return maze.NewPolarWithOptions(req.Rings, req.Polar)
	}
	return maze.NewFull(req.Width, req.Height)
}

// endpoints resolves start and finish. Rect mazes default to opposite
// corners; circle mazes run from the hub to the first cell of the rim.
func endpoints(req Request, m maze.Topology) (start, finish maze.Coord) {
	if req.Kind == registry.KindPolar {
		start, finish = maze.C(0, 0), maze.C(0, m.Rows()-1)
	} else {
		start, finish = maze.C(0, 0), maze.C(req.Width-1, req.Height-1)
	}
	if req.Start != nil {
		start = *req.Start
	}
	if req.Finish != nil {
		finish = *req.Finish
	}
	return start, finish
}

// SVGOptions converts the render config section to SVG options. Zero
// sizes and empty colours keep the render defaults.
func SVGOptions(cfg config.RenderConfig) render.Options {
	opts := render.DefaultOptions()
	if cfg.CellSize > 0 {
		opts.CellSize = cfg.CellSize
	}
	if cfg.WallWidth > 0 {
		opts.WallWidth = cfg.WallWidth
	}
	if cfg.Padding > 0 {
		opts.Padding = cfg.Padding
	}
	if cfg.WallColor != "" {
		opts.WallColor = cfg.WallColor
	}
	if cfg.PathColor != "" {
		opts.PathColor = cfg.PathColor
	}
	if cfg.Background != "" {
		opts.Background = cfg.Background
	}
	return opts
}
