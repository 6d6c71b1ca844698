package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/mazey/internal/builder"
	"github.com/vovakirdan/mazey/internal/config"
	"github.com/vovakirdan/mazey/internal/generator"
	"github.com/vovakirdan/mazey/internal/registry"
	"github.com/vovakirdan/mazey/internal/render"
	"github.com/vovakirdan/mazey/internal/storage"
)

// MazeController handles maze generation requests.
type MazeController struct {
	gen      *generator.Generator
	defaults config.Config
}

// NewMazeController creates a controller that fills omitted parameters
// from defaults.
func NewMazeController(gen *generator.Generator, defaults config.Config) *MazeController {
	return &MazeController{gen: gen, defaults: defaults}
}

// Register registers the maze routes.
func (c *MazeController) Register(route *gin.RouterGroup) {
	route.GET("/algorithms", c.algorithms)

	mazes := route.Group("/mazes")
	{
		mazes.GET("/rect", c.rect)
		mazes.GET("/circle", c.circle)
	}
}

func (c *MazeController) algorithms(ctx *gin.Context) {
	var out []algorithmJSON
	for _, info := range registry.List() {
		out = append(out, newAlgorithmJSON(info))
	}
	ctx.JSON(http.StatusOK, out)
}

func (c *MazeController) rect(ctx *gin.Context) {
	var q rectQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rc := c.defaults.Rect
	if q.Width > 0 || q.Height > 0 {
		// Configured endpoints may not fit the requested size.
		rc.Start, rc.Finish = nil, nil
	}
	if q.Width > 0 {
		rc.Width = q.Width
	}
	if q.Height > 0 {
		rc.Height = q.Height
	}
	if q.Algorithm != "" {
		rc.Algorithm = q.Algorithm
	}

	c.serve(ctx, generator.RectRequest(rc, seedOf(q.Seed)), q.mazeQuery)
}

func (c *MazeController) circle(ctx *gin.Context) {
	var q circleQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cc := c.defaults.Circle
	if q.Rings > 0 {
		cc.Rings = q.Rings
	}
	if q.HubCells > 0 {
		cc.HubCells = q.HubCells
	}
	if q.Algorithm != "" {
		cc.Algorithm = q.Algorithm
	}

	c.serve(ctx, generator.CircleRequest(cc, seedOf(q.Seed)), q.mazeQuery)
}

// serve generates req and writes it in the requested format.
func (c *MazeController) serve(ctx *gin.Context, req generator.Request, q mazeQuery) {
	res, err := c.gen.Generate(req)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	rc := c.defaults.Render
	ov := res.Overlay(boolOr(q.Path, rc.ShowPath), boolOr(q.Heat, rc.Heat))
	ctx.Header("X-Maze-Seed", strconv.FormatInt(req.Seed, 10))

	switch q.Format {
	case "ascii":
		style := rc.Style
		if q.Style != "" {
			style = q.Style
		}
		parsed, err := render.ParseStyle(style)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		text, err := render.Text(res.Maze, parsed, ov)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.String(http.StatusOK, text+"\n")

	case "json":
		ctx.JSON(http.StatusOK, newMazeResponse(res))

	default:
		svg, err := render.SVG(res.Maze, ov, generator.SVGOptions(rc))
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.Data(http.StatusOK, "image/svg+xml", []byte(svg))
	}
}

// statusFor maps generation errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, generator.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, generator.ErrInvalidSize),
		errors.Is(err, generator.ErrPointOutOfBounds),
		errors.Is(err, builder.ErrUnknownAlgorithm),
		errors.Is(err, builder.ErrUnsupportedTopology),
		errors.Is(err, builder.ErrStartOutOfBounds):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func seedOf(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}

func boolOr(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

// HistoryController serves recorded runs.
type HistoryController struct {
	history History
}

// NewHistoryController creates a new HistoryController.
func NewHistoryController(h History) *HistoryController {
	return &HistoryController{history: h}
}

// Register registers the history routes.
func (c *HistoryController) Register(route *gin.RouterGroup) {
	route.GET("/runs", c.runs)
	route.GET("/stats", c.stats)
}

func (c *HistoryController) runs(ctx *gin.Context) {
	var q runsQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runs, err := c.history.RecentRuns(storage.RunFilter{
		Algorithm: q.Algorithm,
		Topology:  q.Topology,
		Limit:     q.Limit,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]runJSON, 0, len(runs))
	for _, r := range runs {
		out = append(out, newRunJSON(r))
	}
	ctx.JSON(http.StatusOK, out)
}

func (c *HistoryController) stats(ctx *gin.Context) {
	stats, err := c.history.AllAlgorithmStats()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]statsJSON, 0, len(stats))
	for _, s := range stats {
		out = append(out, newStatsJSON(s))
	}
	ctx.JSON(http.StatusOK, out)
}
