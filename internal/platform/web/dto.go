package web

import (
	"github.com/vovakirdan/mazey/internal/generator"
	"github.com/vovakirdan/mazey/internal/maze"
	"github.com/vovakirdan/mazey/internal/registry"
	"github.com/vovakirdan/mazey/internal/storage"
)

// mazeQuery holds the query parameters shared by both maze kinds.
type mazeQuery struct {
	Algorithm string `form:"algorithm"`
	Seed      *int64 `form:"seed"`
	Format    string `form:"format" binding:"omitempty,oneof=svg ascii json"`
	Style     string `form:"style" binding:"omitempty,oneof=blocks lines"`
	Path      *bool  `form:"path"`
	Heat      *bool  `form:"heat"`
}

type rectQuery struct {
	mazeQuery
	Width  int `form:"width" binding:"omitempty,min=1,max=4096"`
	Height int `form:"height" binding:"omitempty,min=1,max=4096"`
}

type circleQuery struct {
	mazeQuery
	Rings    int `form:"rings" binding:"omitempty,min=1,max=4096"`
	HubCells int `form:"hub_cells" binding:"omitempty,min=3,max=64"`
}

type runsQuery struct {
	Algorithm string `form:"algorithm"`
	Topology  string `form:"topology" binding:"omitempty,oneof=rect circle"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

type coordJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func toCoord(c maze.Coord) coordJSON {
	return coordJSON{X: c.X, Y: c.Y}
}

// cellJSON lists the open walls of one cell.
type cellJSON struct {
	X    int      `json:"x"`
	Y    int      `json:"y"`
	Open []string `json:"open"`
}

// MazeResponse is the JSON form of a generated maze.
type MazeResponse struct {
	RunID       string      `json:"run_id,omitempty"`
	Kind        string      `json:"kind"`
	Algorithm   string      `json:"algorithm"`
	Seed        int64       `json:"seed"`
	Width       int         `json:"width,omitempty"`
	Height      int         `json:"height,omitempty"`
	Rings       []int       `json:"rings,omitempty"` // cells per ring, hub first
	Start       coordJSON   `json:"start"`
	Finish      coordJSON   `json:"finish"`
	Cells       []cellJSON  `json:"cells"`
	Path        []coordJSON `json:"path"`
	Distances   [][]int     `json:"distances"`
	MaxDistance int         `json:"max_distance"`
	DeadEnds    int         `json:"dead_ends"`
	LongestPath int         `json:"longest_path"`
	DurationMS  float64     `json:"duration_ms"`
}

func newMazeResponse(res *generator.Result) MazeResponse {
	resp := MazeResponse{
		RunID:       res.RunID,
		Kind:        string(res.Request.Kind),
		Algorithm:   res.Request.Algorithm,
		Seed:        res.Request.Seed,
		Start:       toCoord(res.Start),
		Finish:      toCoord(res.Finish),
		Distances:   res.Distances,
		MaxDistance: res.MaxDistance,
		DeadEnds:    len(res.DeadEnds),
		LongestPath: res.LongestLength,
		DurationMS:  float64(res.Duration.Microseconds()) / 1000,
	}

	if g := res.Rect(); g != nil {
		resp.Width, resp.Height = g.Width(), g.Height()
	}
	if p := res.Polar(); p != nil {
		resp.Rings = p.RingSizes()
	}

	for _, c := range maze.AllCoords(res.Maze) {
		cell := cellJSON{X: c.X, Y: c.Y, Open: []string{}}
		for _, n := range maze.Passages(res.Maze, c) {
			cell.Open = append(cell.Open, n.Dir.String())
		}
		resp.Cells = append(resp.Cells, cell)
	}

	resp.Path = make([]coordJSON, len(res.Path))
	for i, c := range res.Path {
		resp.Path[i] = toCoord(c)
	}
	return resp
}

type algorithmJSON struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Kinds []string `json:"kinds"`
}

func newAlgorithmJSON(info registry.AlgorithmInfo) algorithmJSON {
	a := algorithmJSON{ID: info.ID, Title: info.Title}
	for _, k := range info.Kinds {
		a.Kinds = append(a.Kinds, string(k))
	}
	return a
}

type runJSON struct {
	ID             string  `json:"id"`
	Topology       string  `json:"topology"`
	Algorithm      string  `json:"algorithm"`
	Seed           int64   `json:"seed"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Cells          int     `json:"cells"`
	DeadEnds       int     `json:"dead_ends"`
	SolutionLength int     `json:"solution_length"`
	MaxDistance    int     `json:"max_distance"`
	DurationMS     float64 `json:"duration_ms"`
	CreatedAt      string  `json:"created_at"`
}

func newRunJSON(r storage.Run) runJSON {
	return runJSON{
		ID:             r.ID,
		Topology:       r.Topology,
		Algorithm:      r.Algorithm,
		Seed:           r.Seed,
		Width:          r.Width,
		Height:         r.Height,
		Cells:          r.Cells,
		DeadEnds:       r.DeadEnds,
		SolutionLength: r.SolutionLength,
		MaxDistance:    r.MaxDistance,
		DurationMS:     float64(r.Duration.Microseconds()) / 1000,
		CreatedAt:      r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

type statsJSON struct {
	Algorithm         string  `json:"algorithm"`
	Runs              int     `json:"runs"`
	AvgDeadEndRatio   float64 `json:"avg_dead_end_ratio"`
	AvgSolutionLength float64 `json:"avg_solution_length"`
	AvgDurationMS     float64 `json:"avg_duration_ms"`
}

func newStatsJSON(s storage.AlgorithmStats) statsJSON {
	return statsJSON{
		Algorithm:         s.Algorithm,
		Runs:              s.Runs,
		AvgDeadEndRatio:   s.AvgDeadEndRatio,
		AvgSolutionLength: s.AvgSolutionLength,
		AvgDurationMS:     float64(s.AvgDuration.Microseconds()) / 1000,
	}
}
