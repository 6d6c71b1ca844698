package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/mazey/internal/generator"
	"github.com/vovakirdan/mazey/internal/maze"
	"github.com/vovakirdan/mazey/internal/render"
)

// Output flags shared by generate and circle.
var (
	flagFormat string
	flagStyle  string
	flagOut    string
	flagNoPath bool
	flagHeat   bool
	flagStats  bool
)

// writeMaze renders res in the requested format to --out or stdout.
func writeMaze(res *generator.Result) error {
	ov := res.Overlay(cfg.Render.ShowPath && !flagNoPath, cfg.Render.Heat || flagHeat)

	var out string
	switch flagFormat {
	case "", "text":
		style := cfg.Render.Style
		if flagStyle != "" {
			style = flagStyle
		}
		parsed, err := render.ParseStyle(style)
		if err != nil {
			return err
		}
		text, err := render.Text(res.Maze, parsed, ov)
		if err != nil {
			return err
		}
		out = text + "\n"
	case "svg":
		svg, err := render.SVG(res.Maze, ov, generator.SVGOptions(cfg.Render))
		if err != nil {
			return err
		}
		out = svg
	default:
		return fmt.Errorf("unknown format %q (want text or svg)", flagFormat)
	}

	if flagOut == "" || flagOut == "-" {
		_, err := io.WriteString(os.Stdout, out)
		return err
	}
	if err := os.WriteFile(flagOut, []byte(out), 0o644); err != nil {
		return err
	}
	logger.Info("maze written", "file", flagOut, "size", humanize.Bytes(uint64(len(out))))
	return nil
}

// printStats writes maze statistics to w.
func printStats(w io.Writer, res *generator.Result) {
	cells := res.Maze.Cells()
	fmt.Fprintf(w, "Algorithm:     %s\n", res.Request.Algorithm)
	fmt.Fprintf(w, "Seed:          %d\n", res.Request.Seed)
	fmt.Fprintf(w, "Cells:         %s\n", humanize.Comma(int64(cells)))
	fmt.Fprintf(w, "Dead ends:     %d (%.1f%%)\n", len(res.DeadEnds), 100*float64(len(res.DeadEnds))/float64(cells))
	fmt.Fprintf(w, "Solution:      %d cells, %v -> %v\n", len(res.Path), res.Start, res.Finish)
	fmt.Fprintf(w, "Max distance:  %d\n", res.MaxDistance)
	fmt.Fprintf(w, "Longest path:  %d steps, %v -> %v\n", res.LongestLength, res.LongestFrom, res.LongestTo)
	fmt.Fprintf(w, "Time:          %v\n", res.Duration)
	if res.RunID != "" {
		fmt.Fprintf(w, "Run:           %s\n", res.RunID)
	}
}

// parsePoint parses "x,y".
func parsePoint(s string) (maze.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return maze.Coord{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return maze.Coord{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return maze.Coord{}, fmt.Errorf("point %q: %w", s, err)
	}
	return maze.C(x, y), nil
}
