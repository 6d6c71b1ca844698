package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazey/internal/generator"
	"github.com/vovakirdan/mazey/internal/render"
)

var (
	flagWidth     int
	flagHeight    int
	flagAlgorithm string
	flagStart     string
	flagFinish    string
	flagFit       bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "rect"},
	Short:   "Generate a rectangular maze",
	Long: `Carve a rectangular maze, solve it from start to finish and print it.

Text output marks the solution with x. SVG output draws it as a red line
and, with --heat, fills cells by their distance from the start.

Examples:
  mazey generate
  mazey generate --width 40 --height 20 --algorithm aldous-broder
  mazey generate --fit --style lines
  mazey generate --start 0,0 --finish 9,0 --stats
  mazey generate --seed 7 --format svg --heat -o maze.svg`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&flagWidth, "width", 0, "Maze width in cells (default from config)")
	generateCmd.Flags().IntVar(&flagHeight, "height", 0, "Maze height in cells (default from config)")
	generateCmd.Flags().StringVarP(&flagAlgorithm, "algorithm", "a", "", "Algorithm ID (see 'mazey algorithms')")
	generateCmd.Flags().StringVar(&flagStart, "start", "", "Start cell as x,y (default top-left)")
	generateCmd.Flags().StringVar(&flagFinish, "finish", "", "Finish cell as x,y (default bottom-right)")
	generateCmd.Flags().BoolVar(&flagFit, "fit", false, "Size the maze to the terminal")
	addOutputFlags(generateCmd)
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagFormat, "format", "f", "text", "Output format: text, svg")
	cmd.Flags().StringVar(&flagStyle, "style", "", "Text style: blocks, lines")
	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&flagNoPath, "no-path", false, "Do not draw the solution")
	cmd.Flags().BoolVar(&flagHeat, "heat", false, "Colour cells by distance (SVG)")
	cmd.Flags().BoolVar(&flagStats, "stats", false, "Print maze statistics to stderr")
}

func runGenerate(_ *cobra.Command, _ []string) {
	rc := cfg.Rect
	if flagWidth > 0 {
		rc.Width = flagWidth
	}
	if flagHeight > 0 {
		rc.Height = flagHeight
	}
	if flagFit {
		style := render.Style(cfg.Render.Style)
		if flagStyle != "" {
			style = render.Style(flagStyle)
		}
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			rc.Width, rc.Height = render.FitRect(style, w, h-1)
		} else {
			logger.Warn("cannot read terminal size, keeping configured size", "error", err)
		}
	}
	if flagAlgorithm != "" {
		rc.Algorithm = flagAlgorithm
	}
	if rc.Width != cfg.Rect.Width || rc.Height != cfg.Rect.Height {
		rc.Start, rc.Finish = nil, nil
	}

	req := generator.RectRequest(rc, seed())
	if flagStart != "" {
		p, err := parsePoint(flagStart)
		if err != nil {
			fail("%v", err)
		}
		req.Start = &p
	}
	if flagFinish != "" {
		p, err := parsePoint(flagFinish)
		if err != nil {
			fail("%v", err)
		}
		req.Finish = &p
	}

	if err := generate(req); err != nil {
		fail("%v", err)
	}
}

// generate runs req and writes the result.
func generate(req generator.Request) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	res, err := newGenerator(store).Generate(req)
	if err != nil {
		return err
	}

	if err := writeMaze(res); err != nil {
		return err
	}
	if flagStats {
		printStats(os.Stderr, res)
	}
	return nil
}
