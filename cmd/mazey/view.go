package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazey/internal/platform/tui"
	"github.com/vovakirdan/mazey/internal/registry"
)

var (
	flagViewCircle bool
	flagViewFit    bool
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse mazes interactively",
	Long: `Open the interactive maze viewer.

Controls:
  n/Enter    - New maze (next seed)
  r          - Rebuild the current maze
  Tab/S-Tab  - Next/previous algorithm
  c          - Switch between rectangular and circular mazes
  s          - Switch wall style
  p          - Show/hide the solution
  d          - Show/hide the distance heat map
  Space      - Start/stop the slideshow
  Ctrl+S     - Save a text screenshot
  ?          - All keys
  q/Esc      - Quit

Examples:
  mazey view
  mazey view --fit
  mazey view --circle --preset small`,
	Args: cobra.NoArgs,
	Run:  runView,
}

func init() {
	viewCmd.Flags().BoolVar(&flagViewCircle, "circle", false, "Start with a circular maze")
	viewCmd.Flags().BoolVar(&flagViewFit, "fit", false, "Size rectangular mazes to the terminal")
}

func runView(_ *cobra.Command, _ []string) {
	kind := registry.KindRect
	if flagViewCircle {
		kind = registry.KindPolar
	}

	vc := tui.ViewerConfigFrom(cfg, kind, seed())
	vc.Fit = flagViewFit
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		vc.Width, vc.Height = w, h
	}

	if err := runViewer(vc); err != nil {
		fail("%v", err)
	}
}

func runViewer(vc tui.ViewerConfig) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	// The viewer owns the terminal, so generation logs are dropped.
	logger.SetOutput(io.Discard)

	return tui.Run(newGenerator(store), vc)
}
