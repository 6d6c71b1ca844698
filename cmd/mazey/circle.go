package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazey/internal/generator"
)

var (
	flagRings       int
	flagHubCells    int
	flagCircleAlgo  string
	flagLevelHeight float64
)

var circleCmd = &cobra.Command{
	Use:     "circle",
	Aliases: []string{"polar"},
	Short:   "Generate a circular maze",
	Long: `Carve a circular (polar) maze and solve it from the centre to the rim.

The first ring around the hub has --hub cells; outer rings double their
cell count whenever cells would grow too wide. Only topology-independent
algorithms can carve circular mazes (see 'mazey algorithms').

Examples:
  mazey circle
  mazey circle --rings 20 --format svg -o circle.svg
  mazey circle --algorithm wilson --heat --format svg -o heat.svg`,
	Args: cobra.NoArgs,
	Run:  runCircle,
}

func init() {
	circleCmd.Flags().IntVar(&flagRings, "rings", 0, "Number of rings including the hub (default from config)")
	circleCmd.Flags().IntVar(&flagHubCells, "hub", 0, "Cells in the first ring (default from config)")
	circleCmd.Flags().Float64Var(&flagLevelHeight, "level-height", 0, "Ring height used for cell splitting (default from config)")
	circleCmd.Flags().StringVarP(&flagCircleAlgo, "algorithm", "a", "", "Algorithm ID (see 'mazey algorithms')")
	addOutputFlags(circleCmd)
}

func runCircle(_ *cobra.Command, _ []string) {
	cc := cfg.Circle
	if flagRings > 0 {
		cc.Rings = flagRings
	}
	if flagHubCells > 0 {
		cc.HubCells = flagHubCells
	}
	if flagLevelHeight > 0 {
		cc.LevelHeight = flagLevelHeight
	}
	if flagCircleAlgo != "" {
		cc.Algorithm = flagCircleAlgo
	}

	if err := generate(generator.CircleRequest(cc, seed())); err != nil {
		fail("%v", err)
	}
}
