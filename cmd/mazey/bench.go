package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazey/internal/generator"
	"github.com/vovakirdan/mazey/internal/registry"
	"github.com/vovakirdan/mazey/internal/storage"
)

var (
	flagBenchRuns   int
	flagBenchCircle bool
	flagBenchAlgos  []string
	flagBenchRecord bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare maze algorithms",
	Long: `Generate the same maze shape many times with every algorithm and
report how the mazes differ: the share of dead ends, the length of the
solution and the time taken (mean, median and standard deviation).

Run i of every algorithm uses seed --seed + i, so results are repeatable.
Benchmark runs are not recorded unless --record is given.

Examples:
  mazey bench
  mazey bench --runs 200 --preset large
  mazey bench --circle --algorithms wilson,aldous-broder`,
	Args: cobra.NoArgs,
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVarP(&flagBenchRuns, "runs", "n", 50, "Mazes per algorithm")
	benchCmd.Flags().BoolVar(&flagBenchCircle, "circle", false, "Benchmark circular mazes")
	benchCmd.Flags().StringSliceVar(&flagBenchAlgos, "algorithms", nil, "Algorithms to compare (default all that support the topology)")
	benchCmd.Flags().BoolVar(&flagBenchRecord, "record", false, "Record benchmark runs in the history")
}

func runBench(_ *cobra.Command, _ []string) {
	kind := registry.KindRect
	base := generator.RectRequest(cfg.Rect, seed())
	if flagBenchCircle {
		kind = registry.KindPolar
		base = generator.CircleRequest(cfg.Circle, seed())
	}

	algos := flagBenchAlgos
	if len(algos) == 0 {
		for _, a := range registry.ListFor(kind) {
			algos = append(algos, a.ID)
		}
	}

	// Per-maze log lines would drown the table.
	logger.SetLevel(max(logger.GetLevel(), log.WarnLevel))

	results, err := benchmark(base, algos)
	if err != nil {
		fail("%v", err)
	}

	if kind == registry.KindPolar {
		fmt.Printf("%d-ring circular mazes, %d runs each, seeds from %d\n\n", cfg.Circle.Rings, flagBenchRuns, base.Seed)
	} else {
		fmt.Printf("%dx%d mazes, %d runs each, seeds from %d\n\n", cfg.Rect.Width, cfg.Rect.Height, flagBenchRuns, base.Seed)
	}

	header := fmt.Sprintf("  %-14s  %-22s  %-22s  %-22s", "Algorithm", "Dead ends %", "Solution length", "Time ms")
	fmt.Println(header)
	fmt.Println("  " + strings.Repeat("-", len(header)-2))
	for _, r := range results {
		fmt.Printf("  %-14s  %-22s  %-22s  %-22s\n",
			r.Algorithm,
			summary(r.DeadEndRatio, 100),
			summary(r.SolutionLength, 1),
			summary(r.Duration, 1),
		)
	}
	fmt.Println()
	fmt.Println("Columns show mean / median ± standard deviation.")
}

func summary(s generator.Summary, scale float64) string {
	return fmt.Sprintf("%.1f / %.1f ± %.1f", s.Mean*scale, s.Median*scale, s.StdDev*scale)
}

// benchmark runs the algorithms, recording every run when --record is set.
func benchmark(base generator.Request, algos []string) ([]generator.BenchResult, error) {
	var store *storage.Store
	if flagBenchRecord {
		if store = openStore(); store != nil {
			defer store.Close()
		}
	}
	return newGenerator(store).Bench(base, algos, flagBenchRuns)
}
