package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazey/internal/platform/tui"
	"github.com/vovakirdan/mazey/internal/registry"
	"github.com/vovakirdan/mazey/internal/storage"
)

var (
	flagHistAlgorithm string
	flagHistTopology  string
	flagHistLimit     int
	flagHistStats     bool
	flagHistTUI       bool
	flagHistClear     bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `List the mazes generated so far, newest first, or per-algorithm
averages with --stats. A run stores the algorithm and seed, so any listed
maze can be regenerated with 'mazey generate --algorithm A --seed S'.

Examples:
  mazey history
  mazey history --algorithm wilson --limit 50
  mazey history --stats
  mazey history --tui`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&flagHistAlgorithm, "algorithm", "a", "", "Only runs of this algorithm")
	historyCmd.Flags().StringVar(&flagHistTopology, "topology", "", "Only runs of this topology: rect, circle")
	historyCmd.Flags().IntVarP(&flagHistLimit, "limit", "n", 20, "Maximum number of runs")
	historyCmd.Flags().BoolVar(&flagHistStats, "stats", false, "Show per-algorithm averages")
	historyCmd.Flags().BoolVar(&flagHistTUI, "tui", false, "Browse runs interactively")
	historyCmd.Flags().BoolVar(&flagHistClear, "clear", false, "Delete all recorded runs")
}

func runHistory(_ *cobra.Command, _ []string) {
	if flagHistAlgorithm != "" && !registry.Exists(flagHistAlgorithm) {
		fmt.Fprintf(os.Stderr, "Error: unknown algorithm %q\n", flagHistAlgorithm)
		fmt.Fprintln(os.Stderr, "Run 'mazey algorithms' to see available algorithms.")
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fail("opening run history: %v", err)
	}
	defer store.Close()

	switch {
	case flagHistClear:
		if err := store.ClearRuns(); err != nil {
			fail("%v", err)
		}
		fmt.Println("Run history cleared.")
	case flagHistTUI:
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fail("%v", err)
		}
	case flagHistStats:
		printAlgorithmStats(store)
	default:
		printRuns(store)
	}
}

func printRuns(store *storage.Store) {
	runs, err := store.RecentRuns(storage.RunFilter{
		Algorithm: flagHistAlgorithm,
		Topology:  flagHistTopology,
		Limit:     flagHistLimit,
	})
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'mazey generate' to create the first maze!")
		return
	}

	fmt.Printf("  %-16s  %-14s  %-9s  %-20s  %9s  %5s\n", "When", "Algorithm", "Maze", "Seed", "Dead ends", "Path")
	fmt.Printf("  %-16s  %-14s  %-9s  %-20s  %9s  %5s\n", "----", "---------", "----", "----", "---------", "----")

	for _, r := range runs {
		size := fmt.Sprintf("%dx%d", r.Width, r.Height)
		if r.Topology == string(registry.KindPolar) {
			size = fmt.Sprintf("%d rings", r.Height)
		}
		fmt.Printf("  %-16s  %-14s  %-9s  %-20d  %8.1f%%  %5d\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Algorithm,
			size,
			r.Seed,
			100*r.DeadEndRatio(),
			r.SolutionLength,
		)
	}

	if total, err := store.CountRuns(); err == nil && total > len(runs) {
		fmt.Println()
		fmt.Printf("Showing %d of %s runs.\n", len(runs), humanize.Comma(int64(total)))
	}
}

func printAlgorithmStats(store *storage.Store) {
	stats, err := store.AllAlgorithmStats()
	if err != nil {
		fail("retrieving stats: %v", err)
	}

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-14s  %6s  %9s  %8s  %10s  %s\n", "Algorithm", "Runs", "Dead ends", "Path", "Time", "Last run")
	fmt.Printf("  %-14s  %6s  %9s  %8s  %10s  %s\n", "---------", "----", "---------", "----", "----", "--------")
	for _, s := range stats {
		fmt.Printf("  %-14s  %6d  %8.1f%%  %8.1f  %10v  %s\n",
			s.Algorithm,
			s.Runs,
			100*s.AvgDeadEndRatio,
			s.AvgSolutionLength,
			s.AvgDuration.Round(time.Microsecond),
			humanize.Time(s.LastRun),
		)
	}
}
