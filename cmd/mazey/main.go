// mazey generates, solves and displays perfect mazes.
//
// Usage:
//
//	mazey generate           - Print a rectangular maze as text or SVG
//	mazey circle             - Print a circular maze as text or SVG
//	mazey view               - Browse mazes interactively
//	mazey serve              - Start SSH server with the maze viewer
//	mazey http               - Start HTTP export server
//	mazey history            - Show recorded runs
//	mazey bench              - Compare algorithms
//	mazey algorithms         - List maze algorithms
//
// Global flags:
//
//	--config <path>    - Config file (default: ~/.mazey/config.yaml, ./configs/mazey.yaml)
//	--seed <value>     - RNG seed for reproducible mazes
//	--db <path>        - Run history database (default: ~/.mazey/history.db)
//	--log-level <lvl>  - debug, info, warn or error
//	--preset <name>    - Size preset: tiny, small, medium, large, huge
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazey/internal/config"
	"github.com/vovakirdan/mazey/internal/generator"
	"github.com/vovakirdan/mazey/internal/storage"

	// Register maze algorithms
	_ "github.com/vovakirdan/mazey/internal/builder"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagPreset   string
	flagNoRecord bool

	// Set by loadConfig before any command runs
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazey",
	Short: "mazey - perfect maze generator and solver",
	Long: `mazey carves perfect mazes on rectangular and circular grids,
solves them and renders them as text, SVG or in an interactive viewer.

Available commands:
  generate    - Print a rectangular maze
  circle      - Print a circular maze
  view        - Interactive maze viewer
  serve       - Start SSH server with the viewer
  http        - Start HTTP export server
  history     - Show recorded runs
  bench       - Compare algorithms
  algorithms  - List maze algorithms

Examples:
  mazey generate --width 30 --height 15
  mazey generate --algorithm sidewinder --seed 42 --format svg -o maze.svg
  mazey circle --rings 8 --format svg -o circle.svg
  mazey view --preset large
  mazey history --algorithm wilson`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Size preset: tiny, small, medium, large, huge")
	rootCmd.PersistentFlags().BoolVar(&flagNoRecord, "no-record", false, "Do not record runs in the history database")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(circleCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(httpCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(algorithmsCmd)
}

// loadConfig resolves the configuration: defaults, file, .env and
// environment, preset, then flags.
func loadConfig(_ *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	if err := config.ApplyPreset(&cfg, config.SizePreset(flagPreset)); err != nil {
		return err
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagNoRecord {
		cfg.Storage.Record = false
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazey",
		Level:           level,
	})
	return nil
}

// seed returns the --seed value or a time-based seed.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// openStore opens the history database when recording is enabled.
// A failure is logged and the command continues without history.
func openStore() *storage.Store {
	if !cfg.Storage.Record {
		return nil
	}
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		return nil
	}
	return store
}

// newGenerator creates a generator recording into store, which may be nil.
func newGenerator(store *storage.Store) *generator.Generator {
	opts := generator.Options{Logger: logger}
	if store != nil {
		opts.Store = store
	}
	return generator.New(opts)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
