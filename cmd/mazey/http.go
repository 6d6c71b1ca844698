package main

import (
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazey/internal/generator"
	"github.com/vovakirdan/mazey/internal/platform/web"
)

var flagHTTPAddr string

var httpCmd = &cobra.Command{
	Use:   "http",
	Short: "Start the HTTP export server",
	Long: `Start an HTTP server that generates mazes on request.

Routes:
  GET /healthz
  GET /api/algorithms
  GET /api/mazes/rect     ?width=&height=&algorithm=&seed=&format=svg|ascii|json&style=&path=&heat=
  GET /api/mazes/circle   ?rings=&hub_cells=&algorithm=&seed=&format=svg|ascii|json&path=&heat=
  GET /api/runs           ?algorithm=&topology=&limit=   (when history is enabled)
  GET /api/stats                                         (when history is enabled)

Omitted parameters come from the config. Requests above server.max_cells
are rejected.

Examples:
  mazey http
  mazey http --addr :9000
  curl 'localhost:8080/api/mazes/rect?width=30&height=20&format=ascii'`,
	Args: cobra.NoArgs,
	Run:  runHTTP,
}

func init() {
	httpCmd.Flags().StringVar(&flagHTTPAddr, "addr", "", "HTTP listen address (default from config)")
}

func runHTTP(_ *cobra.Command, _ []string) {
	addr := cfg.Server.HTTPAddr
	if flagHTTPAddr != "" {
		addr = flagHTTPAddr
	}

	if logger.GetLevel() > log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	httpLogger := logger.WithPrefix("mazey-http")
	wc := web.Config{
		Addr:   addr,
		Maze:   cfg,
		Logger: httpLogger,
	}

	opts := generator.Options{Logger: httpLogger, MaxCells: cfg.Server.MaxCells}
	if store := openStore(); store != nil {
		defer store.Close()
		opts.Store = store
		wc.History = store
	}
	wc.Generator = generator.New(opts)

	if err := web.NewServer(wc).ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
