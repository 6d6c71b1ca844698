// Package web serves mazes over HTTP as SVG, text or JSON.
package web

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/mazey/internal/config"
	"github.com/vovakirdan/mazey/internal/generator"
	"github.com/vovakirdan/mazey/internal/storage"
)

// History is the read side of the run store.
type History interface {
	RecentRuns(f storage.RunFilter) ([]storage.Run, error)
	AllAlgorithmStats() ([]storage.AlgorithmStats, error)
}

// Config holds configuration settings for creating a new Server.
type Config struct {
	Addr      string
	Maze      config.Config // defaults for omitted query parameters
	Generator *generator.Generator
	History   History // nil disables the history routes
	Logger    *log.Logger
}

// Server is the HTTP export server.
type Server struct {
	addr   string
	engine *gin.Engine
	http   *http.Server
	logger *log.Logger
}

// NewServer creates a server and registers its routes.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "mazey-http",
		})
	}

	gen := cfg.Generator
	if gen == nil {
		gen = generator.New(generator.Options{Logger: logger, MaxCells: cfg.Maze.Server.MaxCells})
	}

	s := &Server{
		addr:   cfg.Addr,
		logger: logger,
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), s.loggingMiddleware)

	engine.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	{
		NewMazeController(gen, cfg.Maze).Register(api)
		if cfg.History != nil {
			NewHistoryController(cfg.History).Register(api)
		}
	}

	s.engine = engine
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// loggingMiddleware logs every request once it is served.
func (s *Server) loggingMiddleware(ctx *gin.Context) {
	start := time.Now()
	ctx.Next()
	s.logger.Info("request",
		"method", ctx.Request.Method,
		"path", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"latency", time.Since(start),
	)
}

// ListenAndServe starts the server and blocks until SIGINT or SIGTERM.
func (s *Server) ListenAndServe() error {
	s.http = &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("starting HTTP server", "address", s.addr)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-done:
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	if s.http == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
