// Package storage provides SQLite-based run history for generated mazes.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// A run records how a maze was produced and what it looked like, not the
// maze itself: topology, algorithm and seed are enough to regenerate it.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one generated maze.
type Run struct {
	ID             string
	Topology       string // "rect" or "circle"
	Algorithm      string
	Seed           int64
	Width          int // columns; 0 for circle mazes
	Height         int // rows, or rings for circle mazes
	Cells          int
	DeadEnds       int
	SolutionLength int // cells on the start-finish path
	MaxDistance    int // farthest BFS distance from start
	Duration       time.Duration
	CreatedAt      time.Time
}

// DeadEndRatio returns the share of cells that are dead ends.
func (r Run) DeadEndRatio() float64 {
	if r.Cells == 0 {
		return 0
	}
	return float64(r.DeadEnds) / float64(r.Cells)
}

// RunFilter restricts RecentRuns. Zero fields match everything.
type RunFilter struct {
	Algorithm string
	Topology  string
	Limit     int
}

// AlgorithmStats contains aggregated statistics for one algorithm.
type AlgorithmStats struct {
	Algorithm         string
	Runs              int
	AvgDeadEndRatio   float64
	AvgSolutionLength float64
	AvgDuration       time.Duration
	LastRun           time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			topology TEXT NOT NULL,
			algorithm TEXT NOT NULL,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			cells INTEGER NOT NULL,
			dead_ends INTEGER NOT NULL DEFAULT 0,
			solution_length INTEGER NOT NULL DEFAULT 0,
			max_distance INTEGER NOT NULL DEFAULT 0,
			duration_ns INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_algorithm ON runs(algorithm);
		CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run. A missing ID is filled with a new UUID and a zero
// CreatedAt with the current time. Returns the run ID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.CreatedAt = run.CreatedAt.UTC()

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, topology, algorithm, seed, width, height, cells, dead_ends, solution_length, max_distance, duration_ns, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Topology,
		run.Algorithm,
		run.Seed,
		run.Width,
		run.Height,
		run.Cells,
		run.DeadEnds,
		run.SolutionLength,
		run.MaxDistance,
		int64(run.Duration),
		run.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return run.ID, nil
}

const runColumns = `id, topology, algorithm, seed, width, height, cells,
	dead_ends, solution_length, max_distance, duration_ns, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var r Run
	var durationNS int64
	var createdAt any

	err := row.Scan(
		&r.ID,
		&r.Topology,
		&r.Algorithm,
		&r.Seed,
		&r.Width,
		&r.Height,
		&r.Cells,
		&r.DeadEnds,
		&r.SolutionLength,
		&r.MaxDistance,
		&durationNS,
		&createdAt,
	)
	if err != nil {
		return r, err
	}

	r.Duration = time.Duration(durationNS)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// RunByID retrieves a run by its ID. Returns nil if it does not exist.
func (s *Store) RunByID(id string) (*Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// RecentRuns retrieves runs newest first.
func (s *Store) RecentRuns(f RunFilter) ([]Run, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE (? = '' OR algorithm = ?) AND (? = '' OR topology = ?)
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		f.Algorithm, f.Algorithm, f.Topology, f.Topology, f.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// CountRuns returns the number of recorded runs.
func (s *Store) CountRuns() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// ClearRuns deletes all runs.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// AllAlgorithmStats aggregates runs per algorithm, sorted by algorithm.
func (s *Store) AllAlgorithmStats() ([]AlgorithmStats, error) {
	rows, err := s.db.Query(
		`SELECT algorithm, COUNT(*),
		        AVG(CAST(dead_ends AS REAL) / cells),
		        AVG(solution_length),
		        AVG(duration_ns),
		        MAX(created_at)
		 FROM runs
		 WHERE cells > 0
		 GROUP BY algorithm
		 ORDER BY algorithm`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get algorithm stats: %w", err)
	}
	defer rows.Close()

	var stats []AlgorithmStats
	for rows.Next() {
		var st AlgorithmStats
		var avgDuration float64
		var lastRun any
		if err := rows.Scan(&st.Algorithm, &st.Runs, &st.AvgDeadEndRatio, &st.AvgSolutionLength, &avgDuration, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.AvgDuration = time.Duration(avgDuration)
		st.LastRun = parseTime(lastRun)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
