package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mazey/internal/builder"
	"github.com/vovakirdan/mazey/internal/generator"
	"github.com/vovakirdan/mazey/internal/maze"
	"github.com/vovakirdan/mazey/internal/registry"
	"github.com/vovakirdan/mazey/internal/storage"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    maze.Coord
		wantErr bool
	}{
		{"0,0", maze.C(0, 0), false},
		{"12,7", maze.C(12, 7), false},
		{" 3 , 4 ", maze.C(3, 4), false},
		{"3", maze.Coord{}, true},
		{"a,1", maze.Coord{}, true},
		{"1,b", maze.Coord{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parsePoint(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSummary(t *testing.T) {
	s := generator.Summary{Mean: 0.25, Median: 0.2, StdDev: 0.05}
	assert.Equal(t, "25.0 / 20.0 ± 5.0", summary(s, 100))
}

func TestLoadConfigFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	flagPreset = "tiny"
	flagDBPath = "/tmp/mazey-test.db"
	flagLogLevel = "warn"
	flagNoRecord = true
	t.Cleanup(func() {
		flagPreset, flagDBPath, flagLogLevel, flagNoRecord = "", "", "", false
	})

	require.NoError(t, loadConfig(nil, nil))
	assert.Equal(t, 5, cfg.Rect.Width)
	assert.Equal(t, "/tmp/mazey-test.db", cfg.Storage.DBPath)
	assert.False(t, cfg.Storage.Record)
	assert.Equal(t, "warn", cfg.LogLevel)
	require.NotNil(t, logger)
	assert.Nil(t, openStore())
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	flagPreset = "gigantic"
	err := loadConfig(nil, nil)
	flagPreset = ""
	assert.Error(t, err)

	flagLogLevel = "chatty"
	err = loadConfig(nil, nil)
	flagLogLevel = ""
	assert.Error(t, err)
}

func TestGenerateReturnsErrorsAndClosesStore(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	dbPath := filepath.Join(dir, "history.db")
	flagDBPath = dbPath
	flagOut = filepath.Join(dir, "maze.txt")
	t.Cleanup(func() { flagDBPath, flagOut = "", "" })
	require.NoError(t, loadConfig(nil, nil))

	bad := generator.Request{Kind: registry.KindRect, Width: 0, Height: 3, Algorithm: builder.AlgoWilson}
	assert.ErrorIs(t, generate(bad), generator.ErrInvalidSize)

	good := generator.Request{Kind: registry.KindRect, Width: 3, Height: 3, Algorithm: builder.AlgoWilson, Seed: 7}
	require.NoError(t, generate(good))

	data, err := os.ReadFile(flagOut)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	store, err := storage.Open(dbPath)
	require.NoError(t, err)
	defer store.Close()
	n, err := store.CountRuns()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
