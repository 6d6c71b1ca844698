package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mazey/internal/builder"
	"github.com/vovakirdan/mazey/internal/config"
	"github.com/vovakirdan/mazey/internal/generator"
	"github.com/vovakirdan/mazey/internal/registry"
	"github.com/vovakirdan/mazey/internal/render"
)

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func testViewerConfig(algo string) ViewerConfig {
	cfg := config.Default()
	cfg.Rect.Width, cfg.Rect.Height = 5, 4
	cfg.Rect.Algorithm = algo
	cfg.Circle.Rings = 4

	vc := ViewerConfigFrom(cfg, registry.KindRect, 1)
	vc.ScreenshotDir = ""
	return vc
}

func newTestModel(t *testing.T, algo string) Model {
	t.Helper()
	m := NewModel(generator.New(generator.Options{}), testViewerConfig(algo))
	require.NoError(t, m.Err())
	require.NotNil(t, m.Result())
	return m
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return nm, cmd
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t, builder.AlgoWilson)

	assert.Equal(t, builder.AlgoWilson, m.Algorithm())
	assert.Equal(t, int64(1), m.Seed())
	g := m.Result().Rect()
	require.NotNil(t, g)
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 4, g.Height())
}

func TestNewModelUnsupportedAlgorithmFallsBack(t *testing.T) {
	vc := testViewerConfig(builder.AlgoSidewinder)
	vc.Kind = registry.KindPolar
	vc.Circle.Algorithm = builder.AlgoSidewinder

	m := NewModel(generator.New(generator.Options{}), vc)
	require.NoError(t, m.Err())
	assert.Equal(t, registry.ListFor(registry.KindPolar)[0].ID, m.Algorithm())
	assert.NotNil(t, m.Result().Polar())
}

func TestNewSeedIsReproducible(t *testing.T) {
	a := newTestModel(t, builder.AlgoWilson)
	b := newTestModel(t, builder.AlgoWilson)

	a, _ = press(t, a, runeKey("n"))
	b, _ = press(t, b, runeKey("n"))

	assert.NotEqual(t, int64(1), a.Seed())
	assert.Equal(t, a.Seed(), b.Seed())
	assert.Equal(t, a.Result().Path, b.Result().Path)
}

func TestRebuildKeepsSeed(t *testing.T) {
	m := newTestModel(t, builder.AlgoAldousBroder)
	path := m.Result().Path

	m, _ = press(t, m, runeKey("r"))
	assert.Equal(t, int64(1), m.Seed())
	assert.Equal(t, path, m.Result().Path)
}

func TestCycleAlgorithms(t *testing.T) {
	m := newTestModel(t, builder.AlgoWilson)
	algos := registry.ListFor(registry.KindRect)
	require.Equal(t, builder.AlgoWilson, algos[len(algos)-1].ID)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, algos[0].ID, m.Algorithm())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, builder.AlgoWilson, m.Algorithm())

	// A full cycle visits every algorithm once.
	seen := map[string]bool{}
	for range algos {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		seen[m.Algorithm()] = true
		require.NoError(t, m.Err())
	}
	assert.Len(t, seen, len(algos))
}

func TestToggleTopology(t *testing.T) {
	m := newTestModel(t, builder.AlgoWilson)

	m, _ = press(t, m, runeKey("c"))
	assert.Equal(t, builder.AlgoWilson, m.Algorithm())
	require.NotNil(t, m.Result().Polar())
	assert.Equal(t, 4, m.Result().Maze.Rows())

	m, _ = press(t, m, runeKey("c"))
	assert.NotNil(t, m.Result().Rect())
}

func TestToggleTopologyDropsRectOnlyAlgorithm(t *testing.T) {
	m := newTestModel(t, builder.AlgoBinaryTree)

	m, _ = press(t, m, runeKey("c"))
	require.NoError(t, m.Err())
	assert.Equal(t, registry.ListFor(registry.KindPolar)[0].ID, m.Algorithm())
}

func TestToggles(t *testing.T) {
	m := newTestModel(t, builder.AlgoWilson)
	showPath, heat := m.cfg.ShowPath, m.cfg.Heat

	m, _ = press(t, m, runeKey("p"))
	assert.Equal(t, !showPath, m.cfg.ShowPath)

	m, _ = press(t, m, runeKey("d"))
	assert.Equal(t, !heat, m.cfg.Heat)

	style := m.cfg.Style
	m, _ = press(t, m, runeKey("s"))
	assert.NotEqual(t, style, m.cfg.Style)

	m, _ = press(t, m, runeKey("?"))
	assert.True(t, m.help.ShowAll)
}

func TestSlideshow(t *testing.T) {
	m := newTestModel(t, builder.AlgoWilson)

	// Ticks are ignored while stopped.
	m, cmd := press(t, m, TickMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, int64(1), m.Seed())

	m, cmd = press(t, m, runeKey(" "))
	assert.True(t, m.Playing())
	assert.NotNil(t, cmd)

	m, cmd = press(t, m, TickMsg{})
	assert.NotNil(t, cmd)
	assert.NotEqual(t, int64(1), m.Seed())

	m, _ = press(t, m, runeKey(" "))
	assert.False(t, m.Playing())
}

func TestFitToWindow(t *testing.T) {
	vc := testViewerConfig(builder.AlgoWilson)
	vc.Fit = true
	m := NewModel(generator.New(generator.Options{}), vc)

	m, _ = press(t, m, tea.WindowSizeMsg{Width: 41, Height: 23})
	require.NoError(t, m.Err())

	w, h := render.FitRect(render.StyleBlocks, 41, 23-m.chrome())
	g := m.Result().Rect()
	require.NotNil(t, g)
	assert.Equal(t, w, g.Width())
	assert.Equal(t, h, g.Height())
}

func TestViewShowsStatus(t *testing.T) {
	m := newTestModel(t, builder.AlgoWilson)

	view := m.View()
	assert.Contains(t, view, "wilson")
	assert.Contains(t, view, "5x4")
	assert.Contains(t, view, "seed 1")
	assert.Contains(t, view, "█")
}

func TestViewCropsToWindow(t *testing.T) {
	m := newTestModel(t, builder.AlgoWilson)
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 6, Height: 40})

	for _, line := range strings.Split(m.View(), "\n")[1:4] {
		assert.LessOrEqual(t, len([]rune(line)), 6)
	}
}

func TestScreenshot(t *testing.T) {
	vc := testViewerConfig(builder.AlgoWilson)
	vc.ScreenshotDir = t.TempDir()
	m := NewModel(generator.New(generator.Options{}), vc)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Contains(t, m.status, "saved")

	entries, err := os.ReadDir(vc.ScreenshotDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "wilson_1_"))
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, builder.AlgoWilson)

	m, cmd := press(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}
