package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mazey/internal/config"
	"github.com/vovakirdan/mazey/internal/core"
	"github.com/vovakirdan/mazey/internal/generator"
	"github.com/vovakirdan/mazey/internal/registry"
	"github.com/vovakirdan/mazey/internal/render"
)

// ViewerConfig configures the maze viewer.
type ViewerConfig struct {
	Kind     registry.Kind
	Rect     config.RectConfig
	Circle   config.CircleConfig
	Style    render.Style
	ShowPath bool
	Heat     bool

	// Seed of the first maze. Later seeds are drawn from a source seeded
	// with it, so a session is reproducible. 0 picks a time-based seed.
	Seed int64

	// Fit sizes rectangular mazes to the terminal instead of Rect.Width
	// and Rect.Height.
	Fit bool

	Slideshow     time.Duration // interval between slideshow mazes
	ScreenshotDir string        // "" means ~/.mazey/screenshots

	Width, Height int // initial terminal size, if known
}

// ViewerConfigFrom builds a viewer configuration from the loaded config.
func ViewerConfigFrom(cfg config.Config, kind registry.Kind, seed int64) ViewerConfig {
	style, err := render.ParseStyle(cfg.Render.Style)
	if err != nil {
		style = render.StyleBlocks
	}
	return ViewerConfig{
		Kind:      kind,
		Rect:      cfg.Rect,
		Circle:    cfg.Circle,
		Style:     style,
		ShowPath:  cfg.Render.ShowPath,
		Heat:      cfg.Render.Heat,
		Seed:      seed,
		Slideshow: 2 * time.Second,
	}
}

// Model is the Bubble Tea model of the maze viewer.
type Model struct {
	gen     *generator.Generator
	cfg     ViewerConfig
	algos   []registry.AlgorithmInfo
	algo    int
	seed    int64
	seeds   *rand.Rand
	result  *generator.Result
	err     error
	keys    KeyMap
	help    help.Model
	width   int
	height  int
	playing bool
	status  string

	quitting bool
}

// NewModel creates a viewer and generates its first maze.
func NewModel(gen *generator.Generator, cfg ViewerConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Kind == "" {
		cfg.Kind = registry.KindRect
	}
	if cfg.Slideshow <= 0 {
		cfg.Slideshow = 2 * time.Second
	}

	m := Model{
		gen:    gen,
		cfg:    cfg,
		seed:   cfg.Seed,
		seeds:  rand.New(rand.NewSource(cfg.Seed)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  cfg.Width,
		height: cfg.Height,
	}
	m.help.Width = cfg.Width
	m.selectAlgorithms(m.configuredAlgorithm())
	m.regenerate()
	return m
}

func (m *Model) configuredAlgorithm() string {
	if m.cfg.Kind == registry.KindPolar {
		return m.cfg.Circle.Algorithm
	}
	return m.cfg.Rect.Algorithm
}

// selectAlgorithms loads the algorithms of the current kind and selects
// id, or the first one if the kind does not support it.
func (m *Model) selectAlgorithms(id string) {
	m.algos = registry.ListFor(m.cfg.Kind)
	m.algo = 0
	for i, a := range m.algos {
		if a.ID == id {
			m.algo = i
		}
	}
}

// Algorithm returns the ID of the selected algorithm.
func (m Model) Algorithm() string {
	if len(m.algos) == 0 {
		return ""
	}
	return m.algos[m.algo].ID
}

// Seed returns the seed of the displayed maze.
func (m Model) Seed() int64 {
	return m.seed
}

// Result returns the displayed maze, or nil after a failed generation.
func (m Model) Result() *generator.Result {
	return m.result
}

// Err returns the error of the last generation.
func (m Model) Err() error {
	return m.err
}

// Playing reports whether the slideshow runs.
func (m Model) Playing() bool {
	return m.playing
}

// regenerate builds the maze for the current settings.
func (m *Model) regenerate() {
	var req generator.Request
	switch m.cfg.Kind {
	case registry.KindPolar:
		c := m.cfg.Circle
		c.Algorithm = m.Algorithm()
		req = generator.CircleRequest(c, m.seed)
	default:
		r := m.cfg.Rect
		r.Algorithm = m.Algorithm()
		if m.cfg.Fit && m.width > 0 && m.height > 0 {
			r.Width, r.Height = render.FitRect(m.cfg.Style, m.width, m.height-m.chrome())
			r.Start, r.Finish = nil, nil
		}
		req = generator.RectRequest(r, m.seed)
	}
	m.result, m.err = m.gen.Generate(req)
}

func (m *Model) reseed() {
	m.seed = m.seeds.Int63()
	m.regenerate()
}

// Init starts the viewer.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.cfg.Fit && m.cfg.Kind == registry.KindRect {
			m.regenerate()
		}
		return m, nil

	case TickMsg:
		if !m.playing {
			return m, nil
		}
		m.reseed()
		return m, tickCmd(m.cfg.Slideshow)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NewSeed):
		m.reseed()

	case key.Matches(msg, m.keys.Rebuild):
		m.regenerate()

	case key.Matches(msg, m.keys.NextAlgo):
		m.algo = (m.algo + 1) % len(m.algos)
		m.regenerate()

	case key.Matches(msg, m.keys.PrevAlgo):
		m.algo = (m.algo + len(m.algos) - 1) % len(m.algos)
		m.regenerate()

	case key.Matches(msg, m.keys.Topology):
		current := m.Algorithm()
		if m.cfg.Kind == registry.KindPolar {
			m.cfg.Kind = registry.KindRect
		} else {
			m.cfg.Kind = registry.KindPolar
		}
		m.selectAlgorithms(current)
		m.regenerate()

	case key.Matches(msg, m.keys.Style):
		if m.cfg.Style == render.StyleBlocks {
			m.cfg.Style = render.StyleLines
		} else {
			m.cfg.Style = render.StyleBlocks
		}
		if m.cfg.Fit {
			m.regenerate()
		}

	case key.Matches(msg, m.keys.TogglePath):
		m.cfg.ShowPath = !m.cfg.ShowPath

	case key.Matches(msg, m.keys.ToggleHeat):
		m.cfg.Heat = !m.cfg.Heat

	case key.Matches(msg, m.keys.AutoPlay):
		m.playing = !m.playing
		if m.playing {
			return m, tickCmd(m.cfg.Slideshow)
		}

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// saveScreenshot writes the current maze as plain text.
func (m *Model) saveScreenshot() {
	if m.result == nil {
		return
	}

	dir := m.cfg.ScreenshotDir
	if dir == "" {
		dir = config.ExpandHome(filepath.Join("~", ".mazey", "screenshots"))
	}

	text, err := render.Text(m.result.Maze, m.cfg.Style, m.overlay())
	if err == nil {
		err = os.MkdirAll(dir, 0o755)
	}
	if err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%d_%s.txt", m.Algorithm(), m.seed, timestamp))
	if err := os.WriteFile(path, []byte(text+"\n"), 0o600); err != nil {
		m.status = "screenshot failed: " + err.Error()
		return
	}
	m.status = "saved " + path
}

func (m Model) overlay() render.Overlay {
	return m.result.Overlay(m.cfg.ShowPath, m.cfg.Heat)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(colorStyles[core.ColorPath].Render("Error: " + m.err.Error()))
	} else if m.result != nil {
		screen, err := render.ScreenFor(m.result.Maze, m.cfg.Style, m.overlay())
		if err != nil {
			b.WriteString("Error: " + err.Error())
		} else {
			b.WriteString(RenderScreen(m.fit(screen)))
		}
	}

	b.WriteString("\n")
	b.WriteString(colorStyles[core.ColorMuted].Render(m.help.View(m.keys)))
	return b.String()
}

// fit crops s to the terminal when the terminal size is known.
func (m Model) fit(s *core.Screen) *core.Screen {
	if m.width <= 0 || m.height <= m.chrome() {
		return s
	}
	area := core.NewRect(0, 0, s.Width(), s.Height()).ClampInto(m.width, m.height-m.chrome())
	if area.W == s.Width() && area.H == s.Height() {
		return s
	}
	return s.Crop(area)
}

// chrome returns the number of lines around the maze: the status line and
// the help.
func (m Model) chrome() int {
	return 2 + strings.Count(m.help.View(m.keys), "\n")
}

func (m Model) statusLine() string {
	if m.status != "" {
		return colorStyles[core.ColorText].Render(m.status)
	}

	parts := []string{"mazey", m.Algorithm()}
	if res := m.result; res != nil {
		if g := res.Rect(); g != nil {
			parts = append(parts, fmt.Sprintf("%dx%d", g.Width(), g.Height()))
		} else {
			parts = append(parts, fmt.Sprintf("%d rings", res.Maze.Rows()))
		}
		parts = append(parts,
			fmt.Sprintf("seed %d", m.seed),
			fmt.Sprintf("path %d", len(res.Path)),
			fmt.Sprintf("dead ends %d", len(res.DeadEnds)),
		)
	}
	if m.playing {
		parts = append(parts, "▶")
	}

	title := lipgloss.NewStyle().Bold(true).Inherit(colorStyles[core.ColorText])
	return title.Render(strings.Join(parts, "  "))
}

// Run starts the Bubble Tea program with a new viewer.
func Run(gen *generator.Generator, cfg ViewerConfig) error {
	p := tea.NewProgram(
		NewModel(gen, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
