package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/mazey/internal/registry"
	"github.com/vovakirdan/mazey/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show algorithm sidebar
	sidebarWidth       = 22  // Width of algorithm sidebar
	maxRuns            = 200 // Max runs to load per tab
)

// allAlgorithms is the tab that lists every run.
const allAlgorithms = "all"

// RunLister loads recorded runs.
type RunLister interface {
	RecentRuns(f storage.RunFilter) ([]storage.Run, error)
}

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextAlgo key.Binding
	PrevAlgo key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextAlgo, k.PrevAlgo, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.NextAlgo, k.PrevAlgo}, {k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextAlgo: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next algorithm"),
		),
		PrevAlgo: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev algorithm"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing recorded runs.
type HistoryModel struct {
	tabs        []string // "all" followed by algorithm IDs
	tab         int
	store       RunLister
	runs        []storage.Run
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewHistoryModel creates a history browser over store.
func NewHistoryModel(store RunLister, width, height int) HistoryModel {
	tabs := []string{allAlgorithms}
	for _, a := range registry.List() {
		tabs = append(tabs, a.ID)
	}

	m := HistoryModel{
		tabs:        tabs,
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table sized to the window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 14},
		{Title: "Algorithm", Width: 13},
		{Title: "Maze", Width: 10},
		{Title: "Seed", Width: 20},
		{Title: "Dead ends", Width: 9},
		{Title: "Path", Width: 6},
		{Title: "Time", Width: 10},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the runs of the selected tab.
func (m *HistoryModel) loadRuns() {
	m.runs, m.loadErr = nil, nil
	if m.store != nil {
		f := storage.RunFilter{Limit: maxRuns}
		if algo := m.tabs[m.tab]; algo != allAlgorithms {
			f.Algorithm = algo
		}
		m.runs, m.loadErr = m.store.RecentRuns(f)
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded runs.
func (m *HistoryModel) updateTableRows() {
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			humanize.Time(r.CreatedAt),
			r.Algorithm,
			mazeSize(r),
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%.0f%%", r.DeadEndRatio()*100),
			fmt.Sprintf("%d", r.SolutionLength),
			r.Duration.Round(10 * time.Microsecond).String(),
		}
	}
	return rows
}

func mazeSize(r storage.Run) string {
	if r.Topology == string(registry.KindPolar) {
		return fmt.Sprintf("%d rings", r.Height)
	}
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextAlgo):
			m.tab = (m.tab + 1) % len(m.tabs)
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.PrevAlgo):
			m.tab = (m.tab + len(m.tabs) - 1) % len(m.tabs)
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling and everything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Tab returns the selected algorithm tab.
func (m HistoryModel) Tab() string {
	return m.tabs[m.tab]
}

// Runs returns the runs of the selected tab.
func (m HistoryModel) Runs() []storage.Run {
	return m.runs
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("RUN HISTORY - "+m.Tab(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content))
	} else {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.Tab()), m.width))
		b.WriteString("\n\n")
		b.WriteString(content)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the algorithm list.
func (m HistoryModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Algorithms\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, name := range m.tabs {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.tab {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sb.WriteString(style.Render(cursor + name))
		sb.WriteString("\n")
	}

	return sidebarStyle.Render(sb.String())
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nGenerate a maze to start the history!")
	}
	return m.table.View()
}

// centerText pads text to the middle of width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunHistory runs the history browser.
func RunHistory(store RunLister, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
