package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mazey/internal/core"
	"github.com/vovakirdan/mazey/internal/render"
)

// colorStyles maps core.Color roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorWall:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8099b3")),
	core.ColorPath:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#c82828")),
	core.ColorStart:   lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#f2c94c")),
	core.ColorFinish:  lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#56ccf2")),
	core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

func init() {
	for i, hex := range render.HeatPalette() {
		colorStyles[core.Heat(i)] = lipgloss.NewStyle().Background(lipgloss.Color(hex))
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
