package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the maze viewer.
type KeyMap struct {
	NewSeed    key.Binding
	Rebuild    key.Binding
	NextAlgo   key.Binding
	PrevAlgo   key.Binding
	Topology   key.Binding
	Style      key.Binding
	TogglePath key.Binding
	ToggleHeat key.Binding
	AutoPlay   key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewSeed, k.NextAlgo, k.TogglePath, k.ToggleHeat, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewSeed, k.Rebuild, k.NextAlgo, k.PrevAlgo},
		{k.Topology, k.Style, k.TogglePath, k.ToggleHeat},
		{k.AutoPlay, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NewSeed: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n", "new maze"),
		),
		Rebuild: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rebuild"),
		),
		NextAlgo: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next algorithm"),
		),
		PrevAlgo: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev algorithm"),
		),
		Topology: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "rect/circle"),
		),
		Style: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "wall style"),
		),
		TogglePath: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "path"),
		),
		ToggleHeat: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "distances"),
		),
		AutoPlay: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "slideshow"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
