package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	NextFocus  key.Binding
	Escape     key.Binding

	// Editor shortcuts dispatched as key combos
	Compile key.Binding
	Save    key.Binding
	Format  key.Binding
	Search  key.Binding

	// Project actions
	Gist       key.Binding
	Debugger   key.Binding
	Preview    key.Binding
	EmbedLink  key.Binding
	ClearCache key.Binding
	Dismiss    key.Binding

	// Layout
	CollapseElm   key.Binding
	CollapseHTML  key.Binding
	GrowEditors   key.Binding
	ShrinkEditors key.Binding
	GrowElm       key.Binding
	ShrinkElm     key.Binding

	// Result pane
	ToggleLog  key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding

	// Lists
	Up     key.Binding
	Down   key.Binding
	Remove key.Binding

	// Search/input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("alt+t"),
			key.WithHelp("alt+t", "Cycle theme"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next pane"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close popout / clear notifications"),
		),

		// Key combos. Most terminals cannot report ctrl+enter or
		// ctrl+shift+f, so each has a plain control-key alternative.
		Compile: key.NewBinding(
			key.WithKeys("ctrl+enter", "ctrl+r"),
			key.WithHelp("ctrl+r", "Compile"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Save"),
		),
		Format: key.NewBinding(
			key.WithKeys("ctrl+shift+f", "ctrl+f"),
			key.WithHelp("ctrl+f", "Format"),
		),
		Search: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "Packages"),
		),

		// Project actions
		Gist: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "Gist"),
		),
		Debugger: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "Debugger"),
		),
		Preview: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "Reload preview"),
		),
		EmbedLink: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "Embed link"),
		),
		ClearCache: key.NewBinding(
			key.WithKeys("alt+c"),
			key.WithHelp("alt+c", "Clear compiler cache"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("alt+d"),
			key.WithHelp("alt+d", "Dismiss newest notification"),
		),

		// Layout
		CollapseElm: key.NewBinding(
			key.WithKeys("alt+e"),
			key.WithHelp("alt+e", "Collapse Elm"),
		),
		CollapseHTML: key.NewBinding(
			key.WithKeys("alt+h"),
			key.WithHelp("alt+h", "Collapse HTML"),
		),
		GrowEditors: key.NewBinding(
			key.WithKeys("alt+right"),
			key.WithHelp("alt+→", "Widen editors"),
		),
		ShrinkEditors: key.NewBinding(
			key.WithKeys("alt+left"),
			key.WithHelp("alt+←", "Narrow editors"),
		),
		GrowElm: key.NewBinding(
			key.WithKeys("alt+down"),
			key.WithHelp("alt+↓", "Taller Elm editor"),
		),
		ShrinkElm: key.NewBinding(
			key.WithKeys("alt+up"),
			key.WithHelp("alt+↑", "Shorter Elm editor"),
		),

		// Result pane
		ToggleLog: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "Output / log"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Scroll result up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "Scroll result down"),
		),

		// Lists
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "Move down"),
		),
		Remove: key.NewBinding(
			key.WithKeys("delete", "backspace"),
			key.WithHelp("del", "Remove package"),
		),

		// Search/input
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Compile, k.Save, k.Format, k.Search, k.NextFocus, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Compile, k.Save, k.Format, k.Search},
		{k.Gist, k.Debugger, k.Preview, k.EmbedLink},
		{k.CollapseElm, k.CollapseHTML, k.GrowEditors, k.ShrinkEditors, k.GrowElm, k.ShrinkElm},
		{k.NextFocus, k.Up, k.Down, k.Remove, k.Confirm},
		{k.ToggleLog, k.ScrollUp, k.ScrollDown},
		{k.ClearCache, k.Dismiss, k.Escape, k.CycleTheme, k.Help, k.Quit},
	}
}
