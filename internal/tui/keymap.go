package tui

import (
	"github.com/Veraticus/landconv/internal/tui/components"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	NextField key.Binding
	PrevField key.Binding
	Up        key.Binding
	Down      key.Binding

	// Selection
	NextOption  key.Binding
	PrevOption  key.Binding
	FirstOption key.Binding
	LastOption  key.Binding

	// Amount input. Printable keys are typed, so only these act on the form.
	AmountPrev key.Binding
	AmountNext key.Binding
	AmountQuit key.Binding

	// Actions
	Swap  key.Binding
	Reset key.Binding

	// Application
	Quit        key.Binding
	ForceQuit   key.Binding
	Help        key.Binding
	ClearScreen key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "previous field"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous field"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next field"),
		),

		// Selection
		NextOption: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next option"),
		),
		PrevOption: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous option"),
		),
		FirstOption: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("Home", "first option"),
		),
		LastOption: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("End", "last option"),
		),

		// Amount input
		AmountPrev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous field"),
		),
		AmountNext: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next field"),
		),
		AmountQuit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "quit"),
		),

		// Actions
		Swap: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "swap from/to"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "reset"),
		),

		// Application
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/Esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "clear screen"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.NextOption, k.Swap, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Up, k.Down},
		{k.NextOption, k.PrevOption, k.FirstOption, k.LastOption},
		{k.Swap, k.Reset, k.ClearScreen},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// SelectorKeys returns the bindings the selectors cycle with.
func (k KeyMap) SelectorKeys() components.SelectorKeyMap {
	return components.SelectorKeyMap{
		Next:  k.NextOption,
		Prev:  k.PrevOption,
		First: k.FirstOption,
		Last:  k.LastOption,
	}
}

// amountKeyMap is the help shown while the amount input has focus.
type amountKeyMap struct {
	KeyMap
}

func (k amountKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.AmountPrev, k.AmountNext, k.AmountQuit}
}

func (k amountKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.AmountPrev, k.AmountNext},
		{k.Reset, k.ClearScreen},
		{k.AmountQuit, k.ForceQuit},
	}
}

// helpKeys returns the bindings that apply to the focused field.
func (m Model) helpKeys() help.KeyMap {
	if m.focus == FieldAmount {
		return amountKeyMap{m.keymap}
	}
	return m.keymap
}
