package components

import (
	"fmt"

	"github.com/Veraticus/landconv/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SelectorKeyMap holds the keys a focused selector responds to.
type SelectorKeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
}

// DefaultSelectorKeyMap returns the bindings used until SetKeyMap is called.
func DefaultSelectorKeyMap() SelectorKeyMap {
	return SelectorKeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next option"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous option"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("Home", "first option"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("End", "last option"),
		),
	}
}

// SelectorModel is a single-choice dropdown rendered on one line. The
// focused selector cycles through its options with its key map.
type SelectorModel struct {
	theme   themes.Theme
	keys    SelectorKeyMap
	label   string
	options []string
	cursor  int
	width   int
	focused bool
}

// NewSelectorModel creates a selector positioned on selected, or on the first
// option when selected is not among options.
func NewSelectorModel(label string, options []string, selected string, theme themes.Theme) SelectorModel {
	m := SelectorModel{
		label: label,
		theme: theme,
		keys:  DefaultSelectorKeyMap(),
		width: 12,
	}
	m.SetOptions(options, selected)
	return m
}

// SetOptions replaces the option list and moves the cursor onto selected.
func (m *SelectorModel) SetOptions(options []string, selected string) {
	m.options = options
	m.cursor = 0
	for i, opt := range options {
		if opt == selected {
			m.cursor = i
			break
		}
	}
}

// Selected returns the highlighted option, or "" when there are none.
func (m SelectorModel) Selected() string {
	if len(m.options) == 0 {
		return ""
	}
	return m.options[m.cursor]
}

// Options returns the option list.
func (m SelectorModel) Options() []string {
	return m.options
}

// Focus marks the selector as receiving key input.
func (m *SelectorModel) Focus() {
	m.focused = true
}

// Blur removes key focus.
func (m *SelectorModel) Blur() {
	m.focused = false
}

// Focused reports whether the selector has key focus.
func (m SelectorModel) Focused() bool {
	return m.focused
}

// SetKeyMap replaces the selector's key bindings.
func (m *SelectorModel) SetKeyMap(keys SelectorKeyMap) {
	m.keys = keys
}

// SetLabelWidth aligns labels across selectors.
func (m *SelectorModel) SetLabelWidth(width int) {
	m.width = width
}

// Update handles messages.
func (m SelectorModel) Update(msg tea.Msg) (SelectorModel, tea.Cmd) {
	if !m.focused || len(m.options) == 0 {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Next):
			m.cursor = (m.cursor + 1) % len(m.options)
		case key.Matches(msg, m.keys.Prev):
			m.cursor = (m.cursor + len(m.options) - 1) % len(m.options)
		case key.Matches(msg, m.keys.First):
			m.cursor = 0
		case key.Matches(msg, m.keys.Last):
			m.cursor = len(m.options) - 1
		}
	}

	return m, nil
}

// View renders the selector.
func (m SelectorModel) View() string {
	label := m.theme.Label.Width(m.width).Render(m.label)

	value := m.Selected()
	if value == "" {
		value = "—"
	}

	if !m.focused {
		return lipgloss.JoinHorizontal(lipgloss.Top, label, m.theme.Normal.Render("  "+value+"  "))
	}

	position := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Render(fmt.Sprintf(" %d/%d", m.cursor+1, len(m.options)))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		label,
		m.theme.Selected.Render("‹ "+value+" ›"),
		position,
	)
}
