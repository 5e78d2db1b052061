package components

import (
	"strings"
	"testing"

	"github.com/Veraticus/landconv/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

var systems = []string{"Standard", "Uttar Pradesh", "Bihar", "West Bengal"}

func TestNewSelectorModel(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		want     string
		options  []string
	}{
		{name: "selected present", options: systems, selected: "Bihar", want: "Bihar"},
		{name: "selected missing falls to first", options: systems, selected: "Kerala", want: "Standard"},
		{name: "no options", options: nil, selected: "Standard", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSelectorModel("System", tt.options, tt.selected, themes.Default)
			assert.Equal(t, tt.want, m.Selected())
			assert.False(t, m.Focused())
		})
	}
}

func TestSelectorModel_Cycling(t *testing.T) {
	tests := []struct {
		name string
		want string
		keys []tea.KeyMsg
	}{
		{
			name: "right moves forward",
			keys: []tea.KeyMsg{{Type: tea.KeyRight}},
			want: "Uttar Pradesh",
		},
		{
			name: "left wraps to last",
			keys: []tea.KeyMsg{{Type: tea.KeyLeft}},
			want: "West Bengal",
		},
		{
			name: "right wraps to first",
			keys: []tea.KeyMsg{
				{Type: tea.KeyRight}, {Type: tea.KeyRight},
				{Type: tea.KeyRight}, {Type: tea.KeyRight},
			},
			want: "Standard",
		},
		{
			name: "vim keys",
			keys: []tea.KeyMsg{
				{Type: tea.KeyRunes, Runes: []rune("l")},
				{Type: tea.KeyRunes, Runes: []rune("l")},
				{Type: tea.KeyRunes, Runes: []rune("h")},
			},
			want: "Uttar Pradesh",
		},
		{
			name: "end then home",
			keys: []tea.KeyMsg{{Type: tea.KeyEnd}, {Type: tea.KeyHome}},
			want: "Standard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSelectorModel("System", systems, "Standard", themes.Default)
			m.Focus()

			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}

			assert.Equal(t, tt.want, m.Selected())
		})
	}
}

func TestSelectorModel_SetKeyMap(t *testing.T) {
	m := NewSelectorModel("System", systems, "Standard", themes.Default)
	m.Focus()

	keys := DefaultSelectorKeyMap()
	keys.Next = key.NewBinding(key.WithKeys("n"))
	keys.Prev = key.NewBinding(key.WithKeys("p"))
	m.SetKeyMap(keys)

	// The old bindings no longer move the cursor.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	assert.Equal(t, "Standard", m.Selected())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.Equal(t, "Bihar", m.Selected())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	assert.Equal(t, "Uttar Pradesh", m.Selected())

	// Disabled bindings never match.
	keys.Last.SetEnabled(false)
	m.SetKeyMap(keys)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, "Uttar Pradesh", m.Selected())
}

func TestSelectorModel_IgnoresKeysWhenBlurred(t *testing.T) {
	m := NewSelectorModel("System", systems, "Bihar", themes.Default)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	assert.Equal(t, "Bihar", m.Selected())
}

func TestSelectorModel_SetOptions(t *testing.T) {
	m := NewSelectorModel("Unit", []string{"Sq. Ft", "Sq. Meter", "Acre", "Hectare"}, "Acre", themes.Default)
	assert.Equal(t, "Acre", m.Selected())

	m.SetOptions([]string{"Bigha", "Katha"}, "Acre")
	assert.Equal(t, "Bigha", m.Selected())
	assert.Equal(t, []string{"Bigha", "Katha"}, m.Options())

	m.SetOptions([]string{"Bigha", "Katha"}, "Katha")
	assert.Equal(t, "Katha", m.Selected())
}

func TestSelectorModel_View(t *testing.T) {
	m := NewSelectorModel("System", systems, "Bihar", themes.Default)

	view := m.View()
	assert.Contains(t, view, "System")
	assert.Contains(t, view, "Bihar")
	assert.NotContains(t, view, "3/4")

	m.Focus()
	view = m.View()
	assert.Contains(t, view, "‹ Bihar ›")
	assert.Contains(t, view, "3/4")

	empty := NewSelectorModel("Unit", nil, "", themes.Default)
	assert.True(t, strings.Contains(empty.View(), "—"))
}
