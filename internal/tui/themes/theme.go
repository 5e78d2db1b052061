// Package themes defines the visual styles of the converter form.
package themes

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Label         lipgloss.Style
	Normal        lipgloss.Style
	Selected      lipgloss.Style
	Box           lipgloss.Style
	FocusedBox    lipgloss.Style
	ResultBox     lipgloss.Style
	ResultLabel   lipgloss.Style
	ResultValue   lipgloss.Style
	ResultCaption lipgloss.Style
	ReferenceBox  lipgloss.Style
	ReferenceHead lipgloss.Style
	ReferenceText lipgloss.Style
	Footnote      lipgloss.Style
	Name          string
	Muted         lipgloss.Color
}

// Default is the default theme, tuned for dark terminals.
var Default = Theme{
	Name:  "default",
	Muted: lipgloss.Color("#94a3b8"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#93c5fd")).
		MarginBottom(1),
	Label: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#1e40af")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),

	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	FocusedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#60a5fa")).
		Padding(0, 1),

	ResultBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#1e40af")).
		Padding(1, 2).
		Align(lipgloss.Center),
	ResultLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#94a3b8")),
	ResultValue: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#93c5fd")),
	ResultCaption: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#94a3b8")),

	ReferenceBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1).
		Align(lipgloss.Center),
	ReferenceHead: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#94a3b8")),
	ReferenceText: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#e2e8f0")),
	Footnote: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Italic(true),
}

// Light mirrors the blue-on-white palette for light terminals.
var Light = Theme{
	Name:  "light",
	Muted: lipgloss.Color("#64748b"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1e3a8a")).
		MarginBottom(1),
	Label: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#334155")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#334155")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#bfdbfe")).
		Foreground(lipgloss.Color("#1e3a8a")).
		Bold(true),

	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#e2e8f0")).
		Padding(0, 1),
	FocusedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#1e40af")).
		Padding(0, 1),

	ResultBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#bfdbfe")).
		Background(lipgloss.Color("#eff6ff")).
		Padding(1, 2).
		Align(lipgloss.Center),
	ResultLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#64748b")),
	ResultValue: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1e40af")),
	ResultCaption: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#64748b")),

	ReferenceBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#e2e8f0")).
		Background(lipgloss.Color("#f8fafc")).
		Padding(0, 1).
		Align(lipgloss.Center),
	ReferenceHead: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#64748b")),
	ReferenceText: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#334155")),
	Footnote: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#94a3b8")).
		Italic(true),
}

// ByName returns the theme with the given name.
func ByName(name string) (Theme, error) {
	switch name {
	case "", Default.Name:
		return Default, nil
	case Light.Name:
		return Light, nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (want %q or %q)", name, Default.Name, Light.Name)
	}
}
