package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// compactWidth is the width below which panels stack vertically.
const compactWidth = 70

// renderForm renders the whole converter form.
func (m Model) renderForm() string {
	sections := []string{
		m.theme.Title.Render("Land Unit Converter"),
		m.renderEndpoints(),
		"",
		m.renderAmount(),
		"",
		m.renderResult(),
	}

	if m.view.ShowReferences {
		sections = append(sections, m.renderReferences())
	}
	if m.view.Footnote != "" {
		sections = append(sections, "", m.renderFootnote())
	}

	sections = append(sections, "", m.help.View(m.helpKeys()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderEndpoints renders the "From" and "To" selector boxes.
func (m Model) renderEndpoints() string {
	from := m.renderEndpoint("From", m.sourceSystem.View(), m.sourceUnit.View(),
		m.focus == FieldSourceSystem || m.focus == FieldSourceUnit)
	to := m.renderEndpoint("To", m.targetSystem.View(), m.targetUnit.View(),
		m.focus == FieldTargetSystem || m.focus == FieldTargetUnit)

	if m.width < compactWidth {
		return lipgloss.JoinVertical(lipgloss.Left, from, to)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, from, " ", to)
}

func (m Model) renderEndpoint(title, system, unit string, focused bool) string {
	box := m.theme.Box
	if focused {
		box = m.theme.FocusedBox
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.ResultLabel.Render(title),
		system,
		unit,
	)

	if w := m.panelWidth(); w > 0 {
		box = box.Width(w)
	}
	return box.Render(content)
}

// renderAmount renders the amount input line.
func (m Model) renderAmount() string {
	label := m.theme.Label.Width(labelWidth).Render("Amount")

	input := m.amount.View()
	if m.focus == FieldAmount {
		input = m.theme.Selected.Render(" ") + input
	} else {
		input = " " + input
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, " ", label, input)
}

// renderResult renders the main conversion result panel.
func (m Model) renderResult() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.ResultLabel.Render("Conversion Result"),
		m.theme.ResultValue.Render(m.view.Result),
		m.theme.ResultCaption.Render(m.view.ResultCaption),
	)

	box := m.theme.ResultBox
	if w := m.fullWidth(); w > 0 {
		box = box.Width(w)
	}
	return box.Render(content)
}

// renderReferences renders the two "square feet per unit" panels.
func (m Model) renderReferences() string {
	source := m.renderReference(m.view.Source.Caption, m.view.Source.Value)
	target := m.renderReference(m.view.Target.Caption, m.view.Target.Value)

	if m.width < compactWidth {
		return lipgloss.JoinVertical(lipgloss.Left, source, target)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, source, " ", target)
}

func (m Model) renderReference(caption, value string) string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.ReferenceHead.Render(caption),
		m.theme.ReferenceText.Render(value),
	)

	box := m.theme.ReferenceBox
	if w := m.panelWidth(); w > 0 {
		box = box.Width(w)
	}
	return box.Render(content)
}

// renderFootnote renders the note below the panels, centered when the layout
// has a fixed width.
func (m Model) renderFootnote() string {
	style := m.theme.Footnote
	if w := m.fullWidth(); w > 0 {
		style = style.Width(w + 2).Align(lipgloss.Center)
	}
	return style.Render(m.view.Footnote)
}

// panelWidth is the inner width of a half-width panel, or 0 to size to content.
func (m Model) panelWidth() int {
	if m.width < compactWidth {
		return 0
	}
	// Two bordered panels plus one separating space.
	return (m.width-1)/2 - 2
}

// fullWidth is the inner width of a full-width panel, or 0 to size to content.
func (m Model) fullWidth() int {
	if m.width < compactWidth {
		return 0
	}
	// Borders plus one column of slack on the right edge.
	return m.width - 3
}
