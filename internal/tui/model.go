package tui

import (
	"strconv"

	"github.com/Veraticus/landconv/internal/converter"
	"github.com/Veraticus/landconv/internal/landunit"
	"github.com/Veraticus/landconv/internal/tui/components"
	"github.com/Veraticus/landconv/internal/tui/themes"
	"github.com/Veraticus/landconv/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field identifies an input of the form, in focus order.
type Field int

const (
	FieldSourceSystem Field = iota
	FieldSourceUnit
	FieldAmount
	FieldTargetSystem
	FieldTargetUnit
	fieldCount
)

var fieldNames = [...]string{"source system", "source unit", "amount", "target system", "target unit"}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return fieldNames[f]
}

const labelWidth = 8

// Model holds the converter form state.
type Model struct {
	theme        themes.Theme
	table        *landunit.Table
	keymap       KeyMap
	help         help.Model
	amount       textinput.Model
	sourceSystem components.SelectorModel
	sourceUnit   components.SelectorModel
	targetSystem components.SelectorModel
	targetUnit   components.SelectorModel
	view         viewmodel.ConverterView
	conversion   converter.Conversion
	selection    converter.Selection
	initial      converter.Selection
	recorder     *Recorder
	focus        Field
	width        int
	height       int
	quitting     bool
}

// NewModel creates a form with the given options applied.
func NewModel(opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(cfg)
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	m := Model{
		theme:     cfg.Theme,
		table:     cfg.Table,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		selection: cfg.Selection,
		initial:   cfg.Selection,
		width:     cfg.Width,
		height:    cfg.Height,
	}

	m.amount = textinput.New()
	m.amount.Prompt = ""
	m.amount.Placeholder = "0"
	m.amount.CharLimit = 32
	m.amount.Width = 20
	m.amount.SetValue(formatAmount(cfg.Selection.Amount))

	m.sourceSystem = components.NewSelectorModel("System", nil, "", m.theme)
	m.sourceUnit = components.NewSelectorModel("Unit", nil, "", m.theme)
	m.targetSystem = components.NewSelectorModel("System", nil, "", m.theme)
	m.targetUnit = components.NewSelectorModel("Unit", nil, "", m.theme)
	for _, sel := range m.selectors() {
		sel.SetLabelWidth(labelWidth)
		sel.SetKeyMap(m.keymap.SelectorKeys())
	}

	m.help.Width = m.width
	m.refresh()
	m.setFocus(FieldSourceSystem)

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	m.recorder.RecordState(next, msg)
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == FieldAmount {
		var cmd tea.Cmd
		m.amount, cmd = m.amount.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderForm()
}

// Selection returns the stored selection.
func (m Model) Selection() converter.Selection {
	return m.selection
}

// Conversion returns the conversion derived from the current selection.
func (m Model) Conversion() converter.Conversion {
	return m.conversion
}

// Focus returns the focused field.
func (m Model) Focus() Field {
	return m.focus
}

// Quitting reports whether the form has been asked to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.NextField):
		cmd := m.setFocus((m.focus + 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keymap.PrevField):
		cmd := m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keymap.Reset):
		m.reset()
		return m, nil
	case key.Matches(msg, m.keymap.ClearScreen):
		return m, tea.ClearScreen
	}

	if m.focus == FieldAmount {
		return m.handleAmountKey(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keymap.Swap):
		m.selection.Swap()
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keymap.Up):
		cmd := m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keymap.Down):
		cmd := m.setFocus((m.focus + 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.keymap.NextOption, m.keymap.PrevOption, m.keymap.FirstOption, m.keymap.LastOption):
		m.updateSelector(msg)
		return m, nil
	}

	return m, nil
}

// handleAmountKey routes keys while the amount input is focused. Printable
// keys belong to the input, so only non-printable bindings act on the form.
func (m Model) handleAmountKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.AmountQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.AmountPrev):
		cmd := m.setFocus(m.focus - 1)
		return m, cmd
	case key.Matches(msg, m.keymap.AmountNext):
		cmd := m.setFocus(m.focus + 1)
		return m, cmd
	}

	var cmd tea.Cmd
	m.amount, cmd = m.amount.Update(msg)
	m.selection.SetAmount(m.amount.Value())
	m.refresh()
	return m, cmd
}

func (m *Model) updateSelector(msg tea.KeyMsg) {
	switch m.focus {
	case FieldSourceSystem:
		m.sourceSystem, _ = m.sourceSystem.Update(msg)
		m.selection.SetSourceSystem(m.sourceSystem.Selected())
	case FieldSourceUnit:
		m.sourceUnit, _ = m.sourceUnit.Update(msg)
		m.selection.SetSourceUnit(m.sourceUnit.Selected())
	case FieldTargetSystem:
		m.targetSystem, _ = m.targetSystem.Update(msg)
		m.selection.SetTargetSystem(m.targetSystem.Selected())
	case FieldTargetUnit:
		m.targetUnit, _ = m.targetUnit.Update(msg)
		m.selection.SetTargetUnit(m.targetUnit.Selected())
	}
	m.refresh()
}

// refresh recomputes the conversion and re-aligns every selector with it.
// Unit selectors list the units of the stored system and sit on the
// effective unit; the stored selection itself is never corrected here.
func (m *Model) refresh() {
	m.conversion = converter.Convert(m.table, m.selection)
	m.view = viewmodel.NewConverterView(m.conversion)

	systems := m.table.Systems()
	m.sourceSystem.SetOptions(systems, m.selection.SourceSystem)
	m.targetSystem.SetOptions(systems, m.selection.TargetSystem)
	m.sourceUnit.SetOptions(m.table.Units(m.selection.SourceSystem).Names(), m.conversion.Source.Unit)
	m.targetUnit.SetOptions(m.table.Units(m.selection.TargetSystem).Names(), m.conversion.Target.Unit)
}

func (m *Model) reset() {
	m.selection = m.initial
	m.amount.SetValue(formatAmount(m.initial.Amount))
	m.amount.CursorEnd()
	m.refresh()
}

func (m *Model) setFocus(f Field) tea.Cmd {
	m.focus = f

	for _, sel := range m.selectors() {
		sel.Blur()
	}
	m.amount.Blur()

	switch f {
	case FieldSourceSystem:
		m.sourceSystem.Focus()
	case FieldSourceUnit:
		m.sourceUnit.Focus()
	case FieldAmount:
		return m.amount.Focus()
	case FieldTargetSystem:
		m.targetSystem.Focus()
	case FieldTargetUnit:
		m.targetUnit.Focus()
	}
	return nil
}

func (m *Model) selectors() []*components.SelectorModel {
	return []*components.SelectorModel{&m.sourceSystem, &m.sourceUnit, &m.targetSystem, &m.targetUnit}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
