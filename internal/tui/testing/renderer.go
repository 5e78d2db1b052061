// Package testing provides test utilities for driving the converter form
// without a real terminal.
package testing

import (
	tea "github.com/charmbracelet/bubbletea"
)

// TestRenderer captures the output of a Bubble Tea model after every update.
type TestRenderer struct {
	// Output contains the last rendered view
	Output string

	// Commands contains all non-nil commands returned by Update calls
	Commands []tea.Cmd

	// UpdateCount tracks how many times Update was called
	UpdateCount int
}

// NewTestRenderer creates a new test renderer.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{
		Commands: make([]tea.Cmd, 0),
	}
}

// Render renders a model and captures its output.
func (r *TestRenderer) Render(model tea.Model) string {
	r.Output = model.View()
	return r.Output
}

// Update sends a message to the model and captures the re-rendered view.
func (r *TestRenderer) Update(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	r.UpdateCount++

	newModel, cmd := model.Update(msg)
	if cmd != nil {
		r.Commands = append(r.Commands, cmd)
	}

	r.Output = newModel.View()

	return newModel, cmd
}

// LastCommand returns the most recent command, or nil if no commands were generated.
func (r *TestRenderer) LastCommand() tea.Cmd {
	if len(r.Commands) == 0 {
		return nil
	}
	return r.Commands[len(r.Commands)-1]
}

// Plain returns the last output without ANSI codes.
func (r *TestRenderer) Plain() string {
	return StripANSI(r.Output)
}
