package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Recorder captures every frame of the form together with the message that
// produced it, for debugging rendering issues.
type Recorder struct {
	logFile *os.File
	dir     string
	frames  int
}

// NewRecorder starts a recording in dir, creating it if needed.
func NewRecorder(dir string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create recording directory: %w", err)
	}

	logPath := filepath.Join(dir, "session.log")
	logFile, err := os.Create(filepath.Clean(logPath)) // #nosec G304 -- path built from the configured directory
	if err != nil {
		return nil, fmt.Errorf("failed to create recording log: %w", err)
	}

	r := &Recorder{
		logFile: logFile,
		dir:     dir,
	}
	r.Log("Recording started at %s", time.Now().Format(time.RFC3339))
	return r, nil
}

// RecordState writes the view of m as the next frame. A nil recorder
// records nothing.
func (r *Recorder) RecordState(m Model, msg tea.Msg) {
	if r == nil {
		return
	}

	r.frames++
	sel := m.Selection()

	r.Log("\n=== Frame %d ===", r.frames)
	r.Log("Time: %s", time.Now().Format("15:04:05.000"))
	r.Log("Message: %T %v", msg, msg)
	r.Log("Focus: %s", m.Focus())
	r.Log("Selection: %s/%s -> %s/%s, amount %g",
		sel.SourceSystem, sel.SourceUnit, sel.TargetSystem, sel.TargetUnit, sel.Amount)
	r.Log("Result: %s", m.view.Result)
	r.Log("Corrected: source=%t target=%t", m.view.Source.Corrected, m.view.Target.Corrected)

	framePath := filepath.Join(r.dir, fmt.Sprintf("frame-%04d.txt", r.frames))
	if err := os.WriteFile(framePath, []byte(m.View()), 0o600); err != nil {
		r.Log("Error saving frame: %v", err)
	}
}

// Frames returns the number of frames recorded so far.
func (r *Recorder) Frames() int {
	if r == nil {
		return 0
	}
	return r.frames
}

// Log writes a line to the session log.
func (r *Recorder) Log(format string, args ...any) {
	if r == nil || r.logFile == nil {
		return
	}
	_, _ = fmt.Fprintf(r.logFile, format+"\n", args...)
}

// Close finishes the recording.
func (r *Recorder) Close() error {
	if r == nil || r.logFile == nil {
		return nil
	}
	r.Log("\nRecording complete. %d frames captured.", r.frames)
	err := r.logFile.Close()
	r.logFile = nil
	return err
}
