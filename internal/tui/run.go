package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Veraticus/landconv/internal/common"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Run shows the converter form until the user quits or ctx is canceled.
// Without a terminal on the output there is nothing to attach to, and Run
// returns nil without rendering anything.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !isTerminal(cfg.Output) {
		common.LogDebug("No terminal attached, converter not started", nil)
		return nil
	}

	if !cfg.KeepLogs {
		restore := common.SilenceLogger()
		defer restore()
	}

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(cfg.Input),
		tea.WithOutput(cfg.Output),
	}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	common.LogDebug("Starting converter", common.Fields{
		"source_system": cfg.Selection.SourceSystem,
		"target_system": cfg.Selection.TargetSystem,
	})

	model := newModel(cfg)
	if cfg.RecordDir != "" {
		rec, err := NewRecorder(cfg.RecordDir)
		if err != nil {
			return err
		}
		defer func() {
			if err := rec.Close(); err != nil {
				common.LogError(err, "Failed to close recording", common.Fields{"dir": cfg.RecordDir})
			}
		}()
		model.recorder = rec
		rec.RecordState(model, nil)
	}

	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run converter: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
