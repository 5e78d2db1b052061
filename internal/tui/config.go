package tui

import (
	"io"
	"os"

	"github.com/Veraticus/landconv/internal/converter"
	"github.com/Veraticus/landconv/internal/landunit"
	"github.com/Veraticus/landconv/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme     themes.Theme
	Table     *landunit.Table
	Input     io.Reader
	Output    io.Writer
	Selection converter.Selection
	Width     int
	Height    int
	AltScreen bool
	// KeepLogs leaves the default logger untouched while the form runs. Only
	// set it when logs go somewhere other than the terminal.
	KeepLogs bool
	// RecordDir, when set, receives a frame-by-frame recording of the session.
	RecordDir string
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Table:     landunit.Default(),
		Selection: converter.DefaultSelection(),
		Input:     os.Stdin,
		Output:    os.Stdout,
		Width:     80,
		Height:    24,
		AltScreen: true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithTable sets the conversion table.
func WithTable(table *landunit.Table) Option {
	return func(c *Config) {
		if table != nil {
			c.Table = table
		}
	}
}

// WithSelection sets the selection the form starts with.
func WithSelection(sel converter.Selection) Option {
	return func(c *Config) {
		c.Selection = sel
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithIO sets where the form reads keys from and renders to.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(c *Config) {
		c.Input = in
		c.Output = out
	}
}

// WithAltScreen toggles rendering on the terminal's alternate screen.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}

// WithKeepLogs keeps the default logger active while the form runs.
func WithKeepLogs(enabled bool) Option {
	return func(c *Config) {
		c.KeepLogs = enabled
	}
}

// WithRecordDir records every frame of the session into dir.
func WithRecordDir(dir string) Option {
	return func(c *Config) {
		c.RecordDir = dir
	}
}
