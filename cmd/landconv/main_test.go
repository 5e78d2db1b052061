package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/landconv/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI against a config file holding yaml and returns the
// command output and the app state.
func execute(t *testing.T, yaml string, args ...string) (string, *app, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o600))

	prev := slog.Default()
	cmd, a := newRootCmd()
	t.Cleanup(func() {
		a.close()
		slog.SetDefault(prev)
	})

	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := cmd.Execute()
	return out.String(), a, err
}

func TestUnitsCommand(t *testing.T) {
	out, _, err := execute(t, "", "units", "Bihar")
	require.NoError(t, err)

	assert.Contains(t, out, "Bihar")
	assert.Contains(t, out, "Katha")
	assert.Contains(t, out, "1,361")
	assert.NotContains(t, out, "Uttar Pradesh")
}

func TestUnitsCommand_UnknownSystem(t *testing.T) {
	_, _, err := execute(t, "", "units", "Atlantis")
	require.Error(t, err)

	var userErr *common.UserError
	assert.ErrorAs(t, err, &userErr)
	assert.ErrorIs(t, err, common.ErrUnknownSystem)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "landconv dev\n", out)
}

func TestRoot_WithoutTerminal(t *testing.T) {
	out, a, err := execute(t, "", "--from", "West Bengal/Katha", "--to", "Standard/Sq. Meter", "--amount", "3")
	require.NoError(t, err)

	assert.Empty(t, out)
	assert.Equal(t, "West Bengal/Katha", a.settings.Start.From)
	assert.Equal(t, "Standard/Sq. Meter", a.settings.Start.To)
	assert.Equal(t, "3", a.settings.Start.Amount)
}

func TestRoot_InvalidStart(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "unknown system", args: []string{"--from", "Atlantis/Acre"}, want: common.ErrUnknownSystem},
		{name: "unit of another system", args: []string{"--to", "Bihar/Biswa"}, want: common.ErrUnknownUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRoot_ConfigFile(t *testing.T) {
	yaml := `
ui:
  theme: light
  alt_screen: false
start:
  from: Bihar/Katha
  amount: "2.5"
`
	_, a, err := execute(t, yaml)
	require.NoError(t, err)

	assert.Equal(t, "light", a.settings.UI.Theme)
	assert.False(t, a.settings.UI.AltScreen)
	assert.Equal(t, "Bihar/Katha", a.settings.Start.From)
	assert.Equal(t, "Uttar Pradesh/Bigha", a.settings.Start.To)
	assert.Equal(t, "2.5", a.settings.Start.Amount)
}

func TestRoot_FlagsOverrideConfigFile(t *testing.T) {
	_, a, err := execute(t, "start:\n  from: Bihar/Katha\n", "--from", "Standard/Hectare")
	require.NoError(t, err)
	assert.Equal(t, "Standard/Hectare", a.settings.Start.From)
}

func TestRoot_EnvironmentOverridesConfigFile(t *testing.T) {
	t.Setenv("LANDCONV_UI_THEME", "light")

	_, a, err := execute(t, "ui:\n  theme: default\n")
	require.NoError(t, err)
	assert.Equal(t, "light", a.settings.UI.Theme)
}

func TestRoot_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "logging:\n  level: loud\n", "version")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestRoot_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "landconv.log")

	_, a, err := execute(t, "", "--log-file", logPath, "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, logPath, a.settings.Logging.File)

	a.close()
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Opening converter")
}
