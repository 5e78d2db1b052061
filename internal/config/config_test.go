package config

import (
	"testing"

	"github.com/Veraticus/landconv/internal/common"
	"github.com/Veraticus/landconv/internal/converter"
	"github.com/Veraticus/landconv/internal/landunit"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, values map[string]any) *viper.Viper {
	t.Helper()

	v := viper.New()
	SetDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper(t, nil))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Empty(t, cfg.Logging.File)
	assert.Equal(t, "default", cfg.UI.Theme)
	assert.True(t, cfg.UI.AltScreen)
	assert.Empty(t, cfg.UI.RecordDir)
	assert.Equal(t, "Standard/Acre", cfg.Start.From)
	assert.Equal(t, "Uttar Pradesh/Bigha", cfg.Start.To)

	sel, err := cfg.Start.Selection(landunit.Default())
	require.NoError(t, err)
	assert.Equal(t, converter.DefaultSelection(), sel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LANDCONV_LOG_DIR", "/var/log/landconv")

	cfg, err := Load(newViper(t, map[string]any{
		KeyLogLevel:  " DEBUG ",
		KeyLogFormat: "json",
		KeyLogFile:   "$LANDCONV_LOG_DIR/landconv.log",
		KeyTheme:     "Light",
		KeyAltScreen: false,
		KeyRecordDir: "$LANDCONV_LOG_DIR/frames",
	}))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/var/log/landconv/landconv.log", cfg.Logging.File)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.False(t, cfg.UI.AltScreen)
	assert.Equal(t, "/var/log/landconv/frames", cfg.UI.RecordDir)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
	}{
		{name: "log level", values: map[string]any{KeyLogLevel: "verbose"}},
		{name: "log format", values: map[string]any{KeyLogFormat: "xml"}},
		{name: "theme", values: map[string]any{KeyTheme: "solarized"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newViper(t, tt.values))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		in         string
		wantSystem string
		wantUnit   string
	}{
		{in: "Standard/Acre", wantSystem: "Standard", wantUnit: "Acre"},
		{in: " West Bengal / Katha ", wantSystem: "West Bengal", wantUnit: "Katha"},
		{in: "Bihar", wantSystem: "Bihar", wantUnit: ""},
		{in: "", wantSystem: "", wantUnit: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			system, unit := ParseEndpoint(tt.in)
			assert.Equal(t, tt.wantSystem, system)
			assert.Equal(t, tt.wantUnit, unit)
		})
	}
}

func TestStartConfig_Selection(t *testing.T) {
	table := landunit.Default()

	t.Run("explicit endpoints", func(t *testing.T) {
		sel, err := StartConfig{From: "West Bengal/Katha", To: "Standard/Sq. Meter", Amount: "3"}.Selection(table)
		require.NoError(t, err)
		assert.Equal(t, converter.Selection{
			SourceSystem: "West Bengal",
			SourceUnit:   "Katha",
			TargetSystem: "Standard",
			TargetUnit:   "Sq. Meter",
			Amount:       3,
		}, sel)
	})

	t.Run("bare system picks its first unit", func(t *testing.T) {
		sel, err := StartConfig{From: "Bihar", To: "Standard"}.Selection(table)
		require.NoError(t, err)
		assert.Equal(t, "Bigha", sel.SourceUnit)
		assert.Equal(t, "Sq. Ft", sel.TargetUnit)
		assert.Equal(t, converter.DefaultAmount, sel.Amount)
	})

	t.Run("invalid amount becomes zero", func(t *testing.T) {
		sel, err := StartConfig{Amount: "lots"}.Selection(table)
		require.NoError(t, err)
		assert.Zero(t, sel.Amount)
	})

	t.Run("unknown system", func(t *testing.T) {
		_, err := StartConfig{From: "Atlantis/Acre"}.Selection(table)
		assert.ErrorIs(t, err, common.ErrUnknownSystem)
	})

	t.Run("bare unknown system", func(t *testing.T) {
		_, err := StartConfig{To: "Atlantis"}.Selection(table)
		assert.ErrorIs(t, err, common.ErrUnknownSystem)
	})

	t.Run("unit from another system", func(t *testing.T) {
		_, err := StartConfig{To: "Bihar/Biswa"}.Selection(table)
		assert.ErrorIs(t, err, common.ErrUnknownUnit)
	})
}
