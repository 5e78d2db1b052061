package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/landconv/internal/common"
	"github.com/Veraticus/landconv/internal/converter"
	"github.com/Veraticus/landconv/internal/landunit"
	"github.com/Veraticus/landconv/internal/tui/themes"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyLogLevel    = "logging.level"
	KeyLogFormat   = "logging.format"
	KeyLogFile     = "logging.file"
	KeyTheme       = "ui.theme"
	KeyAltScreen   = "ui.alt_screen"
	KeyRecordDir   = "ui.record_dir"
	KeyStartFrom   = "start.from"
	KeyStartTo     = "start.to"
	KeyStartAmount = "start.amount"
)

// Config holds the settings read at startup.
type Config struct {
	Logging LoggingConfig
	UI      UIConfig
	Start   StartConfig
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string
	Format string
	// File receives log output instead of stderr when set.
	File string
}

// UIConfig controls the converter form.
type UIConfig struct {
	Theme     string
	AltScreen bool
	// RecordDir receives a frame-by-frame recording of the session when set.
	RecordDir string
}

// StartConfig is the selection the form opens with. Endpoints are written
// as "System/Unit". Empty fields keep the built-in defaults.
type StartConfig struct {
	From   string
	To     string
	Amount string
}

// SetDefaults registers default values for every key.
func SetDefaults(v *viper.Viper) {
	def := converter.DefaultSelection()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyTheme, "default")
	v.SetDefault(KeyAltScreen, true)
	v.SetDefault(KeyRecordDir, "")
	v.SetDefault(KeyStartFrom, FormatEndpoint(def.SourceSystem, def.SourceUnit))
	v.SetDefault(KeyStartTo, FormatEndpoint(def.TargetSystem, def.TargetUnit))
	v.SetDefault(KeyStartAmount, "1")
}

// Load reads the configuration from v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Logging: LoggingConfig{
			Level:  strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
			Format: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat))),
			File:   ExpandPath(strings.TrimSpace(v.GetString(KeyLogFile))),
		},
		UI: UIConfig{
			Theme:     strings.ToLower(strings.TrimSpace(v.GetString(KeyTheme))),
			AltScreen: v.GetBool(KeyAltScreen),
			RecordDir: ExpandPath(strings.TrimSpace(v.GetString(KeyRecordDir))),
		},
		Start: StartConfig{
			From:   strings.TrimSpace(v.GetString(KeyStartFrom)),
			To:     strings.TrimSpace(v.GetString(KeyStartTo)),
			Amount: v.GetString(KeyStartAmount),
		},
	}

	if _, err := common.ParseLevel(cfg.Logging.Level); err != nil {
		return nil, err
	}
	switch cfg.Logging.Format {
	case "console", "json":
	default:
		return nil, fmt.Errorf("%w: invalid log format: %s", common.ErrInvalidConfig, cfg.Logging.Format)
	}
	if _, err := themes.ByName(cfg.UI.Theme); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Selection resolves the start settings against the table. Both endpoints
// must name a known system and one of its units.
func (s StartConfig) Selection(table *landunit.Table) (converter.Selection, error) {
	sel := converter.DefaultSelection()

	if s.From != "" {
		system, unit, err := resolveEndpoint(table, s.From)
		if err != nil {
			return sel, fmt.Errorf("invalid source %q: %w", s.From, err)
		}
		sel.SetSourceSystem(system)
		sel.SetSourceUnit(unit)
	}

	if s.To != "" {
		system, unit, err := resolveEndpoint(table, s.To)
		if err != nil {
			return sel, fmt.Errorf("invalid target %q: %w", s.To, err)
		}
		sel.SetTargetSystem(system)
		sel.SetTargetUnit(unit)
	}

	if strings.TrimSpace(s.Amount) != "" {
		sel.SetAmount(s.Amount)
	}
	return sel, nil
}

// ParseEndpoint splits "System/Unit" into its parts. A bare system name
// leaves the unit empty.
func ParseEndpoint(s string) (system, unit string) {
	system, unit, _ = strings.Cut(s, "/")
	return strings.TrimSpace(system), strings.TrimSpace(unit)
}

// FormatEndpoint joins a system and unit into "System/Unit".
func FormatEndpoint(system, unit string) string {
	return system + "/" + unit
}

// resolveEndpoint validates an endpoint. A missing unit selects the
// system's first unit.
func resolveEndpoint(table *landunit.Table, endpoint string) (string, string, error) {
	system, unit := ParseEndpoint(endpoint)

	if unit == "" {
		first, ok := table.Units(system).First()
		if !ok {
			return "", "", fmt.Errorf("%q: %w", system, common.ErrUnknownSystem)
		}
		unit = first.Name
	}

	if _, err := table.Lookup(system, unit); err != nil {
		return "", "", err
	}
	return system, unit, nil
}
