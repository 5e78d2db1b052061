package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/Veraticus/landconv/internal/cli"
	"github.com/Veraticus/landconv/internal/common"
	"github.com/Veraticus/landconv/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// app carries the state shared by the root command and its subcommands.
type app struct {
	v        *viper.Viper
	settings *config.Config
	logFile  io.Closer
	cfgFile  string
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	rootCmd := &cobra.Command{
		Use:   "landconv",
		Short: "Land area unit converter",
		Long: `landconv converts land area between standard units and the traditional
units of Uttar Pradesh, Bihar and West Bengal.

Run without arguments to open the interactive converter.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.initConfig,
		RunE:              a.runConverter,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/landconv/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")

	// Converter flags
	rootCmd.Flags().String("from", "", `source unit as "System/Unit" (e.g. "Standard/Acre")`)
	rootCmd.Flags().String("to", "", `target unit as "System/Unit" (e.g. "Uttar Pradesh/Bigha")`)
	rootCmd.Flags().String("amount", "", "starting amount")
	rootCmd.Flags().String("theme", "", "color theme (default, light)")
	rootCmd.Flags().Bool("no-alt-screen", false, "render inline instead of on the alternate screen")
	rootCmd.Flags().String("record", "", "record every frame of the session into this directory")

	// Bind flags to viper
	_ = a.v.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = a.v.BindPFlag(config.KeyLogFile, rootCmd.PersistentFlags().Lookup("log-file"))
	_ = a.v.BindPFlag(config.KeyStartFrom, rootCmd.Flags().Lookup("from"))
	_ = a.v.BindPFlag(config.KeyStartTo, rootCmd.Flags().Lookup("to"))
	_ = a.v.BindPFlag(config.KeyStartAmount, rootCmd.Flags().Lookup("amount"))
	_ = a.v.BindPFlag(config.KeyTheme, rootCmd.Flags().Lookup("theme"))
	_ = a.v.BindPFlag(config.KeyRecordDir, rootCmd.Flags().Lookup("record"))

	// Add commands
	rootCmd.AddCommand(unitsCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd, a
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		common.LogInfo("Received interrupt signal, shutting down", nil)
		cancel()
	}()

	rootCmd, a := newRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	a.close()
	cancel() // Always cleanup

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err.Error()))
		os.Exit(1)
	}
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	// Set up config file
	if a.cfgFile != "" {
		a.v.SetConfigFile(config.ExpandPath(a.cfgFile))
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		a.v.AddConfigPath(filepath.Join(home, ".config", "landconv"))
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	// Environment variables
	a.v.SetEnvPrefix("LANDCONV")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	// Read config file
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	settings, err := config.Load(a.v)
	if err != nil {
		return common.NewUserError("invalid configuration", err)
	}
	a.settings = settings

	// Set up logging
	if err := a.setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	if used := a.v.ConfigFileUsed(); used != "" {
		common.LogDebug("Loaded config file", common.Fields{"path": used})
	}
	return nil
}

func (a *app) setupLogging() error {
	level, err := common.ParseLevel(a.settings.Logging.Level)
	if err != nil {
		return err
	}

	var w io.Writer
	if path := a.settings.Logging.File; path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.close()
		a.logFile = f
		w = f
	}

	return common.SetupLogger(w, level, a.settings.Logging.Format)
}

func (a *app) close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "landconv %s\n", version)
		},
	}
}
