// Package main provides the CLI entrypoint for volctl.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/volctl/internal/backend/pulse"
	"github.com/jmylchreest/volctl/internal/config"
	"github.com/jmylchreest/volctl/internal/control"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "volctl",
	Short: "Per-application volume control for Linux desktops",
	Long: `volctl lists and adjusts the volume and mute state of per-application
audio sessions, including the system-sounds stream, through the
PulseAudio session API (PipeWire's PulseAudio layer works too).

Each invocation takes a fresh snapshot of the live sessions; nothing
is persisted between runs.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logging
		setupLogger()

		// Load configuration
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
	// Default to the interactive picker when no subcommand is provided.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSelect(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/volctl/config.toml)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// newController connects to the audio backend and wraps it in a
// controller. The returned cleanup releases the connection; each command
// acquires and releases its own backend handle.
func newController(ctx context.Context) (*control.Controller, func(), error) {
	b, err := pulse.New(ctx, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if cerr := b.Close(); cerr != nil {
			logger.Debug("backend close failed", "error", cerr)
		}
	}
	return control.New(b, logger), cleanup, nil
}

// getConfig returns the global config instance.
func getConfig() *config.Config {
	return cfg
}
