package main

import (
	"context"

	"github.com/Sighe83/pricepatch/cmd/pricepatch/opts"
	"github.com/Sighe83/pricepatch/pkg/config"
	"github.com/Sighe83/pricepatch/pkg/status"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	dryRun     bool
	async      bool
	debug      bool
)

// initRootOpts loads configuration into the shared options once flags
// have been parsed
func initRootOpts(ctx context.Context, ro *opts.RootOpts) error {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		status.EnableDebug()
	}

	cfg, err := config.LoadOrDefault(ctx, configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	// Flag overrides
	if dryRun {
		cfg.DryRun = true
	}
	if async {
		cfg.Async = true
	}

	ro.Config = cfg
	return nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".pricepatch.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "report changes without writing files")
	cmd.PersistentFlags().BoolVar(&async, "async", false, "patch files concurrently")
}

// setupLogging configures zerolog and returns a context carrying the logger
func setupLogging(ctx context.Context) context.Context {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}
