package main

import (
	"context"
	"os"

	"github.com/Sighe83/pricepatch/cmd/pricepatch/commands"
	"github.com/Sighe83/pricepatch/cmd/pricepatch/opts"
	"github.com/Sighe83/pricepatch/pkg/status"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	// Setup logging
	ctx := setupLogging(context.Background())

	// Create user logger
	userLogger := status.NewUserLogger(ctx)

	// Shared options, populated once flags are parsed
	rootOpts := &opts.RootOpts{UserLogger: userLogger}

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "pricepatch",
		Short: "Patch API route files to expose price_amount",
		Long: `pricepatch rewrites API route files in place, mapping the stored
price_cents property onto a price_amount field for API consistency.

Run without arguments it applies the built-in price mapping to
app/api/expert-sessions/route.ts; a config file can point it at other
targets or supply custom substitution rules.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initRootOpts(cmd.Context(), rootOpts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "apply").Logger().WithContext(cmd.Context())
			return commands.Apply(ctx, rootOpts)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewApplyCmd(rootOpts),
		commands.NewCheckCmd(rootOpts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		userLogger.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}
