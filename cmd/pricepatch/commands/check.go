package commands

import (
	"github.com/Sighe83/pricepatch/cmd/pricepatch/opts"
	"github.com/Sighe83/pricepatch/pkg/operation"
	"github.com/Sighe83/pricepatch/pkg/patch"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether the target files still need patching",
		Long: `Check runs the substitution rules without writing anything and
exits non-zero when any target file would change. Intended for CI.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "check").Logger().WithContext(cmd.Context())

			// Force dry-run for the probe
			cfg := *o.Config
			cfg.DryRun = true

			op, err := operation.New(operation.Options{
				Config:     &cfg,
				Patcher:    patch.NewRegexPatcher(),
				UserLogger: o.UserLogger,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			summary, err := op.Patch(ctx)
			if err != nil {
				return errors.Errorf("checking files: %w", err)
			}

			if summary.FilesModified > 0 {
				return errors.Errorf("%d file(s) need patching", summary.FilesModified)
			}

			o.UserLogger.LogValidation(true, "All targets up to date", nil)
			return nil
		},
	}

	return cmd
}
