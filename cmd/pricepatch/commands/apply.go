package commands

import (
	"context"

	"github.com/Sighe83/pricepatch/cmd/pricepatch/opts"
	"github.com/Sighe83/pricepatch/pkg/operation"
	"github.com/Sighe83/pricepatch/pkg/patch"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the substitution rules to the target files",
		Long: `Apply rewrites the configured target files in place.
It will:
1. Resolve the configured targets
2. Run each substitution rule over every file
3. Write modified files back in place
4. Print the confirmation line`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "apply").Logger().WithContext(cmd.Context())
			return Apply(ctx, o)
		},
	}

	return cmd
}

// Apply runs the patch operation and reports the confirmation line
func Apply(ctx context.Context, o *opts.RootOpts) error {
	op, err := operation.New(operation.Options{
		Config:     o.Config,
		Patcher:    patch.NewRegexPatcher(),
		UserLogger: o.UserLogger,
	})
	if err != nil {
		return errors.Errorf("creating operator: %w", err)
	}

	summary, err := op.Patch(ctx)
	if err != nil {
		return errors.Errorf("patching files: %w", err)
	}

	if summary.Confirmation != "" {
		o.UserLogger.LogCompletion(summary.Confirmation)
	}
	return nil
}
