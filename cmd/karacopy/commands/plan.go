package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/karacopy/cmd/karacopy/opts"
	"github.com/walteh/karacopy/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewPlanCmd creates a new plan command
func NewPlanCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what a copy run would select, without copying",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner := operation.NewRunner(zerolog.Ctx(ctx))
			op := operation.NewPlanOperation(operation.Options{
				Config:  opts.Config,
				Console: opts.Console,
				Confirm: opts.Confirm,
			})

			if err := runner.Run(ctx, op); err != nil {
				return errors.Errorf("running plan operation: %w", err)
			}
			return nil
		},
	}

	return cmd
}
