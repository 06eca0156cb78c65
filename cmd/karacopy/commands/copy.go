package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/karacopy/cmd/karacopy/opts"
	"github.com/walteh/karacopy/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewCopyCmd creates a new copy command
func NewCopyCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Select matching files and copy them into the destination",
		Long: `Copy walks the library, selects lyrics files, their media siblings and
cover art for every album in the configured year range, then copies them
into the destination folder preserving artist/album structure.
It will:
1. Walk the library and compute the selection
2. Print every selected file and the totals
3. Ask for confirmation (twice when the destination already exists)
4. Copy the files, creating destination folders as needed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner := operation.NewRunner(zerolog.Ctx(ctx))
			op := operation.NewCopyOperation(operation.Options{
				Config:  opts.Config,
				Console: opts.Console,
				Confirm: opts.Confirm,
			})

			if err := runner.Run(ctx, op); err != nil {
				return errors.Errorf("running copy operation: %w", err)
			}
			return nil
		},
	}

	return cmd
}
