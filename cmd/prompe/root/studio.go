package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/B1NYL/Promp-E-sub000/internal/tui"
)

func newStudioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "studio",
		Short: "Open the interactive drawing studio",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, ai, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunStudio(ctx, svc, ai, cmd.OutOrStdout())
		},
	}
	return cmd
}
