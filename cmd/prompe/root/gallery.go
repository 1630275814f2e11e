package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/B1NYL/Promp-E-sub000/internal/ui"
)

func newGalleryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "List your creations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			list := svc.Gallery().List(ctx)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconImage, "Gallery"))
			if len(list) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing here yet. Try `prompe studio`."))
				return nil
			}
			for _, c := range list {
				fmt.Fprintf(out, "- %s %s\n  %s\n",
					ui.Key.Render(c.ID),
					ui.Muted.Render(c.CreatedAt.Format("2006-01-02 15:04")),
					c.Prompt)
			}
			return nil
		},
	}

	cmd.AddCommand(newGalleryShareCmd())
	return cmd
}

func newGalleryShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share <creation-id>",
		Short: "Share a creation to the community feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, ai, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			c, ok := svc.Gallery().Find(ctx, args[0])
			if !ok {
				return fmt.Errorf("creation %s not found", args[0])
			}
			post, err := ai.SharePost(ctx, c.Prompt, c.ImageURL)
			if err != nil {
				return fmt.Errorf("share failed (try again): %w", err)
			}
			if m, done := svc.CompleteMissionByEvent(ctx, "weekly_share"); done {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Mission complete: %s (+%d XP)\n", ui.IconTrophy, m.Title, m.Reward)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Shared as %s\n", ui.IconShare, post.ID)
			return nil
		},
	}
}
