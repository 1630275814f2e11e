package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/B1NYL/Promp-E-sub000/internal/ui"
)

func newCompleteCmd() *cobra.Command {
	var xp int

	cmd := &cobra.Command{
		Use:   "complete <lesson-id>",
		Short: "Record a finished lesson and collect its XP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteLesson(ctx, args[0], xp)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			note := fmt.Sprintf("+%d XP", res.XPAwarded)
			if res.Review {
				note += ui.Muted.Render(" (review)")
			}
			fmt.Fprintf(out, "%s %s: %s\n", ui.IconDone, res.LessonID, note)
			if res.LevelUp {
				fmt.Fprintf(out, "%s level %d → %d\n", ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			for _, m := range res.NewMissions {
				fmt.Fprintf(out, "%s Mission complete: %s %s (+%d XP)\n", ui.IconTrophy, m.Icon, m.Title, m.Reward)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&xp, "xp", 100, "base XP the lesson is worth")
	return cmd
}
