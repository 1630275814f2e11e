package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/B1NYL/Promp-E-sub000/internal/ui"
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Claim the daily login bonus",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res := svc.DailyLogin(ctx)
			out := cmd.OutOrStdout()
			if !res.FirstToday {
				fmt.Fprintln(out, ui.Muted.Render("Already logged in today. See you tomorrow!"))
				return nil
			}
			fmt.Fprintf(out, "%s Welcome back! +%d XP\n", ui.IconSun, res.BonusXP)
			if res.LevelAfter > res.LevelBefore {
				fmt.Fprintf(out, "%s level %d → %d\n", ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			return nil
		},
	}
	return cmd
}
