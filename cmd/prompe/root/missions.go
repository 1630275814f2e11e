package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/B1NYL/Promp-E-sub000/internal/engine"
	"github.com/B1NYL/Promp-E-sub000/internal/ui"
)

func newMissionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "missions",
		Short: "List missions and their completion state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// Sweep first so counter-driven missions show fresh state.
			if newly := svc.SweepMissions(ctx); len(newly) > 0 {
				for _, m := range newly {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s completed! +%d XP\n", ui.IconDone, m.Title, m.Reward)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "")
			}

			board := svc.MissionBoard(ctx)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "Missions"))

			sections := []struct {
				t     engine.MissionType
				title string
			}{
				{engine.MissionDaily, "Daily"},
				{engine.MissionWeekly, "Weekly"},
				{engine.MissionAchievement, "Achievements"},
			}
			for _, sec := range sections {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(sec.title))
				for _, st := range board {
					if st.Mission.Type != sec.t {
						continue
					}
					progress := ""
					if st.Mission.Metric != engine.MetricManual && !st.Completed {
						progress = ui.Muted.Render(fmt.Sprintf(" (%d/%d)", st.Progress, st.Mission.Goal))
					}
					fmt.Fprintf(out, "%s %s %s%s %s\n",
						ui.MissionMark(st.Completed),
						st.Mission.Icon,
						st.Mission.Title,
						progress,
						ui.Gold.Render(fmt.Sprintf("+%d XP", st.Mission.Reward)))
				}
			}
			return nil
		},
	}
	return cmd
}
