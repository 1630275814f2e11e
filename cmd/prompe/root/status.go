package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/B1NYL/Promp-E-sub000/internal/engine"
	"github.com/B1NYL/Promp-E-sub000/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP and completion counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cur := svc.Progress().Current()
			next := engine.ExpForNextLevel(cur.Level)
			toGo := next - cur.Exp

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Progress"))
			fmt.Fprintln(out, ui.LabelValue("Level", cur.Level))
			fmt.Fprintf(out, "%s %s %s\n",
				ui.LabelValue("XP", fmt.Sprintf("%d/%d", cur.Exp, next)),
				ui.XPBar(cur.Exp, next, 24),
				ui.Muted.Render(fmt.Sprintf("(%d to next level)", toGo)))
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render("📅 Activity"))
			fmt.Fprintln(out, ui.LabelValue("Lessons today", cur.TodayCount))
			fmt.Fprintln(out, ui.LabelValue("Lessons this week", cur.WeekCount))
			fmt.Fprintln(out, ui.LabelValue("Lessons total", len(svc.CompletedLessonIDs())))
			fmt.Fprintln(out, "")

			board := svc.MissionBoard(ctx)
			done := 0
			for _, st := range board {
				if st.Completed {
					done++
				}
			}
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Missions %d/%d", ui.IconTarget, done, len(board))))
			return nil
		},
	}
	return cmd
}
